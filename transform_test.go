package svgtypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func collectTransforms(v string) []TransformToken {
	tok := NewTransformTokenizer(Span{Parent: v, Start: 0, End: len(v)}, nil)
	var out []TransformToken
	for {
		t, ok := tok.Next()
		if !ok {
			break
		}
		out = append(out, t)
	}
	return out
}

func TestTransformMatrix(t *testing.T) {
	toks := collectTransforms("matrix(1,2,3,4,5,6)")
	assert.Equal(t, []TransformToken{
		{Kind: TransformMatrix, Args: [6]float64{1, 2, 3, 4, 5, 6}, N: 6},
	}, toks)
}

func TestTransformTranslateOneArg(t *testing.T) {
	toks := collectTransforms("translate(10)")
	assert.Len(t, toks, 1)
	assert.Equal(t, TransformTranslate, toks[0].Kind)
	assert.Equal(t, 2, toks[0].N)
	assert.Equal(t, 10.0, toks[0].Args[0])
	assert.Equal(t, 0.0, toks[0].Args[1])
}

func TestTransformTranslateTwoArgs(t *testing.T) {
	toks := collectTransforms("translate(10 20)")
	assert.Equal(t, 10.0, toks[0].Args[0])
	assert.Equal(t, 20.0, toks[0].Args[1])
}

func TestTransformScaleDefaultsYToX(t *testing.T) {
	toks := collectTransforms("scale(3)")
	assert.Equal(t, 3.0, toks[0].Args[0])
	assert.Equal(t, 3.0, toks[0].Args[1])
}

func TestTransformRotateOneArgStaysSingleToken(t *testing.T) {
	// rotate(a) with no center point is one token with N==1; the
	// three-argument form is checked in the next test.
	toks := collectTransforms("rotate(45)")
	assert.Len(t, toks, 1)
	assert.Equal(t, 1, toks[0].N)
	assert.Equal(t, 45.0, toks[0].Args[0])
}

func TestTransformRotateThreeArgsStaysSingleToken(t *testing.T) {
	toks := collectTransforms("rotate(45,10,20)")
	assert.Len(t, toks, 1)
	assert.Equal(t, TransformRotate, toks[0].Kind)
	assert.Equal(t, 3, toks[0].N)
	assert.Equal(t, [3]float64{45, 10, 20}, [3]float64{toks[0].Args[0], toks[0].Args[1], toks[0].Args[2]})
}

func TestTransformSkew(t *testing.T) {
	toks := collectTransforms("skewX(10) skewY(20)")
	assert.Len(t, toks, 2)
	assert.Equal(t, TransformSkewX, toks[0].Kind)
	assert.Equal(t, 10.0, toks[0].Args[0])
	assert.Equal(t, TransformSkewY, toks[1].Kind)
	assert.Equal(t, 20.0, toks[1].Args[0])
}

func TestTransformList(t *testing.T) {
	toks := collectTransforms("translate(10,20) rotate(30)")
	assert.Len(t, toks, 2)
	assert.Equal(t, TransformTranslate, toks[0].Kind)
	assert.Equal(t, TransformRotate, toks[1].Kind)
}

func TestTransformUnknownKeywordStops(t *testing.T) {
	toks := collectTransforms("spin(10)")
	assert.Empty(t, toks)
}

func TestTransformWrongArgCountStops(t *testing.T) {
	toks := collectTransforms("matrix(1,2,3)")
	assert.Empty(t, toks)
}
