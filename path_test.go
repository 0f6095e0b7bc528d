package svgtypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func collectPath(d string) []PathToken {
	tok := NewPathTokenizer(Span{Parent: d, Start: 0, End: len(d)}, nil)
	var out []PathToken
	for {
		t, ok := tok.Next()
		if !ok {
			break
		}
		out = append(out, t)
	}
	return out
}

func TestPathMoveLine(t *testing.T) {
	// given/when
	toks := collectPath("M10,20L30,40")

	// then
	assert.Equal(t, []PathToken{
		{Cmd: 'M', Abs: true, X: 10, Y: 20},
		{Cmd: 'L', Abs: true, X: 30, Y: 40},
	}, toks)
}

func TestPathImplicitLineToAfterMoveTo(t *testing.T) {
	// given/when: a second coordinate pair after M with no command letter
	// is an implicit LineTo (relative MoveTo implies relative LineTo).
	toks := collectPath("m10,20 30,40")

	// then
	assert.Len(t, toks, 2)
	assert.Equal(t, PathCommand('M'), toks[0].Cmd)
	assert.False(t, toks[0].Abs)
	assert.Equal(t, PathCommand('L'), toks[1].Cmd)
	assert.False(t, toks[1].Abs)
	assert.Equal(t, 30.0, toks[1].X)
}

func TestPathImplicitCommandRepetition(t *testing.T) {
	// given/when
	toks := collectPath("M0,0L10,20 30,40 50,60")

	// then: after the MoveTo, three LineTo segments from one L and two
	// bare coordinate pairs
	assert.Len(t, toks, 4)
	for _, tok := range toks[1:] {
		assert.Equal(t, PathCommand('L'), tok.Cmd)
	}
}

func TestPathArcFlags(t *testing.T) {
	// given/when: flags are single digits with no separator required
	toks := collectPath("M0,0A5,5,0,1,1,10,10")

	// then
	assert.Len(t, toks, 2)
	arc := toks[1]
	assert.Equal(t, PathCommand('A'), arc.Cmd)
	assert.Equal(t, 5.0, arc.RX)
	assert.Equal(t, 5.0, arc.RY)
	assert.Equal(t, 0.0, arc.XRot)
	assert.True(t, arc.Large)
	assert.True(t, arc.Sweep)
	assert.Equal(t, 10.0, arc.X)
	assert.Equal(t, 10.0, arc.Y)
}

func TestPathArcFlagsWithoutSeparators(t *testing.T) {
	// given/when: "00" packs both flags with no delimiter between them
	toks := collectPath("M0 0A5 5 0 00 10 0")

	// then
	assert.Len(t, toks, 2)
	arc := toks[1]
	assert.False(t, arc.Large)
	assert.False(t, arc.Sweep)
}

func TestPathClosePath(t *testing.T) {
	toks := collectPath("M0,0L1,1Z")
	assert.Len(t, toks, 3)
	assert.Equal(t, PathCommand('Z'), toks[2].Cmd)
}

func TestPathMustStartWithMoveTo(t *testing.T) {
	// given/when
	toks := collectPath("L10,20")

	// then
	assert.Empty(t, toks)
}

func TestPathClosePathCannotBeFollowedByNumber(t *testing.T) {
	// given/when
	toks := collectPath("M0,0Z10,20")

	// then: only the MoveTo and ClosePath are yielded; the trailing
	// numbers after Z abort the tokenizer.
	assert.Len(t, toks, 2)
}

func TestPathUnknownCommandStopsIteration(t *testing.T) {
	toks := collectPath("M0,0Q10,20X1,1")
	assert.Len(t, toks, 1)
}
