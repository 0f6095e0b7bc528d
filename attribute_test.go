package svgtypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func dispatch(eid ElementID, aid AttributeID, v string) (AttributeValue, error) {
	return DispatchAttribute(eid, aid, Span{Parent: v, Start: 0, End: len(v)}, nil)
}

func TestDispatchLengthAttribute(t *testing.T) {
	v, err := dispatch(ElementRect, AttributeWidth, "100px")
	assert.NoError(t, err)
	assert.Equal(t, AVLength, v.Kind)
	assert.Equal(t, Length{Num: 100, Unit: LengthPx}, v.Length)
}

func TestDispatchXOnRectIsLength(t *testing.T) {
	v, err := dispatch(ElementRect, AttributeX, "10")
	assert.NoError(t, err)
	assert.Equal(t, AVLength, v.Kind)
}

func TestDispatchXOnTextIsLengthList(t *testing.T) {
	v, err := dispatch(ElementText, AttributeX, "10,20,30")
	assert.NoError(t, err)
	assert.Equal(t, AVLengthList, v.Kind)
	list, ok := v.AsLengthList()
	assert.True(t, ok)
	l, ok := list.Next()
	assert.True(t, ok)
	assert.Equal(t, Length{Num: 10, Unit: LengthNone}, l)
}

func TestDispatchOpacityClampsToUnitRange(t *testing.T) {
	v, err := dispatch(ElementRect, AttributeOpacity, "1.5")
	assert.NoError(t, err)
	assert.Equal(t, AVNumber, v.Kind)
	assert.Equal(t, 1.0, v.Number)

	v, err = dispatch(ElementRect, AttributeOpacity, "-0.5")
	assert.NoError(t, err)
	assert.Equal(t, 0.0, v.Number)
}

func TestDispatchOpacityInherit(t *testing.T) {
	v, err := dispatch(ElementRect, AttributeOpacity, "inherit")
	assert.NoError(t, err)
	assert.Equal(t, AVPredefValue, v.Kind)
	assert.Equal(t, ValueInherit, v.PredefValue)
}

func TestDispatchStrokeDasharrayNone(t *testing.T) {
	v, err := dispatch(ElementRect, AttributeStrokeDasharray, "none")
	assert.NoError(t, err)
	assert.Equal(t, AVPredefValue, v.Kind)
	assert.Equal(t, ValueNone, v.PredefValue)
}

func TestDispatchStrokeDasharrayLengthList(t *testing.T) {
	v, err := dispatch(ElementRect, AttributeStrokeDasharray, "5,10,5")
	assert.NoError(t, err)
	assert.Equal(t, AVLengthList, v.Kind)
}

func TestDispatchFillPaint(t *testing.T) {
	v, err := dispatch(ElementRect, AttributeFill, "red")
	assert.NoError(t, err)
	assert.Equal(t, AVPaint, v.Kind)
	paint, ok := v.AsPaint()
	assert.True(t, ok)
	assert.Equal(t, PaintColor, paint.Kind)
}

func TestDispatchFillOnAnimateIsRawString(t *testing.T) {
	// <animate fill="freeze"> isn't a paint value at all.
	v, err := dispatch(ElementAnimate, AttributeFill, "freeze")
	assert.NoError(t, err)
	assert.Equal(t, AVString, v.Kind)
	s, ok := v.AsString()
	assert.True(t, ok)
	assert.Equal(t, "freeze", s.Str())
}

func TestDispatchClipPathFuncIRI(t *testing.T) {
	v, err := dispatch(ElementRect, AttributeClipPath, "url(#clip1)")
	assert.NoError(t, err)
	assert.Equal(t, AVFuncIRI, v.Kind)
	assert.Equal(t, "clip1", v.FuncIRI.Str())
}

func TestDispatchClipPathNone(t *testing.T) {
	v, err := dispatch(ElementRect, AttributeClipPath, "none")
	assert.NoError(t, err)
	assert.Equal(t, AVPredefValue, v.Kind)
	assert.Equal(t, ValueNone, v.PredefValue)
}

func TestDispatchColor(t *testing.T) {
	v, err := dispatch(ElementRect, AttributeColor, "#112233")
	assert.NoError(t, err)
	assert.Equal(t, AVColor, v.Kind)
	col, ok := v.AsColor()
	assert.True(t, ok)
	assert.Equal(t, Color{R: 0x11, G: 0x22, B: 0x33}, col)
}

func TestDispatchFontWeightNumericIsPredef(t *testing.T) {
	v, err := dispatch(ElementText, AttributeFontWeight, "700")
	assert.NoError(t, err)
	assert.Equal(t, AVPredefValue, v.Kind)
	assert.Equal(t, ValueN700, v.PredefValue)
}

func TestDispatchFontWeightBold(t *testing.T) {
	v, err := dispatch(ElementText, AttributeFontWeight, "bold")
	assert.NoError(t, err)
	assert.Equal(t, ValueBold, v.PredefValue)
}

func TestDispatchPathSeed(t *testing.T) {
	v, err := dispatch(ElementPath, AttributeD, "M0,0L10,10")
	assert.NoError(t, err)
	assert.Equal(t, AVPath, v.Kind)
	tok, ok := v.AsPath()
	assert.True(t, ok)
	seg, ok := tok.Next()
	assert.True(t, ok)
	assert.Equal(t, PathCommand('M'), seg.Cmd)
}

func TestDispatchTransformSeed(t *testing.T) {
	v, err := dispatch(ElementG, AttributeTransform, "translate(10,20)")
	assert.NoError(t, err)
	assert.Equal(t, AVTransform, v.Kind)
	tok, ok := v.AsTransform()
	assert.True(t, ok)
	tt, ok := tok.Next()
	assert.True(t, ok)
	assert.Equal(t, TransformTranslate, tt.Kind)
}

func TestDispatchStyleSeed(t *testing.T) {
	v, err := dispatch(ElementRect, AttributeStyle, "fill:red")
	assert.NoError(t, err)
	assert.Equal(t, AVStyle, v.Kind)
}

func TestDispatchXlinkHrefLocal(t *testing.T) {
	v, err := dispatch(ElementUse, AttributeXlinkHref, "#shape1")
	assert.NoError(t, err)
	assert.Equal(t, AVIRI, v.Kind)
	assert.Equal(t, "shape1", v.IRI.Str())
}

func TestDispatchXlinkHrefExternal(t *testing.T) {
	v, err := dispatch(ElementUse, AttributeXlinkHref, "other.svg#shape1")
	assert.NoError(t, err)
	assert.Equal(t, AVString, v.Kind)
}

func TestDispatchEntityRefPreCheck(t *testing.T) {
	v, err := dispatch(ElementRect, AttributeFill, "&myColor;")
	assert.NoError(t, err)
	assert.Equal(t, AVEntityRef, v.Kind)
	assert.Equal(t, "myColor", v.EntityRef.Str())
}

func TestDispatchPredefOnlyAttribute(t *testing.T) {
	v, err := dispatch(ElementRect, AttributeTextAnchor, "middle")
	assert.NoError(t, err)
	assert.Equal(t, AVPredefValue, v.Kind)
	assert.Equal(t, ValueMiddle, v.PredefValue)
}

func TestDispatchPredefOnlyAttributeRejectsUnknownKeyword(t *testing.T) {
	_, err := dispatch(ElementRect, AttributeTextAnchor, "nowhere")
	assert.Error(t, err)
}

func TestDispatchViewBox(t *testing.T) {
	v, err := dispatch(ElementSvg, AttributeViewBox, "0 0 100 100")
	assert.NoError(t, err)
	assert.Equal(t, AVViewBox, v.Kind)
	assert.Equal(t, ViewBox{X: 0, Y: 0, W: 100, H: 100}, v.ViewBox)
}

func TestDispatchPreserveAspectRatio(t *testing.T) {
	v, err := dispatch(ElementSvg, AttributePreserveAspectRatio, "xMidYMid meet")
	assert.NoError(t, err)
	assert.Equal(t, AVAspectRatio, v.Kind)
	assert.Equal(t, AlignXMidYMid, v.AspectRatio.Align)
}

func TestDispatchUnknownAttributeFallsBackToString(t *testing.T) {
	v, err := dispatch(ElementRect, AttributeId, "myRect")
	assert.NoError(t, err)
	assert.Equal(t, AVString, v.Kind)
	assert.Equal(t, "myRect", v.String.Str())
}

func TestDispatchStdDeviationNumberList(t *testing.T) {
	v, err := dispatch(ElementFeGaussianBlur, AttributeStdDeviation, "2,3")
	assert.NoError(t, err)
	assert.Equal(t, AVNumberList, v.Kind)
	list, ok := v.AsNumberList()
	assert.True(t, ok)
	n, ok := list.Next()
	assert.True(t, ok)
	assert.Equal(t, 2.0, n)
}

func TestDispatchPointsSeed(t *testing.T) {
	v, err := dispatch(ElementPolygon, AttributePoints, "0,0 10,10")
	assert.NoError(t, err)
	assert.Equal(t, AVPoints, v.Kind)
	tok, ok := v.AsPoints()
	assert.True(t, ok)
	p, ok := tok.Next()
	assert.True(t, ok)
	assert.Equal(t, Point{0, 0}, p)
}
