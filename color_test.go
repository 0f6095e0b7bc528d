package svgtypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func parseColorStr(v string) (Color, error) {
	return ParseColor(Span{Parent: v, Start: 0, End: len(v)})
}

func TestParseColorHexLong(t *testing.T) {
	c, err := parseColorStr("#ff0000")
	assert.NoError(t, err)
	assert.Equal(t, Color{R: 255, G: 0, B: 0}, c)
}

func TestParseColorHexShort(t *testing.T) {
	c, err := parseColorStr("#f00")
	assert.NoError(t, err)
	assert.Equal(t, Color{R: 255, G: 0, B: 0}, c)
}

func TestParseColorHexWrongLength(t *testing.T) {
	_, err := parseColorStr("#ff00")
	assert.Error(t, err)
}

func TestParseColorRGBIntegers(t *testing.T) {
	c, err := parseColorStr("rgb(255, 0, 0)")
	assert.NoError(t, err)
	assert.Equal(t, Color{R: 255, G: 0, B: 0}, c)
}

func TestParseColorRGBCaseInsensitivePrefix(t *testing.T) {
	c, err := parseColorStr("RGB(0,255,0)")
	assert.NoError(t, err)
	assert.Equal(t, Color{R: 0, G: 255, B: 0}, c)
}

func TestParseColorRGBPercent(t *testing.T) {
	c, err := parseColorStr("rgb(100%, 0%, 0%)")
	assert.NoError(t, err)
	assert.Equal(t, Color{R: 255, G: 0, B: 0}, c)
}

func TestParseColorRGBEachComponentGatesItsOwnPercentMode(t *testing.T) {
	// Every component's '%' (or lack of it) is decided independently, not
	// inherited from the first one.
	c, err := parseColorStr("rgb(50%, 50, 50)")
	assert.NoError(t, err)
	assert.Equal(t, colorFromPercent(50), c.R)
	assert.Equal(t, byte(50), c.G)
	assert.Equal(t, byte(50), c.B)
}

func TestParseColorRGBMixedPercentAndAbsolute(t *testing.T) {
	// The worked boundary example: first component is plain, the middle
	// one is a percentage, and the result must not be gated by the first.
	c, err := parseColorStr("rgb(0,50%,255)")
	assert.NoError(t, err)
	assert.Equal(t, Color{R: 0, G: 128, B: 255}, c)
}

func TestParseColorNamed(t *testing.T) {
	c, err := parseColorStr("red")
	assert.NoError(t, err)
	assert.Equal(t, Color{R: 255, G: 0, B: 0}, c)
}

func TestParseColorNamedCaseInsensitive(t *testing.T) {
	c, err := parseColorStr("ReD")
	assert.NoError(t, err)
	assert.Equal(t, Color{R: 255, G: 0, B: 0}, c)
}

func TestParseColorUnknownName(t *testing.T) {
	_, err := parseColorStr("notacolor")
	assert.Error(t, err)
}

func TestParseColorTrailingDataRejected(t *testing.T) {
	_, err := parseColorStr("#ff0000 icc-color(a, 1)")
	assert.Error(t, err)
}
