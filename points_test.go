package svgtypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func collectPoints(v string) []Point {
	tok := NewPointsTokenizer(Span{Parent: v, Start: 0, End: len(v)}, nil)
	var out []Point
	for {
		p, ok := tok.Next()
		if !ok {
			break
		}
		out = append(out, p)
	}
	return out
}

func TestPointsCommaSeparated(t *testing.T) {
	pts := collectPoints("0,0 10,10 20,0")
	assert.Equal(t, []Point{{0, 0}, {10, 10}, {20, 0}}, pts)
}

func TestPointsWhitespaceSeparated(t *testing.T) {
	pts := collectPoints("0 0 10 10")
	assert.Equal(t, []Point{{0, 0}, {10, 10}}, pts)
}

func TestPointsOddTrailingCoordinateStops(t *testing.T) {
	pts := collectPoints("0,0 10")
	assert.Equal(t, []Point{{0, 0}}, pts)
}

func TestPointsEmpty(t *testing.T) {
	pts := collectPoints("")
	assert.Empty(t, pts)
}
