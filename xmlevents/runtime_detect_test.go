package xmlevents

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanTextWideFindsAngleBracketAcrossWordBoundary(t *testing.T) {
	for _, gap := range []int{0, 1, 7, 8, 9, 15, 16, 17, 23} {
		s := strings.Repeat("x", gap) + "<rest"
		got := scanTextWide(s, 0)
		assert.Equal(t, gap, got, "gap=%d", gap)
	}
}

func TestScanTextWideNoAngleBracketReachesEnd(t *testing.T) {
	s := strings.Repeat("y", 37)
	got := scanTextWide(s, 0)
	assert.Equal(t, len(s), got)
}

func TestScanTextWideStartsMidString(t *testing.T) {
	s := "prefix<tag>" + strings.Repeat("z", 20) + "<end"
	got := scanTextWide(s, len("prefix<tag>"))
	assert.Equal(t, len("prefix<tag>")+20, got)
}

func TestDecoderTextContentUsesWideScanWhenAvailable(t *testing.T) {
	// Goes through Next, so decodeText takes whichever branch
	// hasWideTextScan selects on the host CPU; the text must come out the
	// same either way.
	d := NewDecoder("<a>" + strings.Repeat("w", 40) + "</a>")
	_, err := d.Next() // <a>
	assert.Nil(t, err)

	ev, err := d.Next()
	assert.Nil(t, err)
	assert.Equal(t, EventText, ev.Kind)
	assert.Equal(t, strings.Repeat("w", 40), ev.Data.Str())
}
