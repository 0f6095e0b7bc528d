package svgtypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    float64
		wantErr bool
	}{
		{"integer", "42", 42, false},
		{"negative", "-1.5", -1.5, false},
		{"leading dot", ".5", 0.5, false},
		{"exponent", "1e3", 1000, false},
		{"signed exponent", "1.5e-2", 0.015, false},
		{"em not exponent", "1em", 1, false},
		{"ex not exponent", "1ex", 1, false},
		{"bare dot", ".", 0, true},
		{"empty", "", 0, true},
		{"exponent without digits", "1e", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// given
			s := NewStreamFromString(tt.in)

			// when
			got, err := s.ParseNumber()

			// then
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseNumberLeavesUnitForCaller(t *testing.T) {
	// given
	s := NewStreamFromString("1em")

	// when
	n, err := s.ParseNumber()

	// then
	assert.NoError(t, err)
	assert.Equal(t, float64(1), n)
	assert.Equal(t, "em", s.Span.Parent[s.Span.Start+s.Pos:s.Span.End])
}

func TestParseLength(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Length
	}{
		{"unitless", "10", Length{Num: 10, Unit: LengthNone}},
		{"px", "10px", Length{Num: 10, Unit: LengthPx}},
		{"percent", "50%", Length{Num: 50, Unit: LengthPercent}},
		{"em", "2em", Length{Num: 2, Unit: LengthEm}},
		{"pc", "3pc", Length{Num: 3, Unit: LengthPc}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStreamFromString(tt.in)
			got, err := s.ParseLength()
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseListSeparator(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"comma", ",", false},
		{"comma with spaces", "  ,  ", false},
		{"spaces only", "   ", false},
		{"empty", "", false},
		{"double comma", ",,", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStreamFromString(tt.in)
			err := s.ParseListSeparator()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConsumeByteMismatch(t *testing.T) {
	// given
	s := NewStreamFromString("abc")

	// when
	err := s.ConsumeByte('x')

	// then
	assert.Error(t, err)
	var perr *Error
	assert.ErrorAs(t, err, &perr)
	assert.Equal(t, InvalidChar, perr.Kind)
}

func TestTextPosAtCountsLines(t *testing.T) {
	// given
	s := NewStreamFromString("ab\ncd\nef")

	// when
	pos := s.TextPosAt(6) // 'e'

	// then
	assert.Equal(t, TextPos{Line: 3, Column: 1}, pos)
}

func TestAdvanceBeyondSpanFails(t *testing.T) {
	s := NewStreamFromString("ab")
	assert.Error(t, s.Advance(10))
}
