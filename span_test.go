package svgtypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpanStr(t *testing.T) {
	// given
	span := Span{Parent: "hello world", Start: 6, End: 11}

	// when/then
	assert.Equal(t, "world", span.Str())
	assert.Equal(t, 5, span.Len())
	assert.False(t, span.IsEmpty())
}

func TestSpanIsEmpty(t *testing.T) {
	span := Span{Parent: "abc", Start: 1, End: 1}
	assert.True(t, span.IsEmpty())
}

func TestSpanSub(t *testing.T) {
	// given
	span := Span{Parent: "0123456789", Start: 2, End: 8}

	// when
	sub := span.sub(1, 3)

	// then
	assert.Equal(t, "34", sub.Str())
}

func TestSpanTrimSpace(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no whitespace", "abc", "abc"},
		{"leading", "  abc", "abc"},
		{"trailing", "abc  ", "abc"},
		{"both", "\t abc \n", "abc"},
		{"all whitespace", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span := Span{Parent: tt.in, Start: 0, End: len(tt.in)}
			assert.Equal(t, tt.want, span.trimSpace().Str())
		})
	}
}
