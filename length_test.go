package svgtypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberListBasic(t *testing.T) {
	// given
	span := Span{Parent: "1,2 3", Start: 0, End: 5}
	list := NewNumberList(span)

	// when/then
	v, ok := list.Next()
	assert.True(t, ok)
	assert.Equal(t, 1.0, v)

	v, ok = list.Next()
	assert.True(t, ok)
	assert.Equal(t, 2.0, v)

	v, ok = list.Next()
	assert.True(t, ok)
	assert.Equal(t, 3.0, v)

	_, ok = list.Next()
	assert.False(t, ok)
}

func TestNumberListMalformedStopsIteration(t *testing.T) {
	span := Span{Parent: "1,x,3", Start: 0, End: 5}
	list := NewNumberList(span)

	v, ok := list.Next()
	assert.True(t, ok)
	assert.Equal(t, 1.0, v)

	_, ok = list.Next()
	assert.False(t, ok)

	// and stays false
	_, ok = list.Next()
	assert.False(t, ok)
}

func TestLengthListBasic(t *testing.T) {
	span := Span{Parent: "10px,20%,5em", Start: 0, End: 12}
	list := NewLengthList(span)

	l, ok := list.Next()
	assert.True(t, ok)
	assert.Equal(t, Length{Num: 10, Unit: LengthPx}, l)

	l, ok = list.Next()
	assert.True(t, ok)
	assert.Equal(t, Length{Num: 20, Unit: LengthPercent}, l)

	l, ok = list.Next()
	assert.True(t, ok)
	assert.Equal(t, Length{Num: 5, Unit: LengthEm}, l)

	_, ok = list.Next()
	assert.False(t, ok)
}

func TestLengthUnitString(t *testing.T) {
	assert.Equal(t, "px", LengthPx.String())
	assert.Equal(t, "%", LengthPercent.String())
	assert.Equal(t, "", LengthNone.String())
}
