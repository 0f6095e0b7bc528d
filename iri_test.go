package svgtypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIRILocal(t *testing.T) {
	span := Span{Parent: "#gradient1", Start: 0, End: 10}
	link, isLocal := ParseIRI(span)
	assert.True(t, isLocal)
	assert.Equal(t, "gradient1", link.Str())
}

func TestParseIRIExternal(t *testing.T) {
	span := Span{Parent: "http://example.com/a.svg#b", Start: 0, End: 26}
	link, isLocal := ParseIRI(span)
	assert.False(t, isLocal)
	assert.Equal(t, span.Str(), link.Str())
}

func TestParseFuncIRI(t *testing.T) {
	span := Span{Parent: "url(#grad1)", Start: 0, End: 11}
	link, err := ParseFuncIRI(span)
	assert.NoError(t, err)
	assert.Equal(t, "grad1", link.Str())
}

func TestParseFuncIRIRequiresPrefix(t *testing.T) {
	span := Span{Parent: "#grad1", Start: 0, End: 6}
	_, err := ParseFuncIRI(span)
	assert.Error(t, err)
}
