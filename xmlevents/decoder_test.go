package xmlevents

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecoderStartAndEndElement(t *testing.T) {
	// given
	d := NewDecoder("<rect></rect>")

	// when
	ev1, err1 := d.Next()
	ev2, err2 := d.Next()
	_, err3 := d.Next()

	// then
	assert.Nil(t, err1)
	assert.Equal(t, EventStartElement, ev1.Kind)
	assert.Equal(t, "rect", ev1.Name.Local.Str())
	assert.False(t, ev1.Name.HasPrefix())

	assert.Nil(t, err2)
	assert.Equal(t, EventEndElement, ev2.Kind)
	assert.Equal(t, "rect", ev2.Name.Local.Str())

	assert.Equal(t, io.EOF, err3)
}

func TestDecoderSelfClosingElementSynthesizesEnd(t *testing.T) {
	d := NewDecoder(`<rect width="10"/>`)

	ev1, err1 := d.Next()
	assert.Nil(t, err1)
	assert.Equal(t, EventStartElement, ev1.Kind)
	assert.True(t, ev1.SelfClosing)
	assert.Len(t, ev1.Attrs, 1)
	assert.Equal(t, "width", ev1.Attrs[0].Name.Local.Str())
	assert.Equal(t, "10", ev1.Attrs[0].Value.Str())

	ev2, err2 := d.Next()
	assert.Nil(t, err2)
	assert.Equal(t, EventEndElement, ev2.Kind)
	assert.Equal(t, "rect", ev2.Name.Local.Str())
}

func TestDecoderAttributesSingleAndDoubleQuoted(t *testing.T) {
	d := NewDecoder(`<a href='x' title="y"/>`)

	ev, err := d.Next()
	assert.Nil(t, err)
	assert.Len(t, ev.Attrs, 2)
	assert.Equal(t, "x", ev.Attrs[0].Value.Str())
	assert.True(t, ev.Attrs[0].SingleQuote)
	assert.Equal(t, "y", ev.Attrs[1].Value.Str())
	assert.False(t, ev.Attrs[1].SingleQuote)
}

func TestDecoderNamespacedName(t *testing.T) {
	d := NewDecoder(`<svg:rect xlink:href="#a"/>`)

	ev, err := d.Next()
	assert.Nil(t, err)
	assert.True(t, ev.Name.HasPrefix())
	assert.Equal(t, "svg", ev.Name.Prefix.Str())
	assert.Equal(t, "rect", ev.Name.Local.Str())
	assert.True(t, ev.Attrs[0].Name.HasPrefix())
	assert.Equal(t, "xlink", ev.Attrs[0].Name.Prefix.Str())
	assert.Equal(t, "href", ev.Attrs[0].Name.Local.Str())
}

func TestDecoderTextContent(t *testing.T) {
	d := NewDecoder("<a>hello world</a>")

	_, err1 := d.Next()
	assert.Nil(t, err1)

	ev, err2 := d.Next()
	assert.Nil(t, err2)
	assert.Equal(t, EventText, ev.Kind)
	assert.Equal(t, "hello world", ev.Data.Str())
}

func TestDecoderCDataSection(t *testing.T) {
	d := NewDecoder("<a><![CDATA[<raw> & stuff]]></a>")

	_, err1 := d.Next()
	assert.Nil(t, err1)

	ev, err2 := d.Next()
	assert.Nil(t, err2)
	assert.Equal(t, EventCharData, ev.Kind)
	assert.Equal(t, "<raw> & stuff", ev.Data.Str())
}

func TestDecoderCommentsAreSkipped(t *testing.T) {
	d := NewDecoder("<a><!-- a comment --><b/></a>")

	_, err1 := d.Next()
	assert.Nil(t, err1)

	ev, err2 := d.Next()
	assert.Nil(t, err2)
	assert.Equal(t, EventStartElement, ev.Kind)
	assert.Equal(t, "b", ev.Name.Local.Str())
}

func TestDecoderProcInstIsSurfaced(t *testing.T) {
	d := NewDecoder(`<?xml version="1.0"?><a/>`)

	ev, err := d.Next()
	assert.Nil(t, err)
	assert.Equal(t, EventProcInst, ev.Kind)
	assert.Equal(t, `xml version="1.0"`, ev.Data.Str())
}

func TestDecoderDirectiveIsSkipped(t *testing.T) {
	d := NewDecoder(`<!DOCTYPE svg [<!ENTITY foo "bar">]><a/>`)

	ev, err := d.Next()
	assert.Nil(t, err)
	assert.Equal(t, EventStartElement, ev.Kind)
	assert.Equal(t, "a", ev.Name.Local.Str())
}

func TestDecoderPreserveWhitespaceInheritsAcrossDepth(t *testing.T) {
	d := NewDecoder(`<a xml:space="preserve"><b><c/></b></a>`)

	ev, err := d.Next()
	assert.Nil(t, err)
	assert.Equal(t, "a", ev.Name.Local.Str())
	assert.True(t, d.PreserveWhitespace())

	ev, err = d.Next()
	assert.Nil(t, err)
	assert.Equal(t, "b", ev.Name.Local.Str())
	assert.True(t, d.PreserveWhitespace())

	ev, err = d.Next()
	assert.Nil(t, err)
	assert.Equal(t, "c", ev.Name.Local.Str())
	assert.True(t, ev.SelfClosing)
	assert.True(t, d.PreserveWhitespace())
}

func TestDecoderPreserveWhitespaceDefaultsFalseAndPopsOnClose(t *testing.T) {
	d := NewDecoder(`<a xml:space="preserve"><b/></a><c/>`)

	_, err := d.Next() // <a>
	assert.Nil(t, err)
	_, err = d.Next() // <b/>
	assert.Nil(t, err)
	_, err = d.Next() // </b>
	assert.Nil(t, err)
	_, err = d.Next() // </a>
	assert.Nil(t, err)
	assert.False(t, d.PreserveWhitespace())

	ev, err := d.Next() // <c/>
	assert.Nil(t, err)
	assert.Equal(t, "c", ev.Name.Local.Str())
	assert.False(t, d.PreserveWhitespace())
}

func TestDecoderUnterminatedCommentIsMalformed(t *testing.T) {
	d := NewDecoder("<a><!-- never closes</a>")

	_, err1 := d.Next()
	assert.Nil(t, err1)

	_, err2 := d.Next()
	assert.Error(t, err2)
}

func TestDecoderUnterminatedCDataIsMalformed(t *testing.T) {
	d := NewDecoder("<a><![CDATA[oops</a>")

	_, err1 := d.Next()
	assert.Nil(t, err1)

	_, err2 := d.Next()
	assert.Error(t, err2)
}

func TestDecoderMissingClosingQuoteIsMalformed(t *testing.T) {
	d := NewDecoder(`<a href="unterminated/>`)

	_, err := d.Next()
	assert.Error(t, err)
}

func TestDecoderMissingEqualsIsMalformed(t *testing.T) {
	d := NewDecoder(`<a href "x"/>`)

	_, err := d.Next()
	assert.Error(t, err)
}
