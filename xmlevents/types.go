// Package xmlevents is a minimal XML pull-parser adapted from gosaxml's
// decoder for an in-memory source: the whole document is already resident
// as a string, so there is no ring buffer to refill and no byte-slice
// buffer to grow into — every name and value below is a Span, a borrowed
// view into that string, never a copy.
package xmlevents

// Span is a borrowed view over a region of the document string. It has the
// same shape as svgtypes.Span by design: the caller converts between the
// two with a struct literal, not a method, since xmlevents must not import
// its caller's package.
type Span struct {
	Parent string
	Start  int
	End    int
}

// Str returns the substring this Span describes.
func (s Span) Str() string {
	return s.Parent[s.Start:s.End]
}

// Name is a (possibly prefixed) XML name: <prefix:local attr="...">.
// Prefix is the zero Span when the name carries no prefix.
type Name struct {
	Prefix Span
	Local  Span
}

// HasPrefix reports whether the name carries a namespace prefix.
func (n Name) HasPrefix() bool {
	return n.Prefix.End > n.Prefix.Start
}

// Attr is one name="value" pair of a start element.
type Attr struct {
	Name        Name
	Value       Span
	SingleQuote bool
}

// EventKind identifies the shape of an Event, mirroring the token kinds
// gosaxml's decoder distinguishes internally.
type EventKind byte

const (
	EventStartElement EventKind = iota
	EventEndElement
	EventText
	EventCharData // the unescaped contents of a CDATA section
	EventProcInst
	EventDirective
)

// Event is one parsed unit of the document. Name and Attrs are only set
// for EventStartElement/EventEndElement; Data holds the raw text for
// EventText/EventCharData/EventProcInst/EventDirective.
type Event struct {
	Kind  EventKind
	Name  Name
	Attrs []Attr
	Data  Span

	// SelfClosing is set on an EventStartElement produced by a "<x/>"
	// tag. The decoder still synthesizes a matching EventEndElement on
	// the following call to Next, the same way gosaxml does, so callers
	// that only track depth via Start/End pairs don't need to special
	// case it.
	SelfClosing bool
}
