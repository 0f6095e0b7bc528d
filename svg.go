package svgtypes

import (
	"github.com/go-svgtypes/svgtypes/xmlevents"
)

// SvgEventKind identifies the shape of an SvgEvent.
type SvgEventKind int

const (
	SvgEventStartElement SvgEventKind = iota
	SvgEventEndElement
	SvgEventText
)

// SvgAttribute is one resolved attribute of a start element: its
// recognized id plus a fully dispatched AttributeValue (Recognized true).
// For an attribute this package doesn't model (a foreign namespace or an
// unknown name) ID is AttributeUnknown and Value holds the raw value Span
// as an AVString. For a recognized attribute whose value failed to parse,
// Err holds the reason and Value is the zero AttributeValue.
type SvgAttribute struct {
	Name       Span // the raw, possibly-prefixed attribute name as written
	ID         AttributeID
	Recognized bool
	Value      AttributeValue
	Err        error
}

// SvgEvent is one event of the SVG-aware event stream: an element's
// ElementID is resolved from ids.go and, for StartElement, every
// attribute that ids.go recognizes has already been run through
// DispatchAttribute.
type SvgEvent struct {
	Kind        SvgEventKind
	ElementName Span
	Element     ElementID
	Attrs       []SvgAttribute
	Text        Span
}

// EventStream parses an SVG document's XML shell with xmlevents and
// resolves every element and attribute name it encounters against ids.go,
// dispatching attribute values through DispatchAttribute. It does not
// validate document structure (mismatched tags, required attributes):
// that's left to the caller, the same way the underlying value grammars
// leave semantic validation (e.g. a negative radius) out of scope.
type EventStream struct {
	dec    *xmlevents.Decoder
	logger Logger
}

// NewEventStream returns an EventStream reading input. The zero Logger
// discards warnings from the attribute-value tokenizers it drives.
func NewEventStream(input string) *EventStream {
	return &EventStream{dec: xmlevents.NewDecoder(input), logger: defaultLogger}
}

// SetLogger installs the Logger that recoverable tokenizer warnings are
// sent to for every attribute value dispatched from here on.
func (es *EventStream) SetLogger(logger Logger) {
	if logger == nil {
		logger = defaultLogger
	}
	es.logger = logger
}

// Next returns the next SvgEvent, or io.EOF once the document is
// exhausted. Comments, processing instructions, and DOCTYPE-style
// directives are consumed internally and never surfaced: spec.md's
// external interface only names elements, attributes, and text.
func (es *EventStream) Next() (SvgEvent, error) {
	for {
		ev, err := es.dec.Next()
		if err != nil {
			return SvgEvent{}, err
		}
		switch ev.Kind {
		case xmlevents.EventStartElement:
			return es.toStartEvent(ev), nil
		case xmlevents.EventEndElement:
			return SvgEvent{
				Kind:        SvgEventEndElement,
				ElementName: toSpan(ev.Name.Local),
				Element:     lookupElementName(ev.Name),
			}, nil
		case xmlevents.EventText, xmlevents.EventCharData:
			if ev.Data.Start == ev.Data.End {
				continue
			}
			return SvgEvent{Kind: SvgEventText, Text: toSpan(ev.Data)}, nil
		case xmlevents.EventProcInst, xmlevents.EventDirective:
			continue
		default:
			continue
		}
	}
}

func (es *EventStream) toStartEvent(ev xmlevents.Event) SvgEvent {
	out := SvgEvent{
		Kind:        SvgEventStartElement,
		ElementName: toSpan(ev.Name.Local),
		Element:     lookupElementName(ev.Name),
		Attrs:       make([]SvgAttribute, len(ev.Attrs)),
	}
	for i, a := range ev.Attrs {
		out.Attrs[i] = es.dispatchOne(out.Element, a)
	}
	return out
}

func (es *EventStream) dispatchOne(eid ElementID, a xmlevents.Attr) SvgAttribute {
	name := attrFullName(a.Name)
	aid, ok := LookupAttribute(name)
	valSpan := toSpan(a.Value)
	if !ok {
		return SvgAttribute{Name: toSpan(xmlevents.Span{Parent: a.Name.Local.Parent, Start: nameStart(a.Name), End: nameEnd(a.Name)}), ID: AttributeUnknown, Value: AttributeValue{Kind: AVString, String: valSpan}}
	}
	v, err := DispatchAttribute(eid, aid, valSpan, es.logger)
	return SvgAttribute{
		Name:       toSpan(xmlevents.Span{Parent: a.Name.Local.Parent, Start: nameStart(a.Name), End: nameEnd(a.Name)}),
		ID:         aid,
		Recognized: err == nil,
		Value:      v,
		Err:        err,
	}
}

func nameStart(n xmlevents.Name) int {
	if n.HasPrefix() {
		return n.Prefix.Start
	}
	return n.Local.Start
}

func nameEnd(n xmlevents.Name) int {
	return n.Local.End
}

// attrFullName reconstructs the "prefix:local" form ids.go's table keys
// on, since xmlevents keeps prefix and local as separate Spans rather
// than re-joining them into one allocated string on every attribute.
func attrFullName(n xmlevents.Name) string {
	if !n.HasPrefix() {
		return n.Local.Str()
	}
	return n.Prefix.Str() + ":" + n.Local.Str()
}

func lookupElementName(n xmlevents.Name) ElementID {
	id, _ := LookupElement(n.Local.Str())
	return id
}

func toSpan(s xmlevents.Span) Span {
	return Span{Parent: s.Parent, Start: s.Start, End: s.End}
}
