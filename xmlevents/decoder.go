package xmlevents

import (
	"errors"
	"io"
	"strings"
)

// Decoder pulls Events out of a document string held entirely in memory.
// Its state machine mirrors gosaxml's decoder (NextToken's switch on '>',
// '/', "<?", "<!--", "<![", "</", and the default start-element path) but
// drops everything that machine needed only to manage a bounded ring
// buffer: there is no read/unread, no discard, no growable byte buffer,
// because every Span below already points straight into the caller's
// string.
type Decoder struct {
	input string
	pos   int

	stack    []Name
	preserve []bool

	pending *Event
}

// NewDecoder returns a Decoder reading from input.
func NewDecoder(input string) *Decoder {
	return &Decoder{input: input, preserve: []bool{false}}
}

var errMalformed = errors.New("xmlevents: malformed document")

// Next returns the next Event, or io.EOF once the document is exhausted.
func (d *Decoder) Next() (Event, error) {
	if d.pending != nil {
		ev := *d.pending
		d.pending = nil
		return ev, nil
	}

	for {
		if d.pos >= len(d.input) {
			return Event{}, io.EOF
		}
		if d.input[d.pos] != '<' {
			return d.decodeText(), nil
		}

		switch {
		case d.startsWith("<?"):
			ev, err := d.decodeProcInst()
			if err != nil {
				return Event{}, err
			}
			return ev, nil
		case d.startsWith("<!--"):
			if err := d.skipComment(); err != nil {
				return Event{}, err
			}
			continue
		case d.startsWith("<![CDATA["):
			ev, err := d.decodeCharData()
			if err != nil {
				return Event{}, err
			}
			return ev, nil
		case d.startsWith("<!"):
			if err := d.skipDirective(); err != nil {
				return Event{}, err
			}
			continue
		case d.startsWith("</"):
			return d.decodeEndElement()
		default:
			return d.decodeStartElement()
		}
	}
}

// PreserveWhitespace reports whether the innermost open element has
// xml:space="preserve" in effect, inherited from its ancestors the same
// way gosaxml's preserveWhitespaces stack works.
func (d *Decoder) PreserveWhitespace() bool {
	return d.preserve[len(d.preserve)-1]
}

func (d *Decoder) startsWith(s string) bool {
	end := d.pos + len(s)
	return end <= len(d.input) && d.input[d.pos:end] == s
}

func (d *Decoder) decodeText() Event {
	start := d.pos
	if hasWideTextScan {
		d.pos = scanTextWide(d.input, d.pos)
	} else {
		for d.pos < len(d.input) && d.input[d.pos] != '<' {
			d.pos++
		}
	}
	return Event{Kind: EventText, Data: d.span(start, d.pos)}
}

func (d *Decoder) span(start, end int) Span {
	return Span{Parent: d.input, Start: start, End: end}
}

func (d *Decoder) skipComment() error {
	d.pos += len("<!--")
	idx := indexFrom(d.input, d.pos, "-->")
	if idx < 0 {
		return errMalformed
	}
	d.pos = idx + len("-->")
	return nil
}

func (d *Decoder) skipDirective() error {
	d.pos += len("<!")
	depth := 1
	for d.pos < len(d.input) && depth > 0 {
		switch d.input[d.pos] {
		case '<':
			depth++
		case '>':
			depth--
		}
		d.pos++
	}
	if depth != 0 {
		return errMalformed
	}
	return nil
}

func (d *Decoder) decodeCharData() (Event, error) {
	d.pos += len("<![CDATA[")
	idx := indexFrom(d.input, d.pos, "]]>")
	if idx < 0 {
		return Event{}, errMalformed
	}
	data := d.span(d.pos, idx)
	d.pos = idx + len("]]>")
	return Event{Kind: EventCharData, Data: data}, nil
}

func (d *Decoder) decodeProcInst() (Event, error) {
	d.pos += len("<?")
	start := d.pos
	idx := indexFrom(d.input, d.pos, "?>")
	if idx < 0 {
		return Event{}, errMalformed
	}
	d.pos = idx + len("?>")
	return Event{Kind: EventProcInst, Data: d.span(start, idx)}, nil
}

func (d *Decoder) decodeEndElement() (Event, error) {
	d.pos += len("</")
	name, err := d.readName()
	if err != nil {
		return Event{}, err
	}
	d.skipSpaces()
	if d.pos >= len(d.input) || d.input[d.pos] != '>' {
		return Event{}, errMalformed
	}
	d.pos++

	if len(d.stack) > 0 {
		d.stack = d.stack[:len(d.stack)-1]
	}
	if len(d.preserve) > 1 {
		d.preserve = d.preserve[:len(d.preserve)-1]
	}
	return Event{Kind: EventEndElement, Name: name}, nil
}

func (d *Decoder) decodeStartElement() (Event, error) {
	d.pos++ // '<'
	name, err := d.readName()
	if err != nil {
		return Event{}, err
	}

	var attrs []Attr
	preserve := d.PreserveWhitespace()
	for {
		d.skipSpaces()
		if d.pos >= len(d.input) {
			return Event{}, errMalformed
		}
		switch d.input[d.pos] {
		case '>':
			d.pos++
			d.stack = append(d.stack, name)
			d.preserve = append(d.preserve, preserve)
			return Event{Kind: EventStartElement, Name: name, Attrs: attrs}, nil
		case '/':
			d.pos++
			if d.pos >= len(d.input) || d.input[d.pos] != '>' {
				return Event{}, errMalformed
			}
			d.pos++
			end := Event{Kind: EventEndElement, Name: name}
			d.pending = &end
			return Event{Kind: EventStartElement, Name: name, Attrs: attrs, SelfClosing: true}, nil
		default:
			attr, err := d.decodeAttribute()
			if err != nil {
				return Event{}, err
			}
			if isXMLSpace(attr.Name) {
				preserve = attr.Value.Str() == "preserve"
			}
			attrs = append(attrs, attr)
		}
	}
}

func isXMLSpace(n Name) bool {
	return n.HasPrefix() && n.Prefix.Str() == "xml" && n.Local.Str() == "space"
}

func (d *Decoder) decodeAttribute() (Attr, error) {
	name, err := d.readName()
	if err != nil {
		return Attr{}, err
	}
	d.skipSpaces()
	if d.pos >= len(d.input) || d.input[d.pos] != '=' {
		return Attr{}, errMalformed
	}
	d.pos++
	d.skipSpaces()
	value, single, err := d.readQuoted()
	if err != nil {
		return Attr{}, err
	}
	return Attr{Name: name, Value: value, SingleQuote: single}, nil
}

func (d *Decoder) readQuoted() (Span, bool, error) {
	if d.pos >= len(d.input) {
		return Span{}, false, errMalformed
	}
	quote := d.input[d.pos]
	if quote != '"' && quote != '\'' {
		return Span{}, false, errMalformed
	}
	d.pos++
	start := d.pos
	for d.pos < len(d.input) && d.input[d.pos] != quote {
		d.pos++
	}
	if d.pos >= len(d.input) {
		return Span{}, false, errMalformed
	}
	value := d.span(start, d.pos)
	d.pos++ // closing quote
	return value, quote == '\'', nil
}

// readName reads a (possibly prefixed) XML name starting at d.pos.
func (d *Decoder) readName() (Name, error) {
	start := d.pos
	for d.pos < len(d.input) && isNameByte(d.input[d.pos]) {
		d.pos++
	}
	if d.pos == start {
		return Name{}, errMalformed
	}
	colon := indexByteFrom(d.input, start, d.pos, ':')
	if colon < 0 {
		return Name{Local: d.span(start, d.pos)}, nil
	}
	return Name{
		Prefix: d.span(start, colon),
		Local:  d.span(colon+1, d.pos),
	}, nil
}

func (d *Decoder) skipSpaces() {
	for d.pos < len(d.input) && isXMLWhitespace(d.input[d.pos]) {
		d.pos++
	}
}

func isXMLWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func isNameByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	case b == '-' || b == '_' || b == '.' || b == ':':
		return true
	default:
		return false
	}
}

func indexFrom(s string, from int, sub string) int {
	idx := strings.Index(s[from:], sub)
	if idx < 0 {
		return -1
	}
	return from + idx
}

func indexByteFrom(s string, from, to int, b byte) int {
	idx := strings.IndexByte(s[from:to], b)
	if idx < 0 {
		return -1
	}
	return from + idx
}
