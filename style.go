package svgtypes

// StyleTokenKind identifies which of the three forms a StyleToken is.
type StyleTokenKind int

const (
	StyleDeclaration StyleTokenKind = iota
	StylePrefixedDeclaration
	StyleEntityRef
)

// StyleToken is one item from a `style` attribute's declaration list.
// Only the fields relevant to Kind are populated.
type StyleToken struct {
	Kind   StyleTokenKind
	Attr   AttributeID // StyleDeclaration
	Prefix Span        // StylePrefixedDeclaration
	Local  Span        // StylePrefixedDeclaration
	Value  Span        // StyleDeclaration, StylePrefixedDeclaration
	Name   Span        // StyleEntityRef
}

// StyleTokenizer is a pull parser over a `style` attribute's Span.
type StyleTokenizer struct {
	stream *Stream
	logger Logger
	done   bool
}

// NewStyleTokenizer constructs a tokenizer over span.
func NewStyleTokenizer(span Span, logger Logger) *StyleTokenizer {
	if logger == nil {
		logger = defaultLogger
	}
	return &StyleTokenizer{stream: NewStream(span), logger: logger}
}

// Next extracts the next style token. ok is false once the data is
// exhausted or malformed.
func (t *StyleTokenizer) Next() (StyleToken, bool) {
	if t.done {
		return StyleToken{}, false
	}

	s := t.stream
	for {
		s.SkipSpaces()
		for !s.AtEnd() && s.curByteRaw() == ';' {
			s.AdvanceRaw(1)
			s.SkipSpaces()
		}
		if s.AtEnd() {
			return StyleToken{}, false
		}
		if s.StartsWith("/*") {
			if err := skipStyleComment(s); err != nil {
				warnf(t.logger, "invalid style at %s: %v", s.GenTextPos(), err)
				t.done = true
				s.JumpToEnd()
				return StyleToken{}, false
			}
			continue
		}
		break
	}

	c := s.curByteRaw()
	var tok StyleToken
	var err error
	switch {
	case c == '&':
		tok, err = parseStyleEntityRef(s)
	case isIdentByte(c):
		tok, err = parseStyleDeclaration(s)
	default:
		err = &Error{Kind: InvalidValue, Pos: s.GenTextPos(), Detail: "unexpected byte in style data"}
	}

	if err != nil {
		warnf(t.logger, "invalid style at %s: %v", s.GenTextPos(), err)
		t.done = true
		s.JumpToEnd()
		return StyleToken{}, false
	}
	return tok, true
}

func skipStyleComment(s *Stream) error {
	s.AdvanceRaw(2) // skip "/*"
	for !s.AtEnd() {
		if s.curByteRaw() == '*' {
			if next, ok := s.byteAt(1); ok && next == '/' {
				s.AdvanceRaw(2)
				s.SkipSpaces()
				return nil
			}
		}
		s.AdvanceRaw(1)
	}
	return &Error{Kind: InvalidValue, Pos: s.GenTextPos(), Detail: "unterminated comment"}
}

func parseStyleEntityRef(s *Stream) (StyleToken, error) {
	s.AdvanceRaw(1) // '&'
	start := s.Pos
	for !s.AtEnd() && s.curByteRaw() != ';' {
		s.AdvanceRaw(1)
	}
	if s.Pos == start {
		return StyleToken{}, &Error{Kind: InvalidValue, Pos: s.GenTextPos(), Detail: "empty entity reference"}
	}
	name := s.Span.sub(start, s.Pos)
	if err := s.ConsumeByte(';'); err != nil {
		return StyleToken{}, err
	}
	return StyleToken{Kind: StyleEntityRef, Name: name}, nil
}

// parseStyleDeclaration implements spec.md section 4.4's property grammar:
// `name:value` or, when a second ident and colon follow, the namespaced
// `prefix:name:value` form.
func parseStyleDeclaration(s *Stream) (StyleToken, error) {
	ident1, err := s.ConsumeIdent()
	if err != nil {
		return StyleToken{}, err
	}

	s.SkipSpaces()
	if err := s.ConsumeByte(':'); err != nil {
		return StyleToken{}, err
	}
	s.SkipSpaces()

	afterColon := s.Pos
	if ident2, err2 := s.ConsumeIdent(); err2 == nil {
		s.SkipSpaces()
		if !s.AtEnd() && s.curByteRaw() == ':' {
			s.AdvanceRaw(1)
			s.SkipSpaces()
			value, err := scanStyleValue(s)
			if err != nil {
				return StyleToken{}, err
			}
			return StyleToken{Kind: StylePrefixedDeclaration, Prefix: ident1, Local: ident2, Value: value}, nil
		}
	}
	s.Pos = afterColon

	value, err := scanStyleValue(s)
	if err != nil {
		return StyleToken{}, err
	}
	attrID, _ := LookupAttribute(ident1.Str())
	return StyleToken{Kind: StyleDeclaration, Attr: attrID, Value: value}, nil
}

// scanStyleValue consumes bytes up to the next unquoted ';', a comment, or
// the end of the span, then trims surrounding whitespace. A quoted run
// (single or double quotes) is copied verbatim so an embedded ';' doesn't
// terminate the declaration early; likewise the ';' closing an entity
// reference such as '&apos;' stays inside the value, which is left for the
// caller to interpret, per spec.md section 4.4. A
// "/* ... */" comment trailing the value, before its terminating ';', is
// skipped the same way skipStyleComment skips one between declarations.
func scanStyleValue(s *Stream) (Span, error) {
	start := s.Pos
	for !s.AtEnd() {
		c := s.curByteRaw()
		if c == '"' || c == '\'' {
			quote := c
			s.AdvanceRaw(1)
			for !s.AtEnd() && s.curByteRaw() != quote {
				s.AdvanceRaw(1)
			}
			if !s.AtEnd() {
				s.AdvanceRaw(1)
			}
			continue
		}
		if c == '&' {
			s.AdvanceRaw(1)
			nameStart := s.Pos
			for !s.AtEnd() && isIdentByte(s.curByteRaw()) {
				s.AdvanceRaw(1)
			}
			if s.Pos > nameStart && !s.AtEnd() && s.curByteRaw() == ';' {
				s.AdvanceRaw(1)
			}
			continue
		}
		if c == ';' || s.StartsWith("/*") {
			break
		}
		s.AdvanceRaw(1)
	}
	value := s.Span.sub(start, s.Pos).trimSpace()

	for {
		s.SkipSpaces()
		if !s.StartsWith("/*") {
			break
		}
		if err := skipStyleComment(s); err != nil {
			return value, err
		}
	}
	return value, nil
}
