package svgtypes

// ParseIRI parses an `<IRI>` attribute value (xlink:href and similar): a
// leading '#' introduces an internal link whose target Span is returned;
// anything else is returned verbatim as a plain string attribute, since an
// empty or non-local href is still a valid attribute value.
func ParseIRI(span Span) (link Span, isLocal bool) {
	s := NewStream(span)
	if s.AtEnd() {
		return span, false
	}
	if c, _ := s.CurrByte(); c == '#' {
		s.AdvanceRaw(1)
		rest := span.sub(s.Pos, span.Len())
		return rest, true
	}
	return span, false
}

// ParseFuncIRI parses a `<FuncIRI>` value: `url(#id)`. Returns the Span
// covering `id`.
func ParseFuncIRI(span Span) (Span, error) {
	s := NewStream(span)
	if err := consumeFuncIRIPrefix(s); err != nil {
		return Span{}, err
	}
	start := s.Pos
	for !s.AtEnd() && s.curByteRaw() != ')' {
		s.AdvanceRaw(1)
	}
	link := s.Span.sub(start, s.Pos)
	if err := s.ConsumeByte(')'); err != nil {
		return Span{}, err
	}
	return link, nil
}

func consumeFuncIRIPrefix(s *Stream) error {
	if !s.StartsWith("url(#") {
		return &Error{Kind: InvalidValue, Pos: s.GenTextPos(), Detail: "not a FuncIRI"}
	}
	s.AdvanceRaw(5)
	return nil
}
