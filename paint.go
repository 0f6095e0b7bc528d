package svgtypes

// PaintKind identifies which alternative of the `<paint>` grammar a Paint
// value holds.
type PaintKind int

const (
	PaintNone PaintKind = iota
	PaintInherit
	PaintCurrentColor
	PaintColor
	PaintIRI
	PaintIRIWithFallback
)

// PaintFallbackKind identifies the fallback alternative that follows a
// FuncIRI in `fill`/`stroke` when the referenced paint server can't be
// resolved.
type PaintFallbackKind int

const (
	FallbackNone PaintFallbackKind = iota
	FallbackCurrentColor
	FallbackColor
)

// Paint is the parsed form of a `<paint>` value. DispatchAttribute uses it
// for fill and stroke only; color, stop-color, flood-color and
// lighting-color are dispatched as a plain Color (AVColor), not a Paint.
type Paint struct {
	Kind          PaintKind
	Color         Color
	IRI           Span
	FallbackKind  PaintFallbackKind
	FallbackColor Color
}

// ParsePaint implements spec.md section 4.9's attempt order: the three
// bare keywords, then a FuncIRI with an optional fallback, then a plain
// Color.
func ParsePaint(span Span) (Paint, error) {
	s := NewStream(span)
	s.SkipSpaces()

	switch {
	case s.StartsWith("none") && isPaintKeywordEnd(s, 4):
		return Paint{Kind: PaintNone}, nil
	case s.StartsWith("inherit") && isPaintKeywordEnd(s, 7):
		return Paint{Kind: PaintInherit}, nil
	case s.StartsWith("currentColor") && isPaintKeywordEnd(s, 12):
		return Paint{Kind: PaintCurrentColor}, nil
	case s.StartsWith("url(#"):
		return parsePaintFuncIRI(s)
	default:
		c, err := ParseColor(span.trimSpace())
		if err != nil {
			return Paint{}, err
		}
		return Paint{Kind: PaintColor, Color: c}, nil
	}
}

func isPaintKeywordEnd(s *Stream, n int) bool {
	b, ok := s.byteAt(n)
	return !ok || !isIdentByte(b)
}

func parsePaintFuncIRI(s *Stream) (Paint, error) {
	s.AdvanceRaw(5) // "url(#"
	start := s.Pos
	for !s.AtEnd() && s.curByteRaw() != ')' {
		s.AdvanceRaw(1)
	}
	link := s.Span.sub(start, s.Pos)
	if err := s.ConsumeByte(')'); err != nil {
		return Paint{}, err
	}
	s.SkipSpaces()

	if s.AtEnd() {
		return Paint{Kind: PaintIRI, IRI: link}, nil
	}

	tail := s.Span.sub(s.Pos, s.Span.Len()).trimSpace()
	switch tail.Str() {
	case "none":
		return Paint{Kind: PaintIRIWithFallback, IRI: link, FallbackKind: FallbackNone}, nil
	case "currentColor":
		return Paint{Kind: PaintIRIWithFallback, IRI: link, FallbackKind: FallbackCurrentColor}, nil
	default:
		c, err := ParseColor(tail)
		if err != nil {
			return Paint{}, err
		}
		return Paint{Kind: PaintIRIWithFallback, IRI: link, FallbackKind: FallbackColor, FallbackColor: c}, nil
	}
}
