package svgtypes

// Align is the `<align>` value of a `preserveAspectRatio` attribute.
type Align int

const (
	AlignNone Align = iota
	AlignXMinYMin
	AlignXMidYMin
	AlignXMaxYMin
	AlignXMinYMid
	AlignXMidYMid
	AlignXMaxYMid
	AlignXMinYMax
	AlignXMidYMax
	AlignXMaxYMax
)

var alignNames = map[string]Align{
	"none":     AlignNone,
	"xMinYMin": AlignXMinYMin,
	"xMidYMin": AlignXMidYMin,
	"xMaxYMin": AlignXMaxYMin,
	"xMinYMid": AlignXMinYMid,
	"xMidYMid": AlignXMidYMid,
	"xMaxYMid": AlignXMaxYMid,
	"xMinYMax": AlignXMinYMax,
	"xMidYMax": AlignXMidYMax,
	"xMaxYMax": AlignXMaxYMax,
}

// AspectRatio is the parsed form of a `preserveAspectRatio` attribute.
type AspectRatio struct {
	Defer bool
	Align Align
	Slice bool // false means "meet", the default
}

// ParseAspectRatio parses a `preserveAspectRatio` value: an optional
// `defer` keyword, a required align keyword, and an optional trailing
// `meet`/`slice` (defaulting to meet) when align isn't `none`.
func ParseAspectRatio(span Span) (AspectRatio, error) {
	s := NewStream(span)
	start := s.Pos
	s.SkipSpaces()

	var ar AspectRatio
	if s.StartsWith("defer") {
		ar.Defer = true
		s.AdvanceRaw(5)
		if err := s.ConsumeByte(' '); err != nil {
			return AspectRatio{}, err
		}
		s.SkipSpaces()
	}

	nameSpan, err := s.ConsumeIdent()
	if err != nil {
		return AspectRatio{}, &Error{Kind: InvalidValue, Pos: s.TextPosAt(start), Detail: "expected an align keyword"}
	}
	align, ok := alignNames[nameSpan.Str()]
	if !ok {
		return AspectRatio{}, &Error{Kind: InvalidValue, Pos: s.TextPosAt(start), Detail: "unknown align keyword"}
	}
	ar.Align = align

	s.SkipSpaces()
	if !s.AtEnd() {
		meetSlice, err := s.ConsumeIdent()
		if err != nil {
			return AspectRatio{}, &Error{Kind: InvalidValue, Pos: s.TextPosAt(start), Detail: "expected meet or slice"}
		}
		switch meetSlice.Str() {
		case "meet":
			ar.Slice = false
		case "slice":
			ar.Slice = true
		default:
			return AspectRatio{}, &Error{Kind: InvalidValue, Pos: s.TextPosAt(start), Detail: "expected meet or slice"}
		}
	}

	return ar, nil
}
