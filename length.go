package svgtypes

// LengthUnit is the closed set of units a <length> value may carry.
type LengthUnit int

const (
	LengthNone LengthUnit = iota
	LengthEm
	LengthEx
	LengthPx
	LengthIn
	LengthCm
	LengthMm
	LengthPt
	LengthPc
	LengthPercent
)

func (u LengthUnit) String() string {
	switch u {
	case LengthEm:
		return "em"
	case LengthEx:
		return "ex"
	case LengthPx:
		return "px"
	case LengthIn:
		return "in"
	case LengthCm:
		return "cm"
	case LengthMm:
		return "mm"
	case LengthPt:
		return "pt"
	case LengthPc:
		return "pc"
	case LengthPercent:
		return "%"
	default:
		return ""
	}
}

// Length is a numeric value tagged with a unit. Unit == LengthNone means
// the value is unitless.
type Length struct {
	Num  float64
	Unit LengthUnit
}

// NumberList is a lazy sequence over a list of <number> values, advancing
// only when Next is pulled.
type NumberList struct {
	stream *Stream
}

// NewNumberList constructs a NumberList tokenizer over span.
func NewNumberList(span Span) *NumberList {
	return &NumberList{stream: NewStream(span)}
}

// Next returns the next number, or ok == false once the span is exhausted
// or a malformed number is found (the remaining span is then skipped, so
// a second Next call also returns false).
func (l *NumberList) Next() (float64, bool) {
	if l.stream.AtEnd() {
		return 0, false
	}
	n, err := l.stream.ParseListNumber()
	if err != nil {
		l.stream.JumpToEnd()
		return 0, false
	}
	return n, true
}

// LengthList is a lazy sequence over a list of <length> values.
type LengthList struct {
	stream *Stream
}

// NewLengthList constructs a LengthList tokenizer over span.
func NewLengthList(span Span) *LengthList {
	return &LengthList{stream: NewStream(span)}
}

// Next returns the next length, or ok == false once the span is exhausted
// or a malformed length is found.
func (l *LengthList) Next() (Length, bool) {
	if l.stream.AtEnd() {
		return Length{}, false
	}
	v, err := l.stream.ParseListLength()
	if err != nil {
		l.stream.JumpToEnd()
		return Length{}, false
	}
	return v, true
}
