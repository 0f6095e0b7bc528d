package svgtypes

// TransformKind identifies which of the six SVG transform primitives a
// TransformToken carries.
type TransformKind int

const (
	TransformMatrix TransformKind = iota
	TransformTranslate
	TransformScale
	TransformRotate
	TransformSkewX
	TransformSkewY
)

func (k TransformKind) String() string {
	switch k {
	case TransformMatrix:
		return "matrix"
	case TransformTranslate:
		return "translate"
	case TransformScale:
		return "scale"
	case TransformRotate:
		return "rotate"
	case TransformSkewX:
		return "skewX"
	case TransformSkewY:
		return "skewY"
	default:
		return ""
	}
}

// TransformToken is one transform-list primitive. Args holds between 1
// and 6 values depending on Kind; N is how many of Args are populated.
//
// rotate stays a single token here even when it carries a center point
// (N == 3: angle, cx, cy), per spec.md's explicit redesign away from the
// three-token translate/rotate/translate expansion the original crate
// produced (see DESIGN.md).
type TransformToken struct {
	Kind TransformKind
	Args [6]float64
	N    int
}

// TransformTokenizer is a pull parser over a transform-list attribute's
// Span (transform, gradientTransform, patternTransform).
type TransformTokenizer struct {
	stream *Stream
	logger Logger
	done   bool
}

// NewTransformTokenizer constructs a tokenizer over span.
func NewTransformTokenizer(span Span, logger Logger) *TransformTokenizer {
	if logger == nil {
		logger = defaultLogger
	}
	return &TransformTokenizer{stream: NewStream(span), logger: logger}
}

// Next extracts the next transform primitive. ok is false once the data
// is exhausted or malformed.
func (t *TransformTokenizer) Next() (TransformToken, bool) {
	if t.done {
		return TransformToken{}, false
	}

	s := t.stream
	s.SkipSpaces()
	if s.AtEnd() {
		return TransformToken{}, false
	}

	tok, err := t.parseOne()
	if err != nil {
		warnf(t.logger, "invalid transform at %s: %v", s.GenTextPos(), err)
		t.done = true
		s.JumpToEnd()
		return TransformToken{}, false
	}
	return tok, true
}

func (t *TransformTokenizer) parseOne() (TransformToken, error) {
	s := t.stream

	nameSpan, err := s.ConsumeIdent()
	if err != nil {
		return TransformToken{}, err
	}
	name := nameSpan.Str()

	s.SkipSpaces()
	if err := s.ConsumeByte('('); err != nil {
		return TransformToken{}, err
	}

	var tok TransformToken
	switch name {
	case "matrix":
		tok.Kind = TransformMatrix
		tok.N = 6
		for i := 0; i < 6; i++ {
			v, err := s.ParseListNumber()
			if err != nil {
				return TransformToken{}, err
			}
			tok.Args[i] = v
		}
	case "translate":
		tok.Kind = TransformTranslate
		x, err := s.ParseListNumber()
		if err != nil {
			return TransformToken{}, err
		}
		s.SkipSpaces()
		y := 0.0
		if !s.StartsWith(")") {
			y, err = s.ParseListNumber()
			if err != nil {
				return TransformToken{}, err
			}
		}
		tok.Args[0], tok.Args[1], tok.N = x, y, 2
	case "scale":
		tok.Kind = TransformScale
		x, err := s.ParseListNumber()
		if err != nil {
			return TransformToken{}, err
		}
		s.SkipSpaces()
		y := x
		if !s.StartsWith(")") {
			y, err = s.ParseListNumber()
			if err != nil {
				return TransformToken{}, err
			}
		}
		tok.Args[0], tok.Args[1], tok.N = x, y, 2
	case "rotate":
		tok.Kind = TransformRotate
		angle, err := s.ParseListNumber()
		if err != nil {
			return TransformToken{}, err
		}
		s.SkipSpaces()
		if s.StartsWith(")") {
			tok.Args[0], tok.N = angle, 1
		} else {
			cx, err := s.ParseListNumber()
			if err != nil {
				return TransformToken{}, err
			}
			cy, err := s.ParseListNumber()
			if err != nil {
				return TransformToken{}, err
			}
			tok.Args[0], tok.Args[1], tok.Args[2], tok.N = angle, cx, cy, 3
		}
	case "skewX":
		tok.Kind = TransformSkewX
		v, err := s.ParseListNumber()
		if err != nil {
			return TransformToken{}, err
		}
		tok.Args[0], tok.N = v, 1
	case "skewY":
		tok.Kind = TransformSkewY
		v, err := s.ParseListNumber()
		if err != nil {
			return TransformToken{}, err
		}
		tok.Args[0], tok.N = v, 1
	default:
		return TransformToken{}, &Error{Kind: InvalidTransform, Pos: s.TextPosAt(nameSpan.Start - s.Span.Start), Detail: "unknown transform keyword " + name}
	}

	s.SkipSpaces()
	if err := s.ConsumeByte(')'); err != nil {
		return TransformToken{}, err
	}
	s.SkipSpaces()
	if !s.AtEnd() && s.curByteRaw() == ',' {
		s.AdvanceRaw(1)
	}

	return tok, nil
}
