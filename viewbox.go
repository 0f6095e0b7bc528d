package svgtypes

// ViewBox is the parsed form of a `viewBox` attribute.
type ViewBox struct {
	X float64
	Y float64
	W float64
	H float64
}

// ParseViewBox parses the four list-separated numbers of a `viewBox`
// attribute. Width and height must both be positive; per spec.md section
// 4.8 a non-positive dimension is an error rather than a silently
// degenerate box.
func ParseViewBox(span Span) (ViewBox, error) {
	s := NewStream(span)
	s.SkipSpaces()

	x, err := s.ParseListNumber()
	if err != nil {
		return ViewBox{}, err
	}
	y, err := s.ParseListNumber()
	if err != nil {
		return ViewBox{}, err
	}
	w, err := s.ParseListNumber()
	if err != nil {
		return ViewBox{}, err
	}
	h, err := s.ParseListNumber()
	if err != nil {
		return ViewBox{}, err
	}

	if w <= 0 {
		return ViewBox{}, &Error{Kind: InvalidValue, Pos: s.TextPosAt(0), Detail: "viewBox width must be positive"}
	}
	if h <= 0 {
		return ViewBox{}, &Error{Kind: InvalidValue, Pos: s.TextPosAt(0), Detail: "viewBox height must be positive"}
	}

	return ViewBox{X: x, Y: y, W: w, H: h}, nil
}
