package svgtypes

// Point is one X/Y coordinate pair from a `points` attribute (polyline,
// polygon).
type Point struct {
	X float64
	Y float64
}

// PointsTokenizer is a pull parser over a `points` attribute's Span.
type PointsTokenizer struct {
	stream *Stream
	logger Logger
	done   bool
}

// NewPointsTokenizer constructs a tokenizer over span.
func NewPointsTokenizer(span Span, logger Logger) *PointsTokenizer {
	if logger == nil {
		logger = defaultLogger
	}
	return &PointsTokenizer{stream: NewStream(span), logger: logger}
}

// Next extracts the next point. ok is false once the data is exhausted or
// an odd trailing coordinate is found (per spec.md section 4.5, a lone X
// with no matching Y is an error, and the stream ends there).
func (t *PointsTokenizer) Next() (Point, bool) {
	if t.done {
		return Point{}, false
	}

	s := t.stream
	s.SkipSpaces()
	if s.AtEnd() {
		return Point{}, false
	}

	x, err := s.ParseListNumber()
	if err == nil {
		s.SkipSpaces()
	}
	var y float64
	if err == nil {
		y, err = s.ParseListNumber()
	}
	if err != nil {
		warnf(t.logger, "invalid points list at %s: %v", s.GenTextPos(), err)
		t.done = true
		s.JumpToEnd()
		return Point{}, false
	}

	return Point{X: x, Y: y}, true
}
