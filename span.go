package svgtypes

// Span is a borrowed view over a region of a parent string. It never owns
// the bytes it describes: Parent is whatever string the caller handed to
// the top-level parser, and Start/End are byte offsets into it.
//
// Every value produced by this package that looks like a string is a Span,
// not a copy. Keeping the parent alive is the caller's responsibility, the
// same way a Go slice keeps its backing array alive.
type Span struct {
	Parent string
	Start  int
	End    int
}

// Str returns the substring this Span describes.
func (s Span) Str() string {
	return s.Parent[s.Start:s.End]
}

// Len returns the length of the span in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty reports whether the span covers zero bytes.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// sub returns the sub-span [start, end) of s, where start/end are relative
// to s.Start.
func (s Span) sub(start, end int) Span {
	return Span{Parent: s.Parent, Start: s.Start + start, End: s.Start + end}
}

// trimSpace returns the Span with leading and trailing ASCII whitespace
// removed, mirroring the trimming the dispatcher applies before it looks at
// an attribute value (see AttributeValue dispatch in attribute.go).
func (s Span) trimSpace() Span {
	start, end := s.Start, s.End
	for start < end && isSpace(s.Parent[start]) {
		start++
	}
	for end > start && isSpace(s.Parent[end-1]) {
		end--
	}
	return Span{Parent: s.Parent, Start: start, End: end}
}
