package svgtypes

import "strconv"

// Stream is a forward-only cursor over a Span. Pos is relative to
// Span.Start; the absolute byte offset into the original input is
// Span.Start+Pos. Mutating methods take a pointer receiver, matching the
// teacher's (*decoder) convention in decoder.go.
type Stream struct {
	Span Span
	Pos  int
}

// NewStream constructs a Stream positioned at the start of span.
func NewStream(span Span) *Stream {
	return &Stream{Span: span}
}

// NewStreamFromString constructs a Stream over a Span covering the whole
// of text, with text itself as the parent (no enclosing document).
func NewStreamFromString(text string) *Stream {
	return NewStream(Span{Parent: text, Start: 0, End: len(text)})
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n':
		return true
	default:
		return false
	}
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isIdentByte(b byte) bool {
	return b == '-' || b == '_' ||
		(b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z')
}

// AtEnd reports whether the cursor has reached the end of its Span.
func (s *Stream) AtEnd() bool {
	return s.Pos >= s.Span.Len()
}

// Left returns the number of bytes remaining in the span.
func (s *Stream) Left() int {
	return s.Span.Len() - s.Pos
}

func (s *Stream) absPos() int {
	return s.Span.Start + s.Pos
}

// byteAt returns the byte at the given offset relative to the current
// position, and whether that offset is within bounds.
func (s *Stream) byteAt(offset int) (byte, bool) {
	p := s.Pos + offset
	if p < 0 || p >= s.Span.Len() {
		return 0, false
	}
	return s.Span.Parent[s.Span.Start+p], true
}

func (s *Stream) curByteRaw() byte {
	return s.Span.Parent[s.Span.Start+s.Pos]
}

// CurrByte returns the byte at the current position.
func (s *Stream) CurrByte() (byte, error) {
	if s.AtEnd() {
		return 0, s.eosError()
	}
	return s.curByteRaw(), nil
}

// StartsWith reports whether the remaining input starts with text.
func (s *Stream) StartsWith(text string) bool {
	tail := s.Span.Parent[s.absPos():s.Span.End]
	if len(text) > len(tail) {
		return false
	}
	return tail[:len(text)] == text
}

// StartsWithFold is like StartsWith but compares ASCII case-insensitively.
// Used only where spec.md explicitly tolerates it: color names and the
// "rgb(" prefix.
func (s *Stream) StartsWithFold(text string) bool {
	tail := s.Span.Parent[s.absPos():s.Span.End]
	if len(text) > len(tail) {
		return false
	}
	for i := 0; i < len(text); i++ {
		if asciiLower(tail[i]) != asciiLower(text[i]) {
			return false
		}
	}
	return true
}

func asciiLower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b - 'A' + 'a'
	}
	return b
}

// SetPos rewinds or fast-forwards the cursor to a position within the
// Span, relative to Span.Start like Pos itself. Per spec.md section 4.1 this is meant for moving
// backward to a previously-seen position; we don't track high-water marks
// (that would cost a branch on every advance for no observable benefit)
// but any out-of-range position is still rejected.
func (s *Stream) SetPos(pos int) error {
	if pos < 0 || pos > s.Span.Len() {
		return s.advanceError(pos)
	}
	s.Pos = pos
	return nil
}

// Advance moves the cursor forward by n bytes, failing if that would move
// past the end of the span.
func (s *Stream) Advance(n int) error {
	if s.Pos+n > s.Span.Len() {
		return s.advanceError(s.Pos + n)
	}
	s.Pos += n
	return nil
}

// AdvanceRaw moves the cursor forward by n bytes without a bounds check.
// Callers must already know n bytes are available (e.g. because they just
// inspected them via CurrByte/byteAt).
func (s *Stream) AdvanceRaw(n int) {
	s.Pos += n
}

func (s *Stream) advanceError(requested int) error {
	return &Error{Kind: InvalidAdvance, Pos: s.TextPosAt(s.Pos), Detail: detailAdvance(requested, s.Span.Len())}
}

func detailAdvance(requested, remaining int) string {
	return "requested " + strconv.Itoa(requested) + ", remaining " + strconv.Itoa(remaining)
}

func (s *Stream) eosError() error {
	return &Error{Kind: UnexpectedEndOfStream, Pos: s.TextPosAt(s.Pos)}
}

// SkipSpaces advances past ' ', '\t', '\r', '\n'.
func (s *Stream) SkipSpaces() {
	for !s.AtEnd() && isSpace(s.curByteRaw()) {
		s.Pos++
	}
}

// JumpToEnd moves the cursor to the end of the span. Lazy tokenizers call
// this when they abort early on malformed input, so a later call to AtEnd
// reports true and iteration stops cleanly.
func (s *Stream) JumpToEnd() {
	s.Pos = s.Span.Len()
}

// ConsumeByte requires the current byte to equal b and advances past it.
func (s *Stream) ConsumeByte(b byte) error {
	cur, err := s.CurrByte()
	if err != nil {
		return err
	}
	if cur != b {
		return &Error{Kind: InvalidChar, Pos: s.TextPosAt(s.Pos), Expected: b, Found: cur}
	}
	s.Pos++
	return nil
}

// ConsumeEither requires the current byte to be one of set and returns it.
func (s *Stream) ConsumeEither(set string) (byte, error) {
	cur, err := s.CurrByte()
	if err != nil {
		return 0, err
	}
	for i := 0; i < len(set); i++ {
		if cur == set[i] {
			s.Pos++
			return cur, nil
		}
	}
	return 0, &Error{Kind: InvalidChar, Pos: s.TextPosAt(s.Pos), Expected: set[0], Found: cur}
}

// ConsumeIdent consumes a run of ASCII letters/digits/'-'/'_' and returns
// the Span it covers. An empty ident is an error.
func (s *Stream) ConsumeIdent() (Span, error) {
	start := s.Pos
	for !s.AtEnd() && isIdentByte(s.curByteRaw()) {
		s.Pos++
	}
	if s.Pos == start {
		return Span{}, &Error{Kind: InvalidChar, Pos: s.TextPosAt(start)}
	}
	return s.Span.sub(start, s.Pos), nil
}

// ParseListSeparator consumes the shared SVG list separator: any mixture
// of whitespace with at most one comma. A second comma found while still
// inside the separator region is an error (spec.md section 8's "List-
// separator idempotence" property).
func (s *Stream) ParseListSeparator() error {
	s.SkipSpaces()
	if s.AtEnd() || s.curByteRaw() != ',' {
		return nil
	}
	s.Pos++
	s.SkipSpaces()
	if !s.AtEnd() && s.curByteRaw() == ',' {
		return &Error{Kind: InvalidChar, Pos: s.TextPosAt(s.Pos), Expected: ' ', Found: ','}
	}
	return nil
}

// ParseInteger parses the SVG integer grammar: optional sign, one or more
// decimal digits. Overflowing int32 is reported as InvalidNumber.
func (s *Stream) ParseInteger() (int32, error) {
	s.SkipSpaces()
	start := s.Pos
	if !s.AtEnd() && (s.curByteRaw() == '+' || s.curByteRaw() == '-') {
		s.Pos++
	}
	digitsStart := s.Pos
	for !s.AtEnd() && isDigit(s.curByteRaw()) {
		s.Pos++
	}
	if s.Pos == digitsStart {
		s.Pos = start
		return 0, &Error{Kind: InvalidNumber, Pos: s.TextPosAt(start)}
	}
	text := s.Span.Parent[s.Span.Start+start : s.Span.Start+s.Pos]
	v, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		s.Pos = start
		return 0, &Error{Kind: InvalidNumber, Pos: s.TextPosAt(start), Detail: "integer overflow"}
	}
	return int32(v), nil
}

// ParseNumber parses the SVG number grammar: optional sign, an integer
// and/or fractional part with at least one digit total (a bare '.' is an
// error), and an optional exponent. 'e'/'E' is only read as an exponent
// marker when it isn't immediately followed by 'm' or 'x' (so "1em"/"1ex"
// length units aren't swallowed as "1e" + garbage). The final conversion
// is delegated to strconv.ParseFloat: this function's job is only to
// delimit the number's byte span, per spec.md section 4.1.
func (s *Stream) ParseNumber() (float64, error) {
	s.SkipSpaces()
	start := s.Pos

	if s.AtEnd() {
		return 0, &Error{Kind: InvalidNumber, Pos: s.TextPosAt(start)}
	}

	if s.curByteRaw() == '+' || s.curByteRaw() == '-' {
		s.Pos++
	}

	sawDigit := false
	for !s.AtEnd() && isDigit(s.curByteRaw()) {
		s.Pos++
		sawDigit = true
	}

	if !s.AtEnd() && s.curByteRaw() == '.' {
		s.Pos++
		for !s.AtEnd() && isDigit(s.curByteRaw()) {
			s.Pos++
			sawDigit = true
		}
	}

	if !sawDigit {
		s.Pos = start
		return 0, &Error{Kind: InvalidNumber, Pos: s.TextPosAt(start)}
	}

	if !s.AtEnd() {
		c := s.curByteRaw()
		if c == 'e' || c == 'E' {
			next, hasNext := s.byteAt(1)
			if !(hasNext && (next == 'm' || next == 'x')) {
				expStart := s.Pos
				s.Pos++
				if !s.AtEnd() && (s.curByteRaw() == '+' || s.curByteRaw() == '-') {
					s.Pos++
				}
				expDigitsStart := s.Pos
				for !s.AtEnd() && isDigit(s.curByteRaw()) {
					s.Pos++
				}
				if s.Pos == expDigitsStart {
					s.Pos = expStart
					return 0, &Error{Kind: InvalidNumber, Pos: s.TextPosAt(start), Detail: "exponent without digits"}
				}
			}
		}
	}

	text := s.Span.Parent[s.Span.Start+start : s.Span.Start+s.Pos]
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		s.Pos = start
		return 0, &Error{Kind: InvalidNumber, Pos: s.TextPosAt(start)}
	}
	return v, nil
}

// ParseListNumber parses a number followed by the shared list separator,
// the form every list-of-numbers grammar (points, number-list, path
// arguments, transform arguments) is built from.
func (s *Stream) ParseListNumber() (float64, error) {
	n, err := s.ParseNumber()
	if err != nil {
		return 0, err
	}
	s.SkipSpaces()
	if err := s.ParseListSeparator(); err != nil {
		return 0, err
	}
	return n, nil
}

// ParseLength parses a number followed by an optional unit suffix from the
// closed SVG length-unit set; '%' maps to Percent. A letter right after
// the number that doesn't start a known unit is an InvalidLength error;
// any other following byte ends the length as unitless.
func (s *Stream) ParseLength() (Length, error) {
	s.SkipSpaces()
	n, err := s.ParseNumber()
	if err != nil {
		return Length{}, err
	}

	if s.AtEnd() {
		return Length{Num: n, Unit: LengthNone}, nil
	}

	unit, width := matchLengthUnit(s)
	if width > 0 {
		s.Pos += width
	} else if c := s.curByteRaw(); (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
		return Length{}, &Error{Kind: InvalidLength, Pos: s.TextPosAt(s.Pos), Detail: "unknown length unit"}
	}
	return Length{Num: n, Unit: unit}, nil
}

func matchLengthUnit(s *Stream) (LengthUnit, int) {
	switch {
	case s.StartsWith("%"):
		return LengthPercent, 1
	case s.StartsWith("em"):
		return LengthEm, 2
	case s.StartsWith("ex"):
		return LengthEx, 2
	case s.StartsWith("px"):
		return LengthPx, 2
	case s.StartsWith("in"):
		return LengthIn, 2
	case s.StartsWith("cm"):
		return LengthCm, 2
	case s.StartsWith("mm"):
		return LengthMm, 2
	case s.StartsWith("pt"):
		return LengthPt, 2
	case s.StartsWith("pc"):
		return LengthPc, 2
	default:
		return LengthNone, 0
	}
}

// ParseListLength parses a length followed by the shared list separator.
func (s *Stream) ParseListLength() (Length, error) {
	l, err := s.ParseLength()
	if err != nil {
		return Length{}, err
	}
	s.SkipSpaces()
	if err := s.ParseListSeparator(); err != nil {
		return Length{}, err
	}
	return l, nil
}

// TextPosAt computes the 1-based line:column of the byte offset pos
// (relative to s.Span.Start) by counting line terminators from the start
// of the parent string, matching original_source's calc_current_row/col.
func (s *Stream) TextPosAt(pos int) TextPos {
	abs := s.Span.Start + pos
	if abs > len(s.Span.Parent) {
		abs = len(s.Span.Parent)
	}
	line := 1
	col := 1
	for i := 0; i < abs; i++ {
		if s.Span.Parent[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return TextPos{Line: line, Column: col}
}

// GenTextPos returns the current position's line:column.
func (s *Stream) GenTextPos() TextPos {
	return s.TextPosAt(s.Pos)
}

func bound(min, val, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

func boundF(min, val, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
