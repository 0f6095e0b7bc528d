package svgtypes

// Color is an RGB triple, the result of parsing an SVG <color> value.
type Color struct {
	R byte
	G byte
	B byte
}

// ParseColor parses a <color> value: "#RGB"/"#RRGGBB" hex, "rgb(...)", or a
// CSS named color. Unlike most of this package's grammars, <color> is a
// single value rather than a list, so there is no tokenizer here — just a
// one-shot parse, mirroring original_source's Color::from_span.
func ParseColor(span Span) (Color, error) {
	s := NewStream(span)
	s.SkipSpaces()

	start := s.Pos
	var c Color
	var err error

	switch {
	case s.StartsWith("#"):
		c, err = parseHexColor(s)
	case s.StartsWithFold("rgb("):
		c, err = parseRGBColor(s)
	default:
		c, err = parseNamedColor(s)
	}
	if err != nil {
		return Color{}, err
	}

	s.SkipSpaces()
	if !s.AtEnd() {
		return Color{}, &Error{Kind: InvalidColor, Pos: s.TextPosAt(start), Detail: "unexpected trailing data"}
	}
	return c, nil
}

func parseHexColor(s *Stream) (Color, error) {
	start := s.Pos
	s.AdvanceRaw(1) // '#'

	digitsStart := s.Pos
	for !s.AtEnd() && isHexDigit(s.curByteRaw()) {
		s.AdvanceRaw(1)
	}
	digits := s.Span.Parent[s.Span.Start+digitsStart : s.Span.Start+s.Pos]

	switch len(digits) {
	case 6:
		return Color{
			R: hexPair(digits[0], digits[1]),
			G: hexPair(digits[2], digits[3]),
			B: hexPair(digits[4], digits[5]),
		}, nil
	case 3:
		return Color{
			R: shortHex(digits[0]),
			G: shortHex(digits[1]),
			B: shortHex(digits[2]),
		}, nil
	default:
		return Color{}, &Error{Kind: InvalidColor, Pos: s.TextPosAt(start), Detail: "hex color must have 3 or 6 digits"}
	}
}

// parseRGBColor implements original_source's per-component branch: each of
// the three components carries its own '%' or not, and is scaled
// accordingly independent of the other two. "rgb(0,50%,255)" is therefore
// Color{0,128,255}, not gated by the first component's unit.
func parseRGBColor(s *Stream) (Color, error) {
	s.AdvanceRaw(4) // "rgb("

	r, err := s.ParseListLength()
	if err != nil {
		return Color{}, err
	}
	g, err := s.ParseListLength()
	if err != nil {
		return Color{}, err
	}
	b, err := s.ParseListLength()
	if err != nil {
		return Color{}, err
	}

	c := Color{R: rgbComponent(r), G: rgbComponent(g), B: rgbComponent(b)}

	s.SkipSpaces()
	if err := s.ConsumeByte(')'); err != nil {
		return Color{}, err
	}
	return c, nil
}

func rgbComponent(l Length) byte {
	if l.Unit == LengthPercent {
		return colorFromPercent(l.Num)
	}
	return byte(bound(0, int(l.Num), 255))
}

func colorFromPercent(v float64) byte {
	n := int(boundF(0, v, 100) * 255.0 / 100.0)
	return byte(bound(0, n, 255))
}

// parseNamedColor matches spec.md section 4.6: the name is canonicalized
// to lowercase before lookup, and that lowercasing (capped at a handful of
// bytes, never a heap allocation) is the only place outside rgb( itself
// where non-lowercase input is tolerated.
func parseNamedColor(s *Stream) (Color, error) {
	start := s.Pos
	nameSpan, err := s.ConsumeIdent()
	if err != nil {
		return Color{}, &Error{Kind: InvalidColor, Pos: s.TextPosAt(start), Detail: "not a color keyword"}
	}

	name := nameSpan.Str()
	if len(name) > 20 {
		return Color{}, &Error{Kind: InvalidColor, Pos: s.TextPosAt(start), Detail: "unknown color name"}
	}

	var buf [20]byte
	for i := 0; i < len(name); i++ {
		buf[i] = asciiLower(name[i])
	}
	lower := string(buf[:len(name)])

	c, ok := namedColors[lower]
	if !ok {
		return Color{}, &Error{Kind: InvalidColor, Pos: s.TextPosAt(start), Detail: "unknown color name"}
	}
	return c, nil
}

func fromHexDigit(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		return 0
	}
}

func shortHex(c byte) byte {
	h := fromHexDigit(c)
	return h<<4 | h
}

func hexPair(c1, c2 byte) byte {
	return fromHexDigit(c1)<<4 | fromHexDigit(c2)
}
