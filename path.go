package svgtypes

// PathCommand identifies which of the ten SVG path segment kinds a
// PathToken carries. Cmd is always the uppercase letter of the segment kind
// (an implicit repetition after a MoveTo comes out as 'L'); whether the
// source letter was lowercase (relative) or uppercase (absolute) is
// recorded in the Abs field on PathToken.
type PathCommand byte

// PathToken is one path data segment. Only the fields relevant to Cmd are
// populated; the rest carry their zero value. ClosePath has no payload
// beyond Abs.
type PathToken struct {
	Cmd   PathCommand
	Abs   bool
	X     float64
	Y     float64
	X1    float64
	Y1    float64
	X2    float64
	Y2    float64
	RX    float64
	RY    float64
	XRot  float64
	Large bool
	Sweep bool
}

func isPathCmd(c byte) bool {
	switch c {
	case 'M', 'm', 'Z', 'z', 'L', 'l', 'H', 'h', 'V', 'v',
		'C', 'c', 'S', 's', 'Q', 'q', 'T', 't', 'A', 'a':
		return true
	default:
		return false
	}
}

func isPathAbsolute(c byte) bool {
	switch c {
	case 'M', 'Z', 'L', 'H', 'V', 'C', 'S', 'Q', 'T', 'A':
		return true
	default:
		return false
	}
}

func toRelativeCmd(c byte) byte {
	switch c {
	case 'M':
		return 'm'
	case 'Z':
		return 'z'
	case 'L':
		return 'l'
	case 'H':
		return 'h'
	case 'V':
		return 'v'
	case 'C':
		return 'c'
	case 'S':
		return 's'
	case 'Q':
		return 'q'
	case 'T':
		return 't'
	case 'A':
		return 'a'
	default:
		return c
	}
}

// PathTokenizer is a pull parser over a <path> data attribute's Span. Per
// spec.md section 4.2, malformed input stops iteration silently (a warning
// is logged) rather than surfacing an error: there is no error return on
// Next, only an ok flag.
type PathTokenizer struct {
	stream  *Stream
	prevCmd byte // 0 means "no previous command yet"
	logger  Logger
}

// NewPathTokenizer constructs a tokenizer over span. A nil logger uses
// NopLogger.
func NewPathTokenizer(span Span, logger Logger) *PathTokenizer {
	if logger == nil {
		logger = defaultLogger
	}
	return &PathTokenizer{stream: NewStream(span), logger: logger}
}

// Next extracts the next path segment. ok is false once the data is
// exhausted or malformed; no further tokens will follow a false result.
func (t *PathTokenizer) Next() (PathToken, bool) {
	s := t.stream
	s.SkipSpaces()

	if s.AtEnd() {
		return PathToken{}, false
	}

	hasPrev := t.prevCmd != 0
	first, _ := s.CurrByte()

	if !hasPrev && !isPathCmd(first) {
		warnf(t.logger, "invalid path data at %s: %q is not a command, remaining data ignored", s.GenTextPos(), first)
		s.JumpToEnd()
		return PathToken{}, false
	}

	if !hasPrev && first != 'M' && first != 'm' {
		warnf(t.logger, "invalid path data at %s: first segment must be MoveTo, remaining data ignored", s.GenTextPos())
		s.JumpToEnd()
		return PathToken{}, false
	}

	var cmd byte
	var isImplicitMoveTo bool

	switch {
	case isPathCmd(first):
		cmd = first
		s.AdvanceRaw(1)
	case (isDigit(first) || first == '-' || first == '+' || first == '.') && hasPrev:
		if t.prevCmd == 'Z' || t.prevCmd == 'z' {
			warnf(t.logger, "invalid path data at %s: ClosePath cannot be followed by a number, remaining data ignored", s.GenTextPos())
			s.JumpToEnd()
			return PathToken{}, false
		}
		if t.prevCmd == 'M' || t.prevCmd == 'm' {
			isImplicitMoveTo = true
			if isPathAbsolute(t.prevCmd) {
				cmd = 'L'
			} else {
				cmd = 'l'
			}
		} else {
			cmd = t.prevCmd
		}
	default:
		warnf(t.logger, "invalid path data at %s: expected a command or number", s.GenTextPos())
		s.JumpToEnd()
		return PathToken{}, false
	}

	cmdl := toRelativeCmd(cmd)
	abs := isPathAbsolute(cmd)

	num := func() (float64, bool) {
		v, err := s.ParseListNumber()
		if err != nil {
			return 0, false
		}
		return v, true
	}

	var tok PathToken
	ok := true
	switch cmdl {
	case 'm':
		tok.Cmd, tok.Abs = 'M', abs
		tok.X, ok = num()
		if ok {
			tok.Y, ok = num()
		}
	case 'l':
		tok.Cmd, tok.Abs = 'L', abs
		tok.X, ok = num()
		if ok {
			tok.Y, ok = num()
		}
	case 'h':
		tok.Cmd, tok.Abs = 'H', abs
		tok.X, ok = num()
	case 'v':
		tok.Cmd, tok.Abs = 'V', abs
		tok.Y, ok = num()
	case 'c':
		tok.Cmd, tok.Abs = 'C', abs
		for _, f := range []*float64{&tok.X1, &tok.Y1, &tok.X2, &tok.Y2, &tok.X, &tok.Y} {
			if !ok {
				break
			}
			*f, ok = num()
		}
	case 's':
		tok.Cmd, tok.Abs = 'S', abs
		for _, f := range []*float64{&tok.X2, &tok.Y2, &tok.X, &tok.Y} {
			if !ok {
				break
			}
			*f, ok = num()
		}
	case 'q':
		tok.Cmd, tok.Abs = 'Q', abs
		for _, f := range []*float64{&tok.X1, &tok.Y1, &tok.X, &tok.Y} {
			if !ok {
				break
			}
			*f, ok = num()
		}
	case 't':
		tok.Cmd, tok.Abs = 'T', abs
		tok.X, ok = num()
		if ok {
			tok.Y, ok = num()
		}
	case 'a':
		tok.Cmd, tok.Abs = 'A', abs
		tok.RX, ok = num()
		if ok {
			tok.RY, ok = num()
		}
		if ok {
			tok.XRot, ok = num()
		}
		if ok {
			tok.Large, ok = parsePathFlag(s)
		}
		if ok {
			tok.Sweep, ok = parsePathFlag(s)
		}
		if ok {
			tok.X, ok = num()
		}
		if ok {
			tok.Y, ok = num()
		}
	case 'z':
		tok.Cmd, tok.Abs = 'Z', abs
	}

	if !ok {
		warnf(t.logger, "invalid path data at %s: malformed argument, remaining data ignored", s.GenTextPos())
		s.JumpToEnd()
		return PathToken{}, false
	}

	if isImplicitMoveTo {
		if isPathAbsolute(cmd) {
			t.prevCmd = 'M'
		} else {
			t.prevCmd = 'm'
		}
	} else {
		t.prevCmd = cmd
	}

	return tok, true
}

// parsePathFlag parses a single '0' or '1' flag digit, per spec.md section
// 4.2: arc flags are single digits, never general numbers, so "01" must
// not be read as the number 1.
func parsePathFlag(s *Stream) (bool, bool) {
	s.SkipSpaces()
	c, err := s.CurrByte()
	if err != nil {
		return false, false
	}
	if c != '0' && c != '1' {
		return false, false
	}
	s.AdvanceRaw(1)
	if !s.AtEnd() && s.curByteRaw() == ',' {
		s.AdvanceRaw(1)
	}
	s.SkipSpaces()
	return c == '1', true
}
