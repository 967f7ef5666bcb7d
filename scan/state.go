package scan

// State is the quote and nesting context of a single scan.
//
// The zero value is neutral. A State is created per scan, updated once per
// byte, and discarded when the scan ends.
type State struct {
	// Depth is the net count of openers minus closers seen outside strings.
	// It never drops below zero.
	Depth int
	// Quote is the quote byte that opened the current string, or 0.
	Quote byte
}

// Update advances the state past c, where prev is the byte immediately
// preceding c (0 at the start of input).
//
// A quote toggles string context unless prev is a backslash. Outside strings,
// any of "([{" increments Depth and any of ")]}" decrements it; bracket kinds
// are not distinguished.
func (s *State) Update(c, prev byte) {
	if IsQuote(c) && prev != '\\' {
		switch s.Quote {
		case 0:
			s.Quote = c
		case c:
			s.Quote = 0
		}

		return
	}

	if s.Quote != 0 {
		return
	}

	switch c {
	case '(', '[', '{':
		s.Depth++
	case ')', ']', '}':
		if s.Depth > 0 {
			s.Depth--
		}
	}
}

// InString reports whether the state is inside a quoted string.
func (s State) InString() bool { return s.Quote != 0 }

// Neutral reports whether the state is at the top level: outside any string
// and at nesting depth zero.
func (s State) Neutral() bool { return s.Quote == 0 && s.Depth == 0 }

// IsQuote reports whether c opens or closes a string: ', ", or `.
func IsQuote(c byte) bool { return c == '\'' || c == '"' || c == '`' }

// prevByte returns text[i-1], or 0 when i is the start of text.
func prevByte(text string, i int) byte {
	if i <= 0 || i > len(text) {
		return 0
	}

	return text[i-1]
}
