package scan

import "strings"

// Pair is an opener and its matching closer.
type Pair struct {
	Open  byte
	Close byte
}

// Bracket pairs recognized by the delimiter routines.
var (
	Parens   = Pair{'(', ')'}
	Brackets = Pair{'[', ']'}
	Braces   = Pair{'{', '}'}
)

// Balanced scans text from start, the index just past an opener of pair, to
// the matching closer. It returns the content between the opener and closer
// and the index just past the closer.
//
// Other bracket kinds are consumed as content. Quoted strings are skipped, so
// a closer inside a string does not end the group. If text ends before the
// group closes, ok is false.
func Balanced(text string, start int, pair Pair) (content string, end int, ok bool) {
	return BalancedFrom(text, start, pair, 1)
}

// BalancedFrom is like [Balanced] but starts with the given nesting depth,
// for groups opened by more than one bracket (such as "{{").
func BalancedFrom(
	text string,
	start int,
	pair Pair,
	depth int,
) (content string, end int, ok bool) {
	if start < 0 || start > len(text) || depth < 1 {
		return "", 0, false
	}

	s := State{Depth: depth}

	for i := start; i < len(text); i++ {
		c := text[i]
		inString := s.InString()

		s.Update(c, prevByte(text, i))

		if !inString && c == pair.Close && s.Neutral() {
			return text[start:i], i + 1, true
		}
	}

	return "", 0, false
}

// Split returns the segments of text between top-level occurrences of sep.
// Segments are trimmed and empty segments are dropped.
func Split(text string, sep byte) []string {
	var (
		parts []string
		s     State
	)

	last := 0

	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == sep && s.Neutral() {
			if part := strings.TrimSpace(text[last:i]); part != "" {
				parts = append(parts, part)
			}

			last = i + 1

			continue
		}

		s.Update(c, prevByte(text, i))
	}

	if part := strings.TrimSpace(text[last:]); part != "" {
		parts = append(parts, part)
	}

	return parts
}

// Index returns the index of the leftmost top-level occurrence of token in
// text, or -1. The skip function, if non-nil, may reject a candidate match at
// index i (for example, to ignore "?" when it is part of "?.").
func Index(text, token string, skip func(text string, i int) bool) int {
	if token == "" {
		return -1
	}

	var s State

	for i := 0; i < len(text); i++ {
		if s.Neutral() && strings.HasPrefix(text[i:], token) &&
			(skip == nil || !skip(text, i)) {
			return i
		}

		s.Update(text[i], prevByte(text, i))
	}

	return -1
}

// Operator finds the leftmost top-level occurrence of token and returns the
// trimmed text before and after it.
//
// Leftmost matters: in a nested ternary the outer "?" always precedes any "?"
// buried in a later branch.
func Operator(text, token string) (before, after string, ok bool) {
	return OperatorFunc(text, token, nil)
}

// OperatorFunc is like [Operator] with a skip predicate; see [Index].
func OperatorFunc(
	text, token string,
	skip func(text string, i int) bool,
) (before, after string, ok bool) {
	i := Index(text, token, skip)
	if i < 0 {
		return "", "", false
	}

	return strings.TrimSpace(text[:i]), strings.TrimSpace(text[i+len(token):]), true
}

// Unwrap returns the interior of text when all of text (ignoring surrounding
// whitespace) is a single group delimited by pair.
func Unwrap(text string, pair Pair) (inner string, ok bool) {
	text = strings.TrimSpace(text)
	if len(text) < 2 || text[0] != pair.Open {
		return "", false
	}

	content, end, ok := Balanced(text, 1, pair)
	if !ok || end != len(text) {
		return "", false
	}

	return content, true
}

// ClosingQuote returns the index of the first unescaped quote byte at or after
// start, or -1 if there is none.
//
// It is used for attribute values delimited by quotes rather than brackets,
// where brackets and other quote kinds inside the value are plain content.
func ClosingQuote(text string, start int, quote byte) int {
	if start < 0 {
		return -1
	}

	for i := start; i < len(text); i++ {
		switch text[i] {
		case '\\':
			i++ // skip the escaped byte
		case quote:
			return i
		}
	}

	return -1
}
