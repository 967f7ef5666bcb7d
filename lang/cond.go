package lang

import (
	"strings"

	"github.com/ardnew/classcond/scan"
)

// operatorBytes are the bytes that make a condition compound when they appear
// at the top level.
const operatorBytes = " \t\r\n&|?:=<>+-*/%,^~"

// stripParens removes redundant parentheses enclosing all of s.
func stripParens(s string) string {
	s = strings.TrimSpace(s)
	for {
		inner, ok := scan.Unwrap(s, scan.Parens)
		if !ok {
			return s
		}

		s = strings.TrimSpace(inner)
	}
}

// isOperand reports whether s is a single operand (an identifier, member
// access, call, or literal) that can be negated or compared without
// parentheses.
func isOperand(s string) bool {
	if s == "" {
		return false
	}

	var st scan.State

	for i := 0; i < len(s); i++ {
		c := s[i]
		if st.Neutral() && strings.IndexByte(operatorBytes, c) >= 0 {
			if c != '?' || i+1 >= len(s) || s[i+1] != '.' {
				return false
			}
		}

		var prev byte
		if i > 0 {
			prev = s[i-1]
		}

		st.Update(c, prev)
	}

	return st.Neutral()
}

// group parenthesizes s unless it is a single operand.
func group(s string) string {
	s = stripParens(s)
	if isOperand(s) {
		return s
	}

	return "(" + s + ")"
}

// negate returns the condition that holds when cond is falsy.
func negate(cond string) string {
	return "!" + group(cond)
}

// isNull returns the condition that holds when cond is null or undefined.
func isNull(cond string) string {
	return group(cond) + " == null"
}

// conjoin returns the condition that holds when both a and b hold. An empty
// operand is the identity. Operands with lower precedence than && are
// parenthesized.
func conjoin(a, b string) string {
	a, b = stripParens(a), stripParens(b)

	switch {
	case a == "":
		return b
	case b == "":
		return a
	}

	return conjunct(a) + " && " + conjunct(b)
}

func conjunct(s string) string {
	if scan.Index(s, "||", nil) >= 0 ||
		scan.Index(s, "?", nil) >= 0 {
		return "(" + s + ")"
	}

	return s
}

// literal returns the body of s when all of s is one quoted string without
// interpolation.
func literal(s string) (body string, ok bool) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || !scan.IsQuote(s[0]) {
		return "", false
	}

	q := s[0]
	if scan.ClosingQuote(s, 1, q) != len(s)-1 {
		return "", false
	}

	body = s[1 : len(s)-1]
	if q == '`' && strings.Contains(body, "${") {
		return "", false
	}

	return body, true
}
