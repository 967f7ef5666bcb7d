package resolve

import (
	"strings"

	"github.com/ardnew/classcond/scan"
)

// translate rewrites the JavaScript operators that expr does not share:
// strict equality becomes equality. Quoted strings are copied unchanged.
func translate(cond string) string {
	var (
		b strings.Builder
		s scan.State
	)

	b.Grow(len(cond))

	for i := 0; i < len(cond); i++ {
		c := cond[i]

		var prev byte
		if i > 0 {
			prev = cond[i-1]
		}

		inString := s.InString()
		s.Update(c, prev)

		if !inString && !s.InString() && (c == '=' || c == '!') &&
			strings.HasPrefix(cond[i+1:], "==") {
			// === and !== lose their last byte.
			b.WriteByte(c)
			b.WriteByte('=')
			i += 2

			continue
		}

		b.WriteByte(c)
	}

	return b.String()
}
