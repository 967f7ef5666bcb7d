package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func scanAll(text string) State {
	var s State
	for i := 0; i < len(text); i++ {
		s.Update(text[i], prevByte(text, i))
	}

	return s
}

func TestStateUpdate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		depth   int
		quote   byte
		neutral bool
	}{
		{name: "empty", input: "", neutral: true},
		{name: "balanced mixed kinds", input: "a({b}[c])", neutral: true},
		{name: "open paren", input: "f(a, b", depth: 1},
		{name: "kinds not distinguished", input: "(]", neutral: true},
		{name: "brackets inside string", input: `'(('`, neutral: true},
		{name: "unterminated string", input: `'abc`, quote: '\''},
		{name: "escaped quote stays open", input: `'a\'b`, quote: '\''},
		{name: "other quote is content", input: `"it's"`, neutral: true},
		{name: "backtick", input: "`a ${b}`", neutral: true},
		{name: "closer at top level clamps", input: ")))", neutral: true},
		{name: "nested open", input: "{a: [1, (2", depth: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := scanAll(tt.input)
			assert.Equal(t, tt.depth, s.Depth, "depth")
			assert.Equal(t, tt.quote, s.Quote, "quote")
			assert.Equal(t, tt.neutral, s.Neutral(), "neutral")
		})
	}
}

func TestStateDepthNeverNegative(t *testing.T) {
	t.Parallel()

	var s State
	for _, c := range []byte(")]}") {
		s.Update(c, 0)

		assert.GreaterOrEqual(t, s.Depth, 0)
	}
}
