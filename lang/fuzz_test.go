package lang

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// FuzzParseExpression checks that the engine never panics, is deterministic,
// and only emits well-formed classes.
func FuzzParseExpression(f *testing.F) {
	f.Add(`'flex'`)
	f.Add(`isActive && 'bg-blue-500'`)
	f.Add("`flex ${isActive ? 'bg-blue-500' : 'bg-gray-200'} p-4`")
	f.Add(`{ 'hover:bg-blue-500': isActive, active: true, hidden: false }`)
	f.Add(`A ? 'x' : B ? 'y' : 'z'`)
	f.Add(`x ?? 'fallback'`)
	f.Add(`x || 'fallback'`)
	f.Add("`${`${a && 'b'}`}`")
	f.Add(`((((`)
	f.Add(`'\'`)

	f.Fuzz(func(t *testing.T, input string) {
		if !utf8.ValidString(input) {
			t.Skip("invalid UTF-8")
		}

		first, ok := ParseExpression(input)
		second, again := ParseExpression(input)

		require.Equal(t, ok, again, "non-deterministic match")
		require.Equal(t, first, second, "non-deterministic result")

		if ok {
			require.NotEmpty(t, first, "match without classes")
		}

		for _, c := range first {
			assert.NotEmpty(t, c.Classes)
			assert.Equal(t, strings.Join(strings.Fields(c.Classes), " "), c.Classes)
		}
	})
}

func BenchmarkParseExpression(b *testing.B) {
	inputs := []string{
		`'flex items-center gap-2'`,
		`isActive && 'bg-blue-500'`,
		"`flex ${isActive ? 'bg-blue-500' : 'bg-gray-200'} p-4`",
		`{ 'hover:bg-blue-500': isActive, active: true, hidden: false }`,
		`size === 'lg' ? 'px-6 py-3' : size === 'sm' ? 'px-2 py-1' : 'px-4 py-2'`,
	}

	b.ReportAllocs()

	for b.Loop() {
		for _, input := range inputs {
			_, _ = ParseExpression(input)
		}
	}
}
