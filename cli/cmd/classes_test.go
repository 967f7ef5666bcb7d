package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassesRank(t *testing.T) {
	counts := map[string]int{"flex": 3, "bg-red-500": 1, "bg-blue-500": 2, "p-4": 1}

	t.Run("alphabetical", func(t *testing.T) {
		got := (&Classes{}).rank(counts)

		assert.Equal(t, []ClassCount{
			{Name: "bg-blue-500", Count: 2},
			{Name: "bg-red-500", Count: 1},
			{Name: "flex", Count: 3},
			{Name: "p-4", Count: 1},
		}, got)
	})

	t.Run("query", func(t *testing.T) {
		got := (&Classes{Query: "blu"}).rank(counts)

		if assert.Len(t, got, 1) {
			assert.Equal(t, "bg-blue-500", got[0].Name)
			assert.Len(t, got[0].Match, 3)
		}
	})

	t.Run("limit", func(t *testing.T) {
		got := (&Classes{Limit: 2}).rank(counts)
		assert.Len(t, got, 2)
	})

	t.Run("no match", func(t *testing.T) {
		got := (&Classes{Query: "zzz"}).rank(counts)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestHighlightPreservesText(t *testing.T) {
	// Styles render without escapes when output is not a terminal.
	assert.Equal(t, "bg-blue-500", highlight("bg-blue-500", []int{0, 3}))
}
