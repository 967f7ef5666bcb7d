package repl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryPersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")

	h := NewHistory(path)
	require.NoError(t, h.Load())
	assert.Equal(t, 0, h.Len())

	require.NoError(t, h.Add("a && 'x'", modeParse))
	require.NoError(t, h.Add("set a=1", modeCtrl))
	require.NoError(t, h.Add("  ", modeParse))
	require.NoError(t, h.Add("set a=1", modeCtrl))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "P:a && 'x'\nC:set a=1\n", string(data))

	reloaded := NewHistory(path)
	require.NoError(t, reloaded.Load())
	require.Equal(t, 2, reloaded.Len())

	entry, err := reloaded.Entry(1)
	require.NoError(t, err)
	assert.Equal(t, HistoryEntry{Line: "set a=1", Mode: modeCtrl}, entry)
}

func TestHistoryMovesDuplicateToEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")
	h := NewHistory(path)

	for _, line := range []string{"one", "two", "one"} {
		require.NoError(t, h.Add(line, modeParse))
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "P:two\nP:one\n", string(data))
}

func TestHistoryInMemory(t *testing.T) {
	h := NewHistory("")
	require.NoError(t, h.Load())
	require.NoError(t, h.Add("x", modeParse))
	assert.Equal(t, 1, h.Len())

	_, err := h.Entry(5)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestHistoryLegacyLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")
	require.NoError(t, os.WriteFile(path, []byte("plain\n\nC:quit\n"), 0o600))

	h := NewHistory(path)
	require.NoError(t, h.Load())
	require.Equal(t, 2, h.Len())

	first, _ := h.Entry(0)
	assert.Equal(t, HistoryEntry{Line: "plain", Mode: modeParse}, first)
}
