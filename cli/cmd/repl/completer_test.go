package repl

import (
	"context"
	"testing"

	"github.com/sahilm/fuzzy"
	"github.com/stretchr/testify/assert"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/classcond/resolve"
)

func TestWordBounds(t *testing.T) {
	tests := []struct {
		input      string
		cursor     int
		word       string
		start, end int
	}{
		{"", 0, "", 0, 0},
		{"isAct", 5, "isAct", 0, 5},
		{"isAct", 2, "isAct", 0, 5},
		{"a && cl", 7, "cl", 5, 7},
		{"cn('x', fo", 10, "fo", 8, 10},
		{"props.it", 8, "it", 6, 8},
		{"a ", 2, "", 2, 2},
		{"x", 99, "x", 0, 1},
	}

	for _, tt := range tests {
		word, start, end := wordBounds(tt.input, tt.cursor)
		assert.Equal(t, tt.word, word, "%q@%d", tt.input, tt.cursor)
		assert.Equal(t, tt.start, start, "%q@%d", tt.input, tt.cursor)
		assert.Equal(t, tt.end, end, "%q@%d", tt.input, tt.cursor)
	}
}

func TestParentPath(t *testing.T) {
	tests := []struct {
		input     string
		wordStart int
		want      string
	}{
		{"isAct", 0, ""},
		{"props.", 6, "props"},
		{"a && props.item.o", 16, "props.item"},
		{"(props).x", 8, ""},
		{"a + b", 4, ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parentPath(tt.input, tt.wordStart), tt.input)
	}
}

func TestRenderCandidateBar(t *testing.T) {
	matches := fuzzy.Matches{{Str: "clsx"}, {Str: "classnames"}, {Str: "cn"}}

	assert.Empty(t, renderCandidateBar(nil, 0, false, 80))
	assert.Equal(t, "clsx  classnames  cn", renderCandidateBar(matches, -1, false, 80))
	assert.Equal(t, "clsx  ...", renderCandidateBar(matches, -1, false, 12))
}

func typeText(m model, text string) model {
	for _, r := range text {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(model)
	}

	return m
}

func press(m model, key tea.KeyType) model {
	next, _ := m.Update(tea.KeyMsg{Type: key})

	return next.(model)
}

func TestModelCompletion(t *testing.T) {
	env := resolve.Env{"isActive": true, "isOpen": false}
	m := newModel(context.Background(), Config{Env: env}, NewHistory(""))

	m = typeText(m, "isA")
	if assert.NotEmpty(t, m.matches) {
		assert.Equal(t, "isActive", m.matches[0].Str)
	}

	m = press(m, tea.KeyTab)
	assert.Equal(t, "isActive", m.input.Value())
}

func TestModelTabCycleAndEscape(t *testing.T) {
	env := resolve.Env{"isActive": true, "isOpen": false}
	m := newModel(context.Background(), Config{Env: env}, NewHistory(""))

	m = typeText(m, "is")
	assert.Len(t, m.matches, 2)

	m = press(m, tea.KeyTab)
	assert.True(t, m.tabActive)
	first := m.input.Value()

	m = press(m, tea.KeyTab)
	assert.NotEqual(t, first, m.input.Value())

	m = press(m, tea.KeyEsc)
	assert.False(t, m.tabActive)
	assert.Equal(t, "is", m.input.Value())
	assert.Equal(t, modeParse, m.mode)
}

func TestModelModesAndHistory(t *testing.T) {
	m := newModel(context.Background(), Config{}, NewHistory(""))

	m = typeText(m, "a && 'x'")
	m = press(m, tea.KeyEnter)
	assert.Empty(t, m.input.Value())
	assert.Equal(t, 1, m.history.Len())

	m = press(m, tea.KeyEsc)
	assert.Equal(t, modeCtrl, m.mode)

	m = typeText(m, "state")
	m = press(m, tea.KeyEnter)
	assert.Equal(t, 2, m.history.Len())

	// Up walks back through both modes, switching as needed.
	m = press(m, tea.KeyUp)
	assert.Equal(t, "state", m.input.Value())
	assert.Equal(t, modeCtrl, m.mode)

	m = press(m, tea.KeyUp)
	assert.Equal(t, "a && 'x'", m.input.Value())
	assert.Equal(t, modeParse, m.mode)

	m = press(m, tea.KeyDown)
	m = press(m, tea.KeyDown)
	assert.Empty(t, m.input.Value())
	assert.Equal(t, 2, m.historyIdx)
}

func TestModelQuit(t *testing.T) {
	m := newModel(context.Background(), Config{}, NewHistory(""))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	if assert.NotNil(t, cmd) {
		assert.Equal(t, tea.QuitMsg{}, cmd())
	}
}
