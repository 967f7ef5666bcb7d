package repl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/classcond/attr"
	"github.com/ardnew/classcond/lang"
	"github.com/ardnew/classcond/log"
	"github.com/ardnew/classcond/resolve"
)

const (
	parsePrompt = "➜ "
	ctrlPrompt  = " :"
)

func helpMessage() string {
	return `
: Commands (press Esc to toggle mode):

  help              Print this cruft
  helpers           List recognized class helper functions
  set NAME=VALUE    Assign component state (dotted names nest)
  unset [NAME]      Remove state, or all state without a name
  state             Print component state
  clear             Clear screen
  quit              Exit REPL

Usage:
  Type a class expression to resolve it, e.g. isActive && 'ring-2'
  Input starting with '<' is scanned as markup for class attributes
  With state assigned, each class is marked ✔ (applies) or ✘ (does not)
  Press Tab / Shift-Tab to cycle through completion candidates
  Use Up/Down for history, Shift+Up/Shift+Down within the current mode
  Press Ctrl+C on empty line or Ctrl+D to exit
`
}

// inputMode represents the current input mode.
type inputMode int

const (
	modeParse inputMode = iota
	modeCtrl
)

// prefix returns the history file prefix of mode.
func (m inputMode) prefix() string {
	if m == modeCtrl {
		return "C:"
	}

	return "P:"
}

// Styles.
var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	ctrlPromptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("5")).
			Bold(true)
	inputStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	resultStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	matchedStyle    = suggestionStyle.Bold(true)
	selectedStyle   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4"))
	selectedMatchStyle = selectedStyle.Bold(true)
)

// Config holds the collaborators of a REPL session.
type Config struct {
	Extractor *attr.Extractor
	Parser    lang.Parser
	Evaluator *resolve.Evaluator
	Env       resolve.Env
	History   string
	Logger    log.Logger
}

// model is the Bubble Tea model for the REPL.
type model struct {
	ctx          context.Context
	input        textinput.Model
	session      *session
	logger       log.Logger
	history      *History
	historyIdx   int
	matches      fuzzy.Matches // current fuzzy match results
	wordStart    int           // byte offset of current word start
	wordEnd      int           // byte offset of current word end
	suggIdx      int           // selected candidate index
	tabActive    bool          // whether user is tab-cycling
	preTabText   string        // input text before tab-cycling began
	preTabCursor int           // cursor position before tab-cycling began
	width        int
	quitting     bool
	mode         inputMode
	stash        [2]string // input of the inactive mode
}

// Run starts an interactive session.
func Run(ctx context.Context, cfg Config) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	cfg.Logger.TraceContext(ctx, "repl start",
		slog.String("history", cfg.History))

	history := NewHistory(cfg.History)
	if err := history.Load(); err != nil {
		cfg.Logger.WarnContext(ctx, "could not load history",
			slog.String("path", cfg.History),
			slog.Any("error", err))
	}

	p := tea.NewProgram(newModel(ctx, cfg, history), tea.WithContext(ctx))
	_, err = p.Run()

	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return context.Cause(ctx)
	}

	return err
}

const defaultWidth = 80

func newModel(ctx context.Context, cfg Config, history *History) model {
	if cfg.Extractor == nil {
		cfg.Extractor = attr.New()
	}

	if cfg.Evaluator == nil {
		cfg.Evaluator = resolve.New()
	}

	if cfg.Env == nil {
		cfg.Env = resolve.Env{}
	}

	ti := textinput.New()
	ti.Prompt = promptStyle.Render(parsePrompt)
	ti.TextStyle = inputStyle
	ti.Focus()
	ti.CharLimit = 4096
	ti.Width = defaultWidth

	return model{
		ctx:   ctx,
		input: ti,
		session: &session{
			ctx:       ctx,
			extractor: cfg.Extractor,
			parser:    cfg.Parser,
			evaluator: cfg.Evaluator,
			env:       cfg.Env,
		},
		logger:     cfg.Logger,
		history:    history,
		historyIdx: history.Len(),
		width:      defaultWidth,
		suggIdx:    -1,
		mode:       modeParse,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - len(parsePrompt) - 2

		return m, nil
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n")

	switch {
	case m.historyIdx < m.history.Len():
		hint := fmt.Sprintf("%s/%d",
			lipgloss.NewStyle().Bold(true).Render(strconv.Itoa(m.historyIdx+1)),
			m.history.Len())
		b.WriteString(hintStyle.Render(hint))

	case strings.TrimSpace(m.input.Value()) == "":
		hint := "Type a class expression or press Esc for commands"
		if m.mode == modeCtrl {
			hint = "Type: " + strings.Join(ctrlCommands, ", ") +
				" (press Esc to return)"
		}

		b.WriteString(hintStyle.Render(hint))

	case len(m.matches) > 0:
		b.WriteString(renderCandidateBar(m.matches, m.suggIdx, m.tabActive, m.width))
	}

	b.WriteString("\n")

	return b.String()
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	m.logger.TraceContext(m.ctx, "repl keypress",
		slog.String("key", msg.String()))

	switch msg.Type {
	case tea.KeyCtrlC:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		m.input.SetValue("")
		m.tabActive = false
		m.historyIdx = m.history.Len()
		m.refreshMatches(false)

		return m, nil

	case tea.KeyCtrlD:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		return m, nil

	case tea.KeyEnter:
		if !m.tabActive || len(m.matches) == 0 {
			return m.executeInput()
		}

		// Lock in the current tab candidate without executing.
		m.tabActive = false
		m.refreshMatches(true)

		return m, nil

	case tea.KeyTab:
		return m.cycle(1), nil

	case tea.KeyShiftTab:
		return m.cycle(-1), nil

	case tea.KeyUp:
		return m.historyStep(-1, false), nil

	case tea.KeyDown:
		return m.historyStep(1, false), nil

	case tea.KeyShiftUp:
		return m.historyStep(-1, true), nil

	case tea.KeyShiftDown:
		return m.historyStep(1, true), nil

	case tea.KeyEsc:
		if m.tabActive {
			m.tabActive = false
			m.input.SetValue(m.preTabText)
			m.input.SetCursor(m.preTabCursor)
			m.refreshMatches(false)

			return m, nil
		}

		return m.switchToMode(1 - m.mode), nil
	}

	// Space breaks out of tab-cycling, keeping the candidate.
	typing := msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace
	if !typing || msg.String() == " " {
		m.tabActive = false
	}

	var cmd tea.Cmd

	m.historyIdx = m.history.Len()
	m.input, cmd = m.input.Update(msg)
	m.refreshMatches(typing)

	return m, cmd
}

// cycle moves the tab selection by step, wrapping around. A single candidate
// is completed immediately.
func (m model) cycle(step int) model {
	n := len(m.matches)
	if n == 0 {
		return m
	}

	if n == 1 {
		m.replaceCurrentWord(m.matches[0].Str)
		m.tabActive = false
		m.suggIdx = -1
		m.matches = nil

		return m
	}

	if m.tabActive {
		m.suggIdx = (m.suggIdx + step + n) % n
	} else {
		m.tabActive = true
		m.preTabText = m.input.Value()
		m.preTabCursor = m.input.Position()

		m.suggIdx = 0
		if step < 0 {
			m.suggIdx = n - 1
		}
	}

	m.replaceCurrentWord(m.matches[m.suggIdx].Str)

	return m
}

// replaceCurrentWord replaces the current word boundaries in the input with
// the given replacement text and repositions the cursor.
func (m *model) replaceCurrentWord(replacement string) {
	input := m.input.Value()
	cursor := m.wordStart + len(replacement)

	m.input.SetValue(input[:m.wordStart] + replacement + input[m.wordEnd:])
	m.input.SetCursor(cursor)

	m.wordEnd = cursor
}

// refreshMatches recomputes fuzzy matches for the current input state. When
// autoConfirm is set and the typed word already equals the sole candidate,
// the completion is confirmed.
func (m *model) refreshMatches(autoConfirm bool) {
	m.matches, m.wordStart, m.wordEnd = m.computeMatches()

	if !m.tabActive {
		m.suggIdx = -1
	}

	if !autoConfirm || len(m.matches) != 1 {
		return
	}

	if m.input.Value()[m.wordStart:m.wordEnd] == m.matches[0].Str {
		m.tabActive = false
		m.suggIdx = -1
		m.matches = nil
	}
}

func (m model) executeInput() (model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	if input == "" {
		return m, nil
	}

	m.input.SetValue("")
	m.matches = nil

	if err := m.history.Add(input, m.mode); err != nil {
		m.logger.WarnContext(m.ctx, "could not save history",
			slog.Any("error", err))
	}

	m.historyIdx = m.history.Len()

	if m.mode == modeCtrl {
		return m.executeCommand(input)
	}

	m.logger.TraceContext(m.ctx, "repl resolve", slog.String("input", input))

	echo := tea.Println(promptStyle.Render(parsePrompt) + inputStyle.Render(input))

	lines, err := m.session.resolve(input)
	if err != nil {
		return m, tea.Sequence(echo, tea.Println(errorStyle.Render("error: "+err.Error())))
	}

	return m, tea.Sequence(echo, tea.Println(strings.Join(lines, "\n")))
}

func (m model) executeCommand(input string) (model, tea.Cmd) {
	m.logger.TraceContext(m.ctx, "repl command", slog.String("input", input))

	echo := tea.Println(ctrlPromptStyle.Render(ctrlPrompt) + inputStyle.Render(input))

	if name, _, _ := strings.Cut(input, " "); name == "clear" || name == "c" {
		return m, tea.ClearScreen
	}

	out, quit, err := m.session.command(input)

	switch {
	case err != nil:
		return m, tea.Sequence(echo, tea.Println(errorStyle.Render(err.Error())))

	case quit:
		m.quitting = true

		return m, tea.Sequence(echo, tea.Quit)

	default:
		return m, tea.Sequence(echo, tea.Println(out))
	}
}

// historyStep moves through history by step. Entries of the other mode
// switch modes, unless inMode restricts navigation to the current mode.
// Stepping past the newest entry clears the input.
func (m model) historyStep(step int, inMode bool) model {
	for i := m.historyIdx + step; i >= 0 && i < m.history.Len(); i += step {
		entry, err := m.history.Entry(i)
		if err != nil {
			break
		}

		if inMode && entry.Mode != m.mode {
			continue
		}

		if entry.Mode != m.mode {
			m = m.switchToMode(entry.Mode)
		}

		m.historyIdx = i
		m.input.SetValue(entry.Line)
		m.input.SetCursor(len(entry.Line))
		m.refreshMatches(false)

		return m
	}

	if step > 0 && m.historyIdx < m.history.Len() {
		m.historyIdx = m.history.Len()
		m.input.SetValue("")
		m.refreshMatches(false)
	}

	return m
}

// switchToMode switches to mode, preserving the input of each mode.
func (m model) switchToMode(mode inputMode) model {
	if mode == m.mode {
		return m
	}

	m.stash[m.mode] = m.input.Value()
	m.mode = mode
	m.tabActive = false

	if mode == modeParse {
		m.input.Prompt = promptStyle.Render(parsePrompt)
	} else {
		m.input.Prompt = ctrlPromptStyle.Render(ctrlPrompt)
	}

	m.input.SetValue(m.stash[mode])
	m.input.CursorEnd()
	m.refreshMatches(false)

	return m
}
