package repl

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/ardnew/classcond/attr"
	"github.com/ardnew/classcond/lang"
	"github.com/ardnew/classcond/resolve"
)

// ctrlCommands are the available control-mode commands.
var ctrlCommands = []string{
	"help", "helpers", "set", "unset", "state", "clear", "quit",
}

// literals complete in parse mode alongside helpers and state names.
var literals = []string{"true", "false", "null", "undefined"}

// session resolves REPL input. It holds the component state assigned with the
// set command, against which resolved classes are evaluated.
type session struct {
	ctx       context.Context
	extractor *attr.Extractor
	parser    lang.Parser
	evaluator *resolve.Evaluator
	env       resolve.Env
}

// resolve runs input through the extractor when it looks like markup, or the
// expression engine otherwise, and returns one rendered line per conditional
// class.
func (s *session) resolve(input string) ([]string, error) {
	var classes []lang.ConditionalClass

	if strings.HasPrefix(strings.TrimSpace(input), "<") {
		for _, x := range s.extractor.Extract(input) {
			classes = append(classes, x.Conditional...)
		}
	} else {
		var ok bool
		if classes, ok = s.parser.Parse(input); !ok {
			return nil, errNoMatch
		}
	}

	if len(classes) == 0 {
		return nil, errNoMatch
	}

	if len(s.env) == 0 {
		lines := make([]string, len(classes))
		for i, c := range classes {
			lines[i] = renderClass(c)
		}

		return lines, nil
	}

	// Conditions that fail to evaluate are reported on their own line.
	res, _ := s.evaluator.Evaluate(s.ctx, classes, s.env)

	lines := make([]string, len(res.Outcomes))
	for i, o := range res.Outcomes {
		lines[i] = renderOutcome(o)
	}

	return lines, nil
}

var errNoMatch = errors.New("no recognized class expression")

// command executes a control-mode command. It reports quit when the REPL
// should exit.
func (s *session) command(input string) (out string, quit bool, err error) {
	name, args, _ := strings.Cut(strings.TrimSpace(input), " ")
	args = strings.TrimSpace(args)

	switch name {
	case "q", "quit", "exit":
		return "", true, nil

	case "h", "help":
		return helpMessage(), false, nil

	case "helpers":
		return strings.Join(s.extractor.Helpers(), " "), false, nil

	case "set":
		if args == "" {
			return "", false, fmt.Errorf("%w: set NAME=VALUE ...", ErrUsage)
		}

		env, err := resolve.ParseAssignments(strings.Fields(args))
		if err != nil {
			return "", false, err
		}

		s.env = s.env.Merge(env)

		return s.state(), false, nil

	case "unset":
		if args == "" {
			clear(s.env)
		}

		for _, n := range strings.Fields(args) {
			delete(s.env, n)
		}

		return s.state(), false, nil

	case "state":
		return s.state(), false, nil

	default:
		return "", false, fmt.Errorf("%w: %s (try 'help')", ErrUnknownCommand, name)
	}
}

// state renders the current state as name=value pairs.
func (s *session) state() string {
	if len(s.env) == 0 {
		return "(no state)"
	}

	var b strings.Builder

	for i, name := range slices.Sorted(maps.Keys(s.env)) {
		if i > 0 {
			b.WriteByte('\n')
		}

		fmt.Fprintf(&b, "%s=%v", name, s.env[name])
	}

	return b.String()
}

// names returns the completion candidates for a word whose member-access
// parent is parent. Top-level candidates are the helpers, the state names and
// the JavaScript literals.
func (s *session) names(parent string) []string {
	if parent == "" {
		names := slices.Concat(s.extractor.Helpers(), literals)
		for name := range s.env {
			names = append(names, name)
		}

		return names
	}

	node := map[string]any(s.env)

	for seg := range strings.SplitSeq(parent, ".") {
		switch next := node[seg].(type) {
		case map[string]any:
			node = next
		case resolve.Env:
			node = next
		default:
			return nil
		}
	}

	return slices.Sorted(maps.Keys(node))
}

func renderClass(c lang.ConditionalClass) string {
	if c.Unconditional() {
		return resultStyle.Render(c.Classes)
	}

	return resultStyle.Render(c.Classes) + hintStyle.Render(" if ") + c.Condition
}

func renderOutcome(o resolve.Outcome) string {
	switch {
	case o.Err != nil:
		return errorStyle.Render("? ") + renderClass(o.ConditionalClass) +
			hintStyle.Render(" ("+o.Err.Error()+")")
	case o.Applies:
		return resultStyle.Render("✔ ") + renderClass(o.ConditionalClass)
	default:
		return hintStyle.Render("✘ " + o.ConditionalClass.String())
	}
}
