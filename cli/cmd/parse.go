package cmd

import (
	"context"
	"io"
	"log/slog"

	"github.com/ardnew/classcond/log"
)

// Parse resolves a single expression into conditional classes.
type Parse struct {
	Output `embed:""`

	Expression string `arg:"" help:"Expression fragment, e.g. \"isActive && 'ring'\"." name:"expression"`
}

// Run executes the parse command.
func (p *Parse) Run(ctx context.Context, opts *Options) error {
	logger := log.With(slog.String("cmd", "parse"))

	classes, ok := opts.Parser(logger).Parse(p.Expression)
	if !ok {
		return ErrNoMatch.With(slog.String("expression", p.Expression))
	}

	return p.value(ctx, stdout(ctx), classes, func(w io.Writer) error {
		style := p.style()

		for _, c := range classes {
			line := style.Classes.Render(c.Classes)
			if !c.Unconditional() {
				line += " if " + style.Condition.Render(c.Condition)
			}

			if err := fprintln(w, line); err != nil {
				return err
			}
		}

		return nil
	})
}
