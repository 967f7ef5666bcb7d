package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/ardnew/classcond/lang"
	"github.com/ardnew/classcond/log"
	"github.com/ardnew/classcond/resolve"
)

// Eval reports which extracted classes apply under a given component state.
type Eval struct {
	Output `embed:""`

	Set    []string `help:"Assign state, e.g. isActive=true or props.size=3 (repeatable)." placeholder:"NAME=VALUE" short:"s"`
	State  string   `help:"YAML or JSON file with the component state."                       type:"existingfile"`
	Strict bool     `help:"Fail when a condition cannot be evaluated."`

	Sources []string `arg:"" default:"-" help:"Template source files or '-' for stdin." name:"source"`
}

// Evaluation is the outcome of evaluating one source.
type Evaluation struct {
	Source   string            `json:"source"   yaml:"source"`
	Applied  []string          `json:"applied"  yaml:"applied"`
	Outcomes []resolve.Outcome `json:"outcomes" yaml:"outcomes"`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context, opts *Options) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	logger := log.With(slog.String("cmd", "eval"))

	env, err := e.env()
	if err != nil {
		return err
	}

	x, err := opts.Extractor(logger)
	if err != nil {
		return err
	}

	ev := resolve.New(resolve.WithLogger(logger))

	evals, err := forEachSource(ctx, e.Sources, opts.Jobs,
		func(ctx context.Context, src source) (Evaluation, error) {
			var classes []lang.ConditionalClass
			for _, found := range x.Extract(src.text) {
				classes = append(classes, found.Conditional...)
			}

			res, err := ev.Evaluate(ctx, classes, env)
			if err != nil {
				if ctx.Err() != nil || e.Strict {
					return Evaluation{}, err
				}

				logger.WarnContext(ctx, "some conditions could not be evaluated",
					slog.String("source", src.name),
					slog.Any("error", err),
				)
			}

			applied := res.Classes()
			if applied == nil {
				applied = []string{}
			}

			return Evaluation{
				Source:   src.name,
				Applied:  applied,
				Outcomes: res.Outcomes,
			}, nil
		})
	if err != nil {
		return err
	}

	return e.value(ctx, stdout(ctx), evals, func(w io.Writer) error {
		return e.text(w, evals)
	})
}

// env merges the state file, if any, with the --set assignments, which take
// precedence.
func (e *Eval) env() (resolve.Env, error) {
	env := resolve.Env{}

	if e.State != "" {
		f, err := os.Open(e.State)
		if err != nil {
			return nil, ErrLoadState.Wrap(err).With(slog.String("path", e.State))
		}
		defer f.Close()

		loaded, err := resolve.LoadEnv(f)
		if err != nil {
			return nil, ErrLoadState.Wrap(err).With(slog.String("path", e.State))
		}

		env = env.Merge(loaded)
	}

	set, err := resolve.ParseAssignments(e.Set)
	if err != nil {
		return nil, err
	}

	return env.Merge(set), nil
}

func (e *Eval) text(w io.Writer, evals []Evaluation) error {
	style := e.style()

	for i, ev := range evals {
		if i > 0 {
			if err := fprintln(w); err != nil {
				return err
			}
		}

		if err := fprintln(w, style.Source.Render(ev.Source)); err != nil {
			return err
		}

		for _, o := range ev.Outcomes {
			mark := "-"
			if o.Applies {
				mark = "+"
			}

			line := "  " + mark + " " + style.Classes.Render(o.Classes)
			if !o.Unconditional() {
				line += " if " + style.Condition.Render(o.Condition)
			}

			if o.Err != nil {
				line += " " + style.Position.Render("("+o.Err.Error()+")")
			}

			if err := fprintln(w, line); err != nil {
				return err
			}
		}
	}

	return nil
}
