package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/classcond/cli/cmd/repl"
	"github.com/ardnew/classcond/log"
	"github.com/ardnew/classcond/resolve"
)

// Repl starts an interactive session for resolving class expressions.
type Repl struct {
	Set     []string `help:"Initial component state (repeatable)." placeholder:"NAME=VALUE" short:"s"`
	History string   `default:"${history}" help:"History file path (empty to disable)." type:"path"`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context, opts *Options) error {
	logger := log.With(slog.String("cmd", "repl"))

	x, err := opts.Extractor(logger)
	if err != nil {
		return err
	}

	env, err := resolve.ParseAssignments(r.Set)
	if err != nil {
		return err
	}

	return repl.Run(ctx, repl.Config{
		Extractor: x,
		Parser:    opts.Parser(logger),
		Evaluator: resolve.New(resolve.WithLogger(logger)),
		Env:       env,
		History:   r.History,
		Logger:    logger,
	})
}
