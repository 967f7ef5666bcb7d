package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/classcond/attr"
	"github.com/ardnew/classcond/log"
)

// Extract prints the class attributes found in template sources.
type Extract struct {
	Output `embed:""`

	Sources []string `arg:"" default:"-" help:"Template source files or '-' for stdin." name:"source"`
}

// Run executes the extract command.
func (e *Extract) Run(ctx context.Context, opts *Options) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	logger := log.With(slog.String("cmd", "extract"))

	x, err := opts.Extractor(logger)
	if err != nil {
		return err
	}

	reports, err := forEachSource(ctx, e.Sources, opts.Jobs,
		func(ctx context.Context, src source) (attr.Report, error) {
			found := x.Extract(src.text)

			logger.DebugContext(ctx, "extracted",
				slog.String("source", src.name),
				slog.Int("count", len(found)),
			)

			return attr.NewReport(src.name, src.text, found), nil
		})
	if err != nil {
		return err
	}

	return e.reports(ctx, stdout(ctx), reports)
}
