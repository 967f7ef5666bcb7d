package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/classcond/attr"
)

// Output selects how a command encodes its results.
type Output struct {
	Format string `default:"json" enum:"json,yaml,text" help:"Output format." short:"f"`
	Indent int    `default:"2"                          help:"Indent width for JSON and YAML output (0 for compact)."`
	Plain  bool   `default:"false"                      help:"Disable styling of text output."`
}

// style returns the text style selected by o.
func (o Output) style() attr.TextStyle {
	if o.Plain {
		return attr.PlainTextStyle()
	}

	return attr.DefaultTextStyle()
}

// reports writes extraction reports to w.
func (o Output) reports(ctx context.Context, w io.Writer, reports []attr.Report) error {
	var err error

	switch o.Format {
	case "json":
		err = attr.FormatJSON(ctx, w, reports, o.Indent)
	case "yaml":
		err = attr.FormatYAML(ctx, w, reports, o.Indent)
	case "text":
		err = attr.FormatText(ctx, w, reports, o.style())
	default:
		return ErrInvalidFormat.With(slog.String("format", o.Format))
	}

	if err != nil {
		return ErrWriteOutput.Wrap(err).With(slog.String("format", o.Format))
	}

	return nil
}

// value writes v to w as JSON or YAML. Text output is produced by calling
// text, which is not invoked for the structured formats.
func (o Output) value(
	ctx context.Context,
	w io.Writer,
	v any,
	text func(io.Writer) error,
) error {
	var (
		data []byte
		err  error
	)

	switch o.Format {
	case "json":
		if o.Indent > 0 {
			data, err = json.MarshalIndent(v, "", strings.Repeat(" ", o.Indent))
		} else {
			data, err = json.Marshal(v)
		}

		data = append(data, '\n')

	case "yaml":
		opts := []yaml.EncodeOption{yaml.Flow(o.Indent == 0)}
		if o.Indent > 0 {
			opts = append(opts, yaml.Indent(o.Indent))
		}

		data, err = yaml.MarshalContext(ctx, v, opts...)

	case "text":
		err = text(w)

	default:
		return ErrInvalidFormat.With(slog.String("format", o.Format))
	}

	if err == nil && len(data) > 0 {
		_, err = w.Write(data)
	}

	if err != nil {
		return ErrWriteOutput.Wrap(err).With(slog.String("format", o.Format))
	}

	return nil
}

// fprintln is fmt.Fprintln for writers whose errors are collected later.
func fprintln(w io.Writer, a ...any) error {
	_, err := fmt.Fprintln(w, a...)

	return err
}
