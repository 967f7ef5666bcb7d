package cmd

import (
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/classcond/attr"
	"github.com/ardnew/classcond/lang"
	"github.com/ardnew/classcond/log"
)

// Options are the extraction settings shared by every command.
type Options struct {
	Helper   []string `help:"Additional class helper function names."         placeholder:"NAME"`
	Dialect  []string `default:"all"         enum:"${dialectEnum}"            help:"Template dialects to scan."      placeholder:"DIALECT"`
	MaxDepth int      `default:"${maxDepth}" help:"Maximum expression nesting depth."`
	Jobs     int      `default:"0"           help:"Sources processed concurrently (0 for one per CPU)." short:"j"`
}

// Vars returns the kong variables referenced by the Options tags.
func (*Options) Vars() kong.Vars {
	return kong.Vars{
		"dialectEnum": strings.Join(
			append([]string{"all"}, slices.Collect(attr.DialectNames())...), ","),
		"maxDepth": strconv.Itoa(lang.DefaultMaxDepth),
	}
}

// Dialects returns the selected dialect set.
func (o *Options) Dialects() (attr.Dialect, error) {
	d, ok := attr.ParseDialect(o.Dialect...)
	if !ok {
		return 0, ErrInvalidDialect.With(
			slog.String("dialect", strings.Join(o.Dialect, ",")))
	}

	return d, nil
}

// Extractor returns an [attr.Extractor] configured by o.
func (o *Options) Extractor(logger log.Logger) (*attr.Extractor, error) {
	d, err := o.Dialects()
	if err != nil {
		return nil, err
	}

	return attr.New(
		attr.WithHelpers(o.Helper...),
		attr.WithDialects(d),
		attr.WithMaxDepth(o.MaxDepth),
		attr.WithLogger(logger),
	), nil
}

// Parser returns a [lang.Parser] configured by o.
func (o *Options) Parser(logger log.Logger) lang.Parser {
	return lang.New(lang.WithMaxDepth(o.MaxDepth), lang.WithLogger(logger))
}
