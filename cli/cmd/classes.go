package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/classcond/log"
)

// Classes lists the distinct class names found in template sources.
type Classes struct {
	Output `embed:""`

	Query string `help:"Rank class names by fuzzy match against query." short:"q"`
	Limit int    `default:"0" help:"Maximum number of names to print (0 for all)." short:"n"`

	Sources []string `arg:"" default:"-" help:"Template source files or '-' for stdin." name:"source"`
}

// ClassCount is a class name and the number of conditional entries naming it.
type ClassCount struct {
	Name  string `json:"name"            yaml:"name"`
	Count int    `json:"count"           yaml:"count"`
	Match []int  `json:"match,omitempty" yaml:"match,omitempty"`
}

var matchStyle = lipgloss.NewStyle().Bold(true).Underline(true)

// Run executes the classes command.
func (c *Classes) Run(ctx context.Context, opts *Options) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	logger := log.With(slog.String("cmd", "classes"))

	x, err := opts.Extractor(logger)
	if err != nil {
		return err
	}

	perSource, err := forEachSource(ctx, c.Sources, opts.Jobs,
		func(_ context.Context, src source) (map[string]int, error) {
			counts := make(map[string]int)

			for _, e := range x.Extract(src.text) {
				for _, cc := range e.Conditional {
					for _, name := range cc.Names() {
						counts[name]++
					}
				}
			}

			return counts, nil
		})
	if err != nil {
		return err
	}

	counts := make(map[string]int)
	for _, m := range perSource {
		for name, n := range m {
			counts[name] += n
		}
	}

	names := c.rank(counts)

	return c.value(ctx, stdout(ctx), names, func(w io.Writer) error {
		style := c.style()

		for _, cc := range names {
			name := cc.Name
			if !c.Plain && len(cc.Match) > 0 {
				name = highlight(name, cc.Match)
			}

			count := style.Position.Render(fmt.Sprintf("%4d", cc.Count))
			if err := fprintln(w, count, name); err != nil {
				return err
			}
		}

		return nil
	})
}

// rank orders names alphabetically, or by fuzzy match score when a query is
// set, dropping names that do not match.
func (c *Classes) rank(counts map[string]int) []ClassCount {
	names := slices.Sorted(maps.Keys(counts))

	var ranked []ClassCount

	if c.Query == "" {
		ranked = make([]ClassCount, len(names))
		for i, name := range names {
			ranked[i] = ClassCount{Name: name, Count: counts[name]}
		}
	} else {
		for _, m := range fuzzy.Find(c.Query, names) {
			ranked = append(ranked, ClassCount{
				Name:  m.Str,
				Count: counts[m.Str],
				Match: m.MatchedIndexes,
			})
		}
	}

	if c.Limit > 0 && len(ranked) > c.Limit {
		ranked = ranked[:c.Limit]
	}

	if ranked == nil {
		ranked = []ClassCount{}
	}

	return ranked
}

// highlight renders the bytes of s at the given indexes with matchStyle.
func highlight(s string, indexes []int) string {
	var b strings.Builder

	next := 0

	for i := range len(s) {
		if next < len(indexes) && indexes[next] == i {
			b.WriteString(matchStyle.Render(s[i : i+1]))

			next++

			continue
		}

		b.WriteByte(s[i])
	}

	return b.String()
}
