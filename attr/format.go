package attr

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-yaml"
)

// Report is the set of extractions found in one source document.
type Report struct {
	Source      string       `json:"source"      yaml:"source"`
	Extractions []Extraction `json:"extractions" yaml:"extractions"`

	text string
}

// NewReport returns the report for document text read from source.
func NewReport(source, text string, extractions []Extraction) Report {
	if extractions == nil {
		extractions = []Extraction{}
	}

	return Report{Source: source, Extractions: extractions, text: text}
}

// Position returns the 1-based line and column of byte offset in the report's
// document. Columns count bytes.
func (r Report) Position(offset int) (line, column int) {
	offset = min(max(offset, 0), len(r.text))
	before := r.text[:offset]
	line = strings.Count(before, "\n") + 1
	column = offset - strings.LastIndexByte(before, '\n')

	return line, column
}

// FormatJSON writes reports to w as a JSON array. An indent of zero writes
// compact output.
func FormatJSON(_ context.Context, w io.Writer, reports []Report, indent int) error {
	var (
		data []byte
		err  error
	)

	if indent > 0 {
		data, err = json.MarshalIndent(reports, "", strings.Repeat(" ", indent))
	} else {
		data, err = json.Marshal(reports)
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}

// FormatYAML writes reports to w as a YAML sequence. An indent of zero writes
// flow style.
func FormatYAML(ctx context.Context, w io.Writer, reports []Report, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	data, err := yaml.MarshalContext(ctx, reports, opts...)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, string(data))

	return err
}

// TextStyle holds the styles used by [FormatText].
type TextStyle struct {
	Source    lipgloss.Style
	Position  lipgloss.Style
	Kind      lipgloss.Style
	Classes   lipgloss.Style
	Condition lipgloss.Style
}

// DefaultTextStyle returns colorized styles for terminal output.
func DefaultTextStyle() TextStyle {
	return TextStyle{
		Source:    lipgloss.NewStyle().Bold(true).Underline(true),
		Position:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Kind:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		Classes:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Condition: lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Italic(true),
	}
}

// PlainTextStyle returns styles that render without decoration.
func PlainTextStyle() TextStyle {
	plain := lipgloss.NewStyle()

	return TextStyle{
		Source:    plain,
		Position:  plain,
		Kind:      plain,
		Classes:   plain,
		Condition: plain,
	}
}

// FormatText writes reports to w for reading in a terminal:
//
//	src/App.tsx
//	  3:15 helper  flex p-4
//	  3:15 helper  bg-blue-500 if isActive
func FormatText(_ context.Context, w io.Writer, reports []Report, style TextStyle) error {
	for i, r := range reports {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintln(w, style.Source.Render(r.Source)); err != nil {
			return err
		}

		for _, e := range r.Extractions {
			line, col := r.Position(e.Range.Start)
			pos := style.Position.Render(fmt.Sprintf("%d:%d", line, col))
			kind := style.Kind.Render(fmt.Sprintf("%-8s", e.Kind))

			for _, c := range e.Conditional {
				text := style.Classes.Render(c.Classes)
				if !c.Unconditional() {
					text += " " + style.Condition.Render("if "+c.Condition)
				}

				if _, err := fmt.Fprintf(w, "  %s %s %s\n", pos, kind, text); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
