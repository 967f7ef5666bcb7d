package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// palette holds the styles used by the pretty handlers. Colors are dropped
// automatically when the output is not a terminal.
type palette struct {
	key, str, num, yes, no, dur, when lipgloss.Style
	trace, debug, info, warn, err     lipgloss.Style
}

func newPalette() palette {
	fg := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}

	return palette{
		key:   fg("8"),
		str:   fg("6"),
		num:   fg("3"),
		yes:   fg("2"),
		no:    fg("1"),
		dur:   fg("5"),
		when:  fg("4"),
		trace: fg("8"),
		debug: fg("4"),
		info:  fg("2"),
		warn:  fg("3").Bold(true),
		err:   fg("1").Bold(true),
	}
}

func (p palette) level(l slog.Level) lipgloss.Style {
	switch {
	case l >= slog.LevelError:
		return p.err
	case l >= slog.LevelWarn:
		return p.warn
	case l >= slog.LevelInfo:
		return p.info
	case l >= slog.LevelDebug:
		return p.debug
	default:
		return p.trace
	}
}

// prettyHandler holds the state shared by both pretty handlers.
type prettyHandler struct {
	opts   slog.HandlerOptions
	mu     *sync.Mutex
	w      io.Writer
	style  palette
	attrs  []slog.Attr
	groups []string
}

func newPrettyHandler(w io.Writer, opts *slog.HandlerOptions) prettyHandler {
	return prettyHandler{
		opts:  *opts,
		mu:    &sync.Mutex{},
		w:     w,
		style: newPalette(),
	}
}

func (h prettyHandler) enabled(level slog.Level) bool {
	threshold := slog.LevelInfo
	if h.opts.Level != nil {
		threshold = h.opts.Level.Level()
	}

	return level >= threshold
}

// record returns the attributes of r in output order, with the configured
// replacements applied and empty attributes removed. The level is left for
// [prettyHandler.value] to render so that it keeps its color.
func (h prettyHandler) record(r slog.Record) []slog.Attr {
	attrs := make([]slog.Attr, 0, r.NumAttrs()+len(h.attrs)+4)

	add := func(a slog.Attr) {
		if h.opts.ReplaceAttr != nil && a.Value.Kind() != slog.KindGroup {
			a = h.opts.ReplaceAttr(h.groups, a)
		}

		a.Value = a.Value.Resolve()
		if !a.Equal(slog.Attr{}) {
			attrs = append(attrs, a)
		}
	}

	if !r.Time.IsZero() {
		add(slog.Time(slog.TimeKey, r.Time))
	}

	attrs = append(attrs, slog.Any(slog.LevelKey, r.Level))

	if h.opts.AddSource {
		if src := r.Source(); src != nil {
			add(slog.String(slog.SourceKey, fmt.Sprintf("%s:%d", src.File, src.Line)))
		}
	}

	add(slog.String(slog.MessageKey, r.Message))

	for _, a := range h.attrs {
		add(a)
	}

	prefix := strings.Join(h.groups, ".")

	r.Attrs(func(a slog.Attr) bool {
		if prefix != "" {
			a.Key = prefix + "." + a.Key
		}

		add(a)

		return true
	})

	return attrs
}

func (h prettyHandler) write(buf *bytes.Buffer) error {
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h prettyHandler) withAttrs(attrs []slog.Attr) prettyHandler {
	prefix := strings.Join(h.groups, ".")
	if prefix != "" {
		qualified := make([]slog.Attr, len(attrs))
		for i, a := range attrs {
			qualified[i] = slog.Attr{Key: prefix + "." + a.Key, Value: a.Value}
		}

		attrs = qualified
	}

	h.attrs = append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...)

	return h
}

func (h prettyHandler) withGroup(name string) prettyHandler {
	h.groups = append(h.groups[:len(h.groups):len(h.groups)], name)

	return h
}

// value renders v with a style chosen by its kind.
func (h prettyHandler) value(v slog.Value) string {
	s := h.style

	switch v.Kind() {
	case slog.KindString:
		return s.str.Render(v.String())
	case slog.KindInt64:
		return s.num.Render(strconv.FormatInt(v.Int64(), 10))
	case slog.KindUint64:
		return s.num.Render(strconv.FormatUint(v.Uint64(), 10))
	case slog.KindFloat64:
		return s.num.Render(strconv.FormatFloat(v.Float64(), 'g', -1, 64))
	case slog.KindBool:
		if v.Bool() {
			return s.yes.Render("true")
		}

		return s.no.Render("false")
	case slog.KindDuration:
		return s.dur.Render(v.Duration().String())
	case slog.KindTime:
		return s.when.Render(v.Time().Format(time.RFC3339))
	case slog.KindGroup:
		parts := make([]string, 0, len(v.Group()))
		for _, a := range v.Group() {
			parts = append(parts, s.key.Render(a.Key)+"="+h.value(a.Value.Resolve()))
		}

		return "{" + strings.Join(parts, " ") + "}"
	}

	if level, ok := v.Any().(slog.Level); ok {
		return s.level(level).Render(strings.ToUpper(Level(level).String()))
	}

	if v.Any() == nil {
		return s.key.Render("null")
	}

	return s.str.Render(v.String())
}

// prettyTextHandler writes colorized key=value lines.
type prettyTextHandler struct{ prettyHandler }

func newPrettyTextHandler(w io.Writer, opts *slog.HandlerOptions) *prettyTextHandler {
	return &prettyTextHandler{newPrettyHandler(w, opts)}
}

func (h *prettyTextHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.enabled(level)
}

func (h *prettyTextHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	for _, a := range h.record(r) {
		if buf.Len() > 0 {
			buf.WriteByte(' ')
		}

		buf.WriteString(h.style.key.Render(a.Key))
		buf.WriteByte('=')
		buf.WriteString(h.value(a.Value))
	}

	return h.write(buf)
}

func (h *prettyTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &prettyTextHandler{h.withAttrs(attrs)}
}

func (h *prettyTextHandler) WithGroup(name string) slog.Handler {
	return &prettyTextHandler{h.withGroup(name)}
}

// prettyJSONHandler writes one colorized, indented object per record.
type prettyJSONHandler struct{ prettyHandler }

func newPrettyJSONHandler(w io.Writer, opts *slog.HandlerOptions) *prettyJSONHandler {
	return &prettyJSONHandler{newPrettyHandler(w, opts)}
}

func (h *prettyJSONHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.enabled(level)
}

func (h *prettyJSONHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)
	buf.WriteString("{")

	for i, a := range h.record(r) {
		if i > 0 {
			buf.WriteByte(',')
		}

		buf.WriteString("\n  ")
		buf.WriteString(h.style.key.Render(a.Key))
		buf.WriteString(": ")
		buf.WriteString(h.value(a.Value))
	}

	buf.WriteString("\n}")

	return h.write(buf)
}

func (h *prettyJSONHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &prettyJSONHandler{h.withAttrs(attrs)}
}

func (h *prettyJSONHandler) WithGroup(name string) slog.Handler {
	return &prettyJSONHandler{h.withGroup(name)}
}
