package log

import (
	"iter"
	"log/slog"
	"strconv"
	"strings"
)

// Level represents the severity of a log message.
type Level slog.Level

const levelTraceMask = -8

const (
	LevelTrace Level = Level(levelTraceMask)  // trace
	LevelDebug Level = Level(slog.LevelDebug) // debug
	LevelInfo  Level = Level(slog.LevelInfo)  // info
	LevelWarn  Level = Level(slog.LevelWarn)  // warn
	LevelError Level = Level(slog.LevelError) // error
)

// DefaultLevel is the default log level.
const DefaultLevel = LevelInfo

var levels = []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError}

// String returns the lowercase name of l. Levels between the named ones are
// written as an offset from the nearest lower name, as in "info+2".
func (l Level) String() string {
	name := func(base Level, s string) string {
		if l == base {
			return s
		}

		return s + "+" + strconv.Itoa(int(l-base))
	}

	switch {
	case l >= LevelError:
		return name(LevelError, "error")
	case l >= LevelWarn:
		return name(LevelWarn, "warn")
	case l >= LevelInfo:
		return name(LevelInfo, "info")
	case l >= LevelDebug:
		return name(LevelDebug, "debug")
	case l >= LevelTrace:
		return name(LevelTrace, "trace")
	default:
		return "trace" + strconv.Itoa(int(l-LevelTrace))
	}
}

// Levels returns an iterator over all defined log levels.
func Levels() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, level := range levels {
			if !yield(level.String()) {
				return
			}
		}
	}
}

// ParseLevel parses a string representation of a log level.
// Valid level strings are "TRACE", "DEBUG", "INFO", "WARN", and "ERROR",
// optionally followed by a "+" or "-" and an integer offset.
// See [slog.Level.UnmarshalText] for details. Unrecognized strings select
// [DefaultLevel].
func ParseLevel(s string) Level {
	s = strings.TrimSpace(s)

	// slog does not know about trace.
	if len(s) >= 5 && strings.EqualFold(s[:5], "trace") {
		if s = s[5:]; s == "" {
			return LevelTrace
		}

		offset, err := strconv.Atoi(s)
		if err != nil {
			return DefaultLevel
		}

		return LevelTrace + Level(offset)
	}

	l := new(slog.Level)

	err := l.UnmarshalText([]byte(s))
	if err != nil {
		return DefaultLevel
	}

	return Level(*l)
}

// Format represents the output format for log messages.
type Format int

const (
	FormatText Format = iota // text
	FormatJSON               // json
)

// DefaultFormat is the default log message format.
const DefaultFormat = FormatJSON

// String returns the name of f.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "Format(" + strconv.Itoa(int(f)) + ")"
	}
}

// Formats returns an iterator over all defined log formats.
func Formats() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, format := range []Format{FormatJSON, FormatText} {
			if !yield(format.String()) {
				return
			}
		}
	}
}

// ParseFormat parses a string representation of a log format.
// Valid format strings are "json" and "text".
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	case "text":
		return FormatText
	default:
		return DefaultFormat
	}
}
