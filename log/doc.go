// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// The package offers configurable time formatting, caller information,
// and output formats that are applied at logger creation time using
// functional options.
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Info("extraction complete", slog.Int("attributes", 3))
//	logger.Error("read failed", slog.Any("error", err))
//
// # Configuration
//
// Configure the logger using functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelTrace),
//		log.WithTimeLayout("RFC3339Nano"),
//		log.WithCaller(true))
//
// The zero [Logger] discards everything. Library packages accept a Logger
// through their own options and stay silent unless one is supplied.
//
// # Package-Level Logger
//
// Functions such as [Info] and [Error] write to a package-level logger that
// is reconfigured with [Config]. It writes pretty JSON to stderr until then.
//
// # Supported Levels
//
// Five levels are supported: [LevelTrace], [LevelDebug], [LevelInfo],
// [LevelWarn], and [LevelError]. Messages below the configured level are
// discarded.
//
// # Output Formats
//
// Two output formats are supported: [FormatJSON] (default) and
// [FormatText]. Either may be pretty printed with terminal colors using
// [WithPretty], which is enabled by default.
package log
