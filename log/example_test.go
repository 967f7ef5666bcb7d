package log_test

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/classcond/log"
)

func Example_basic() {
	logger := log.Make(os.Stdout, log.WithPretty(false), log.WithTimeLayout("none"))
	logger.Info("extraction complete", slog.Int("attributes", 3))
	// Output: {"level":"INFO","msg":"extraction complete","attributes":3}
}

func Example_levels() {
	logger := log.Make(os.Stdout,
		log.WithLevel(log.LevelWarn),
		log.WithFormat(log.FormatText),
		log.WithPretty(false),
		log.WithTimeLayout("none"))

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("unterminated attribute", slog.Int("offset", 42))
	// Output: level=WARN msg="unterminated attribute" offset=42
}

func Example_withAttributes() {
	logger := log.Make(os.Stdout,
		log.WithFormat(log.FormatText),
		log.WithPretty(false),
		log.WithTimeLayout("none"))
	logger = logger.With(slog.String("source", "App.vue"))

	logger.Info("processing")
	// Output: level=INFO msg=processing source=App.vue
}

func Example_withContext() {
	type requestIDKey struct{}

	ctx := context.WithValue(context.Background(), requestIDKey{}, "req-789")

	logger := log.Make(os.Stdout, log.WithLevel(log.LevelDebug))
	logger.DebugContext(ctx, "request details", slog.String("method", "POST"))
}
