package log

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackage_LogFunctions_UseDefaultLogger(t *testing.T) {
	original := Default()
	defer func() {
		defaultMu.Lock()
		defaultLog = original
		defaultMu.Unlock()
	}()

	var buf bytes.Buffer
	Config(WithOutput(&buf), WithLevel(LevelTrace), WithFormat(FormatJSON), WithPretty(false))

	tests := []struct {
		name  string
		fn    func(string, ...slog.Attr)
		level string
		msg   string
	}{
		{"Trace", Trace, "TRACE", "trace message"},
		{"Debug", Debug, "DEBUG", "debug message"},
		{"Info", Info, "INFO", "info message"},
		{"Warn", Warn, "WARN", "warn message"},
		{"Error", Error, "ERROR", "error message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.fn(tt.msg, slog.String("key", "value"))

			output := buf.String()
			assert.Contains(t, output, tt.msg)
			assert.Contains(t, output, tt.level)
			assert.Contains(t, output, `"key":"value"`)
		})
	}
}
