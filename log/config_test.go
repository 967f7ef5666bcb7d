package log

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Options_SetFields(t *testing.T) {
	c := apply(config{},
		WithLevel(LevelWarn),
		WithFormat(FormatText),
		WithCaller(true),
		WithPretty(false),
	)

	assert.Equal(t, LevelWarn, c.level)
	assert.Equal(t, FormatText, c.format)
	assert.True(t, c.caller, "caller")
	assert.False(t, c.pretty, "pretty")
	assert.NotNil(t, c.mutex, "options allocate a mutex")
}

func TestConfig_Clone_SeparatesMutex(t *testing.T) {
	c := makeConfig(nil)
	d := c.clone(WithLevel(LevelError))

	assert.NotSame(t, c.mutex, d.mutex)
	assert.Equal(t, DefaultLevel, c.level)
	assert.Equal(t, LevelError, d.level)
}

func TestConfig_formatTime_FormatsTimestamp(t *testing.T) {
	now := time.Date(2023, 10, 15, 14, 30, 45, 123456789, time.UTC)

	tests := []struct {
		name   string
		layout string
		want   string
	}{
		{"rfc3339 named", "RFC3339", "2023-10-15T14:30:45Z"},
		{"rfc3339 nano named", "rfc-3339-nano", "2023-10-15T14:30:45.123456789Z"},
		{"kitchen", "Kitchen", "2:30PM"},
		{"date only", "DateOnly", "2023-10-15"},
		{"millis", "ms", "Oct 15 14:30:45.123"},
		{"custom", "15:04", "14:30"},
		{"none", "none", ""},
		{"blank", "  ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, makeFormatTimeFunc(tt.layout)(now))
		})
	}
}

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelTrace, "trace"},
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
		{LevelInfo + 2, "info+2"},
		{LevelError + 4, "error+4"},
		{LevelTrace - 2, "trace-2"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.level.String(), "Level(%d)", int(tt.level))
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"trace", LevelTrace},
		{"TRACE+1", LevelTrace + 1},
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"warn", LevelWarn},
		{"error-2", LevelError - 2},
		{"bogus", DefaultLevel},
		{"trace+x", DefaultLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), "ParseLevel(%q)", tt.in)
	}

	assert.Equal(t,
		[]string{"trace", "debug", "info", "warn", "error"},
		slices.Collect(Levels()))
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatText, ParseFormat(" Text "))
	assert.Equal(t, FormatJSON, ParseFormat("json"))
	assert.Equal(t, DefaultFormat, ParseFormat("xml"), "unknown name")
	assert.Equal(t, "Format(7)", Format(7).String())
}

func BenchmarkConfig_formatTime(b *testing.B) {
	format := makeFormatTimeFunc("RFC3339Nano")
	now := time.Now()

	for b.Loop() {
		_ = format(now)
	}
}
