package attr

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const formatDoc = "<div class=\"flex\">\n  <p className={on && 'bold'}>"

func formatReports() []Report {
	return []Report{NewReport("app.tsx", formatDoc, ExtractAll(formatDoc))}
}

func TestFormatJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, FormatJSON(context.Background(), &buf, formatReports(), 2))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "app.tsx", got[0]["source"])

	extractions, ok := got[0]["extractions"].([]any)
	require.True(t, ok)
	require.Len(t, extractions, 2)

	second, ok := extractions[1].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "mixed", second["kind"])
	assert.Equal(t, []any{"bold"}, second["classStrings"])
	assert.Equal(t,
		[]any{map[string]any{"classes": "bold", "condition": "on"}},
		second["conditionalClasses"])
}

func TestFormatJSONCompact(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, FormatJSON(context.Background(), &buf, formatReports(), 0))
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
}

func TestFormatJSONEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	reports := []Report{NewReport("empty.html", "", nil)}
	require.NoError(t, FormatJSON(context.Background(), &buf, reports, 0))
	assert.JSONEq(t, `[{"source":"empty.html","extractions":[]}]`, buf.String())
}

func TestFormatYAML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, FormatYAML(context.Background(), &buf, formatReports(), 2))

	var got []Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	require.Len(t, got[0].Extractions, 2)

	assert.Equal(t, KindSimple, got[0].Extractions[0].Kind)
	assert.Equal(t, []string{"flex"}, got[0].Extractions[0].ClassStrings)
	assert.Equal(t, "on", got[0].Extractions[1].Conditional[0].Condition)
}

func TestFormatText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, FormatText(context.Background(), &buf, formatReports(), PlainTextStyle()))

	want := "app.tsx\n" +
		"  1:6 simple   flex\n" +
		"  2:6 mixed    bold if on\n"
	assert.Equal(t, want, buf.String())
}

func TestReportPosition(t *testing.T) {
	t.Parallel()

	r := NewReport("x", "ab\ncd\n\nef", nil)

	tests := []struct {
		offset, line, col int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{3, 2, 1},
		{7, 4, 1},
		{-5, 1, 1},
		{100, 4, 3},
	}

	for _, tt := range tests {
		line, col := r.Position(tt.offset)
		assert.Equal(t, tt.line, line, "offset %d", tt.offset)
		assert.Equal(t, tt.col, col, "offset %d", tt.offset)
	}
}

func TestKindText(t *testing.T) {
	t.Parallel()

	for k := KindSimple; k <= KindMixed; k++ {
		text, err := k.MarshalText()
		require.NoError(t, err)

		var got Kind
		require.NoError(t, got.UnmarshalText(text))
		assert.Equal(t, k, got)
	}

	var k Kind
	assert.Error(t, k.UnmarshalText([]byte("bogus")))
	assert.Equal(t, "Kind(9)", Kind(9).String())
}
