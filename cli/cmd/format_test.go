package cmd

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputValue(t *testing.T) {
	v := []ClassCount{{Name: "flex", Count: 2}}

	tests := []struct {
		out  Output
		want string
	}{
		{Output{Format: "json", Indent: 0}, `[{"name":"flex","count":2}]` + "\n"},
		{Output{Format: "json", Indent: 2}, "[\n  {\n    \"name\": \"flex\",\n    \"count\": 2\n  }\n]\n"},
		{Output{Format: "yaml", Indent: 2}, "- name: flex\n  count: 2\n"},
		{Output{Format: "text"}, "custom\n"},
	}

	for _, tt := range tests {
		var buf bytes.Buffer

		err := tt.out.value(context.Background(), &buf, v, func(w io.Writer) error {
			return fprintln(w, "custom")
		})

		require.NoError(t, err, tt.out.Format)
		assert.Equal(t, tt.want, buf.String(), "%+v", tt.out)
	}
}

func TestOutputInvalidFormat(t *testing.T) {
	var buf bytes.Buffer

	err := Output{Format: "xml"}.value(context.Background(), &buf, nil, nil)
	require.ErrorIs(t, err, ErrInvalidFormat)

	err = Output{Format: "xml"}.reports(context.Background(), &buf, nil)
	require.ErrorIs(t, err, ErrInvalidFormat)
	assert.Empty(t, buf.String())
}
