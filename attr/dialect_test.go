package attr

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDialect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		names []string
		want  Dialect
		ok    bool
	}{
		{nil, 0, true},
		{[]string{"vue"}, DialectVue, true},
		{[]string{"vue,svelte", "JSX"}, DialectVue | DialectSvelte | DialectJSX, true},
		{[]string{" html , "}, DialectHTML, true},
		{[]string{"all"}, AllDialects, true},
		{[]string{"react"}, 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseDialect(tt.names...)
		assert.Equal(t, tt.ok, ok, "%q", tt.names)
		assert.Equal(t, tt.want, got, "%q", tt.names)
	}
}

func TestDialectString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "html,vue", (DialectVue | DialectHTML).String())
	assert.Equal(t, "", Dialect(0).String())
	assert.Equal(t,
		[]string{"html", "jsx", "vue", "svelte", "angular", "solid"},
		slices.Collect(DialectNames()))
}

func TestDialectHas(t *testing.T) {
	t.Parallel()

	d := DialectVue | DialectSolid
	assert.True(t, d.Has(DialectVue))
	assert.True(t, d.Has(DialectVue|DialectSolid))
	assert.False(t, d.Has(DialectHTML|DialectVue))
	assert.False(t, d.Has(0))
}
