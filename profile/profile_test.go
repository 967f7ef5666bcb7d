package profile

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	p := Make(WithMode("cpu"), WithPath("/tmp/x"), WithQuiet(true))

	assert.Equal(t, Profiler{Mode: "cpu", Path: "/tmp/x", Quiet: true}, p)
}

func TestStartWithoutMode(t *testing.T) {
	ctrl := Make(WithPath(t.TempDir())).Start()
	assert.IsType(t, ignore{}, ctrl)

	ctrl.Stop()
}

func TestModesOmitsQuiet(t *testing.T) {
	assert.NotContains(t, slices.Collect(Modes()), "quiet")
}
