// Package profile provides optional runtime profiling for classcond.
//
// Profiling integrates [github.com/pkg/profile] and is compiled in only when
// building with the "pprof" build tag:
//
//	go build -tags pprof -o classcond .
//
// Without the tag, [Modes] is empty and [Profiler.Start] returns a no-op.
//
// A profiler is configured by value and started once:
//
//	p := profile.Profiler{Mode: "cpu", Path: "/tmp/profiles"}
//	ctrl := p.Start()
//	defer ctrl.Stop()
//
// Profile files are written to Path with names matching the mode (cpu.pprof,
// mem.pprof, and so on) and can be analyzed with "go tool pprof".
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
