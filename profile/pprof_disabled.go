//go:build !pprof

package profile

import "iter"

// Modes is empty when built without the pprof tag.
func Modes() iter.Seq[string] {
	return func(func(string) bool) {}
}

func start(string, string, bool) interface{ Stop() } { return ignore{} }
