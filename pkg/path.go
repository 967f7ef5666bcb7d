package pkg

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
)

// Prefix returns the name used for the per-user configuration and cache
// directories: the executable's base name without its extension.
//
// Debugger builds (__debug_bin1234) are renamed to [Name], and leading dots
// are removed.
//
//nolint:gochecknoglobals
var Prefix = sync.OnceValue(
	func() string {
		id := os.Args[0]
		if exe, err := os.Executable(); err == nil {
			id = exe
		}

		id = filepath.Base(id)
		id = strings.TrimSuffix(id, filepath.Ext(id))
		id = debugBin.ReplaceAllString(id, Name)

		return strings.TrimLeft(id, ".")
	},
)

var debugBin = regexp.MustCompile(`^__debug_bin\d+$`)

// ConfigDir returns the directory holding config.json and config.yaml.
//
//nolint:gochecknoglobals
var ConfigDir = sync.OnceValue(func() string {
	return userDir(os.UserConfigDir, ".config")
})

// CacheDir returns the directory used for transient files such as profiles and
// the REPL history.
//
//nolint:gochecknoglobals
var CacheDir = sync.OnceValue(func() string {
	return userDir(os.UserCacheDir, ".cache")
})

// userDir returns the [Prefix] subdirectory of the directory reported by
// lookup. If lookup fails it falls back to home/fallback, then to the
// working directory.
func userDir(lookup func() (string, error), fallback string) string {
	dir, err := lookup()
	if err != nil {
		if home, herr := os.UserHomeDir(); herr == nil {
			dir = filepath.Join(home, fallback)
		} else if dir, err = os.Getwd(); err != nil {
			dir = "."
		}
	}

	return filepath.Join(dir, Prefix())
}
