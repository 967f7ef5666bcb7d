package cli

import (
	"os"
	"path/filepath"

	"github.com/ardnew/classcond/pkg"
)

// baseConfig is the base name of the configuration file.
const baseConfig = "config"

// baseHistory is the base name of the REPL history file.
const baseHistory = "history"

// defaultDirMode is the default permission mode for created directories.
var defaultDirMode os.FileMode = 0o700

// configPath returns the absolute path to a file or directory formed by joining
// the global configuration directory path with the given path elements.
//
// If no elements are given, it is equivalent to calling [pkg.ConfigDir].
func configPath(elem ...string) string {
	return filepath.Join(append([]string{pkg.ConfigDir()}, elem...)...)
}

// cachePath is like [configPath] for the cache directory.
func cachePath(elem ...string) string {
	return filepath.Join(append([]string{pkg.CacheDir()}, elem...)...)
}

// mkdirAllRequired creates all required runtime directories.
func mkdirAllRequired() error {
	err := os.MkdirAll(pkg.ConfigDir(), defaultDirMode)
	if err != nil {
		return err
	}

	return os.MkdirAll(pkg.CacheDir(), defaultDirMode)
}
