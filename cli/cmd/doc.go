// Package cmd implements the classcond subcommands.
//
// Every command reads template sources through the same concurrent reader,
// builds an [attr.Extractor] from the shared [Options], and writes its
// results to the kong context's standard output.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the configuration file.
	ConfigIdentifier = "config"

	// HistoryIdentifier is the kong variable identifier containing the path
	// to the REPL history file.
	HistoryIdentifier = "history"
)
