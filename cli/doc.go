// Package cli contains the command line interface for classcond.
//
// # Usage
//
//	classcond [flags] [extract] [source ...]
//	classcond parse <expression>
//	classcond classes [--query q] [source ...]
//	classcond eval [--set name=value ...] [--state file] [source ...]
//	classcond repl
//
// Sources are template files; "-" (the default) reads stdin.
//
// # Configuration
//
// Flag defaults are read from config.yaml and config.json in the user
// configuration directory (for example ~/.config/classcond). YAML keys may
// use hyphens or underscores and may nest:
//
//	dialect: [jsx, vue]
//	helper: [tw]
//	log:
//	  level: debug
//
// Command-line flags override config file values.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, Kitchen, etc.)
//   - --[no-]log-caller: Include caller information in log output
//   - --[no-]log-pretty: Colorize log output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o classcond .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory
package cli
