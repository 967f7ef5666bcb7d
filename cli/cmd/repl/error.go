package repl

import "errors"

// Sentinel errors.
var (
	ErrOutOfBounds    = errors.New("index out of range")
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("usage")
)
