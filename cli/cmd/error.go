package cmd

import (
	"errors"
	"log/slog"
	"slices"
)

// Sentinel errors returned by the commands. Use errors.Is to match them; the
// returned values carry the cause and attributes describing the input.
var (
	ErrReadInput      = NewError("read input")
	ErrWriteOutput    = NewError("write output")
	ErrInvalidFormat  = NewError("invalid output format")
	ErrInvalidDialect = NewError("invalid dialect")
	ErrNoMatch        = NewError("expression not recognized")
	ErrLoadState      = NewError("load state")
	ErrNoInput        = NewError("no input (pass files or '-' for stdin)")
)

// Error is a command error with a cause and structured logging attributes.
type Error struct {
	msg   string
	err   error
	attrs []slog.Attr
}

// NewError returns a sentinel Error with message msg.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// Error formats as "msg: cause", omitting whichever part is empty.
func (e *Error) Error() string {
	switch {
	case e.err == nil:
		return e.msg
	case e.msg == "":
		return e.err.Error()
	default:
		return e.msg + ": " + e.err.Error()
	}
}

func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the sentinel e was derived from.
func (e *Error) Is(target error) bool {
	var t *Error

	return errors.As(target, &t) &&
		t.err == nil && len(t.attrs) == 0 && t.msg == e.msg
}

func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap returns a copy of e caused by err.
func (e *Error) Wrap(err error) *Error {
	return &Error{msg: e.msg, err: err, attrs: e.attrs}
}

// With returns a copy of e with attrs appended.
func (e *Error) With(attrs ...slog.Attr) *Error {
	return &Error{msg: e.msg, err: e.err, attrs: slices.Concat(e.attrs, attrs)}
}
