package lang

import "github.com/ardnew/classcond/log"

// DefaultMaxDepth bounds how deeply the engine recurses into nested ternaries,
// template interpolations, and helper arguments. Fragments nested deeper than
// this are reported as no-match.
const DefaultMaxDepth = 256

// Option configures a [Parser].
type Option func(Parser) Parser

// WithMaxDepth sets the recursion limit. Values less than 1 select
// [DefaultMaxDepth].
func WithMaxDepth(depth int) Option {
	return func(p Parser) Parser {
		if depth < 1 {
			depth = DefaultMaxDepth
		}

		p.maxDepth = depth

		return p
	}
}

// WithLogger sets the logger used to trace rejected fragments. The zero
// [log.Logger] discards everything.
func WithLogger(logger log.Logger) Option {
	return func(p Parser) Parser {
		p.logger = logger

		return p
	}
}
