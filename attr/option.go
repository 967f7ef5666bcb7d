package attr

import (
	"slices"

	"github.com/ardnew/classcond/lang"
	"github.com/ardnew/classcond/log"
)

// DefaultHelpers lists the class-composition helpers recognized in JSX brace
// expressions.
var DefaultHelpers = []string{
	"clsx", "classnames", "classNames", "cn", "cx", "twMerge", "twJoin",
}

type config struct {
	helpers  []string
	dialects Dialect
	maxDepth int
	logger   log.Logger
}

// Option configures an [Extractor].
type Option func(config) config

// WithHelpers adds names to the helper allow-list.
func WithHelpers(names ...string) Option {
	return func(c config) config {
		c.helpers = append(slices.Clone(c.helpers), names...)

		return c
	}
}

// WithDialects restricts the locators that run to those in d. A zero d
// selects [AllDialects].
func WithDialects(d Dialect) Option {
	return func(c config) config {
		if d == 0 {
			d = AllDialects
		}

		c.dialects = d

		return c
	}
}

// WithMaxDepth sets the expression recursion limit. See [lang.WithMaxDepth].
func WithMaxDepth(depth int) Option {
	return func(c config) config {
		c.maxDepth = depth

		return c
	}
}

// WithLogger sets the logger used to trace skipped attributes.
func WithLogger(logger log.Logger) Option {
	return func(c config) config {
		c.logger = logger

		return c
	}
}

func (c config) parser() lang.Parser {
	return lang.New(lang.WithMaxDepth(c.maxDepth), lang.WithLogger(c.logger))
}
