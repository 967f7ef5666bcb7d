package attr

import (
	"cmp"
	"log/slog"
	"slices"

	"github.com/ardnew/classcond/lang"
	"github.com/ardnew/classcond/log"
)

// Extractor locates class attributes in documents.
//
// An Extractor is immutable once built and safe for concurrent use.
type Extractor struct {
	parser   lang.Parser
	logger   log.Logger
	helpers  map[string]struct{}
	dialects Dialect
}

var defaultExtractor = New()

// New returns an Extractor configured by opts.
func New(opts ...Option) *Extractor {
	c := config{
		helpers:  DefaultHelpers,
		dialects: AllDialects,
		maxDepth: lang.DefaultMaxDepth,
	}
	for _, opt := range opts {
		c = opt(c)
	}

	helpers := make(map[string]struct{}, len(c.helpers))
	for _, name := range c.helpers {
		helpers[name] = struct{}{}
	}

	return &Extractor{
		parser:   c.parser(),
		logger:   c.logger,
		helpers:  helpers,
		dialects: c.dialects,
	}
}

// ExtractAll returns every class attribute in document, in document order,
// using the default [Extractor].
func ExtractAll(document string) []Extraction {
	return defaultExtractor.Extract(document)
}

// Extract returns every class attribute in document, in document order. No two
// returned extractions overlap.
func (x *Extractor) Extract(document string) []Extraction {
	var all []Extraction

	for _, loc := range locators {
		if !x.dialects.Has(loc.dialect) {
			continue
		}

		all = append(all, loc.locate(x, document)...)
	}

	return dedupe(all)
}

// Helpers returns the helper allow-list, sorted.
func (x *Extractor) Helpers() []string {
	names := make([]string, 0, len(x.helpers))
	for name := range x.helpers {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

func (x *Extractor) isHelper(name string) bool {
	_, ok := x.helpers[name]

	return ok
}

func (x *Extractor) skip(dialect Dialect, start int, reason string) {
	x.logger.Trace("skipped attribute",
		slog.String("dialect", dialect.String()),
		slog.Int("offset", start),
		slog.String("reason", reason),
	)
}

// dedupe orders extractions by start offset, keeping only those that begin at
// or after the end of the previously kept extraction. Ties keep locator order.
func dedupe(all []Extraction) []Extraction {
	slices.SortStableFunc(all, func(a, b Extraction) int {
		return cmp.Compare(a.Range.Start, b.Range.Start)
	})

	kept := make([]Extraction, 0, len(all))
	for _, e := range all {
		if len(kept) > 0 && e.Range.Start < kept[len(kept)-1].Range.End {
			continue
		}

		kept = append(kept, e)
	}

	return kept
}
