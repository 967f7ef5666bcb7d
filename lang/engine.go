package lang

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/ardnew/classcond/log"
	"github.com/ardnew/classcond/scan"
)

// production identifies one expression shape recognized by the engine.
//
// Productions are tried in declaration order and the first that matches
// wins. The string literal must precede every production that splits on an
// operator, since operator-like bytes may appear inside a string.
type production int

const (
	prodObject   production = iota // object
	prodLiteral                    // literal
	prodAnd                        // and
	prodOr                         // or
	prodNullish                    // nullish
	prodTernary                    // ternary
	prodTemplate                   // template

	numProductions
)

var productionNames = [numProductions]string{
	"object", "literal", "and", "or", "nullish", "ternary", "template",
}

// String returns the name of the production.
func (p production) String() string {
	if p < 0 || p >= numProductions {
		return "unknown"
	}

	return productionNames[p]
}

// errTooDeep aborts a parse whose nesting exceeds the depth limit. It is
// propagated through every enclosing production so that the whole fragment
// resolves to no match.
var errTooDeep = errors.New("expression nesting too deep")

// Parser resolves expression fragments into conditional classes.
//
// A Parser holds only configuration and may be copied and shared freely. The
// zero value is ready to use with the default depth limit.
type Parser struct {
	logger   log.Logger
	maxDepth int
}

// New returns a Parser configured by opts.
func New(opts ...Option) Parser {
	p := Parser{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		p = opt(p)
	}

	return p
}

// ParseExpression resolves fragment into conditional classes using a default
// [Parser]. It reports false when no recognized expression shape matches.
//
// Recognized shapes, in priority order:
//
//	{ 'hover:bg-blue-500': isActive, active: true }  // object literal
//	'flex p-4'                                       // string literal
//	isActive && 'bg-blue-500'                        // logical AND
//	className || 'fallback'                          // logical OR
//	className ?? 'fallback'                          // nullish coalescing
//	a ? 'x' : b ? 'y' : 'z'                          // (nested) ternary
//	`flex ${isActive ? 'ring' : ''} p-4`             // template string
func ParseExpression(fragment string) ([]ConditionalClass, bool) {
	return Parser{}.Parse(fragment)
}

// Parse resolves fragment into conditional classes. It reports false when no
// recognized expression shape matches.
//
// Resolution is all or nothing: if any part of fragment nests deeper than the
// depth limit, the whole fragment is reported as no match.
func (p Parser) Parse(fragment string) ([]ConditionalClass, bool) {
	return p.top(fragment, p.parse)
}

// Object resolves fragment as an object literal only.
func (p Parser) Object(fragment string) ([]ConditionalClass, bool) {
	return p.top(fragment, p.only(prodObject))
}

// Template resolves fragment as a template string only.
func (p Parser) Template(fragment string) ([]ConditionalClass, bool) {
	return p.top(fragment, p.only(prodTemplate))
}

// Literal resolves fragment as a string literal only.
func (p Parser) Literal(fragment string) ([]ConditionalClass, bool) {
	return p.top(fragment, p.only(prodLiteral))
}

type parseFunc func(fragment string, depth int) ([]ConditionalClass, bool, error)

func (p Parser) only(prod production) parseFunc {
	return func(fragment string, depth int) ([]ConditionalClass, bool, error) {
		return p.try(prod, strings.TrimSpace(fragment), depth)
	}
}

// top runs fn at depth zero and discards any partial result of a parse that
// was aborted by the depth limit.
func (p Parser) top(fragment string, fn parseFunc) ([]ConditionalClass, bool) {
	classes, ok, err := fn(fragment, 0)
	if err != nil {
		p.logger.Debug("fragment dropped",
			slog.String("fragment", fragment),
			slog.Int("limit", p.limit()),
			slog.Any("error", err))

		return nil, false
	}

	return classes, ok
}

func (p Parser) limit() int {
	if p.maxDepth < 1 {
		return DefaultMaxDepth
	}

	return p.maxDepth
}

func (p Parser) parse(fragment string, depth int) ([]ConditionalClass, bool, error) {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return nil, false, nil
	}

	for prod := range numProductions {
		classes, ok, err := p.try(prod, fragment, depth)
		if err != nil {
			return nil, false, err
		}

		if ok {
			return classes, true, nil
		}
	}

	p.logger.Trace("no production matched",
		slog.String("fragment", fragment),
		slog.Int("depth", depth))

	return nil, false, nil
}

// try applies a single production to an already trimmed fragment. The error
// is non-nil only when the depth limit is exceeded.
func (p Parser) try(
	prod production,
	fragment string,
	depth int,
) ([]ConditionalClass, bool, error) {
	if depth > p.limit() {
		p.logger.Trace("depth limit reached",
			slog.String("production", prod.String()),
			slog.Int("depth", depth))

		return nil, false, errTooDeep
	}

	var (
		classes []ConditionalClass
		ok      bool
		err     error
	)

	switch prod {
	case prodObject:
		classes, ok = p.object(fragment)
	case prodLiteral:
		classes, ok = p.literal(fragment)
	case prodAnd:
		classes, ok, err = p.and(fragment, depth)
	case prodOr:
		classes, ok = p.fallback(fragment, "||", negate)
	case prodNullish:
		classes, ok = p.fallback(fragment, "??", isNull)
	case prodTernary:
		classes, ok, err = p.ternary(fragment, depth)
	case prodTemplate:
		classes, ok, err = p.template(fragment, depth)
	}

	if err != nil {
		return nil, false, err
	}

	return classes, ok && len(classes) > 0, nil
}

// object resolves { key: value, ... }.
func (p Parser) object(fragment string) ([]ConditionalClass, bool) {
	inner, ok := scan.Unwrap(fragment, scan.Braces)
	if !ok {
		return nil, false
	}

	var classes []ConditionalClass

	for _, entry := range scan.Split(inner, ',') {
		if c, ok := objectEntry(entry); ok {
			classes = append(classes, c)
		}
	}

	return classes, true
}

func objectEntry(entry string) (ConditionalClass, bool) {
	if strings.HasPrefix(entry, "...") {
		return ConditionalClass{}, false
	}

	key, value, ok := scan.Operator(entry, ":")
	if !ok {
		// Shorthand property: { active } is { active: active }.
		if isIdentifier(entry) {
			return MakeClass(entry, entry)
		}

		return ConditionalClass{}, false
	}

	if strings.HasPrefix(key, "[") {
		return ConditionalClass{}, false
	}

	if body, ok := literal(key); ok {
		key = body
	}

	switch value = stripParens(value); value {
	case "true":
		return MakeClass(key, "")
	case "false", "":
		return ConditionalClass{}, false
	default:
		return MakeClass(key, value)
	}
}

// literal resolves a quoted string.
func (p Parser) literal(fragment string) ([]ConditionalClass, bool) {
	body, ok := literal(fragment)
	if !ok {
		return nil, false
	}

	c, ok := MakeClass(body, "")
	if !ok {
		return nil, false
	}

	return []ConditionalClass{c}, true
}

// and resolves cond && 'classes', including chains such as
// a && b && 'classes'.
func (p Parser) and(fragment string, depth int) ([]ConditionalClass, bool, error) {
	left, right, ok := scan.Operator(fragment, "&&")
	if !ok {
		return nil, false, nil
	}

	cond := stripParens(left)
	if cond == "" {
		return nil, false, nil
	}

	if body, ok := literal(right); ok {
		c, ok := MakeClass(body, cond)
		if !ok {
			return nil, false, nil
		}

		return []ConditionalClass{c}, true, nil
	}

	chained, ok, err := p.try(prodAnd, right, depth+1)
	if err != nil || !ok {
		return nil, false, err
	}

	for i := range chained {
		chained[i].Condition = conjoin(cond, chained[i].Condition)
	}

	return chained, true, nil
}

// fallback resolves cond <op> 'classes', where the classes apply when guard
// of cond holds.
func (p Parser) fallback(
	fragment, op string,
	guard func(string) string,
) ([]ConditionalClass, bool) {
	left, right, ok := scan.Operator(fragment, op)
	if !ok || stripParens(left) == "" {
		return nil, false
	}

	body, ok := literal(right)
	if !ok {
		return nil, false
	}

	c, ok := MakeClass(body, guard(left))
	if !ok {
		return nil, false
	}

	return []ConditionalClass{c}, true
}

// ternary resolves cond ? whenTrue : whenFalse. The false branch is resolved
// recursively so that chained ternaries read as else-if:
//
//	a ? 'x' : b ? 'y' : 'z'  =>  x (if a), y (if !a && b), z (if !a && !b)
func (p Parser) ternary(fragment string, depth int) ([]ConditionalClass, bool, error) {
	left, rest, ok := scan.OperatorFunc(fragment, "?", notConditional)
	if !ok {
		return nil, false, nil
	}

	colon := matchColon(rest)
	if colon < 0 {
		return nil, false, nil
	}

	cond := stripParens(left)
	if cond == "" {
		return nil, false, nil
	}

	var classes []ConditionalClass

	for _, branch := range []struct{ text, guard string }{
		{rest[:colon], cond},
		{rest[colon+1:], negate(cond)},
	} {
		resolved, ok, err := p.parse(branch.text, depth+1)
		if err != nil {
			return nil, false, err
		}

		if !ok {
			continue
		}

		for _, c := range resolved {
			c.Condition = conjoin(branch.guard, c.Condition)
			classes = append(classes, c)
		}
	}

	return classes, true, nil
}

// notConditional rejects a "?" at text[i] that belongs to "?." or "??".
func notConditional(text string, i int) bool {
	if i+1 < len(text) && (text[i+1] == '.' || text[i+1] == '?') {
		return true
	}

	return i > 0 && text[i-1] == '?'
}

// matchColon returns the index of the top-level ":" that closes the ternary
// whose "?" precedes text, skipping pairs belonging to ternaries nested in
// the true branch. It returns -1 if there is none.
func matchColon(text string) int {
	var (
		s      scan.State
		nested int
	)

	for i := 0; i < len(text); i++ {
		c := text[i]
		if s.Neutral() {
			switch {
			case c == '?' && !notConditional(text, i):
				nested++
			case c == ':' && nested == 0:
				return i
			case c == ':':
				nested--
			}
		}

		var prev byte
		if i > 0 {
			prev = text[i-1]
		}

		s.Update(c, prev)
	}

	return -1
}

// template resolves `static ${expr} static`. Static runs become
// unconditional entries and each interpolation is resolved recursively, in
// source order.
func (p Parser) template(fragment string, depth int) ([]ConditionalClass, bool, error) {
	if len(fragment) < 2 || fragment[0] != '`' || fragment[len(fragment)-1] != '`' {
		return nil, false, nil
	}

	body := fragment[1 : len(fragment)-1]

	var (
		classes []ConditionalClass
		pending strings.Builder
	)

	flush := func() {
		if c, ok := MakeClass(pending.String(), ""); ok {
			classes = append(classes, c)
		}

		pending.Reset()
	}

	for i := 0; i < len(body); i++ {
		switch c := body[i]; {
		case c == '\\' && i+1 < len(body):
			i++
			pending.WriteByte(body[i])

		case c == '$' && i+1 < len(body) && body[i+1] == '{':
			flush()

			expr, end, ok := scan.Balanced(body, i+2, scan.Braces)
			if !ok {
				return nil, false, nil
			}

			nested, ok, err := p.parse(expr, depth+1)
			if err != nil {
				return nil, false, err
			}

			if ok {
				classes = append(classes, nested...)
			}

			i = end - 1

		case c == '`':
			// An unescaped backtick means the fragment is not one template,
			// e.g. `a` + `b`.
			return nil, false, nil

		default:
			pending.WriteByte(c)
		}
	}

	flush()

	return classes, true, nil
}

// isIdentifier reports whether s is a JavaScript identifier.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		c := s[i]

		switch {
		case c == '_' || c == '$':
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}

	return true
}
