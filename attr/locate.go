package attr

import (
	"regexp"
	"strings"

	"github.com/ardnew/classcond/lang"
	"github.com/ardnew/classcond/scan"
)

// Each pattern captures the attribute name as its first group so that the
// extraction range starts at the name rather than the preceding whitespace.
var (
	plainPattern   = regexp.MustCompile(`(?:^|\s)(class(?:Name)?)\s*=\s*(["'])`)
	bracePattern   = regexp.MustCompile(`(?:^|\s)(class(?:Name)?)\s*=\s*\{`)
	vuePattern     = regexp.MustCompile(`(?:^|\s)((?:v-bind)?:class)\s*=\s*(["'])`)
	sveltePattern  = regexp.MustCompile(`(?:^|\s)(class:([A-Za-z0-9_-]+(?:[:/.][A-Za-z0-9_-]+)*))(\s*=\s*\{)?`)
	ngClassPattern = regexp.MustCompile(`(?:^|\s)(\[ngClass\])\s*=\s*(["'])`)
	ngBindPattern  = regexp.MustCompile(`(?:^|\s)(\[class\.([^\]\s]+)\])\s*=\s*(["'])`)
	solidPattern   = regexp.MustCompile(`(?:^|\s)(classList)\s*=\s*\{\s*\{`)
	helperPattern  = regexp.MustCompile(`^([A-Za-z_$][A-Za-z0-9_$]*)\s*\(`)
	identPattern   = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
)

type locator struct {
	dialect Dialect
	locate  func(x *Extractor, text string) []Extraction
}

// locators run in this order; on equal start offsets the earlier one wins.
var locators = []locator{
	{DialectHTML, (*Extractor).locatePlain},
	{DialectJSX, (*Extractor).locateBrace},
	{DialectVue, (*Extractor).locateVue},
	{DialectSvelte, (*Extractor).locateSvelte},
	{DialectAngular, (*Extractor).locateNgClass},
	{DialectAngular, (*Extractor).locateNgBind},
	{DialectSolid, (*Extractor).locateSolid},
}

// quoted returns the value of a quote-delimited attribute matched by m, where
// quoteGroup is the index of the submatch holding the opening quote.
func quoted(text string, m []int, quoteGroup int) (value string, end int, ok bool) {
	open := m[2*quoteGroup]

	closing := scan.ClosingQuote(text, open+1, text[open])
	if closing < 0 {
		return "", 0, false
	}

	return text[open+1 : closing], closing + 1, true
}

// locatePlain finds class="…" and className="…".
func (x *Extractor) locatePlain(text string) []Extraction {
	var found []Extraction

	for _, m := range plainPattern.FindAllStringSubmatchIndex(text, -1) {
		start := m[2]

		value, end, ok := quoted(text, m, 2)
		if !ok {
			x.skip(DialectHTML, start, "unterminated value")

			continue
		}

		class, ok := lang.MakeClass(value, "")
		if !ok {
			continue
		}

		if e, ok := makeExtraction([]lang.ConditionalClass{class}, start, end, KindSimple); ok {
			found = append(found, e)
		}
	}

	return found
}

// locateBrace finds class={…} and className={…}.
func (x *Extractor) locateBrace(text string) []Extraction {
	var found []Extraction

	for _, m := range bracePattern.FindAllStringSubmatchIndex(text, -1) {
		start := m[2]

		expr, end, ok := scan.Balanced(text, m[1], scan.Braces)
		if !ok {
			x.skip(DialectJSX, start, "unbalanced braces")

			continue
		}

		classes, kind, ok := x.braceExpression(expr)
		if !ok {
			x.skip(DialectJSX, start, "unrecognized expression")

			continue
		}

		if e, ok := makeExtraction(classes, start, end, kind); ok {
			found = append(found, e)
		}
	}

	return found
}

// braceExpression resolves the content of a JSX attribute expression.
func (x *Extractor) braceExpression(expr string) ([]lang.ConditionalClass, Kind, bool) {
	expr = strings.TrimSpace(expr)

	if strings.HasPrefix(expr, "`") {
		if classes, ok := x.parser.Template(expr); ok {
			return classes, KindTemplate, true
		}
	}

	if classes, ok, isCall := x.helperCall(expr); isCall {
		return classes, KindHelper, ok
	}

	if classes, ok := x.parser.Literal(expr); ok {
		return classes, KindSimple, true
	}

	classes, ok := x.parser.Parse(expr)

	return classes, KindMixed, ok
}

// helperCall resolves name(args…) when name is an allow-listed helper and the
// call spans all of expr. isCall reports whether expr had that shape at all.
//
// A single array argument is unwrapped into its elements. Otherwise each
// top-level argument is resolved on its own, and array arguments contribute
// each of their elements. Arguments that resolve to nothing are ignored.
func (x *Extractor) helperCall(expr string) (classes []lang.ConditionalClass, ok, isCall bool) {
	m := helperPattern.FindStringSubmatchIndex(expr)
	if m == nil || !x.isHelper(expr[m[2]:m[3]]) {
		return nil, false, false
	}

	args, end, balanced := scan.Balanced(expr, m[1], scan.Parens)
	if !balanced || end != len(expr) {
		return nil, false, false
	}

	list := scan.Split(args, ',')
	if inner, isArray := scan.Unwrap(args, scan.Brackets); isArray {
		list = scan.Split(inner, ',')
	}

	for _, arg := range list {
		elems := []string{arg}
		if inner, isArray := scan.Unwrap(arg, scan.Brackets); isArray {
			elems = scan.Split(inner, ',')
		}

		for _, elem := range elems {
			if resolved, ok := x.parser.Parse(elem); ok {
				classes = append(classes, resolved...)
			}
		}
	}

	return classes, len(classes) > 0, true
}

// locateVue finds :class="…" and v-bind:class="…".
func (x *Extractor) locateVue(text string) []Extraction {
	return x.locateBinding(text, vuePattern, DialectVue)
}

// locateNgClass finds [ngClass]="…".
func (x *Extractor) locateNgClass(text string) []Extraction {
	return x.locateBinding(text, ngClassPattern, DialectAngular)
}

// locateBinding handles quoted attribute values holding an object literal, an
// array of expressions, or a single expression. A value the engine cannot
// resolve is one unconditional class list.
func (x *Extractor) locateBinding(text string, re *regexp.Regexp, dialect Dialect) []Extraction {
	var found []Extraction

	for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
		start := m[2]

		value, end, ok := quoted(text, m, 2)
		if !ok {
			x.skip(dialect, start, "unterminated value")

			continue
		}

		classes, ok := x.bindingValue(value)
		if !ok {
			x.skip(dialect, start, "unrecognized expression")

			continue
		}

		if e, ok := makeExtraction(classes, start, end, KindMixed); ok {
			found = append(found, e)
		}
	}

	return found
}

func (x *Extractor) bindingValue(value string) ([]lang.ConditionalClass, bool) {
	value = strings.TrimSpace(value)

	switch {
	case strings.HasPrefix(value, "{"):
		return x.parser.Object(value)

	case strings.HasPrefix(value, "["):
		inner, ok := scan.Unwrap(value, scan.Brackets)
		if !ok {
			return nil, false
		}

		var classes []lang.ConditionalClass

		for _, elem := range scan.Split(inner, ',') {
			if resolved, ok := x.parser.Parse(elem); ok {
				classes = append(classes, resolved...)
			}
		}

		return classes, len(classes) > 0

	default:
		if classes, ok := x.parser.Parse(value); ok {
			return classes, true
		}

		// Anything else is taken verbatim as one unconditional class list.
		c, ok := lang.MakeClass(value, "")
		if !ok {
			return nil, false
		}

		return []lang.ConditionalClass{c}, true
	}
}

// locateSvelte finds class:name={cond} and the shorthand class:name.
func (x *Extractor) locateSvelte(text string) []Extraction {
	var found []Extraction

	for _, m := range sveltePattern.FindAllStringSubmatchIndex(text, -1) {
		start, name := m[2], text[m[4]:m[5]]

		var (
			cond string
			end  int
		)

		if m[6] >= 0 {
			content, closing, ok := scan.Balanced(text, m[1], scan.Braces)
			if !ok {
				x.skip(DialectSvelte, start, "unbalanced braces")

				continue
			}

			cond, end = content, closing
		} else {
			rest := strings.TrimLeft(text[m[1]:], " \t\r\n")
			if strings.HasPrefix(rest, "=") || !identPattern.MatchString(name) {
				x.skip(DialectSvelte, start, "unsupported directive")

				continue
			}

			cond, end = name, m[1]
		}

		class, ok := directive(name, cond)
		if !ok {
			continue
		}

		if e, ok := makeExtraction([]lang.ConditionalClass{class}, start, end, KindMixed); ok {
			found = append(found, e)
		}
	}

	return found
}

// locateNgBind finds [class.name]="cond".
func (x *Extractor) locateNgBind(text string) []Extraction {
	var found []Extraction

	for _, m := range ngBindPattern.FindAllStringSubmatchIndex(text, -1) {
		start, name := m[2], text[m[4]:m[5]]

		cond, end, ok := quoted(text, m, 3)
		if !ok {
			x.skip(DialectAngular, start, "unterminated value")

			continue
		}

		class, ok := directive(name, cond)
		if !ok {
			continue
		}

		if e, ok := makeExtraction([]lang.ConditionalClass{class}, start, end, KindMixed); ok {
			found = append(found, e)
		}
	}

	return found
}

// directive pairs a single class name with its toggling condition. The
// literal true makes the class unconditional and false drops it.
func directive(name, cond string) (lang.ConditionalClass, bool) {
	switch cond = strings.TrimSpace(cond); cond {
	case "", "false":
		return lang.ConditionalClass{}, false
	case "true":
		cond = ""
	}

	return lang.MakeClass(name, cond)
}

// locateSolid finds classList={{…}}.
func (x *Extractor) locateSolid(text string) []Extraction {
	var found []Extraction

	for _, m := range solidPattern.FindAllStringSubmatchIndex(text, -1) {
		start := m[2]

		content, end, ok := scan.BalancedFrom(text, m[1], scan.Braces, 2)
		if !ok {
			x.skip(DialectSolid, start, "unbalanced braces")

			continue
		}

		// content runs through the inner closing brace.
		inner, ok := strings.CutSuffix(strings.TrimSpace(content), "}")
		if !ok {
			x.skip(DialectSolid, start, "malformed object")

			continue
		}

		classes, ok := x.parser.Object("{" + inner + "}")
		if !ok {
			x.skip(DialectSolid, start, "unrecognized expression")

			continue
		}

		if e, ok := makeExtraction(classes, start, end, KindMixed); ok {
			found = append(found, e)
		}
	}

	return found
}
