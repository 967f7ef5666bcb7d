package attr

import (
	"iter"
	"strings"
)

// Dialect is a set of template attribute dialects.
type Dialect uint8

const (
	DialectHTML    Dialect = 1 << iota // html
	DialectJSX                         // jsx
	DialectVue                         // vue
	DialectSvelte                      // svelte
	DialectAngular                     // angular
	DialectSolid                       // solid

	AllDialects = DialectHTML | DialectJSX | DialectVue |
		DialectSvelte | DialectAngular | DialectSolid
)

var dialectNames = map[Dialect]string{
	DialectHTML:    "html",
	DialectJSX:     "jsx",
	DialectVue:     "vue",
	DialectSvelte:  "svelte",
	DialectAngular: "angular",
	DialectSolid:   "solid",
}

// Has reports whether d includes every dialect in o.
func (d Dialect) Has(o Dialect) bool { return o != 0 && d&o == o }

// Each iterates over the individual dialects in d, in declaration order.
func (d Dialect) Each() iter.Seq[Dialect] {
	return func(yield func(Dialect) bool) {
		for bit := DialectHTML; bit <= DialectSolid; bit <<= 1 {
			if d&bit != 0 && !yield(bit) {
				return
			}
		}
	}
}

// String returns the comma-separated names of the dialects in d.
func (d Dialect) String() string {
	var names []string
	for bit := range d.Each() {
		names = append(names, dialectNames[bit])
	}

	return strings.Join(names, ",")
}

// DialectNames iterates over the name of every known dialect.
func DialectNames() iter.Seq[string] {
	return func(yield func(string) bool) {
		for bit := range AllDialects.Each() {
			if !yield(dialectNames[bit]) {
				return
			}
		}
	}
}

// ParseDialect returns the set named by names, which may themselves be
// comma-separated. The name "all" selects [AllDialects]. It reports false for
// an unknown name.
func ParseDialect(names ...string) (Dialect, bool) {
	var d Dialect

	for _, list := range names {
		for name := range strings.SplitSeq(list, ",") {
			name = strings.ToLower(strings.TrimSpace(name))
			if name == "" {
				continue
			}

			if name == "all" {
				d |= AllDialects

				continue
			}

			bit, ok := lookupDialect(name)
			if !ok {
				return 0, false
			}

			d |= bit
		}
	}

	return d, true
}

func lookupDialect(name string) (Dialect, bool) {
	for bit, n := range dialectNames {
		if n == name {
			return bit, true
		}
	}

	return 0, false
}
