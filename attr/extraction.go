package attr

import (
	"fmt"
	"strings"

	"github.com/ardnew/classcond/lang"
)

// Range is a half-open byte range [Start, End) in source text.
type Range struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end"   yaml:"end"`
}

// Len returns the number of bytes in r.
func (r Range) Len() int { return r.End - r.Start }

// Overlaps reports whether r and o share at least one byte.
func (r Range) Overlaps(o Range) bool { return r.Start < o.End && o.Start < r.End }

// Kind classifies how an attribute computes its classes.
type Kind int

const (
	KindSimple   Kind = iota // simple
	KindTemplate             // template
	KindHelper               // helper
	KindMixed                // mixed
)

var kindNames = []string{"simple", "template", "helper", "mixed"}

// String returns the name of k.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + fmt.Sprint(int(k)) + ")"
	}

	return kindNames[k]
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	for i, name := range kindNames {
		if strings.EqualFold(name, string(text)) {
			*k = Kind(i)

			return nil
		}
	}

	return fmt.Errorf("unknown kind %q", text)
}

// Extraction is one located attribute and the classes it resolves to.
//
// ClassStrings[i] is always Conditional[i].Classes.
type Extraction struct {
	ClassStrings []string                `json:"classStrings"       yaml:"classStrings"`
	Conditional  []lang.ConditionalClass `json:"conditionalClasses" yaml:"conditionalClasses"`
	Range        Range                   `json:"range"              yaml:"range"`
	Kind         Kind                    `json:"kind"               yaml:"kind"`
}

// makeExtraction builds an Extraction, reporting false if there are no
// classes or the range is empty.
func makeExtraction(
	classes []lang.ConditionalClass,
	start, end int,
	kind Kind,
) (Extraction, bool) {
	if len(classes) == 0 || end <= start {
		return Extraction{}, false
	}

	strs := make([]string, len(classes))
	for i, c := range classes {
		strs[i] = c.Classes
	}

	return Extraction{
		ClassStrings: strs,
		Conditional:  classes,
		Range:        Range{Start: start, End: end},
		Kind:         kind,
	}, true
}

// Names returns every class name in e, in order, including duplicates.
func (e Extraction) Names() []string {
	var names []string
	for _, c := range e.Conditional {
		names = append(names, c.Names()...)
	}

	return names
}
