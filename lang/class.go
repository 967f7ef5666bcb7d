package lang

import (
	"log/slog"
	"strings"
)

// ConditionalClass is a list of utility class names paired with the condition
// under which they apply.
type ConditionalClass struct {
	// Classes is a trimmed, non-empty, single-space-separated list of class
	// names.
	Classes string `json:"classes" yaml:"classes"`
	// Condition is a boolean-expression-shaped string. It is empty when the
	// classes always apply.
	Condition string `json:"condition,omitempty" yaml:"condition,omitempty"`
}

// MakeClass returns a ConditionalClass with the whitespace in classes
// normalized. It reports false if classes contains no class names.
func MakeClass(classes, condition string) (ConditionalClass, bool) {
	fields := strings.Fields(classes)
	if len(fields) == 0 {
		return ConditionalClass{}, false
	}

	return ConditionalClass{
		Classes:   strings.Join(fields, " "),
		Condition: strings.TrimSpace(condition),
	}, true
}

// Unconditional reports whether the classes always apply.
func (c ConditionalClass) Unconditional() bool { return c.Condition == "" }

// Names returns the individual class names.
func (c ConditionalClass) Names() []string { return strings.Fields(c.Classes) }

// String returns the classes followed by the condition, if any, in the form
// "bg-blue-500 (if isActive)".
func (c ConditionalClass) String() string {
	if c.Unconditional() {
		return c.Classes
	}

	return c.Classes + " (if " + c.Condition + ")"
}

// LogValue implements slog.LogValuer.
func (c ConditionalClass) LogValue() slog.Value {
	if c.Unconditional() {
		return slog.GroupValue(slog.String("classes", c.Classes))
	}

	return slog.GroupValue(
		slog.String("classes", c.Classes),
		slog.String("condition", c.Condition),
	)
}
