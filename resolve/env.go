package resolve

import (
	"io"
	"log/slog"
	"strings"

	"github.com/goccy/go-yaml"
)

// Env is the component state that conditions are evaluated against.
type Env map[string]any

// ParseAssignments builds an Env from name=value pairs.
//
// Values are decoded as YAML flow scalars and collections, so true, 42, and
// [a, b] become a bool, a number, and a list; anything else is a string. An
// empty value is nil. Dotted names assign into nested maps:
//
//	props.item.on=true  =>  {props: {item: {on: true}}}
func ParseAssignments(assignments []string) (Env, error) {
	env := Env{}

	for _, a := range assignments {
		name, value, ok := strings.Cut(a, "=")
		name = strings.TrimSpace(name)

		if !ok || name == "" {
			return nil, ErrAssignment.With(slog.String("assignment", a))
		}

		if err := env.Set(name, decodeValue(value)); err != nil {
			return nil, err
		}
	}

	return env, nil
}

// LoadEnv decodes a YAML (or JSON) mapping from r into an Env.
func LoadEnv(r io.Reader) (Env, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrAssignment.Wrap(err)
	}

	env := Env{}
	if err := yaml.Unmarshal(data, &env); err != nil {
		return nil, ErrAssignment.Wrap(err)
	}

	return env, nil
}

// Set assigns value to the dotted path name, creating intermediate maps as
// needed. It fails if a path segment is empty or names a non-map value.
func (e Env) Set(name string, value any) error {
	segments := strings.Split(name, ".")
	node := map[string]any(e)

	for i, seg := range segments {
		if seg == "" {
			return ErrAssignment.With(slog.String("name", name))
		}

		if i == len(segments)-1 {
			node[seg] = value

			break
		}

		switch next := node[seg].(type) {
		case nil:
			child := map[string]any{}
			node[seg] = child
			node = child

		case map[string]any:
			node = next

		case Env:
			node = next

		default:
			return ErrAssignment.With(
				slog.String("name", name),
				slog.String("conflict", strings.Join(segments[:i+1], ".")))
		}
	}

	return nil
}

// Merge copies every entry of o into e, overwriting existing names.
func (e Env) Merge(o Env) Env {
	for k, v := range o {
		e[k] = v
	}

	return e
}

// decodeValue returns value decoded as YAML, or value itself if it is not a
// valid YAML document on its own (such as "a: b: c").
func decodeValue(value string) any {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	var v any
	if err := yaml.Unmarshal([]byte(value), &v); err != nil {
		return value
	}

	return v
}
