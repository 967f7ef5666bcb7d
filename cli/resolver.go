package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/classcond/log"
)

// resolve returns a [kong.ConfigurationLoader] that reads flag values from a
// YAML document.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve(ctx), "/path/to/config.yaml")
//
// Keys are flag names, written with hyphens or underscores. Nested mappings
// are flattened by joining keys with a hyphen, so these are equivalent:
//
//	log-level: debug
//	log_level: debug
//	log:
//	  level: debug
//
// Sequences become comma-separated lists:
//
//	helper: [tw, classes]
//	dialect: jsx,vue
//
// Command-line flags override config file values. A document that cannot be
// decoded is reported and otherwise ignored.
func resolve(ctx context.Context) kong.ConfigurationLoader {
	return func(r io.Reader) (kong.Resolver, error) {
		var doc map[string]any

		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			if !errors.Is(err, io.EOF) {
				log.WarnContext(ctx, "ignoring configuration file",
					slog.Any("error", err))
			}

			return config{}, nil
		}

		cfg := make(config, len(doc))
		cfg.flatten("", doc)

		return cfg, nil
	}
}

// config implements [kong.Resolver] for flattened YAML documents.
type config map[string]any

// Validate implements [kong.Resolver].
func (config) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if value, ok := r[flag.Name]; ok {
		return value, nil
	}

	if value, ok := r[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
		return value, nil
	}

	return nil, nil
}

func (r config) flatten(prefix string, m map[string]any) {
	for key, value := range m {
		if prefix != "" {
			key = prefix + "-" + key
		}

		if sub, ok := value.(map[string]any); ok {
			r.flatten(key, sub)

			continue
		}

		r[key] = scalar(value)
	}
}

// scalar converts a decoded YAML value into the form kong's mappers accept.
// Numbers are formatted as strings and sequences joined with commas.
func scalar(v any) any {
	switch v := v.(type) {
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []any:
		items := make([]string, len(v))
		for i, item := range v {
			items[i] = fmt.Sprint(scalar(item))
		}

		return strings.Join(items, ",")
	default:
		return v
	}
}
