package cli

import (
	"fmt"
	"strings"

	"github.com/alecthomas/kong"
)

// resolver is a [kong.Resolver] over the options table of the configuration
// file. Keys are flag names, with hyphens optionally written as underscores:
//
//	options:
//	  sum: true
//	  log_level: debug
//
// Command-line flags override configured values.
type resolver map[string]any

// Validate implements [kong.Resolver].
func (resolver) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver].
func (r resolver) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	for _, name := range []string{
		flag.Name,
		strings.ReplaceAll(flag.Name, "-", "_"),
	} {
		if value, ok := r[name]; ok {
			return native(value), nil
		}
	}

	// Not found - return nil to let Kong use defaults
	return nil, nil
}

// native converts decoded numbers to strings, the form kong parses for
// numeric flags. Other values are returned unchanged.
func native(value any) any {
	switch value.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return fmt.Sprint(value)
	default:
		return value
	}
}
