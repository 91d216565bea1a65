package cli

import (
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/diced/config"
	"github.com/ardnew/diced/pkg"
)

// scanConfig returns the configuration file named with --config in args, or
// the first existing configuration file in the configuration directory.
func scanConfig(args []string) string {
	if path, ok := scanFlag(args, "config"); ok && path != "" {
		return kong.ExpandPath(path)
	}

	return config.Find(pkg.ConfigDir())
}

// scanFlag returns the value of the last occurrence of the long flag name in
// args, given as either "--name=value" or "--name value".
// Scanning stops at the "--" terminator.
func scanFlag(args []string, name string) (value string, ok bool) {
	flag := "--" + name

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch {
		case arg == "--":
			return value, ok

		case arg == flag:
			// Non-boolean flag: consume next arg as value
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				value, ok = args[i+1], true
				i++
			}

		case strings.HasPrefix(arg, flag+"="):
			value, ok = arg[len(flag)+1:], true
		}
	}

	return value, ok
}

// scanBool returns the setting of the last occurrence of the negatable
// boolean flag name in args: "--name", "--name=BOOL", "--no-name" or
// "--no-name=BOOL". Values that do not parse as a boolean are ignored.
// Scanning stops at the "--" terminator.
func scanBool(args []string, name string) (value, ok bool) {
	for _, arg := range args {
		if arg == "--" {
			break
		}

		for _, form := range []struct {
			flag   string
			negate bool
		}{
			{"--" + name, false},
			{"--no-" + name, true},
		} {
			switch {
			case arg == form.flag:
				value, ok = !form.negate, true

			case strings.HasPrefix(arg, form.flag+"="):
				if v, err := strconv.ParseBool(arg[len(form.flag)+1:]); err == nil {
					value, ok = v != form.negate, true
				}
			}
		}
	}

	return value, ok
}
