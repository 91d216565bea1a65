// Package cmd implements the diced subcommands: roll, init, profiles and
// repl.
//
// Commands receive the parsed [*kong.Context] and the loaded configuration
// through [context.Context] values set with [WithContext] and [WithConfig],
// and the shared roll [Options] through kong bindings.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the configuration file.
	ConfigIdentifier = "configFile"
)
