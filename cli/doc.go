// Package cli contains the command line interface for diced.
//
// # Usage
//
//	diced [flags] <dice>...      roll (default command)
//	diced init [--force]         write a default configuration file
//	diced profiles [IDENT]       list profiles and dice sets
//	diced repl                   interactive roller
//
// Dice are written QdS[+M|-M], for example 1d20, 2d6+3 or 4/6-1.
//
// # Configuration
//
// The configuration file is config.yaml (or .yml, .toml) in the user
// configuration directory, or the file named with --config. Its options
// table supplies flag defaults through a kong resolver, and its profiles
// name dice sets selectable with --profile:
//
//	options:
//	  color: true
//	  log_level: debug
//	profiles:
//	  - ident: fighter
//	    sets:
//	      - name: attack
//	        dice: [1d20+5]
//
// Flags given on the command line override configured options.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, Kitchen, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize log output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o diced .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default: ~/.cache/diced/pprof)
package cli
