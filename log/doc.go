// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// The package offers configurable time formatting, caller information,
// and output formats that are applied at logger creation time using
// functional options.
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Info("rolled", slog.String("die", "2d6+1"))
//
// # Configuration
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithTimeLayout("Kitchen"),
//		log.WithCaller(true))
//
// The package-level functions ([Debug], [Info], [Warn], [Error] and their
// Context variants) write through a default logger that targets standard
// error, so that log output never mixes with roll results on standard output.
// [Config] reconfigures the default logger in place.
//
// # Levels
//
// Five levels are supported: [LevelTrace], [LevelDebug], [LevelInfo],
// [LevelWarn] and [LevelError]. Messages below the configured level are
// discarded.
//
// # Output Formats
//
// [FormatJSON] (default) and [FormatText]. With pretty printing enabled, text
// output drops quoting and colors keys and values with lipgloss styles; the
// colors degrade to plain text when the output is not a terminal.
package log
