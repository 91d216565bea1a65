package repl

import "errors"

// Sentinel errors.
var (
	ErrOutOfBounds     = errors.New("index out of range")
	ErrNoTerminal      = errors.New("interactive roller requires a terminal")
	ErrUnknownCommand  = errors.New("unknown command")
	ErrMissingArgument = errors.New("missing argument")
)
