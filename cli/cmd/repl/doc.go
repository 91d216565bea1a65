// Package repl implements the interactive dice roller.
//
// Each submitted line is either a list of dice expressions and set names of
// the active profile, rolled and printed exactly as by the roll command, or a
// command starting with ":" (see :help). Input is completed with fuzzy
// matching over commands, profile identifiers and set names, and submitted
// lines are kept in a history file in the cache directory.
package repl
