// Package render formats roll results as line-oriented text.
//
// Each result is written as a header naming the die followed by a result line:
//
//	2d6 +1:
//	=> (4, 7): [11]
//
// With [Options.Color], extreme values are highlighted using ANSI sequences
// regardless of whether the output is a terminal.
package render
