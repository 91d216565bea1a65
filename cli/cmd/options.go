package cmd

import (
	"github.com/ardnew/diced/render"
	"github.com/ardnew/diced/roll"
)

// Options are the roll settings shared by the roll and repl commands.
type Options struct {
	Color   bool   `                     help:"Color critical successes and failures."        short:"c"`
	Sum     bool   `                     help:"Sum the rolls of each die."                    short:"s"`
	Count   bool   `                     help:"Count critical successes and failures."`
	Painful bool   `negatable:"painless" help:"Add some unwanted features."`
	Profile string `                     help:"Resolve dice set names from profile IDENT."    placeholder:"IDENT"`
	Seed    uint64 `                     help:"Seed the random source (0 picks a random seed)." placeholder:"N"`
}

// Render returns the output options.
func (o Options) Render() render.Options {
	return render.Options{Color: o.Color, Sum: o.Sum, Count: o.Count}
}

// Roller returns a roller seeded with Seed, or randomly if Seed is zero.
func (o Options) Roller() (*roll.Roller, error) {
	if o.Seed != 0 {
		return roll.NewSeeded(o.Seed), nil
	}

	return roll.NewRandom()
}
