package cmd

import (
	"context"
	"log/slog"

	"github.com/alecthomas/kong"

	"github.com/ardnew/diced/log"
	"github.com/ardnew/diced/render"
)

// Roll rolls dice expressions or dice sets of the active profile.
type Roll struct {
	Dice []string `arg:"" help:"Dice to roll, as QdS[+-M] expressions or set names." name:"dice" optional:""`
}

// Run executes the roll command.
func (r *Roll) Run(ctx context.Context, ktx *kong.Context, opts *Options) error {
	dice, err := configFrom(ctx).Resolve(opts.Profile, r.Dice)
	if err != nil {
		return err
	}

	roller, err := opts.Roller()
	if err != nil {
		return ErrRoll.Wrap(err)
	}

	throws := roller.ThrowAll(dice, opts.Painful)

	for _, t := range throws {
		log.DebugContext(ctx, "rolled",
			slog.Any("result", t.Final()),
			slog.Bool("fumbled", t.Fumbled()),
		)
	}

	if err := render.New(ktx.Stdout, opts.Render()).Throws(throws); err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}
