package cmd

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/ardnew/diced/cli/cmd/repl"
	"github.com/ardnew/diced/log"
)

// Repl starts the interactive roller.
type Repl struct {
	NoWatch bool `help:"Do not reload profiles when the configuration file changes."`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context, ktx *kong.Context, opts *Options) error {
	cfg := configFrom(ctx)

	if opts.Profile != "" {
		if _, err := cfg.Profile(opts.Profile); err != nil {
			return err
		}
	}

	roller, err := opts.Roller()
	if err != nil {
		return ErrRoll.Wrap(err)
	}

	watch := ktx.Model.Vars()[ConfigIdentifier]
	if r.NoWatch {
		watch = ""
	}

	return repl.Run(ctx, repl.Config{
		Render:     opts.Render(),
		Painful:    opts.Painful,
		Profile:    opts.Profile,
		Profiles:   cfg,
		Roller:     roller,
		ConfigPath: watch,
		CacheDir:   ktx.Model.Vars()[CacheIdentifier],
		Logger:     log.Default(),
	})
}
