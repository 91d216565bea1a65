package cmd

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/ardnew/diced/config"
	"github.com/ardnew/diced/render"
)

// Profiles lists the configured profiles and their dice sets.
type Profiles struct {
	Ident  string `arg:"" help:"Only show profile IDENT." name:"ident" optional:""`
	Output string `default:"text" enum:"text,yaml,toml" help:"Output format (${enum})." short:"o"`
}

// Run executes the profiles command.
func (p *Profiles) Run(ctx context.Context, ktx *kong.Context, opts *Options) error {
	cfg := configFrom(ctx)

	profiles := cfg.Profiles

	if p.Ident != "" {
		prof, err := cfg.Profile(p.Ident)
		if err != nil {
			return err
		}

		profiles = []config.Profile{prof}
	}

	if p.Output == "text" {
		if err := render.Profiles(ktx.Stdout, profiles, opts.Profile); err != nil {
			return ErrWriteOutput.Wrap(err)
		}

		return nil
	}

	format, err := config.ParseFormat(p.Output)
	if err != nil {
		return err
	}

	return config.Config{Profiles: profiles}.Encode(ktx.Stdout, format)
}
