package cli

import (
	"context"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ardnew/diced/cli/cmd"
	"github.com/ardnew/diced/config"
	"github.com/ardnew/diced/pkg"
)

// CLI is the top-level command-line interface for diced.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Options cmd.Options `embed:""`

	Config  string           `default:"${configFile}" help:"Configuration file (.yaml, .yml or .toml)." placeholder:"PATH" type:"path"`
	Version kong.VersionFlag `                        help:"Print version and exit."                  short:"V"`

	Roll     cmd.Roll     `cmd:"" default:"withargs" help:"Roll dice"`
	Init     cmd.Init     `cmd:""                    help:"Initialize configuration file"`
	Profiles cmd.Profiles `cmd:""                    help:"List profiles and their dice sets"`
	Repl     cmd.Repl     `cmd:""                    help:"Roll dice interactively"`
}

// Run executes the diced CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	return run(ctx, exit, os.Stdout, os.Stderr, args)
}

func run(
	ctx context.Context,
	exit func(code int),
	stdout, stderr io.Writer,
	args []string,
) error {
	var cli CLI

	err := mkdirAllRequired()
	if err != nil {
		return err
	}

	// Pre-scan for logger flags to ensure early configuration regardless of
	// flag position, so that errors while loading the configuration file are
	// already logged the way the user asked for.
	cli.Log.scan(args)

	configFilePath := scanConfig(args)

	cfg, err := config.Load(configFilePath)
	if err != nil {
		return err
	}

	vars := kong.Vars{
		"version":            pkg.Version,
		cmd.ConfigIdentifier: configFilePath,
		cmd.CacheIdentifier:  pkg.CacheDir(),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Parse command line
	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.Writers(stdout, stderr),
		kong.ExplicitGroups(append(cli.Log.groups(), cli.Pprof.groups()...)),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				FlagsLast:           false,
				NoAppSummary:        false,
				NoExpandSubcommands: true,
			}),
		kong.Resolvers(resolver(cfg.Options)),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Stuff additional context values for use by commands
	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithConfig(ctx, cfg)

	ktx.BindTo(ctx, (*context.Context)(nil))

	// Finalize logger configuration with all parsed values, including those
	// resolved from the configuration file.
	cli.Log.start(ctx)

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	// Execute the selected command
	return ktx.Run(&cli.Options)
}
