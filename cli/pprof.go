//go:build pprof

package cli

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/diced/log"
	"github.com/ardnew/diced/pkg"
	"github.com/ardnew/diced/pprof"
)

type pprofConfig struct {
	Mode string `default:""            enum:",${pprofModeEnum}" help:"Enable profiling"         placeholder:"${enum}" short:"p"`
	Dir  string `default:"${pprofDir}"                          help:"Profile output directory"                                 type:"path"`
}

func (pprofConfig) vars() kong.Vars {
	return kong.Vars{
		"pprofModeEnum": strings.Join(pprof.Modes(), ","),
		"pprofDir":      filepath.Join(pkg.CacheDir(), pprof.Tag),
	}
}

func (pprofConfig) groups() []kong.Group {
	return []kong.Group{{Key: "pprof", Title: "Profiling (pprof)"}}
}

// start starts profiling if configured.
func (f pprofConfig) start(ctx context.Context) (stop func()) {
	if f.Mode == "" {
		return func() {}
	}

	log.DebugContext(ctx, "pprof start",
		slog.String("mode", f.Mode),
		slog.String("dir", f.Dir),
	)

	profiler := pprof.Make(
		pprof.WithMode(f.Mode),
		pprof.WithPath(f.Dir),
		pprof.WithQuiet(true),
	).Start()

	return func() {
		log.DebugContext(ctx, "pprof stop",
			slog.String("mode", f.Mode),
			slog.String("dir", f.Dir),
		)
		profiler.Stop()
	}
}
