// Package pprof provides optional runtime profiling for diced.
//
// Profiling is compiled in only with the "pprof" build tag, which enables the
// modes of [github.com/pkg/profile]:
//
//	go build -tags pprof .
//	diced --pprof-mode cpu 100d20
//	go tool pprof $XDG_CACHE_HOME/diced/pprof/cpu.pprof
//
// Without the tag, [Modes] is empty and [Config.Start] always returns a no-op
// stopper.
package pprof

// Tag is the build tag required to enable profiling.
const Tag = `pprof`
