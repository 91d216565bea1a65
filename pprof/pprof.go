package pprof

// Stopper stops a running profiler and flushes its output.
type Stopper interface{ Stop() }

// Config functions return all supported profiler parameters.
type Config func() (mode, path string, quiet bool)

// Option modifies a Config.
type Option func(Config) Config

// Make returns a Config with the given options applied to an empty
// configuration.
func Make(opts ...Option) Config {
	c := Config(func() (string, string, bool) { return "", "", false })

	for _, opt := range opts {
		if opt != nil {
			c = opt(c)
		}
	}

	return c
}

// Start initializes the profiler and returns an interface for stopping it.
//
// If built without tag pprof, or the mode is empty or unknown, Start returns a
// no-op implementation. Both Start and Stop are always safely callable.
func (c Config) Start() Stopper {
	if c == nil {
		return ignore{}
	}

	mode, path, quiet := c()

	if mode == "" {
		return ignore{}
	}

	return start(mode, path, quiet)
}

// WithMode sets the profiling mode, one of [Modes].
func WithMode(mode string) Option {
	return func(c Config) Config {
		_, path, quiet := c()

		return func() (string, string, bool) { return mode, path, quiet }
	}
}

// WithPath sets the output directory.
func WithPath(path string) Option {
	return func(c Config) Config {
		mode, _, quiet := c()

		return func() (string, string, bool) { return mode, path, quiet }
	}
}

// WithQuiet suppresses the profiler's own log output.
func WithQuiet(quiet bool) Option {
	return func(c Config) Config {
		mode, path, _ := c()

		return func() (string, string, bool) { return mode, path, quiet }
	}
}

type ignore struct{}

func (ignore) Stop() {}
