package profile

// Profiler configures and initializes the profiler.
type Profiler struct {
	Mode  string
	Path  string
	Quiet bool
}

// Option configures a [Profiler].
type Option func(Profiler) Profiler

// Make returns a Profiler configured by opts.
func Make(opts ...Option) Profiler {
	var p Profiler
	for _, opt := range opts {
		p = opt(p)
	}

	return p
}

// Start initializes the profiler and returns an interface for stopping it.
//
// If build tag pprof or p.Mode are unset, then Start returns a no-op
// implementation. Both Start and Stop are always safely callable.
func (p Profiler) Start() interface{ Stop() } {
	if p.Mode == "" {
		return ignore{}
	}

	return start(p.Mode, p.Path, p.Quiet)
}

// WithMode sets the profiler's mode.
func WithMode(mode string) Option {
	return func(p Profiler) Profiler {
		p.Mode = mode

		return p
	}
}

// WithPath sets the profiler's output directory.
func WithPath(path string) Option {
	return func(p Profiler) Profiler {
		p.Path = path

		return p
	}
}

// WithQuiet suppresses the profiler's own log output.
func WithQuiet(quiet bool) Option {
	return func(p Profiler) Profiler {
		p.Quiet = quiet

		return p
	}
}

type ignore struct{}

func (ignore) Stop() {}
