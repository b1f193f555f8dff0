package nui

// Options configure window creation. Zero fields take defaults.
type Options struct {
	Width, Height int

	// MaxSamples bounds the multisample counts offered as candidates.
	MaxSamples int

	// Major and Minor select the core profile version requested.
	Major, Minor int

	// ProfilePath, when set, writes a CPU profile of Running.Run there.
	ProfilePath string
}

// Option sets a field of Options.
type Option func(*Options)

// WithSize sets the initial window size in screen coordinates.
func WithSize(width, height int) Option {
	return func(o *Options) { o.Width, o.Height = width, height }
}

// WithMaxSamples bounds the multisample count of the chosen config.
func WithMaxSamples(n int) Option {
	return func(o *Options) { o.MaxSamples = n }
}

// WithVersion requests a core profile context of major.minor.
func WithVersion(major, minor int) Option {
	return func(o *Options) { o.Major, o.Minor = major, minor }
}

// WithCPUProfile enables CPU profiling of the event loop into dir.
func WithCPUProfile(dir string) Option {
	return func(o *Options) { o.ProfilePath = dir }
}

func newOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	if o.Width <= 0 {
		o.Width = 800
	}
	if o.Height <= 0 {
		o.Height = 600
	}
	if o.MaxSamples <= 0 {
		o.MaxSamples = 16
	}
	if o.Major == 0 {
		o.Major, o.Minor = 4, 6
	}
	return o
}
