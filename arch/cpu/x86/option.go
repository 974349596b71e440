package x86

// Options contains configuration options for CPU initialization.
type Options struct {
	tracing bool
}

// Option represents a CPU configuration option function.
type Option func(*Options)

// NewOptions creates new options with defaults applied.
func NewOptions(options ...Option) Options {
	opts := Options{}
	for _, option := range options {
		option(&opts)
	}
	return opts
}

// WithTracing enables the one line per instruction decode trace on standard
// output.
func WithTracing() Option {
	return func(opts *Options) {
		opts.tracing = true
	}
}
