package pareto

// Option configures the dominance primitives.
type Option func(*options)

type options struct {
	maximize    bool
	checkSorted bool
}

// WithMaximize treats larger objective values as better.
func WithMaximize() Option {
	return func(o *options) {
		o.maximize = true
	}
}

// WithCheckSorted makes IsDominated verify that the second point set is
// lexicographically sorted and fail with ErrUnsorted if it is not.
// Without it, sortedness is the caller's responsibility.
func WithCheckSorted() Option {
	return func(o *options) {
		o.checkSorted = true
	}
}

func applyOptions(optFns []Option) options {
	var o options
	for _, fn := range optFns {
		fn(&o)
	}
	return o
}
