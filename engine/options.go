package engine

type Option func(options *options)

type options struct {
	cacheEnabled bool
	maxEntries   int64
}

func getOptions(opts ...Option) *options {
	defaultOptions := &options{
		cacheEnabled: false,
		maxEntries:   0,
	}

	for _, opt := range opts {
		opt(defaultOptions)
	}

	return defaultOptions
}

// WithCache memoizes up to maxEntries resolutions.
func WithCache(maxEntries int64) Option {
	return func(options *options) {
		if maxEntries <= 0 {
			options.cacheEnabled = false
			return
		}
		options.cacheEnabled = true
		options.maxEntries = maxEntries
	}
}
