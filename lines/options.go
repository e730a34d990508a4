package lines

import "go.uber.org/zap"

type config struct {
	maxLineSize int
	logger      *zap.Logger
}

type Option func(*config)

// WithMaxLineSize caps the accepted line length in bytes. Longer lines
// surface as a read error, ending production.
func WithMaxLineSize(n int) Option {
	return func(c *config) {
		c.maxLineSize = n
	}
}

// WithLogger enables acquisition and release debug logs.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func newConfig(opts []Option) config {
	cfg := config{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
