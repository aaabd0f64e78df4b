package dataflow

// Option configures the behavior of pipeline stages.
type Option func(*config)

type config struct {
	// errorHandler sees every failed item. For ForEach, returning true
	// swallows the error and the stage carries on with the next item.
	errorHandler func(error) bool
}

func newConfig(opts []Option) *config {
	cfg := &config{}
	for _, o := range opts {
		o(cfg)
	}
	return cfg
}

// WithErrorHandler installs a handler deciding whether an error is swallowed.
func WithErrorHandler(h func(error) bool) Option {
	return func(c *config) {
		c.errorHandler = h
	}
}
