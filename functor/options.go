// SPDX-License-Identifier: MIT

package functor

import "go.uber.org/zap"

// Option customizes a Functor at construction time.
type Option func(*config)

type config struct {
	logger        *zap.Logger
	contravariant bool
}

func newConfig(opts ...Option) config {
	cfg := config{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithContravariant marks the functor as contravariant (C^op → D).
func WithContravariant() Option {
	return func(c *config) { c.contravariant = true }
}

// WithVariance sets the variance explicitly; handy when it comes from data.
func WithVariance(contravariant bool) Option {
	return func(c *config) { c.contravariant = contravariant }
}

// WithLogger routes debug output to l. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("functor: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}
