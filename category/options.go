// SPDX-License-Identifier: MIT

package category

import "go.uber.org/zap"

// Option customizes a Category at construction time.
type Option func(*config)

type config struct {
	logger      *zap.Logger
	suggestions bool
}

func newConfig(opts ...Option) config {
	cfg := config{
		logger:      zap.NewNop(),
		suggestions: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLogger routes debug output of New and Verify to l.
// Panics on nil to surface programmer error early.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("category: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithSuggestions toggles ComposableButUndeclared warnings (default on).
// The lesson UI turns them off for exercises that do not ask for a full
// composition table.
func WithSuggestions(enabled bool) Option {
	return func(c *config) { c.suggestions = enabled }
}
