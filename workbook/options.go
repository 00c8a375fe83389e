// SPDX-License-Identifier: MIT

package workbook

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CheckOption customizes a Check run.
type CheckOption func(*checkConfig)

type checkConfig struct {
	logger      *zap.Logger
	strict      bool
	suggestions bool
	runID       func() string
}

func newCheckConfig(opts ...CheckOption) checkConfig {
	cfg := checkConfig{
		logger:      zap.NewNop(),
		suggestions: true,
		runID:       uuid.NewString,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLogger routes per-entry debug output, and the models' own debug
// output, to l. Panics on nil.
func WithLogger(l *zap.Logger) CheckOption {
	if l == nil {
		panic("workbook: WithLogger(nil)")
	}
	return func(c *checkConfig) { c.logger = l }
}

// WithStrict promotes every warning to an error before verdicts are taken.
func WithStrict(strict bool) CheckOption {
	return func(c *checkConfig) { c.strict = strict }
}

// WithSuggestions toggles ComposableButUndeclared warnings on categories.
func WithSuggestions(enabled bool) CheckOption {
	return func(c *checkConfig) { c.suggestions = enabled }
}

// WithRunID replaces the random run id generator, e.g. for golden output.
// Panics on nil.
func WithRunID(fn func() string) CheckOption {
	if fn == nil {
		panic("workbook: WithRunID(nil)")
	}
	return func(c *checkConfig) { c.runID = fn }
}
