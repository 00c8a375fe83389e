// SPDX-License-Identifier: MIT
// Package: catcheck/builder
//
// options.go - functional options and the resolved builderConfig.

package builder

// BuilderOption customizes a constructor before it runs.
type BuilderOption func(*builderConfig)

// builderConfig is passed by value to constructors.
type builderConfig struct {
	name       string // empty → constructor default
	idFn       IDFn
	identities bool
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:       DefaultIDFn,
		identities: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// nameOr returns the configured name or def.
func (c builderConfig) nameOr(def string) string {
	if c.name != "" {
		return c.name
	}

	return def
}

// WithName sets the category name.
func WithName(name string) BuilderOption {
	return func(c *builderConfig) { c.name = name }
}

// WithIDScheme sets the object id generator. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithoutIdentities omits identity morphisms. Composites that would reduce
// to an identity are still declared, so the result exercises MissingIdentity
// and ComposableButUndeclared.
func WithoutIdentities() BuilderOption {
	return func(c *builderConfig) { c.identities = false }
}
