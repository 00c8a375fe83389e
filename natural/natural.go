// SPDX-License-Identifier: MIT

package natural

import (
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/catcheck/diag"
	"github.com/katalvlaran/catcheck/functor"
)

// ErrMalformedTransformation indicates that the functors are not parallel or
// the component map is not total over the source objects.
var ErrMalformedTransformation = errors.New("natural: malformed transformation")

const methodNew = "New"

// Transformation is an immutable candidate natural transformation F ⇒ G.
type Transformation struct {
	name       string
	from, to   *functor.Functor
	components map[string]string
	logger     *zap.Logger
}

// Option customizes a Transformation.
type Option func(*Transformation)

// WithLogger routes debug output to l. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("natural: WithLogger(nil)")
	}
	return func(t *Transformation) { t.logger = l }
}

// New builds the transformation name: from ⇒ to with the given components
// (source object id → target morphism id).
//
// Errors:
//   - ErrMalformedTransformation if from/to are nil, not parallel (same
//     source, target and variance), or components are not total over the
//     source objects, name unknown objects, or unknown target morphisms.
func New(name string, from, to *functor.Functor, components map[string]string, opts ...Option) (*Transformation, error) {
	if from == nil || to == nil {
		return nil, malformedf(name, "both functors are required")
	}
	if from.Source() != to.Source() || from.Target() != to.Target() {
		return nil, malformedf(name, "%q and %q are not parallel functors", from.Name(), to.Name())
	}
	if from.Contravariant() != to.Contravariant() {
		return nil, malformedf(name, "%q and %q differ in variance", from.Name(), to.Name())
	}

	src, dst := from.Source(), from.Target()
	for _, o := range src.Objects() {
		c, ok := components[o.ID]
		if !ok {
			return nil, malformedf(name, "no component at object %q", o.ID)
		}
		if !dst.HasMorphism(c) {
			return nil, malformedf(name, "component at %q is %q, which is not in %q", o.ID, c, dst.Name())
		}
	}
	keys := make([]string, 0, len(components))
	for k := range components {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !src.HasObject(k) {
			return nil, malformedf(name, "component names %q, which is not in %q", k, src.Name())
		}
	}

	t := &Transformation{
		name:       name,
		from:       from,
		to:         to,
		components: make(map[string]string, len(components)),
		logger:     zap.NewNop(),
	}
	for k, v := range components {
		t.components[k] = v
	}
	for _, opt := range opts {
		opt(t)
	}

	return t, nil
}

func malformedf(name, format string, args ...interface{}) error {
	return fmt.Errorf("%s: transformation %q: %s: %w", methodNew, name, fmt.Sprintf(format, args...), ErrMalformedTransformation)
}

// Name returns the transformation name.
func (t *Transformation) Name() string { return t.name }

// Component returns α_obj.
func (t *Transformation) Component(obj string) (string, bool) {
	c, ok := t.components[obj]
	return c, ok
}

// Verify checks component endpoints and every naturality square.
func (t *Transformation) Verify() diag.Result {
	var col diag.Collector
	src, dst := t.from.Source(), t.from.Target()

	for _, o := range src.Objects() {
		c := t.components[o.ID]
		m, _ := dst.Morphism(c)
		fa, _ := t.from.MapObject(o.ID)
		ga, _ := t.to.MapObject(o.ID)
		if m.From != fa || m.To != ga {
			col.Errorf(diag.ComponentEndpointMismatch, diag.IDs(o.ID, fa, ga), diag.IDs(c),
				"%s_%s = %q must run %s→%s, but runs %s→%s", t.name, o.ID, c, fa, ga, m.From, m.To)
		}
	}

	for _, m := range src.Morphisms() {
		ff, _ := t.from.MapMorphism(m.ID)
		gf, _ := t.to.MapMorphism(m.ID)
		alphaA, alphaB := t.components[m.From], t.components[m.To]

		// covariant:     F(f) then α_B   vs   α_A then G(f)
		// contravariant: F(f) then α_A   vs   α_B then G(f)
		down, across := alphaB, alphaA
		if t.from.Contravariant() {
			down, across = alphaA, alphaB
		}
		left, okL := dst.Compose(ff, down)
		right, okR := dst.Compose(across, gf)
		if !okL || !okR {
			col.Warnf(diag.UnverifiableNaturality, diag.IDs(m.From, m.To), diag.IDs(m.ID),
				"naturality square of %q cannot be resolved from declared composites in %q", m.ID, dst.Name())
			continue
		}
		if dst.Equal(left, right) {
			continue
		}
		col.Errorf(diag.NaturalityViolation, diag.IDs(m.From, m.To), diag.IDs(m.ID, left, right),
			"naturality square of %q does not commute: %q ≠ %q", m.ID, left, right)
	}

	res := col.Result()
	t.logger.Debug("transformation verified",
		zap.String("transformation", t.name),
		zap.String("from", t.from.Name()),
		zap.String("to", t.to.Name()),
		zap.Bool("valid", res.Valid),
		zap.Int("errors", len(res.Errors)),
		zap.Int("warnings", len(res.Warnings)),
	)

	return res
}
