// SPDX-License-Identifier: MIT

package functor

import (
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/catcheck/category"
	"github.com/katalvlaran/catcheck/diag"
)

// Functor is an immutable mapping between two categories.
type Functor struct {
	name        string
	src, dst    *category.Category
	objectMap   map[string]string
	morphismMap map[string]string
	cfg         config
}

// New builds a functor named name from src to dst.
//
// Implementation:
//   - Stage 1: Reject nil categories.
//   - Stage 2: Require objectMap to be total over src objects with images in dst.
//   - Stage 3: Require morphismMap to be total over src morphisms with images in dst.
//   - Stage 4: Reject keys that are not src ids.
//
// Errors:
//   - ErrMalformedFunctor with the first offending id.
//
// Complexity:
//   - Time O(V + M), Space O(V + M) for the copied maps.
func New(name string, src, dst *category.Category, objectMap, morphismMap map[string]string, opts ...Option) (*Functor, error) {
	if src == nil || dst == nil {
		return nil, malformedf(methodNew, name, "source and target categories are required")
	}

	for _, o := range src.Objects() {
		img, ok := objectMap[o.ID]
		if !ok {
			return nil, malformedf(methodNew, name, "object %q of %q is not mapped", o.ID, src.Name())
		}
		if !dst.HasObject(img) {
			return nil, malformedf(methodNew, name, "object %q maps to %q, which is not in %q", o.ID, img, dst.Name())
		}
	}
	for _, m := range src.Morphisms() {
		img, ok := morphismMap[m.ID]
		if !ok {
			return nil, malformedf(methodNew, name, "morphism %q of %q is not mapped", m.ID, src.Name())
		}
		if !dst.HasMorphism(img) {
			return nil, malformedf(methodNew, name, "morphism %q maps to %q, which is not in %q", m.ID, img, dst.Name())
		}
	}
	if k, ok := firstUnknownKey(objectMap, src.HasObject); ok {
		return nil, malformedf(methodNew, name, "object map names %q, which is not in %q", k, src.Name())
	}
	if k, ok := firstUnknownKey(morphismMap, src.HasMorphism); ok {
		return nil, malformedf(methodNew, name, "morphism map names %q, which is not in %q", k, src.Name())
	}

	return &Functor{
		name:        name,
		src:         src,
		dst:         dst,
		objectMap:   copyMap(objectMap),
		morphismMap: copyMap(morphismMap),
		cfg:         newConfig(opts...),
	}, nil
}

// Identity returns the identity functor on c.
func Identity(c *category.Category, opts ...Option) *Functor {
	objects := make(map[string]string)
	for _, o := range c.Objects() {
		objects[o.ID] = o.ID
	}
	morphisms := make(map[string]string)
	for _, m := range c.Morphisms() {
		morphisms[m.ID] = m.ID
	}

	return &Functor{
		name:        "id_" + c.Name(),
		src:         c,
		dst:         c,
		objectMap:   objects,
		morphismMap: morphisms,
		cfg:         newConfig(opts...),
	}
}

// Compose returns G∘F (apply f first). The result is contravariant iff
// exactly one of f, g is. It shares f's options.
//
// Errors:
//   - ErrMalformedFunctor if f's target is not g's source.
func Compose(f, g *Functor) (*Functor, error) {
	if f == nil || g == nil {
		return nil, malformedf(methodCompose, "", "both functors are required")
	}
	name := g.name + "∘" + f.name
	if f.dst != g.src {
		return nil, malformedf(methodCompose, name, "target %q of %q is not source %q of %q",
			f.dst.Name(), f.name, g.src.Name(), g.name)
	}

	objects := make(map[string]string, len(f.objectMap))
	for k, v := range f.objectMap {
		objects[k] = g.objectMap[v]
	}
	morphisms := make(map[string]string, len(f.morphismMap))
	for k, v := range f.morphismMap {
		morphisms[k] = g.morphismMap[v]
	}
	cfg := f.cfg
	cfg.contravariant = f.cfg.contravariant != g.cfg.contravariant

	return &Functor{name: name, src: f.src, dst: g.dst, objectMap: objects, morphismMap: morphisms, cfg: cfg}, nil
}

// Name returns the functor name.
func (f *Functor) Name() string { return f.name }

// Source returns the domain category.
func (f *Functor) Source() *category.Category { return f.src }

// Target returns the codomain category.
func (f *Functor) Target() *category.Category { return f.dst }

// Contravariant reports whether f reverses arrows.
func (f *Functor) Contravariant() bool { return f.cfg.contravariant }

// MapObject returns F(obj).
func (f *Functor) MapObject(obj string) (string, bool) {
	img, ok := f.objectMap[obj]
	return img, ok
}

// MapMorphism returns F(m).
func (f *Functor) MapMorphism(m string) (string, bool) {
	img, ok := f.morphismMap[m]
	return img, ok
}

// Verify checks the functor laws.
//
// Order of checks:
//  1. endpoints      (EndpointMismatch)
//  2. identities     (IdentityNotPreserved)
//  3. composition    (CompositionNotPreserved, UnverifiableComposition)
//
// Composition preservation runs over the source's well-formed declared
// composites and resolves the image through the target's Compose, so an
// identity image composes by the unit law even when undeclared.
func (f *Functor) Verify() diag.Result {
	var col diag.Collector

	f.checkEndpoints(&col)
	f.checkIdentities(&col)
	f.checkComposition(&col)

	res := col.Result()
	f.cfg.logger.Debug("functor verified",
		zap.String("functor", f.name),
		zap.String("source", f.src.Name()),
		zap.String("target", f.dst.Name()),
		zap.Bool("contravariant", f.cfg.contravariant),
		zap.Bool("valid", res.Valid),
		zap.Int("errors", len(res.Errors)),
		zap.Int("warnings", len(res.Warnings)),
	)

	return res
}

func (f *Functor) checkEndpoints(col *diag.Collector) {
	for _, m := range f.src.Morphisms() {
		img, _ := f.dst.Morphism(f.morphismMap[m.ID])
		wantFrom, wantTo := f.objectMap[m.From], f.objectMap[m.To]
		if f.cfg.contravariant {
			wantFrom, wantTo = wantTo, wantFrom
		}
		if img.From == wantFrom && img.To == wantTo {
			continue
		}
		col.Errorf(diag.EndpointMismatch, diag.IDs(wantFrom, wantTo), diag.IDs(m.ID, img.ID),
			"%s(%s) = %q must run %s→%s, but runs %s→%s",
			f.name, m.ID, img.ID, wantFrom, wantTo, img.From, img.To)
	}
}

// checkIdentities requires the image of every declared identity to be a
// morphism flagged as identity on the image object. Equality classes are not
// consulted: a parallel endomorphism sharing the identity's label is not one.
func (f *Functor) checkIdentities(col *diag.Collector) {
	for _, m := range f.src.Morphisms() {
		if !m.IsIdentity || m.From != m.To {
			continue
		}
		img, obj := f.morphismMap[m.ID], f.objectMap[m.From]
		if isDeclaredIdentityOn(f.dst, img, obj) {
			continue
		}
		col.Errorf(diag.IdentityNotPreserved, diag.IDs(m.From, obj), diag.IDs(m.ID, img),
			"%s(%s) = %q is not a declared identity on %q", f.name, m.ID, img, obj)
	}
}

func isDeclaredIdentityOn(c *category.Category, id, obj string) bool {
	m, ok := c.Morphism(id)
	return ok && m.IsIdentity && m.From == obj && m.To == obj
}

func (f *Functor) checkComposition(col *diag.Collector) {
	for _, cp := range f.src.DeclaredComposites() {
		ff, fg, fh := f.morphismMap[cp.First], f.morphismMap[cp.Second], f.morphismMap[cp.ID]
		first, second := ff, fg
		if f.cfg.contravariant {
			first, second = fg, ff
		}
		want, ok := f.dst.Compose(first, second)
		if !ok {
			col.Warnf(diag.UnverifiableComposition, nil, diag.IDs(cp.First, cp.Second, cp.ID),
				"%s(%s) then %s(%s) = %q then %q has no declared composite in %q",
				f.name, cp.First, f.name, cp.Second, first, second, f.dst.Name())
			continue
		}
		if f.dst.Equal(fh, want) {
			continue
		}
		col.Errorf(diag.CompositionNotPreserved, nil, diag.IDs(cp.First, cp.Second, cp.ID),
			"%s(%s) = %q, but the composite of %q then %q in %q is %q",
			f.name, cp.ID, fh, first, second, f.dst.Name(), want)
	}
}

func copyMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}

// firstUnknownKey returns the smallest key rejected by known, for stable errors.
func firstUnknownKey(m map[string]string, known func(string) bool) (string, bool) {
	var bad []string
	for k := range m {
		if !known(k) {
			bad = append(bad, k)
		}
	}
	if len(bad) == 0 {
		return "", false
	}
	sort.Strings(bad)

	return bad[0], true
}
