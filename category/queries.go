// SPDX-License-Identifier: MIT
//
// File: queries.go
// Role: Read-only structural queries on a built Category.
// Determinism:
//   - Slice results are sorted by id ascending.
//   - Compose/Composite return class representatives, never raw duplicates.

package category

import (
	"sort"

	"github.com/katalvlaran/catcheck/quiver"
)

// Composite is a well-formed declared composite: ID = Second ∘ First.
type Composite struct {
	ID     string
	First  string
	Second string
}

// Name returns the category name.
func (c *Category) Name() string { return c.name }

// Quiver exposes the underlying graph (read-only by convention).
func (c *Category) Quiver() *quiver.Quiver { return c.q }

// Description returns a deep copy of the description c was built from.
func (c *Category) Description() Description { return c.desc.Clone() }

// HasObject reports whether id names an object.
func (c *Category) HasObject(id string) bool { return c.q.HasObject(id) }

// HasMorphism reports whether id names a morphism.
func (c *Category) HasMorphism(id string) bool {
	_, ok := c.morphisms[id]
	return ok
}

// Objects returns the object descriptions sorted by id.
func (c *Category) Objects() []ObjectDesc {
	objs := c.q.Objects()
	out := make([]ObjectDesc, len(objs))
	for i, o := range objs {
		out[i] = ObjectDesc{ID: o.ID, Label: o.Label}
	}

	return out
}

// Morphisms returns the morphism descriptions sorted by id.
func (c *Category) Morphisms() []MorphismDesc {
	out := make([]MorphismDesc, len(c.ids))
	for i, id := range c.ids {
		out[i], _ = c.Morphism(id)
	}

	return out
}

// Morphism returns a copy of the description of morphism id.
func (c *Category) Morphism(id string) (MorphismDesc, bool) {
	m, ok := c.morphisms[id]
	if !ok {
		return MorphismDesc{}, false
	}
	m.ComposedFrom = append([]string(nil), m.ComposedFrom...)

	return m, true
}

// Hom returns the ids of all morphisms a → b, sorted.
func (c *Category) Hom(a, b string) []string {
	arrows := c.q.Hom(a, b)
	out := make([]string, len(arrows))
	for i, ar := range arrows {
		out[i] = ar.ID
	}

	return out
}

// Representative returns the smallest id equal to morphism id.
func (c *Category) Representative(id string) (string, bool) {
	rep, ok := c.class[id]
	return rep, ok
}

// Equal reports whether a and b denote the same morphism: same id, or
// parallel with the same non-empty label. Unknown ids are never equal.
func (c *Category) Equal(a, b string) bool {
	ra, okA := c.class[a]
	rb, okB := c.class[b]

	return okA && okB && ra == rb
}

// Composable reports whether f then g is defined, i.e. f.to == g.from.
func (c *Category) Composable(f, g string) bool {
	mf, okF := c.morphisms[f]
	mg, okG := c.morphisms[g]

	return okF && okG && mf.To == mg.From
}

// Composite returns the declared composite of f then g (g∘f), as a class
// representative. Only well-formed declared composites are consulted.
func (c *Category) Composite(f, g string) (string, bool) {
	if !c.Composable(f, g) {
		return "", false
	}
	h, ok := c.table[pair{first: c.class[f], second: c.class[g]}]

	return h, ok
}

// Compose resolves f then g (g∘f):
//  1. the declared composite of the pair, if any;
//  2. otherwise g when f is an identity, f when g is an identity;
//  3. otherwise unresolved (false).
//
// The result is a class representative.
func (c *Category) Compose(f, g string) (string, bool) {
	if !c.Composable(f, g) {
		return "", false
	}

	return c.composeReps(c.class[f], c.class[g])
}

// composeReps is Compose over representatives already known to be composable.
func (c *Category) composeReps(f, g string) (string, bool) {
	if h, ok := c.table[pair{first: f, second: g}]; ok {
		return h, true
	}
	if c.identityClass[f] {
		return g, true
	}
	if c.identityClass[g] {
		return f, true
	}

	return "", false
}

// ComposePath folds a path f1, f2, ..., fn left to right through Compose,
// i.e. ((f2∘f1)∘f3)... . It fails on an empty path, a non-composable step,
// or a step that does not resolve.
func (c *Category) ComposePath(ids ...string) (string, bool) {
	if len(ids) == 0 {
		return "", false
	}
	acc, ok := c.class[ids[0]]
	if !ok {
		return "", false
	}
	for _, next := range ids[1:] {
		if acc, ok = c.Compose(acc, next); !ok {
			return "", false
		}
	}

	return acc, true
}

// IsIdentity reports whether m is equal to a declared identity.
func (c *Category) IsIdentity(m string) bool {
	rep, ok := c.class[m]
	return ok && c.identityClass[rep]
}

// IsIdentityOn reports whether m is equal to a declared identity on obj.
func (c *Category) IsIdentityOn(m, obj string) bool {
	return c.IsIdentity(m) && c.morphisms[m].From == obj
}

// Identity returns the (first) identity class on obj.
func (c *Category) Identity(obj string) (string, bool) {
	ids := c.identitiesOn[obj]
	if len(ids) == 0 {
		return "", false
	}

	return ids[0], true
}

// DeclaredComposites lists every well-formed declared composite, sorted by id.
func (c *Category) DeclaredComposites() []Composite {
	var out []Composite
	for _, ids := range c.declared {
		for _, id := range ids {
			m := c.morphisms[id]
			out = append(out, Composite{ID: id, First: m.ComposedFrom[0], Second: m.ComposedFrom[1]})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}
