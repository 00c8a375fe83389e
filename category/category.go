// SPDX-License-Identifier: MIT
//
// File: category.go
// Role: Category type, New constructor, equality classes and the composite table.
// Determinism:
//   - Class representatives are the smallest id of each class.
//   - Every derived index is built from ids sorted ascending.
// AI-HINT (file):
//   - Only well-formed composites (composable, correct endpoints) enter the table;
//     Verify reports the others instead of letting them poison later checks.

package category

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/catcheck/quiver"
)

// pair is an ordered pair of class representatives: first, then second.
type pair struct{ first, second string }

// Category is an immutable, validated snapshot of a finite category.
// All methods are read-only and safe for concurrent use.
type Category struct {
	name string
	q    *quiver.Quiver
	desc Description // deep copy of the input, for Description() and Opposite()
	cfg  config
	opts []Option

	morphisms map[string]MorphismDesc // id → description
	ids       []string                // morphism ids, sorted

	class map[string]string // morphism id → class representative
	reps  []string          // class representatives, sorted

	identityClass map[string]bool     // rep → class holds a flagged identity endomorphism
	identitiesOn  map[string][]string // object id → identity class reps, sorted

	declared map[pair][]string // well-formed composites keyed by class pair, ids sorted
	table    map[pair]string   // class pair → class of first declared composite
}

// New validates desc and freezes it into a Category.
//
// Implementation:
//   - Stage 1: Struct-tag validation (required ids/endpoints, composedFrom arity).
//   - Stage 2: Register objects and arrows in a quiver (duplicates, dangling endpoints).
//   - Stage 3: Cross-check composite flags and composedFrom references.
//   - Stage 4: Build equality classes, identity classes and the composite table.
//
// Errors:
//   - ErrMalformedCategory wrapping the first problem found; quiver sentinels
//     (ErrDuplicateObject, ErrObjectNotFound, ...) remain visible to errors.Is.
//
// Complexity:
//   - Time O(V + M log M), Space O(V + M).
func New(desc Description, opts ...Option) (*Category, error) {
	cfg := newConfig(opts...)

	if err := validateShape(desc); err != nil {
		return nil, malformedf(methodNew, err, "category %q", desc.Name)
	}

	c := &Category{
		name:          desc.Name,
		q:             quiver.New(),
		desc:          desc.Clone(),
		cfg:           cfg,
		opts:          append([]Option(nil), opts...),
		morphisms:     make(map[string]MorphismDesc, len(desc.Morphisms)),
		class:         make(map[string]string, len(desc.Morphisms)),
		identityClass: make(map[string]bool),
		identitiesOn:  make(map[string][]string),
		declared:      make(map[pair][]string),
		table:         make(map[pair]string),
	}

	for _, o := range desc.Objects {
		if err := c.q.AddObject(o.ID, o.Label); err != nil {
			return nil, malformedf(methodNew, err, "category %q", desc.Name)
		}
	}
	for _, m := range c.desc.Morphisms {
		if err := c.q.AddArrow(m.ID, m.From, m.To, m.Label); err != nil {
			return nil, malformedf(methodNew, err, "category %q", desc.Name)
		}
		c.morphisms[m.ID] = m
		c.ids = append(c.ids, m.ID)
	}
	sort.Strings(c.ids)

	if err := c.checkCompositeRefs(); err != nil {
		return nil, err
	}

	c.buildClasses()
	c.buildIdentities()
	c.buildTable()

	cfg.logger.Debug("category built",
		zap.String("category", c.name),
		zap.Int("objects", c.q.ObjectCount()),
		zap.Int("morphisms", len(c.ids)),
		zap.Int("classes", len(c.reps)),
		zap.Int("composites", len(c.table)),
	)

	return c, nil
}

// checkCompositeRefs enforces IsComposite ⇔ composedFrom set, and that both
// factors name morphisms of this category.
func (c *Category) checkCompositeRefs() error {
	for _, id := range c.ids {
		m := c.morphisms[id]
		switch {
		case m.IsComposite && len(m.ComposedFrom) != 2:
			return malformedf(methodNew, nil, "morphism %q is composite but composedFrom is not a pair", id)
		case !m.IsComposite && len(m.ComposedFrom) > 0:
			return malformedf(methodNew, nil, "morphism %q has composedFrom but is not marked composite", id)
		}
		for _, ref := range m.ComposedFrom {
			if _, ok := c.morphisms[ref]; !ok {
				return malformedf(methodNew, nil, "morphism %q is composed from unknown morphism %q", id, ref)
			}
		}
	}

	return nil
}

// classKey groups parallel morphisms sharing a non-empty label.
type classKey struct{ from, to, label string }

func (c *Category) buildClasses() {
	byKey := make(map[classKey]string)
	for _, id := range c.ids { // ascending: first seen is the smallest id
		m := c.morphisms[id]
		if m.Label == "" {
			c.class[id] = id
			c.reps = append(c.reps, id)
			continue
		}
		k := classKey{from: m.From, to: m.To, label: m.Label}
		if rep, ok := byKey[k]; ok {
			c.class[id] = rep
			continue
		}
		byKey[k] = id
		c.class[id] = id
		c.reps = append(c.reps, id)
	}
}

func (c *Category) buildIdentities() {
	for _, id := range c.ids {
		m := c.morphisms[id]
		if !m.IsIdentity || m.From != m.To {
			continue
		}
		rep := c.class[id]
		if c.identityClass[rep] {
			continue
		}
		c.identityClass[rep] = true
		c.identitiesOn[m.From] = append(c.identitiesOn[m.From], rep)
	}
	for obj := range c.identitiesOn {
		sort.Strings(c.identitiesOn[obj])
	}
}

func (c *Category) buildTable() {
	for _, id := range c.ids {
		m := c.morphisms[id]
		if !m.IsComposite || c.compositeProblem(m) != "" {
			continue
		}
		p := pair{first: c.class[m.ComposedFrom[0]], second: c.class[m.ComposedFrom[1]]}
		c.declared[p] = append(c.declared[p], id)
		if _, ok := c.table[p]; !ok {
			c.table[p] = c.class[id]
		}
	}
}

// compositeProblem returns the diag kind name of what is wrong with the
// composite m, or "" if it is well-formed.
func (c *Category) compositeProblem(m MorphismDesc) string {
	first := c.morphisms[m.ComposedFrom[0]]
	second := c.morphisms[m.ComposedFrom[1]]
	if first.To != second.From {
		return problemNotComposable
	}
	if m.From != first.From || m.To != second.To {
		return problemEndpoints
	}

	return ""
}

const (
	problemNotComposable = "not composable"
	problemEndpoints     = "endpoint mismatch"
)

// Opposite returns the dual category C^op: every morphism is reversed and
// every declared composite [f, g] becomes [g, f]. Labels, identity flags and
// options are preserved, so c.Opposite().Opposite() verifies exactly like c.
//
// Errors:
//   - ErrMalformedCategory only if the reversed description is rejected,
//     which cannot happen for a Category built by New.
func (c *Category) Opposite() (*Category, error) {
	op := c.desc.Clone()
	op.Name = oppositeName(c.name)
	for i := range op.Morphisms {
		m := &op.Morphisms[i]
		m.From, m.To = m.To, m.From
		if len(m.ComposedFrom) == 2 {
			m.ComposedFrom[0], m.ComposedFrom[1] = m.ComposedFrom[1], m.ComposedFrom[0]
		}
	}
	out, err := New(op, c.opts...)
	if err != nil {
		return nil, fmt.Errorf("%s(%q): %w", methodOpposite, c.name, err)
	}

	return out, nil
}

const opSuffix = "^op"

func oppositeName(name string) string {
	if n := len(name) - len(opSuffix); n >= 0 && name[n:] == opSuffix {
		return name[:n]
	}

	return name + opSuffix
}
