// SPDX-License-Identifier: MIT
//
// File: verify.go
// Role: Axiom checking over declared data.
// Determinism:
//   - Checks run in a fixed order; each iterates over sorted ids.
// AI-HINT (file):
//   - Triples containing an identity are skipped by the associativity pass:
//     they resolve through the unit law and any failure there is already an
//     IdentityLawViolation.

package category

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/catcheck/diag"
)

// Verify checks c against the category axioms and returns the result.
// It is a pure function of c: calling it twice yields identical results.
//
// Order of checks:
//  1. composite well-formedness  (NotComposable, CompositeEndpointMismatch)
//  2. composite uniqueness       (ConflictingComposites)
//  3. identities                 (IdentityNotEndomorphism, MissingIdentity, MultipleIdentities)
//  4. unit laws                  (IdentityLawViolation)
//  5. associativity              (AssociativityViolation)
//  6. completeness suggestions   (ComposableButUndeclared, unless disabled)
func (c *Category) Verify() diag.Result {
	var col diag.Collector

	c.checkComposites(&col)
	c.checkConflicts(&col)
	c.checkIdentities(&col)
	c.checkUnitLaws(&col)
	c.checkAssociativity(&col)
	if c.cfg.suggestions {
		c.suggestComposites(&col)
	}

	res := col.Result()
	c.cfg.logger.Debug("category verified",
		zap.String("category", c.name),
		zap.Bool("valid", res.Valid),
		zap.Int("errors", len(res.Errors)),
		zap.Int("warnings", len(res.Warnings)),
	)

	return res
}

func (c *Category) checkComposites(col *diag.Collector) {
	for _, id := range c.ids {
		m := c.morphisms[id]
		if !m.IsComposite {
			continue
		}
		f, g := c.morphisms[m.ComposedFrom[0]], c.morphisms[m.ComposedFrom[1]]
		switch c.compositeProblem(m) {
		case problemNotComposable:
			col.Errorf(diag.NotComposable, diag.IDs(f.To, g.From), diag.IDs(f.ID, g.ID, id),
				"composite %q declares %q then %q, but %q ends at %q and %q starts at %q",
				id, f.ID, g.ID, f.ID, f.To, g.ID, g.From)
		case problemEndpoints:
			col.Errorf(diag.CompositeEndpointMismatch, diag.IDs(f.From, g.To), diag.IDs(id, f.ID, g.ID),
				"composite %q of %q then %q must run %s→%s, declared %s→%s",
				id, f.ID, g.ID, f.From, g.To, m.From, m.To)
		}
	}
}

func (c *Category) checkConflicts(col *diag.Collector) {
	keys := make([]pair, 0, len(c.declared))
	for p := range c.declared {
		keys = append(keys, p)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].first != keys[j].first {
			return keys[i].first < keys[j].first
		}
		return keys[i].second < keys[j].second
	})

	for _, p := range keys {
		ids := c.declared[p]
		distinct := make([]string, 0, len(ids))
		seen := make(map[string]bool, len(ids))
		for _, id := range ids {
			if rep := c.class[id]; !seen[rep] {
				seen[rep] = true
				distinct = append(distinct, id)
			}
		}
		if len(distinct) < 2 {
			continue
		}
		col.Errorf(diag.ConflictingComposites, nil, append([]string{p.first, p.second}, distinct...),
			"%q then %q has %d different declared composites: %s",
			p.first, p.second, len(distinct), strings.Join(distinct, ", "))
	}
}

func (c *Category) checkIdentities(col *diag.Collector) {
	for _, id := range c.ids {
		m := c.morphisms[id]
		if m.IsIdentity && m.From != m.To {
			col.Errorf(diag.IdentityNotEndomorphism, diag.IDs(m.From, m.To), diag.IDs(id),
				"identity %q must be an endomorphism, declared %s→%s", id, m.From, m.To)
		}
	}
	for _, o := range c.q.Objects() {
		switch ids := c.identitiesOn[o.ID]; {
		case len(ids) == 0:
			col.Warnf(diag.MissingIdentity, diag.IDs(o.ID), nil,
				"object %q has no declared identity morphism", o.ID)
		case len(ids) > 1:
			col.Warnf(diag.MultipleIdentities, diag.IDs(o.ID), ids,
				"object %q has %d distinct identities (%s); identities are unique in a category",
				o.ID, len(ids), strings.Join(ids, ", "))
		}
	}
}

// checkUnitLaws compares every declared composite touching an identity with
// the other factor: id_A then f must equal f, and f then id_B must equal f.
func (c *Category) checkUnitLaws(col *diag.Collector) {
	for _, cp := range c.DeclaredComposites() {
		first, second := c.class[cp.First], c.class[cp.Second]
		if c.identityClass[first] && !c.Equal(cp.ID, cp.Second) {
			obj := c.morphisms[cp.First].From
			col.Errorf(diag.IdentityLawViolation, diag.IDs(obj), diag.IDs(cp.ID, cp.Second),
				"left unit law fails on %q: %q∘%q is declared as %q, expected %q",
				obj, cp.Second, cp.First, cp.ID, cp.Second)
		}
		if c.identityClass[second] && !c.Equal(cp.ID, cp.First) {
			obj := c.morphisms[cp.Second].From
			col.Errorf(diag.IdentityLawViolation, diag.IDs(obj), diag.IDs(cp.ID, cp.First),
				"right unit law fails on %q: %q∘%q is declared as %q, expected %q",
				obj, cp.Second, cp.First, cp.ID, cp.First)
		}
	}
}

// checkAssociativity walks composable representative triples f, g, h and
// compares h∘(g∘f) with (h∘g)∘f whenever both resolve.
func (c *Category) checkAssociativity(col *diag.Collector) {
	for _, f := range c.reps {
		if c.identityClass[f] {
			continue
		}
		for _, g := range c.successors(f) {
			gf, ok := c.composeReps(f, g)
			if !ok {
				continue
			}
			for _, h := range c.successors(g) {
				hg, ok := c.composeReps(g, h)
				if !ok {
					continue
				}
				left, okL := c.composeReps(gf, h)  // h∘(g∘f)
				right, okR := c.composeReps(f, hg) // (h∘g)∘f
				if !okL || !okR || left == right {
					continue
				}
				col.Errorf(diag.AssociativityViolation, nil, diag.IDs(f, g, h),
					"(%s∘%s)∘%s = %q but %s∘(%s∘%s) = %q",
					h, g, f, right, h, g, f, left)
			}
		}
	}
}

// successors returns the non-identity representatives composable after rep.
func (c *Category) successors(rep string) []string {
	arrows := c.q.Outgoing(c.morphisms[rep].To)
	out := make([]string, 0, len(arrows))
	for _, a := range arrows {
		if c.class[a.ID] != a.ID || c.identityClass[a.ID] {
			continue
		}
		out = append(out, a.ID)
	}

	return out
}

func (c *Category) suggestComposites(col *diag.Collector) {
	for _, f := range c.reps {
		if c.identityClass[f] {
			continue
		}
		for _, g := range c.successors(f) {
			if _, ok := c.table[pair{first: f, second: g}]; ok {
				continue
			}
			mf, mg := c.morphisms[f], c.morphisms[g]
			col.Warnf(diag.ComposableButUndeclared, diag.IDs(mf.From, mg.To), diag.IDs(f, g),
				"%q then %q is composable (%s→%s) but no composite is declared",
				f, g, mf.From, mg.To)
		}
	}
}
