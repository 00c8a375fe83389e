// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Object/arrow insertion and read-only queries.
// Determinism:
//   - Every slice-returning query sorts by ID ascending.
// AI-HINT (file):
//   - AddArrow never creates endpoints implicitly; add objects first.
//   - Returned Object/Arrow values are copies; mutating them does not affect the Quiver.

package quiver

import (
	"fmt"
	"sort"
)

// AddObject registers a new object.
//
// Implementation:
//   - Stage 1: Reject empty id (ErrEmptyID).
//   - Stage 2: Reject an id already present (ErrDuplicateObject).
//   - Stage 3: Store the object and bootstrap its adjacency buckets.
//
// Behavior highlights:
//   - Unlike core-style graphs, insertion is NOT idempotent: a repeated id is a
//     malformed description, and callers need to know about it.
//
// Errors:
//   - ErrEmptyID, ErrDuplicateObject (wrapped with the offending id).
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (q *Quiver) AddObject(id, label string) error {
	if id == "" {
		return ErrEmptyID
	}
	if _, ok := q.objects[id]; ok {
		return fmt.Errorf("AddObject(%q): %w", id, ErrDuplicateObject)
	}

	q.objects[id] = Object{ID: id, Label: label}
	q.hom[id] = make(map[string]map[string]struct{})
	q.in[id] = make(map[string]struct{})

	return nil
}

// AddArrow registers a new arrow from → to.
//
// Implementation:
//   - Stage 1: Validate ids are non-empty (ErrEmptyID).
//   - Stage 2: Reject a duplicate arrow id (ErrDuplicateArrow).
//   - Stage 3: Require both endpoints to exist (ErrObjectNotFound).
//   - Stage 4: Store in the catalog and index by (from,to) and by to.
//
// Behavior highlights:
//   - Parallel arrows and self-loops are always allowed.
//
// Errors:
//   - ErrEmptyID, ErrDuplicateArrow, ErrObjectNotFound (wrapped with context).
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (q *Quiver) AddArrow(id, from, to, label string) error {
	if id == "" || from == "" || to == "" {
		return fmt.Errorf("AddArrow(%q, %q→%q): %w", id, from, to, ErrEmptyID)
	}
	if _, ok := q.arrows[id]; ok {
		return fmt.Errorf("AddArrow(%q): %w", id, ErrDuplicateArrow)
	}
	if _, ok := q.objects[from]; !ok {
		return fmt.Errorf("AddArrow(%q): source %q: %w", id, from, ErrObjectNotFound)
	}
	if _, ok := q.objects[to]; !ok {
		return fmt.Errorf("AddArrow(%q): target %q: %w", id, to, ErrObjectNotFound)
	}

	q.arrows[id] = Arrow{ID: id, From: from, To: to, Label: label}
	bucket, ok := q.hom[from][to]
	if !ok {
		bucket = make(map[string]struct{})
		q.hom[from][to] = bucket
	}
	bucket[id] = struct{}{}
	q.in[to][id] = struct{}{}

	return nil
}

// HasObject reports whether an object with the given id exists. O(1).
func (q *Quiver) HasObject(id string) bool {
	_, ok := q.objects[id]
	return ok
}

// HasArrow reports whether an arrow with the given id exists. O(1).
func (q *Quiver) HasArrow(id string) bool {
	_, ok := q.arrows[id]
	return ok
}

// Object returns the object with the given id.
func (q *Quiver) Object(id string) (Object, bool) {
	o, ok := q.objects[id]
	return o, ok
}

// Arrow returns the arrow with the given id.
func (q *Quiver) Arrow(id string) (Arrow, bool) {
	a, ok := q.arrows[id]
	return a, ok
}

// MustArrow returns the arrow or ErrArrowNotFound, for call sites that
// propagate errors instead of branching on a bool.
func (q *Quiver) MustArrow(id string) (Arrow, error) {
	a, ok := q.arrows[id]
	if !ok {
		return Arrow{}, fmt.Errorf("Arrow(%q): %w", id, ErrArrowNotFound)
	}

	return a, nil
}

// ObjectCount returns |O|. O(1).
func (q *Quiver) ObjectCount() int { return len(q.objects) }

// ArrowCount returns |A|. O(1).
func (q *Quiver) ArrowCount() int { return len(q.arrows) }

// Objects returns all objects sorted by ID.
// Complexity: O(V log V).
func (q *Quiver) Objects() []Object {
	out := make([]Object, 0, len(q.objects))
	for _, o := range q.objects {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Arrows returns all arrows sorted by ID.
// Complexity: O(E log E).
func (q *Quiver) Arrows() []Arrow {
	out := make([]Arrow, 0, len(q.arrows))
	for _, a := range q.arrows {
		out = append(out, a)
	}
	sortArrows(out)

	return out
}

// Hom returns the arrows from → to, sorted by ID. Unknown endpoints yield nil.
//
// Complexity:
//   - Time O(k log k), Space O(k), where k = |Hom(from,to)|.
func (q *Quiver) Hom(from, to string) []Arrow {
	return q.collect(q.hom[from][to])
}

// Outgoing returns every arrow whose source is id, sorted by ID.
// Self-loops appear once.
//
// Complexity:
//   - Time O(d log d), Space O(d), where d is the out-degree of id.
func (q *Quiver) Outgoing(id string) []Arrow {
	var out []Arrow
	for _, bucket := range q.hom[id] {
		for aid := range bucket {
			out = append(out, q.arrows[aid])
		}
	}
	sortArrows(out)

	return out
}

// Incoming returns every arrow whose target is id, sorted by ID.
func (q *Quiver) Incoming(id string) []Arrow {
	return q.collect(q.in[id])
}

// Degree returns the in- and out-degree of an object.
// A self-loop counts once in each direction.
//
// Errors:
//   - ErrObjectNotFound if id is unknown.
func (q *Quiver) Degree(id string) (in, out int, err error) {
	if _, ok := q.objects[id]; !ok {
		return 0, 0, fmt.Errorf("Degree(%q): %w", id, ErrObjectNotFound)
	}
	for _, bucket := range q.hom[id] {
		out += len(bucket)
	}

	return len(q.in[id]), out, nil
}

func (q *Quiver) collect(bucket map[string]struct{}) []Arrow {
	if len(bucket) == 0 {
		return nil
	}
	out := make([]Arrow, 0, len(bucket))
	for aid := range bucket {
		out = append(out, q.arrows[aid])
	}
	sortArrows(out)

	return out
}

func sortArrows(as []Arrow) {
	sort.Slice(as, func(i, j int) bool { return as[i].ID < as[j].ID })
}
