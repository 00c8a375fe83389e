// SPDX-License-Identifier: MIT
// Package quiver declares Object, Arrow, Quiver, sentinel errors and the New constructor.

package quiver

import "errors"

// Sentinel errors for quiver operations.
var (
	// ErrEmptyID indicates that an object or arrow id is the empty string.
	ErrEmptyID = errors.New("quiver: empty id")

	// ErrDuplicateObject indicates that an object id is already registered.
	ErrDuplicateObject = errors.New("quiver: duplicate object id")

	// ErrDuplicateArrow indicates that an arrow id is already registered.
	ErrDuplicateArrow = errors.New("quiver: duplicate arrow id")

	// ErrObjectNotFound indicates an operation referenced a non-existent object.
	ErrObjectNotFound = errors.New("quiver: object not found")

	// ErrArrowNotFound indicates an operation referenced a non-existent arrow.
	ErrArrowNotFound = errors.New("quiver: arrow not found")
)

// Object is a vertex of the quiver. It carries no payload beyond its label.
type Object struct {
	// ID uniquely identifies this Object within its Quiver.
	ID string

	// Label is an optional display name.
	Label string
}

// Arrow is a directed edge From → To.
type Arrow struct {
	// ID uniquely identifies this Arrow within its Quiver.
	ID string

	// From is the source object ID.
	From string

	// To is the target object ID.
	To string

	// Label is an optional display name.
	Label string
}

// IsLoop reports whether the arrow starts and ends at the same object.
func (a Arrow) IsLoop() bool { return a.From == a.To }

// Quiver is a directed multigraph with loops.
//
// objects and arrows are the catalogs; hom indexes arrows by endpoints and
// in mirrors it by target so that Incoming is as cheap as Outgoing.
type Quiver struct {
	objects map[string]Object // object ID → Object
	arrows  map[string]Arrow  // arrow ID → Arrow

	// hom[from][to][arrowID] = struct{}{}
	hom map[string]map[string]map[string]struct{}
	// in[to][arrowID] = struct{}{}
	in map[string]map[string]struct{}
}

// New creates an empty Quiver.
// Complexity: O(1).
func New() *Quiver {
	return &Quiver{
		objects: make(map[string]Object),
		arrows:  make(map[string]Arrow),
		hom:     make(map[string]map[string]map[string]struct{}),
		in:      make(map[string]map[string]struct{}),
	}
}
