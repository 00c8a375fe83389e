// Package quiver provides the directed multigraph that underlies every finite
// category in catcheck: objects are vertices, morphisms are arrows, and both
// parallel arrows and self-loops are always permitted.
//
// The Quiver Q = (O, A, s, t) supports:
//
//   - Unique, non-empty object and arrow ids (explicit, never generated)
//   - Optional human-readable labels on both
//   - Constant-time membership and hom lookups via nested maps:
//     hom[from][to][arrowID] = struct{}{}
//   - Deterministic enumeration: Objects(), Arrows(), Hom(), Outgoing() and
//     Incoming() all return results sorted by id
//
// Lifecycle:
//
//	A Quiver is populated once (AddObject/AddArrow) by a single goroutine and
//	then treated as an immutable snapshot. Reads after construction are safe
//	for concurrent use; mutation after sharing is not supported.
//
// Core Methods:
//
//	AddObject(id, label string) error           // O(1)
//	AddArrow(id, from, to, label string) error  // O(1)
//	Object(id) (Object, bool) / Arrow(id) (Arrow, bool)
//	Hom(from, to string) []Arrow                // O(k log k)
//	Outgoing(id) / Incoming(id) []Arrow         // O(d log d)
//	Objects() []Object / Arrows() []Arrow       // O(n log n)
//
// Errors:
//
//	ErrEmptyID          – zero-length object or arrow id
//	ErrDuplicateObject  – object id already present
//	ErrDuplicateArrow   – arrow id already present
//	ErrObjectNotFound   – arrow endpoint references an unknown object
//	ErrArrowNotFound    – lookup of an unknown arrow where an error is expected
package quiver
