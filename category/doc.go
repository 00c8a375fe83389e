// Package category implements the finite category model: a plain Description
// of objects and morphisms is checked for structural soundness, frozen into an
// immutable *Category, and then verified against the category axioms.
//
// What:
//
//   - New builds a Category from a Description and fails fast with
//     ErrMalformedCategory on duplicate ids, dangling endpoints, or
//     inconsistent composite declarations.
//   - Verify checks, over the DECLARED data only:
//   - composite well-formedness (composability, endpoints);
//   - uniqueness of declared composites;
//   - identities (presence, endomorphism, left/right unit laws);
//   - associativity for every composable triple whose two bracketings resolve;
//   - composable pairs nobody declared (suggestions, optional).
//
// Equality:
//
//	Two morphisms are equal when they share an id, or when they are parallel
//	and carry the same non-empty label. This is how a learner states
//	f∘id_A = f: declare the composite with label "f". All checks work on the
//	resulting equivalence classes, represented by their smallest id.
//
// Composition:
//
//	Compose(f, g) means "f, then g" (g∘f) and resolves through the declared
//	composite table; an undeclared composite with an identity resolves by the
//	unit law. Nothing else is inferred: checks are partial on purpose and only
//	cover what the learner has actually built.
//
// Complexity:
//
//   - New:    O(V + M log M)
//   - Verify: O(V + M + T) where T is the number of composable triples
//     (bounded by M³; tens of morphisms in interactive use).
//
// Errors:
//
//   - ErrMalformedCategory  description rejected by New (wraps the cause)
package category
