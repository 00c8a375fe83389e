// Package functor implements the functor model: a pair of total maps
// (objects → objects, morphisms → morphisms) between two built categories,
// verified against the functor laws over declared data.
//
// What:
//
//   - New rejects non-total maps, keys outside the source and images outside
//     the target with ErrMalformedFunctor.
//   - Verify checks endpoint consistency, identity preservation (the image
//     of a declared identity must itself be flagged isIdentity) and
//     composition preservation. A composite whose image cannot be resolved
//     in the target is reported as UnverifiableComposition, not as an error.
//   - WithContravariant flips the direction: F(f): F(B) → F(A) and
//     F(g∘f) must equal F(f)∘F(g).
//   - Compose and Identity build new functors from existing ones.
//
// Errors:
//
//   - ErrMalformedFunctor  maps rejected by New / Compose
package functor
