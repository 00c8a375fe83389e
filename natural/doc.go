// Package natural verifies natural transformations α: F ⇒ G between two
// functors sharing source, target and variance.
//
// A component α_A: F(A) → G(A) is given for every source object. For each
// source morphism f: A → B the square
//
//	F(A) ──α_A──▶ G(A)
//	 │             │
//	F(f)          G(f)
//	 ▼             ▼
//	F(B) ──α_B──▶ G(B)
//
// must commute: α_B∘F(f) = G(f)∘α_A (contravariant functors flip the
// vertical arrows and the square reads α_A∘F(f) = G(f)∘α_B). As elsewhere
// in catcheck, both paths are resolved through declared composites only; a
// path that does not resolve yields UnverifiableNaturality.
package natural
