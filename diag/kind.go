// SPDX-License-Identifier: MIT

package diag

// Kind names a class of diagnostic. Values are stable and appear verbatim in
// JSON/YAML reports consumed by the lesson UI.
type Kind string

// Error kinds (hard failures, Result.Valid=false).
const (
	// NotComposable: a composite declares composedFrom=[f,g] with f.to != g.from.
	NotComposable Kind = "NotComposable"
	// CompositeEndpointMismatch: composite h of [f,g] is not f.from → g.to.
	CompositeEndpointMismatch Kind = "CompositeEndpointMismatch"
	// ConflictingComposites: one composable pair has two unequal declared composites.
	ConflictingComposites Kind = "ConflictingComposites"
	// IdentityNotEndomorphism: a morphism flagged as identity has from != to.
	IdentityNotEndomorphism Kind = "IdentityNotEndomorphism"
	// IdentityLawViolation: f∘id or id∘f was declared and differs from f.
	IdentityLawViolation Kind = "IdentityLawViolation"
	// AssociativityViolation: (h∘g)∘f and h∘(g∘f) resolve to different morphisms.
	AssociativityViolation Kind = "AssociativityViolation"

	// EndpointMismatch: F(f) does not run between F(A) and F(B).
	EndpointMismatch Kind = "EndpointMismatch"
	// IdentityNotPreserved: F(id_A) is not a morphism flagged isIdentity on F(A);
	// a parallel endomorphism with the same label does not count.
	IdentityNotPreserved Kind = "IdentityNotPreserved"
	// CompositionNotPreserved: F(g∘f) differs from F(g)∘F(f).
	CompositionNotPreserved Kind = "CompositionNotPreserved"

	// ComponentEndpointMismatch: α_A does not run F(A) → G(A).
	ComponentEndpointMismatch Kind = "ComponentEndpointMismatch"
	// NaturalityViolation: a naturality square does not commute.
	NaturalityViolation Kind = "NaturalityViolation"
)

// Warning kinds (informational, never affect Result.Valid).
const (
	MissingIdentity         Kind = "MissingIdentity"
	MultipleIdentities      Kind = "MultipleIdentities"
	ComposableButUndeclared Kind = "ComposableButUndeclared"
	UnverifiableComposition Kind = "UnverifiableComposition"
	UnverifiableNaturality  Kind = "UnverifiableNaturality"
)
