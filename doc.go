// Package catcheck validates small, finitely presented categories, functors
// and natural transformations against their laws, and reports what is wrong
// in terms a learner can act on.
//
// What is checked?
//
//	• Categories: composites are well formed, identities satisfy the unit laws,
//	  composition is associative wherever both groupings are declared.
//	• Functors: endpoints map consistently, identities and composites are preserved
//	  (covariant or contravariant).
//	• Natural transformations: components have the right endpoints and every
//	  naturality square commutes.
//
// Everything works on declared data. A composite the user has not declared is
// never invented: checks that would need it are skipped and, where useful,
// reported as warnings (ComposableButUndeclared, UnverifiableComposition).
//
// Two tiers of outcome:
//
//	errors    axiom violations; Result.Valid is false
//	warnings  incomplete data (missing identities, undeclared composites)
//
// Malformed input (dangling ids, duplicate ids, non-total maps) is not a
// validation outcome: it is returned as a Go error wrapping
// category.ErrMalformedCategory, functor.ErrMalformedFunctor or
// natural.ErrMalformedTransformation before any law is checked.
//
// Packages:
//
//	catcheck   one-call entry points (this package)
//	diag       Issue, Kind, Result shared by every check
//	quiver     the underlying directed multigraph
//	category   Category: construction, queries, Verify, Opposite
//	functor    Functor: construction, Verify, Compose, Identity
//	natural    Transformation: construction, Verify
//	builder    canonical categories: Discrete, Arrow, Ordinal, CyclicGroup
//	workbook   YAML/JSON documents holding many entries, checked in one run
//	cmd/catcheck  command-line front end for workbooks
//
// Quick example:
//
//	res, err := catcheck.ValidateCategory(category.Description{
//		Objects: []category.ObjectDesc{{ID: "A"}, {ID: "B"}, {ID: "C"}},
//		Morphisms: []category.MorphismDesc{
//			{ID: "f", From: "A", To: "B"},
//			{ID: "g", From: "B", To: "C"},
//			{ID: "h", From: "A", To: "C", IsComposite: true, ComposedFrom: []string{"f", "g"}},
//		},
//	})
//	// err == nil, res.Valid == true, three MissingIdentity warnings
//
// Every call is pure: the same description always yields the same result,
// issue for issue and in the same order.
package catcheck
