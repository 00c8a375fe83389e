// SPDX-License-Identifier: MIT
// Package diag defines the shared diagnostic vocabulary of catcheck: issue kinds,
// the Issue record and the two-tier Result returned by every Verify call.
//
// Tiers:
//
//   - Errors   - axiom violations; the structure is not a category/functor.
//     Any error makes Result.Valid false.
//   - Warnings - incompleteness of the declared data (missing identities,
//     composites nobody declared, checks that could not run). Informational.
//
// Malformed input is NOT represented here: constructors in category, functor
// and natural reject it with sentinel Go errors before any law is checked.
//
// Determinism:
//
//	Issues keep the order in which checks emitted them; checks iterate over
//	sorted ids, so equal inputs always produce byte-identical results.
package diag
