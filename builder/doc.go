// SPDX-License-Identifier: MIT
// Package builder constructs canonical finite categories as ready-to-verify
// category.Description values: the fixtures lessons start from and the
// reference shapes tests compare against.
//
// Constructors:
//
//	Discrete(n)     n objects, identities only
//	Arrow()         the walking arrow 0 → 1
//	Ordinal(n)      the poset [n] = 0 ≤ 1 ≤ … ≤ n-1, every composite declared
//	CyclicGroup(n)  Z/n as a one-object category, every product declared
//
// Every constructor declares a complete composition table, so the result
// verifies valid with zero warnings unless WithoutIdentities is used.
//
// Options:
//
//	WithName(s)           category name (default per constructor)
//	WithIDScheme(fn)      object ids from indices (default "0","1",…; SymbolIDFn "A".."Z","AA",…)
//	WithoutIdentities()   omit identity morphisms (exercise MissingIdentity)
//
// Determinism:
//
//	Same constructor and options ⇒ identical Description, morphisms emitted
//	in a documented order.
package builder
