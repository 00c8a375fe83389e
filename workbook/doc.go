// SPDX-License-Identifier: MIT

// Package workbook loads documents describing several categories, functors
// and natural transformations at once and checks them in a single run.
//
// A workbook is YAML (JSON is accepted as a YAML subset):
//
//	name: lesson-3
//	categories:
//	  - name: "2"
//	    objects: [{id: "0"}, {id: "1"}]
//	    morphisms:
//	      - {id: id_0, from: "0", to: "0", isIdentity: true}
//	      - {id: id_1, from: "1", to: "1", isIdentity: true}
//	      - {id: f, from: "0", to: "1"}
//	functors:
//	  - name: F
//	    source: "2"
//	    target: "2"
//	    objectMap: {"0": "0", "1": "1"}
//	    morphismMap: {id_0: id_0, id_1: id_1, f: f}
//	transformations:
//	  - {name: alpha, from: F, to: F, components: {"0": id_0, "1": id_1}}
//
// Functors name categories and transformations name functors. Entries are
// built in document order by kind (categories, then functors, then
// transformations); an entry that cannot be built is reported with its error
// and everything that references it reports ErrUnknownReference.
package workbook
