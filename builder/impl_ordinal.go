// SPDX-License-Identifier: MIT
// Package: catcheck/builder
//
// impl_ordinal.go - Ordinal(n), the finite total order [n] as a category.
//
// Contract:
//   • 1 ≤ n ≤ maxOrdinal (composites grow as C(n,3)).
//   • Emission order: identities (i asc), morphisms "i->j" for i<j (lex asc),
//     composites "i->j->k" for i<j<k (lex asc).
//   • Composite "i->j->k" is labelled "i->k", making it equal to "i->k".
//
// Complexity:
//   • O(n) objects, O(n²) morphisms, O(n³) composites.

package builder

import (
	"fmt"

	"github.com/katalvlaran/catcheck/category"
)

const (
	methodOrdinal = "Ordinal"
	maxOrdinal    = 16
)

// Ordinal returns a Constructor for the poset [n].
func Ordinal(n int) Constructor {
	return func(d *category.Description, cfg builderConfig) error {
		if err := validateRange(methodOrdinal, n, 1, maxOrdinal); err != nil {
			return err
		}
		d.Name = cfg.nameOr(fmt.Sprintf("[%d]", n))
		ids := addObjects(d, cfg, n)

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				id := arrowID(ids[i], ids[j])
				d.Morphisms = append(d.Morphisms, category.MorphismDesc{
					ID: id, From: ids[i], To: ids[j], Label: id,
				})
			}
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				for k := j + 1; k < n; k++ {
					d.Morphisms = append(d.Morphisms, category.MorphismDesc{
						ID:           arrowID(ids[i], ids[j]) + "->" + ids[k],
						From:         ids[i],
						To:           ids[k],
						Label:        arrowID(ids[i], ids[k]),
						IsComposite:  true,
						ComposedFrom: []string{arrowID(ids[i], ids[j]), arrowID(ids[j], ids[k])},
					})
				}
			}
		}

		return nil
	}
}

func arrowID(from, to string) string {
	return from + "->" + to
}
