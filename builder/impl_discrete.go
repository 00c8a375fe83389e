// SPDX-License-Identifier: MIT
// Package: catcheck/builder
//
// impl_discrete.go - Discrete(n) and Arrow().
//
// Contract:
//   • Discrete: 0 ≤ n ≤ maxDiscrete; objects 0..n-1, identities in the same order.
//   • Arrow: objects 0, 1; identities; one morphism "f": 0 → 1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/catcheck/category"
)

const (
	methodDiscrete = "Discrete"
	methodArrow    = "Arrow"
	maxDiscrete    = 64
	arrowMorphism  = "f"
)

// Discrete returns a Constructor for the discrete category on n objects.
func Discrete(n int) Constructor {
	return func(d *category.Description, cfg builderConfig) error {
		if err := validateRange(methodDiscrete, n, 0, maxDiscrete); err != nil {
			return err
		}
		d.Name = cfg.nameOr(fmt.Sprintf("Disc(%d)", n))
		addObjects(d, cfg, n)

		return nil
	}
}

// Arrow returns a Constructor for the walking arrow 2 = {0 → 1}.
func Arrow() Constructor {
	return func(d *category.Description, cfg builderConfig) error {
		d.Name = cfg.nameOr("2")
		ids := addObjects(d, cfg, 2)
		d.Morphisms = append(d.Morphisms, category.MorphismDesc{
			ID: arrowMorphism, From: ids[0], To: ids[1], Label: arrowMorphism,
		})

		return nil
	}
}
