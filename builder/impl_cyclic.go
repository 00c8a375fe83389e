// SPDX-License-Identifier: MIT
// Package: catcheck/builder
//
// impl_cyclic.go - CyclicGroup(n), Z/n as a one-object category.
//
// Contract:
//   • 1 ≤ n ≤ maxCyclic.
//   • One object cfg.idFn(0); elements "g0".."g{n-1}"; "g0" (label "e") is the identity.
//   • For every i, j in 1..n-1 a composite "gi*gj" labelled like g_{(i+j) mod n}.
//   • With WithoutIdentities, "g0" is still emitted but not flagged.

package builder

import (
	"fmt"

	"github.com/katalvlaran/catcheck/category"
)

const (
	methodCyclic = "CyclicGroup"
	maxCyclic    = 32
)

// CyclicGroup returns a Constructor for the cyclic group Z/n.
func CyclicGroup(n int) Constructor {
	return func(d *category.Description, cfg builderConfig) error {
		if err := validateRange(methodCyclic, n, 1, maxCyclic); err != nil {
			return err
		}
		d.Name = cfg.nameOr(fmt.Sprintf("Z/%d", n))
		obj := cfg.idFn(0)
		d.Objects = append(d.Objects, category.ObjectDesc{ID: obj})

		for i := 0; i < n; i++ {
			d.Morphisms = append(d.Morphisms, category.MorphismDesc{
				ID: element(i), From: obj, To: obj, Label: power(i),
				IsIdentity: i == 0 && cfg.identities,
			})
		}
		for i := 1; i < n; i++ {
			for j := 1; j < n; j++ {
				d.Morphisms = append(d.Morphisms, category.MorphismDesc{
					ID:           element(i) + "*" + element(j),
					From:         obj,
					To:           obj,
					Label:        power((i + j) % n),
					IsComposite:  true,
					ComposedFrom: []string{element(i), element(j)},
				})
			}
		}

		return nil
	}
}

func element(i int) string { return fmt.Sprintf("g%d", i) }

func power(i int) string {
	if i == 0 {
		return "e"
	}

	return fmt.Sprintf("g^%d", i)
}
