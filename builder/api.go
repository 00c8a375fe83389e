// SPDX-License-Identifier: MIT
// Package: catcheck/builder
//
// api.go - public entry point and constructor type.
//
// Design contract:
//   - One orchestrator: Build(con, opts...). Resolves cfg, runs con on an empty Description.
//   - Constructors live in impl_*.go and validate their parameters first.
//   - Determinism: same inputs and options ⇒ identical Description.

package builder

import (
	"fmt"

	"github.com/katalvlaran/catcheck/category"
)

// Constructor fills an empty Description using the resolved builderConfig.
// Constructors MUST validate parameters before emitting anything and MUST
// NOT panic.
type Constructor func(d *category.Description, cfg builderConfig) error

// Build resolves opts and runs con, returning the finished Description.
// Constructor errors are wrapped with "Build: %w". A panicking IDFn is
// reported as ErrConstructFailed rather than propagated.
func Build(con Constructor, opts ...BuilderOption) (d category.Description, err error) {
	if con == nil {
		return category.Description{}, fmt.Errorf("Build: nil constructor: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(opts...)

	defer func() {
		if r := recover(); r != nil {
			d, err = category.Description{}, fmt.Errorf("Build: %v: %w", r, ErrConstructFailed)
		}
	}()
	if err = con(&d, cfg); err != nil {
		return category.Description{}, fmt.Errorf("Build: %w", err)
	}

	return d, nil
}

// IdentityMaps returns the object and morphism maps of the identity functor
// on d, ready for functor.New or catcheck.ValidateFunctor.
func IdentityMaps(d category.Description) (objectMap, morphismMap map[string]string) {
	objectMap = make(map[string]string, len(d.Objects))
	for _, o := range d.Objects {
		objectMap[o.ID] = o.ID
	}
	morphismMap = make(map[string]string, len(d.Morphisms))
	for _, m := range d.Morphisms {
		morphismMap[m.ID] = m.ID
	}

	return objectMap, morphismMap
}

// addObjects emits n objects via cfg.idFn and, unless disabled, their identities.
func addObjects(d *category.Description, cfg builderConfig, n int) []string {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		d.Objects = append(d.Objects, category.ObjectDesc{ID: ids[i]})
	}
	if cfg.identities {
		for _, id := range ids {
			d.Morphisms = append(d.Morphisms, identity(id))
		}
	}

	return ids
}

func identity(obj string) category.MorphismDesc {
	id := identityPrefix + obj
	return category.MorphismDesc{ID: id, From: obj, To: obj, Label: id, IsIdentity: true}
}

const identityPrefix = "id_"
