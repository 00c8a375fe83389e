// SPDX-License-Identifier: MIT

package catcheck

import (
	"fmt"

	"github.com/katalvlaran/catcheck/category"
	"github.com/katalvlaran/catcheck/diag"
	"github.com/katalvlaran/catcheck/functor"
	"github.com/katalvlaran/catcheck/natural"
)

// FunctorMaps is the plain description of a functor between two given categories.
type FunctorMaps struct {
	Name          string
	ObjectMap     map[string]string
	MorphismMap   map[string]string
	Contravariant bool
}

// ValidateCategory builds desc and checks it against the category axioms.
//
// Errors:
//   - category.ErrMalformedCategory for dangling references, duplicate ids
//     or inconsistent composite declarations.
func ValidateCategory(desc category.Description, opts ...category.Option) (diag.Result, error) {
	c, err := category.New(desc, opts...)
	if err != nil {
		return diag.Result{}, fmt.Errorf("ValidateCategory: %w", err)
	}

	return c.Verify(), nil
}

// ValidateFunctor builds both categories and the functor given by the maps,
// and checks the functor laws. Only the functor is verified: the categories
// themselves may be invalid, use ValidateCategory for them.
//
// Errors:
//   - category.ErrMalformedCategory if src or dst is malformed.
//   - functor.ErrMalformedFunctor if the maps are not total or name unknown ids.
func ValidateFunctor(src, dst category.Description, objectMap, morphismMap map[string]string, opts ...functor.Option) (diag.Result, error) {
	s, t, err := buildPair(src, dst)
	if err != nil {
		return diag.Result{}, fmt.Errorf("ValidateFunctor: %w", err)
	}
	f, err := functor.New("F", s, t, objectMap, morphismMap, opts...)
	if err != nil {
		return diag.Result{}, fmt.Errorf("ValidateFunctor: %w", err)
	}

	return f.Verify(), nil
}

// ValidateTransformation builds src, dst, the parallel functors from and to,
// and the transformation with the given components (object of src → morphism
// of dst), and checks naturality. Functor laws are not re-checked.
//
// Errors:
//   - category.ErrMalformedCategory, functor.ErrMalformedFunctor or
//     natural.ErrMalformedTransformation, whichever stage fails first.
func ValidateTransformation(src, dst category.Description, from, to FunctorMaps, components map[string]string) (diag.Result, error) {
	s, t, err := buildPair(src, dst)
	if err != nil {
		return diag.Result{}, fmt.Errorf("ValidateTransformation: %w", err)
	}
	ff, err := buildFunctor(from, "F", s, t)
	if err != nil {
		return diag.Result{}, fmt.Errorf("ValidateTransformation: %w", err)
	}
	gg, err := buildFunctor(to, "G", s, t)
	if err != nil {
		return diag.Result{}, fmt.Errorf("ValidateTransformation: %w", err)
	}
	alpha, err := natural.New(ff.Name()+"⇒"+gg.Name(), ff, gg, components)
	if err != nil {
		return diag.Result{}, fmt.Errorf("ValidateTransformation: %w", err)
	}

	return alpha.Verify(), nil
}

func buildPair(src, dst category.Description) (*category.Category, *category.Category, error) {
	s, err := category.New(src)
	if err != nil {
		return nil, nil, fmt.Errorf("source: %w", err)
	}
	t, err := category.New(dst)
	if err != nil {
		return nil, nil, fmt.Errorf("target: %w", err)
	}

	return s, t, nil
}

func buildFunctor(m FunctorMaps, def string, s, t *category.Category) (*functor.Functor, error) {
	name := m.Name
	if name == "" {
		name = def
	}

	return functor.New(name, s, t, m.ObjectMap, m.MorphismMap, functor.WithVariance(m.Contravariant))
}
