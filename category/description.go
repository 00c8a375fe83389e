// SPDX-License-Identifier: MIT

package category

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ObjectDesc is the plain description of an object.
type ObjectDesc struct {
	ID    string `json:"id" yaml:"id" validate:"required"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
}

// MorphismDesc is the plain description of a morphism.
//
// ComposedFrom is [first, second] for a composite "first, then second";
// it must be set iff IsComposite is true.
type MorphismDesc struct {
	ID           string   `json:"id" yaml:"id" validate:"required"`
	From         string   `json:"from" yaml:"from" validate:"required"`
	To           string   `json:"to" yaml:"to" validate:"required"`
	Label        string   `json:"label,omitempty" yaml:"label,omitempty"`
	IsIdentity   bool     `json:"isIdentity,omitempty" yaml:"isIdentity,omitempty"`
	IsComposite  bool     `json:"isComposite,omitempty" yaml:"isComposite,omitempty"`
	ComposedFrom []string `json:"composedFrom,omitempty" yaml:"composedFrom,omitempty" validate:"omitempty,len=2,dive,required"`
}

// Description is the snapshot handed over by the interactive builder on every
// edit. It is a value: New copies what it needs and never retains the slices.
type Description struct {
	Name      string         `json:"name,omitempty" yaml:"name,omitempty"`
	Objects   []ObjectDesc   `json:"objects" yaml:"objects" validate:"dive"`
	Morphisms []MorphismDesc `json:"morphisms" yaml:"morphisms" validate:"dive"`
}

// Clone returns a deep copy of d.
func (d Description) Clone() Description {
	out := Description{
		Name:      d.Name,
		Objects:   append([]ObjectDesc(nil), d.Objects...),
		Morphisms: make([]MorphismDesc, len(d.Morphisms)),
	}
	for i, m := range d.Morphisms {
		m.ComposedFrom = append([]string(nil), m.ComposedFrom...)
		out.Morphisms[i] = m
	}

	return out
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report json field names ("morphisms[2].from") rather than Go names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// validateShape runs the struct-tag rules and flattens failures into one error.
func validateShape(d Description) error {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, formatFieldError(fe))
	}

	return errors.New(strings.Join(msgs, "; "))
}

func formatFieldError(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Description.")
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "len":
		return fmt.Sprintf("%s must list exactly %s morphisms", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
