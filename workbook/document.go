// SPDX-License-Identifier: MIT

package workbook

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/catcheck/category"
)

// Document is the on-disk shape of a workbook.
type Document struct {
	Name            string                 `json:"name,omitempty" yaml:"name,omitempty"`
	Categories      []category.Description `json:"categories,omitempty" yaml:"categories,omitempty"`
	Functors        []FunctorDoc           `json:"functors,omitempty" yaml:"functors,omitempty"`
	Transformations []TransformationDoc    `json:"transformations,omitempty" yaml:"transformations,omitempty"`
}

// FunctorDoc describes a functor between two named categories.
type FunctorDoc struct {
	Name          string            `json:"name" yaml:"name" validate:"required"`
	Source        string            `json:"source" yaml:"source" validate:"required"`
	Target        string            `json:"target" yaml:"target" validate:"required"`
	Contravariant bool              `json:"contravariant,omitempty" yaml:"contravariant,omitempty"`
	ObjectMap     map[string]string `json:"objectMap" yaml:"objectMap"`
	MorphismMap   map[string]string `json:"morphismMap" yaml:"morphismMap"`
}

// TransformationDoc describes a natural transformation between two named functors.
type TransformationDoc struct {
	Name       string            `json:"name" yaml:"name" validate:"required"`
	From       string            `json:"from" yaml:"from" validate:"required"`
	To         string            `json:"to" yaml:"to" validate:"required"`
	Components map[string]string `json:"components" yaml:"components"`
}

// Workbook is a parsed document plus where it came from.
type Workbook struct {
	Document
	Path string // empty for Parse
}

// Load reads and parses the workbook at path.
func Load(path string) (*Workbook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Load(%q): %w", path, err)
	}
	wb, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("Load(%q): %w", path, err)
	}
	wb.Path = path

	return wb, nil
}

// Parse decodes a single YAML or JSON document. Unknown fields are rejected
// so that typos such as "composedfrom" do not silently drop data.
func Parse(data []byte) (*Workbook, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("Parse: %w: %w", ErrParse, err)
	}

	return &Workbook{Document: doc}, nil
}

// Marshal renders doc as YAML with two-space indentation.
func Marshal(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("Marshal: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("Marshal: %w", err)
	}

	return buf.Bytes(), nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
	})

	return v
}

// validateEntry checks the required fields of a functor or transformation entry.
func validateEntry(entry interface{}) error {
	err := validate.Struct(entry)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalidEntry, err)
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}

	return fmt.Errorf("%w: missing %s", ErrInvalidEntry, strings.Join(fields, ", "))
}
