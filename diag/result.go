// SPDX-License-Identifier: MIT

package diag

import (
	"fmt"
	"strings"
)

// Issue is a single diagnostic. Objects and Morphisms carry the ids involved,
// in the order the kind documents (e.g. [f, g, h] for AssociativityViolation),
// so a UI can highlight them without parsing Detail.
type Issue struct {
	Kind      Kind     `json:"kind" yaml:"kind"`
	Detail    string   `json:"detail" yaml:"detail"`
	Objects   []string `json:"objects,omitempty" yaml:"objects,omitempty"`
	Morphisms []string `json:"morphisms,omitempty" yaml:"morphisms,omitempty"`
}

// String renders "Kind: detail".
func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Kind, i.Detail)
}

// Result is the outcome of a Verify call.
// Valid is true iff Errors is empty; warnings never invalidate.
type Result struct {
	Valid    bool    `json:"valid" yaml:"valid"`
	Errors   []Issue `json:"errors" yaml:"errors"`
	Warnings []Issue `json:"warnings" yaml:"warnings"`
}

// Has reports whether any error or warning of kind k is present.
func (r Result) Has(k Kind) bool {
	return r.Count(k) > 0
}

// Count returns how many errors and warnings of kind k are present.
func (r Result) Count(k Kind) int {
	n := 0
	for _, is := range r.Errors {
		if is.Kind == k {
			n++
		}
	}
	for _, is := range r.Warnings {
		if is.Kind == k {
			n++
		}
	}

	return n
}

// Merge returns a new Result holding r's issues followed by other's.
func (r Result) Merge(other Result) Result {
	var c Collector
	c.errors = append(append(c.errors, r.Errors...), other.Errors...)
	c.warnings = append(append(c.warnings, r.Warnings...), other.Warnings...)

	return c.Result()
}

// Strict returns a copy where every warning is promoted to an error.
// Used by CI-style callers that require fully declared structures.
func (r Result) Strict() Result {
	var c Collector
	c.errors = append(append(c.errors, r.Errors...), r.Warnings...)

	return c.Result()
}

// Summary renders a one-line verdict, e.g. "valid (0 errors, 2 warnings)".
func (r Result) Summary() string {
	verdict := "valid"
	if !r.Valid {
		verdict = "invalid"
	}

	return fmt.Sprintf("%s (%d errors, %d warnings)", verdict, len(r.Errors), len(r.Warnings))
}

// String renders the summary followed by one indented line per issue.
func (r Result) String() string {
	var b strings.Builder
	b.WriteString(r.Summary())
	for _, is := range r.Errors {
		b.WriteString("\n  error   ")
		b.WriteString(is.String())
	}
	for _, is := range r.Warnings {
		b.WriteString("\n  warning ")
		b.WriteString(is.String())
	}

	return b.String()
}
