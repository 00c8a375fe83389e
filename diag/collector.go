// SPDX-License-Identifier: MIT

package diag

import "fmt"

// Collector accumulates issues during a Verify pass. The zero value is ready
// to use. It is not safe for concurrent use; each Verify owns its collector.
type Collector struct {
	errors   []Issue
	warnings []Issue
}

// Errorf records a hard error.
func (c *Collector) Errorf(k Kind, objects, morphisms []string, format string, args ...interface{}) {
	c.errors = append(c.errors, newIssue(k, objects, morphisms, format, args...))
}

// Warnf records a warning.
func (c *Collector) Warnf(k Kind, objects, morphisms []string, format string, args ...interface{}) {
	c.warnings = append(c.warnings, newIssue(k, objects, morphisms, format, args...))
}

// Len returns the number of errors and warnings recorded so far.
func (c *Collector) Len() (errs, warns int) {
	return len(c.errors), len(c.warnings)
}

// Result freezes the collected issues. Slices are copied and never nil so
// that serialized results always carry "errors": [] and "warnings": [].
func (c *Collector) Result() Result {
	errs := make([]Issue, len(c.errors))
	copy(errs, c.errors)
	warns := make([]Issue, len(c.warnings))
	copy(warns, c.warnings)

	return Result{Valid: len(errs) == 0, Errors: errs, Warnings: warns}
}

func newIssue(k Kind, objects, morphisms []string, format string, args ...interface{}) Issue {
	return Issue{
		Kind:      k,
		Detail:    fmt.Sprintf(format, args...),
		Objects:   objects,
		Morphisms: morphisms,
	}
}

// IDs is a small helper to build the id slices passed to Errorf/Warnf.
func IDs(ids ...string) []string {
	if len(ids) == 0 {
		return nil
	}

	return ids
}
