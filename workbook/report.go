// SPDX-License-Identifier: MIT

package workbook

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/catcheck/diag"
)

// EntryKind names the kind of a workbook entry.
type EntryKind string

const (
	KindCategory       EntryKind = "category"
	KindFunctor        EntryKind = "functor"
	KindTransformation EntryKind = "transformation"
)

// Entry is the outcome for one workbook entry. Exactly one of Error and
// Result is set: Error when the entry could not be built.
type Entry struct {
	Kind   EntryKind    `json:"kind" yaml:"kind"`
	Name   string       `json:"name" yaml:"name"`
	Error  string       `json:"error,omitempty" yaml:"error,omitempty"`
	Result *diag.Result `json:"result,omitempty" yaml:"result,omitempty"`

	err error
}

// Err returns the build error of a malformed entry, for errors.Is.
func (e Entry) Err() error { return e.err }

// OK reports whether the entry was built and verified without errors.
func (e Entry) OK() bool { return e.err == nil && e.Result != nil && e.Result.Valid }

// Report is the outcome of a Check run.
type Report struct {
	RunID    string  `json:"runId" yaml:"runId"`
	Workbook string  `json:"workbook,omitempty" yaml:"workbook,omitempty"`
	Strict   bool    `json:"strict" yaml:"strict"`
	Valid    bool    `json:"valid" yaml:"valid"`
	Entries  []Entry `json:"entries" yaml:"entries"` // never nil
}

// Entry returns the entry of kind k named name.
func (r *Report) Entry(k EntryKind, name string) (Entry, bool) {
	for _, e := range r.Entries {
		if e.Kind == k && e.Name == name {
			return e, true
		}
	}

	return Entry{}, false
}

// Totals returns the number of malformed entries, errors and warnings.
func (r *Report) Totals() (malformed, errs, warns int) {
	for _, e := range r.Entries {
		if e.err != nil {
			malformed++
			continue
		}
		errs += len(e.Result.Errors)
		warns += len(e.Result.Warnings)
	}

	return malformed, errs, warns
}

// String renders the report as indented text, one block per entry.
func (r *Report) String() string {
	var b strings.Builder
	verdict := "valid"
	if !r.Valid {
		verdict = "invalid"
	}
	malformed, errs, warns := r.Totals()
	name := r.Workbook
	if name == "" {
		name = "workbook"
	}
	fmt.Fprintf(&b, "%s: %s (%d entries, %d malformed, %d errors, %d warnings) run %s\n",
		name, verdict, len(r.Entries), malformed, errs, warns, r.RunID)
	for _, e := range r.Entries {
		fmt.Fprintf(&b, "%s %q: ", e.Kind, e.Name)
		if e.err != nil {
			fmt.Fprintf(&b, "malformed: %s\n", e.Error)
			continue
		}
		b.WriteString(strings.ReplaceAll(e.Result.String(), "\n", "\n  "))
		b.WriteByte('\n')
	}

	return b.String()
}
