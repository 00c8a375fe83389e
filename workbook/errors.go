// SPDX-License-Identifier: MIT

package workbook

import "errors"

var (
	// ErrParse indicates the document is not valid YAML/JSON or has unknown fields.
	ErrParse = errors.New("workbook: cannot parse document")

	// ErrUnknownReference indicates a functor or transformation names a
	// category or functor that is absent or failed to build.
	ErrUnknownReference = errors.New("workbook: unknown reference")

	// ErrDuplicateName indicates two entries of the same kind share a name.
	ErrDuplicateName = errors.New("workbook: duplicate name")

	// ErrInvalidEntry indicates an entry misses required fields.
	ErrInvalidEntry = errors.New("workbook: invalid entry")
)
