// SPDX-License-Identifier: MIT

package category

import (
	"errors"
	"fmt"
)

// ErrMalformedCategory indicates that a Description cannot be turned into a
// Category: axiom checking is meaningless over an inconsistent structure.
// Callers branch with errors.Is; the wrapped message names the offending id.
var ErrMalformedCategory = errors.New("category: malformed category")

// Method tags used as error context prefixes.
const (
	methodNew      = "New"
	methodOpposite = "Opposite"
)

// malformedf wraps ErrMalformedCategory with method context and an optional cause.
func malformedf(method string, cause error, format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	if cause != nil {
		return fmt.Errorf("%s: %s: %w: %w", method, msg, ErrMalformedCategory, cause)
	}

	return fmt.Errorf("%s: %s: %w", method, msg, ErrMalformedCategory)
}
