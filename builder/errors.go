// SPDX-License-Identifier: MIT
// Package: catcheck/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors wrap them with "%s: ...: %w" method context.
//   • Option constructors panic on nil inputs; constructors never panic.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewObjects indicates a size parameter below the constructor minimum.
var ErrTooFewObjects = errors.New("builder: parameter too small")

// ErrTooManyObjects indicates a size parameter above the constructor maximum.
// Composition tables grow quadratically or cubically, and the lesson UI is
// built for tens of morphisms.
var ErrTooManyObjects = errors.New("builder: parameter too large")

// ErrConstructFailed indicates a nil constructor, or an IDFn that panicked.
var ErrConstructFailed = errors.New("builder: construction failed")

func validateRange(method string, n, min, max int) error {
	if n < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, min, ErrTooFewObjects)
	}
	if n > max {
		return fmt.Errorf("%s: n=%d > max=%d: %w", method, n, max, ErrTooManyObjects)
	}

	return nil
}
