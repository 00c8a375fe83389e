// SPDX-License-Identifier: MIT

package functor

import (
	"errors"
	"fmt"
)

// ErrMalformedFunctor indicates the object/morphism maps cannot define a
// functor between the given categories (non-total, dangling, mismatched).
var ErrMalformedFunctor = errors.New("functor: malformed functor")

const (
	methodNew     = "New"
	methodCompose = "Compose"
)

func malformedf(method, name, format string, args ...interface{}) error {
	return fmt.Errorf("%s: functor %q: %s: %w", method, name, fmt.Sprintf(format, args...), ErrMalformedFunctor)
}
