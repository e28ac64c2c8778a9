// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Constructors attach context with %w via builderErrorf.
//   • Validation panics are confined to option constructors (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a size parameter (rows, cols, rings,
// segments) is smaller than the allowed minimum for the requested fixture.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrOptionViolation indicates an invalid parameter domain that must surface as
// an error rather than a panic (e.g., an unknown PlatonicName).
var ErrOptionViolation = errors.New("builder: invalid option value")

// ErrNeedRandSource indicates that WithJitter was requested without an RNG
// (WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a composition failure such as a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf returns an error of the form "<method>: <message>: <err>".
func builderErrorf(method string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
