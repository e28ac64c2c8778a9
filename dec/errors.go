// SPDX-License-Identifier: MIT
// Package dec: sentinel errors.
//
// Builders never validate geometry. The sentinels below cover programmer
// errors (nil inputs), broken face cycles that would otherwise never
// terminate, and the algebraic checks of compose.go.

package dec

import (
	"errors"
	"fmt"
)

var (
	// ErrNilMesh is returned when a builder receives a nil mesh view.
	ErrNilMesh = errors.New("dec: mesh is nil")

	// ErrNilOperators is returned when a composition helper receives a nil
	// or incomplete *Operators.
	ErrNilOperators = errors.New("dec: operators are nil or incomplete")

	// ErrOpenFaceCycle indicates a face whose next-chain does not return to
	// its first half-edge within NumHalfEdges steps.
	ErrOpenFaceCycle = errors.New("dec: face cycle does not close")

	// ErrNotExact indicates that d1·d0 has an entry above tolerance.
	ErrNotExact = errors.New("dec: d1·d0 is not zero")

	// ErrSingularStar0 indicates a zero on the ⋆0 diagonal, so ⋆0⁻¹ is undefined.
	ErrSingularStar0 = errors.New("dec: star0 has a zero diagonal entry")
)

// Operator names used as error prefixes and log fields.
const (
	opHodge0          = "Hodge0"
	opHodge1          = "Hodge1"
	opHodge2          = "Hodge2"
	opD0              = "ExteriorDerivative0"
	opD1              = "ExteriorDerivative1"
	opBuildAll        = "BuildAll"
	opLaplacian       = "Laplacian"
	opCodifferential1 = "Codifferential1"
	opCheckExactness  = "CheckExactness"
)

// decErrorf wraps err with the operator tag.
func decErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
