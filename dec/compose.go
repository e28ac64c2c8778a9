// SPDX-License-Identifier: MIT
// Package dec - operators composed from the five primitives.
//
// Assembly only: nothing here factorizes or solves. Feed the results to
// gonum (sparse.ToDense + mat.Cholesky, etc.) for that.

package dec

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvdec/sparse"
)

// Laplacian returns the |V|×|V| cotangent Laplacian L = d0ᵀ·⋆1·d0.
// L is symmetric positive semi-definite and its rows sum to zero up to
// rounding.
func Laplacian(ops *Operators) (*sparse.Matrix, error) {
	if !ops.complete() {
		return nil, decErrorf(opLaplacian, ErrNilOperators)
	}
	d0t, err := sparse.Transpose(ops.D0)
	if err != nil {
		return nil, decErrorf(opLaplacian, err)
	}
	s1d0, err := sparse.Mul(ops.Star1, ops.D0)
	if err != nil {
		return nil, decErrorf(opLaplacian, err)
	}
	l, err := sparse.Mul(d0t, s1d0)
	if err != nil {
		return nil, decErrorf(opLaplacian, err)
	}

	return l, nil
}

// Codifferential1 returns the |V|×|E| discrete divergence δ1 = ⋆0⁻¹·d0ᵀ·⋆1.
// Returns ErrSingularStar0 if any dual area is zero.
func Codifferential1(ops *Operators) (*sparse.Matrix, error) {
	if !ops.complete() {
		return nil, decErrorf(opCodifferential1, ErrNilOperators)
	}

	// Invert ⋆0 entrywise; it is diagonal by construction.
	diag := ops.Star0.Diagonal()
	inv := make([]float64, len(diag))
	for i, a := range diag {
		if a == 0 {
			return nil, fmt.Errorf("%s: vertex %d: %w", opCodifferential1, i, ErrSingularStar0)
		}
		inv[i] = 1 / a
	}

	d0t, err := sparse.Transpose(ops.D0)
	if err != nil {
		return nil, decErrorf(opCodifferential1, err)
	}
	d0ts1, err := sparse.Mul(d0t, ops.Star1)
	if err != nil {
		return nil, decErrorf(opCodifferential1, err)
	}
	out, err := sparse.Mul(sparse.Diag(inv), d0ts1)
	if err != nil {
		return nil, decErrorf(opCodifferential1, err)
	}

	return out, nil
}

// CheckExactness verifies d1·d0 = 0: every entry of the product must satisfy
// |v| <= eps. The first offending entry is reported with ErrNotExact.
func CheckExactness(ops *Operators, eps float64) error {
	if ops == nil || ops.D0 == nil || ops.D1 == nil {
		return decErrorf(opCheckExactness, ErrNilOperators)
	}
	p, err := sparse.Mul(ops.D1, ops.D0)
	if err != nil {
		return decErrorf(opCheckExactness, err)
	}

	// Stored zeros from exact cancellation pass; the first violation wins.
	var bad error
	p.Do(func(i, j int, v float64) {
		if bad == nil && !(math.Abs(v) <= eps) {
			bad = fmt.Errorf("%s: (d1·d0)[%d][%d] = %g: %w", opCheckExactness, i, j, v, ErrNotExact)
		}
	})

	return bad
}
