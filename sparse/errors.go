// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
//
// Every exported routine returns one of these sentinels, optionally wrapped
// with a call-site tag via %w. Callers branch with errors.Is; tests do the
// same and never compare message strings.
//
// ERROR PRIORITY (checked in this order by composite validators):
// nil operand -> shape/index -> dimension mismatch -> numeric policy.

package sparse

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that requested dimensions are negative.
	// Zero rows or columns are legal: an empty mesh yields 0×0 operators.
	ErrInvalidDimensions = errors.New("sparse: dimensions must be >= 0")

	// ErrOutOfRange indicates that a row or column index is outside bounds.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes,
	// e.g. Add on different shapes or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Matrix was passed as an operand.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrNaNInf indicates a NaN or ±Inf value under a finite-only policy.
	ErrNaNInf = errors.New("sparse: NaN or Inf encountered")

	// ErrZeroLength indicates that a conversion target cannot represent an
	// empty shape (gonum dense matrices must be at least 1×1).
	ErrZeroLength = errors.New("sparse: zero-length matrix")
)

// Method tags used in error wrappers (grep-able, no inline literals).
const (
	opNewBuilder = "NewBuilder"
	opSet        = "Builder.Set"
	opAdd        = "Add"
	opAccumulate = "Builder.Add"
	opMul        = "Mul"
	opTranspose  = "Transpose"
	opScale      = "Scale"
	opMulVec     = "MulVec"
	opAllClose   = "AllClose"
	opToDense    = "ToDense"
	opRow        = "Row"
	opGet        = "Get"
)

// sparseErrorf wraps err with a call-site tag, preserving the sentinel.
// Time O(1). Never call with a nil err.
func sparseErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// indexErrorf attaches (row,col) coordinates to a sentinel for diagnostics.
func indexErrorf(tag string, row, col int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", tag, row, col, err)
}
