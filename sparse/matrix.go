// SPDX-License-Identifier: MIT
// Package sparse - compressed sparse row (CSR) storage & safe accessors.
//
// Purpose:
//   - Immutable, value-like operator storage: a Matrix is fully owned by its
//     holder, shares no memory with whatever it was assembled from, and is never
//     mutated after Build().
//   - Satisfy gonum's mat.Matrix (Dims/At/T) so operators drop straight into
//     gonum dense arithmetic and factorizations downstream.
//   - Offer error-returning accessors (Get/Row) in addition to gonum's
//     panicking At.
//
// Layout:
//   - rowPtr has r+1 entries; row i occupies colIdx/vals[rowPtr[i]:rowPtr[i+1]].
//   - Column indices inside a row are strictly increasing.
//
// Complexity quicksheet:
//   - Dims/NNZ: O(1); At/Get: O(log k) for k entries in the row; Row: O(k).

package sparse

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Matrix is an immutable r×c CSR operator.
type Matrix struct {
	r, c   int
	rowPtr []int     // len r+1
	colIdx []int     // len nnz, sorted within each row
	vals   []float64 // len nnz
}

// Compile-time conformance with gonum and fmt.
var (
	_ mat.Matrix   = (*Matrix)(nil)
	_ fmt.Stringer = (*Matrix)(nil)
)

// Dims returns (rows, cols). Part of mat.Matrix.
func (m *Matrix) Dims() (r, c int) { return m.r, m.c }

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.r }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.c }

// NNZ returns the number of stored entries (explicit zeros included).
func (m *Matrix) NNZ() int { return len(m.vals) }

// At returns the value at (i, j); unstored cells read as 0.
// Part of mat.Matrix: it panics with mat.ErrRowAccess / mat.ErrColAccess on
// invalid indices, as every gonum matrix does. Use Get for an error instead.
func (m *Matrix) At(i, j int) float64 {
	if i < 0 || i >= m.r {
		panic(mat.ErrRowAccess)
	}
	if j < 0 || j >= m.c {
		panic(mat.ErrColAccess)
	}
	v, _ := m.lookup(i, j)

	return v
}

// T returns the lazy gonum transpose view. Use Transpose for a CSR copy.
func (m *Matrix) T() mat.Matrix { return mat.Transpose{Matrix: m} }

// Get is the error-returning counterpart of At.
//
// Errors:
//   - ErrOutOfRange when (i, j) is outside the shape.
func (m *Matrix) Get(i, j int) (float64, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, indexErrorf(opGet, i, j, ErrOutOfRange)
	}
	v, _ := m.lookup(i, j)

	return v, nil
}

// Stored reports whether (i, j) is an explicitly stored entry.
// Out-of-range coordinates report false.
func (m *Matrix) Stored(i, j int) bool {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return false
	}
	_, ok := m.lookup(i, j)

	return ok
}

// lookup binary-searches column j in row i. Caller validated bounds.
func (m *Matrix) lookup(i, j int) (float64, bool) {
	lo, hi := m.rowPtr[i], m.rowPtr[i+1]
	cols := m.colIdx[lo:hi]
	k := sort.SearchInts(cols, j)
	if k < len(cols) && cols[k] == j {
		return m.vals[lo+k], true
	}

	return 0, false
}

// Row returns copies of the column indices and values stored in row i.
//
// Errors:
//   - ErrOutOfRange when i is not a valid row.
func (m *Matrix) Row(i int) ([]int, []float64, error) {
	if i < 0 || i >= m.r {
		return nil, nil, indexErrorf(opRow, i, 0, ErrOutOfRange)
	}
	lo, hi := m.rowPtr[i], m.rowPtr[i+1]
	cols := make([]int, hi-lo)
	vals := make([]float64, hi-lo)
	copy(cols, m.colIdx[lo:hi])
	copy(vals, m.vals[lo:hi])

	return cols, vals, nil
}

// RowNNZ returns the number of stored entries in row i, or 0 if i is invalid.
func (m *Matrix) RowNNZ(i int) int {
	if i < 0 || i >= m.r {
		return 0
	}

	return m.rowPtr[i+1] - m.rowPtr[i]
}

// Do calls fn for every stored entry in row-major order.
func (m *Matrix) Do(fn func(i, j int, v float64)) {
	for i := 0; i < m.r; i++ {
		for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			fn(i, m.colIdx[k], m.vals[k])
		}
	}
}

// Diagonal returns a copy of the main diagonal (length min(r, c)).
func (m *Matrix) Diagonal() []float64 {
	n := min(m.r, m.c)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i], _ = m.lookup(i, i)
	}

	return out
}

// IsDiagonal reports whether the matrix is square and every stored entry
// lies on the main diagonal.
func (m *Matrix) IsDiagonal() bool {
	if m.r != m.c {
		return false
	}
	for i := 0; i < m.r; i++ {
		for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			if m.colIdx[k] != i {
				return false
			}
		}
	}

	return true
}

// Prune returns a copy without entries whose magnitude is <= tol.
// NaN entries are kept so degenerate input stays visible.
func (m *Matrix) Prune(tol float64) *Matrix {
	out := &Matrix{
		r:      m.r,
		c:      m.c,
		rowPtr: make([]int, m.r+1),
		colIdx: make([]int, 0, len(m.vals)),
		vals:   make([]float64, 0, len(m.vals)),
	}
	for i := 0; i < m.r; i++ {
		for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			if math.Abs(m.vals[k]) <= tol {
				continue
			}
			out.colIdx = append(out.colIdx, m.colIdx[k])
			out.vals = append(out.vals, m.vals[k])
		}
		out.rowPtr[i+1] = len(out.vals)
	}

	return out
}

// String renders stored entries as "(i,j)=v" lines, one row per line.
// Intended for small operators in tests and debugging.
func (m *Matrix) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "sparse %dx%d nnz=%d\n", m.r, m.c, len(m.vals))
	for i := 0; i < m.r; i++ {
		lo, hi := m.rowPtr[i], m.rowPtr[i+1]
		if lo == hi {
			continue
		}
		sb.WriteString("[")
		for k := lo; k < hi; k++ {
			if k > lo {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "(%d,%d)=%g", i, m.colIdx[k], m.vals[k])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
