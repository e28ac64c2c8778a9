// SPDX-License-Identifier: MIT
// Package sparse - algebra kernels on CSR operators.
//
// Purpose:
//   - The small algebra needed to compose DEC operators
//     (L = d0ᵀ·⋆1·d0, δ1 = ⋆0⁻¹·d0ᵀ·⋆1, d1·d0 = 0 checks).
//   - Every kernel allocates a fresh result; operands are never mutated.
//
// Determinism:
//   - Row-major traversal with fixed inner orders; results are bit-identical
//     for identical operands.
//
// AI-Hints:
//   - Mul uses Gustavson's row-by-row scheme with a dense accumulator of
//     width b.Cols(); cost is O(flops + r·log k) rather than O(r·n·c).
//   - For one-off products feeding gonum (LU/Cholesky), convert with ToDense.

package sparse

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// Identity returns the n×n identity operator.
func Identity(n int) *Matrix {
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = 1
	}

	return Diag(vals)
}

// Diag returns the square diagonal operator with the given entries.
// Every entry is stored, including zeros. vals is copied.
func Diag(vals []float64) *Matrix {
	n := len(vals)
	m := &Matrix{
		r:      n,
		c:      n,
		rowPtr: make([]int, n+1),
		colIdx: make([]int, n),
		vals:   make([]float64, n),
	}
	for i := 0; i < n; i++ {
		m.colIdx[i] = i
		m.vals[i] = vals[i]
		m.rowPtr[i+1] = i + 1
	}

	return m
}

// Transpose returns mᵀ as a fresh CSR matrix.
// Complexity: O(r + c + nnz).
//
// Errors:
//   - ErrNilMatrix for a nil operand.
func Transpose(m *Matrix) (*Matrix, error) {
	if m == nil {
		return nil, sparseErrorf(opTranspose, ErrNilMatrix)
	}
	nnz := len(m.vals)
	t := &Matrix{
		r:      m.c,
		c:      m.r,
		rowPtr: make([]int, m.c+1),
		colIdx: make([]int, nnz),
		vals:   make([]float64, nnz),
	}

	// Stage 1: count entries per column of m (= per row of mᵀ).
	for _, j := range m.colIdx {
		t.rowPtr[j+1]++
	}
	for j := 0; j < m.c; j++ {
		t.rowPtr[j+1] += t.rowPtr[j]
	}

	// Stage 2: scatter; walking m row-major keeps mᵀ columns sorted.
	next := slices.Clone(t.rowPtr[:m.c])
	for i := 0; i < m.r; i++ {
		for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			j := m.colIdx[k]
			dst := next[j]
			t.colIdx[dst] = i
			t.vals[dst] = m.vals[k]
			next[j]++
		}
	}

	return t, nil
}

// Mul returns the product a·b.
//
// Structural rule: a result cell is stored iff at least one product term
// a[i,k]·b[k,j] was formed, so exact cancellations (d1·d0) show up as stored
// zeros. Use Prune to drop them.
//
// Errors:
//   - ErrNilMatrix for nil operands.
//   - ErrDimensionMismatch when a.Cols() != b.Rows().
func Mul(a, b *Matrix) (*Matrix, error) {
	if a == nil || b == nil {
		return nil, sparseErrorf(opMul, ErrNilMatrix)
	}
	if a.c != b.r {
		return nil, sparseErrorf(opMul, ErrDimensionMismatch)
	}

	out := &Matrix{
		r:      a.r,
		c:      b.c,
		rowPtr: make([]int, a.r+1),
	}
	acc := make([]float64, b.c)  // dense accumulator for one output row
	mark := make([]int, b.c)     // mark[j] == i+1 ⇒ column j touched in row i
	touched := make([]int, 0, 8) // columns touched in the current row

	for i := 0; i < a.r; i++ {
		// Stage 1: scatter row i of a against the matching rows of b.
		touched = touched[:0]
		for ka := a.rowPtr[i]; ka < a.rowPtr[i+1]; ka++ {
			av, k := a.vals[ka], a.colIdx[ka]
			for kb := b.rowPtr[k]; kb < b.rowPtr[k+1]; kb++ {
				j := b.colIdx[kb]
				if mark[j] != i+1 {
					mark[j] = i + 1
					acc[j] = 0
					touched = append(touched, j)
				}
				acc[j] += av * b.vals[kb]
			}
		}
		// Stage 2: gather touched columns in ascending order.
		slices.Sort(touched)
		for _, j := range touched {
			out.colIdx = append(out.colIdx, j)
			out.vals = append(out.vals, acc[j])
		}
		out.rowPtr[i+1] = len(out.vals)
	}

	return out, nil
}

// Add returns a + b. The result stores the union of both sparsity patterns.
//
// Errors:
//   - ErrNilMatrix for nil operands.
//   - ErrDimensionMismatch for different shapes.
func Add(a, b *Matrix) (*Matrix, error) {
	if a == nil || b == nil {
		return nil, sparseErrorf(opAdd, ErrNilMatrix)
	}
	if a.r != b.r || a.c != b.c {
		return nil, sparseErrorf(opAdd, ErrDimensionMismatch)
	}

	out := &Matrix{
		r:      a.r,
		c:      a.c,
		rowPtr: make([]int, a.r+1),
		colIdx: make([]int, 0, len(a.vals)+len(b.vals)),
		vals:   make([]float64, 0, len(a.vals)+len(b.vals)),
	}
	// Row by row; both inputs keep columns sorted, so the output does too.
	for i := 0; i < a.r; i++ {
		ka, ea := a.rowPtr[i], a.rowPtr[i+1]
		kb, eb := b.rowPtr[i], b.rowPtr[i+1]
		// Two-pointer merge of sorted column lists.
		for ka < ea || kb < eb {
			switch {
			case kb >= eb || (ka < ea && a.colIdx[ka] < b.colIdx[kb]):
				out.colIdx = append(out.colIdx, a.colIdx[ka])
				out.vals = append(out.vals, a.vals[ka])
				ka++
			case ka >= ea || b.colIdx[kb] < a.colIdx[ka]:
				out.colIdx = append(out.colIdx, b.colIdx[kb])
				out.vals = append(out.vals, b.vals[kb])
				kb++
			default: // same column
				out.colIdx = append(out.colIdx, a.colIdx[ka])
				out.vals = append(out.vals, a.vals[ka]+b.vals[kb])
				ka++
				kb++
			}
		}
		out.rowPtr[i+1] = len(out.vals)
	}

	return out, nil
}

// Scale returns alpha·m with the same sparsity pattern.
//
// Errors:
//   - ErrNilMatrix for a nil operand.
func Scale(m *Matrix, alpha float64) (*Matrix, error) {
	if m == nil {
		return nil, sparseErrorf(opScale, ErrNilMatrix)
	}
	out := &Matrix{
		r:      m.r,
		c:      m.c,
		rowPtr: slices.Clone(m.rowPtr),
		colIdx: slices.Clone(m.colIdx),
		vals:   make([]float64, len(m.vals)),
	}
	for k, v := range m.vals {
		out.vals[k] = alpha * v
	}

	return out, nil
}

// MulVec returns y = m·x.
//
// Errors:
//   - ErrNilMatrix for a nil operand.
//   - ErrDimensionMismatch when len(x) != m.Cols().
func MulVec(m *Matrix, x []float64) ([]float64, error) {
	if m == nil {
		return nil, sparseErrorf(opMulVec, ErrNilMatrix)
	}
	if len(x) != m.c {
		return nil, sparseErrorf(opMulVec, ErrDimensionMismatch)
	}
	y := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		var s float64
		for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			s += m.vals[k] * x[m.colIdx[k]]
		}
		y[i] = s
	}

	return y, nil
}

// Equal reports whether a and b have the same shape, the same stored
// pattern and bit-identical values. NaN entries compare by bit pattern.
func Equal(a, b *Matrix) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	if !slices.Equal(a.rowPtr, b.rowPtr) || !slices.Equal(a.colIdx, b.colIdx) {
		return false
	}
	for k := range a.vals {
		if math.Float64bits(a.vals[k]) != math.Float64bits(b.vals[k]) {
			return false
		}
	}

	return true
}

// AllClose reports whether |a[i,j] − b[i,j]| <= eps for every cell, treating
// unstored cells as 0.
//
// Errors:
//   - ErrNilMatrix for nil operands.
//   - ErrDimensionMismatch for different shapes.
func AllClose(a, b *Matrix, eps float64) (bool, error) {
	if a == nil || b == nil {
		return false, sparseErrorf(opAllClose, ErrNilMatrix)
	}
	diff, err := Add(a, mustNegate(b))
	if err != nil {
		return false, sparseErrorf(opAllClose, err)
	}
	for _, v := range diff.vals {
		if !(math.Abs(v) <= eps) { // NaN fails too
			return false, nil
		}
	}

	return true, nil
}

// mustNegate returns −m; m is known non-nil.
func mustNegate(m *Matrix) *Matrix {
	neg, _ := Scale(m, -1)

	return neg
}

// ToDense materializes m as a gonum *mat.Dense.
//
// Errors:
//   - ErrNilMatrix for a nil operand.
//   - ErrZeroLength when m has zero rows or columns (gonum forbids empty Dense).
func ToDense(m *Matrix) (*mat.Dense, error) {
	if m == nil {
		return nil, sparseErrorf(opToDense, ErrNilMatrix)
	}
	if m.r == 0 || m.c == 0 {
		return nil, sparseErrorf(opToDense, ErrZeroLength)
	}
	d := mat.NewDense(m.r, m.c, nil)
	m.Do(func(i, j int, v float64) { d.Set(i, j, v) })

	return d, nil
}

// FromDense builds a CSR copy of any gonum matrix, storing cells with
// |v| > tol. NaN cells are always stored.
func FromDense(a mat.Matrix, tol float64) *Matrix {
	r, c := a.Dims()
	out := &Matrix{r: r, c: c, rowPtr: make([]int, r+1)}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := a.At(i, j)
			if math.Abs(v) <= tol {
				continue
			}
			out.colIdx = append(out.colIdx, j)
			out.vals = append(out.vals, v)
		}
		out.rowPtr[i+1] = len(out.vals)
	}

	return out
}
