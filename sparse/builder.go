// SPDX-License-Identifier: MIT
// Package sparse - triplet (COO) builder finalized into compressed rows.
//
// Purpose:
//   - Decouple operator assembly from storage: callers record (row, col, value)
//     triplets in any order, then Build() compresses them into a CSR Matrix.
//   - Offer both write disciplines used by assembly code:
//     Set (last write wins, mirrors indexed assignment a(i,j) = v) and
//     Add (accumulate, mirrors a(i,j) += v).
//
// Determinism:
//   - Build() sorts triplets by (row, col) with a STABLE sort, so writes to the
//     same cell are folded in insertion order. Same call sequence ⇒ bit-identical
//     Matrix.
//
// Folding rule for one cell, in insertion order:
//   - Set(v) replaces the running value with v.
//   - Add(v) adds v to the running value (starting from 0).
//
// Complexity:
//   - Set/Add: amortized O(1). Build: O(t log t) for t triplets, O(t) space.

package sparse

import (
	"cmp"
	"math"
	"slices"
)

// writeMode selects how a triplet folds into its cell.
type writeMode uint8

const (
	modeSet writeMode = iota // last write wins
	modeAdd                  // accumulate
)

// triplet is one recorded write.
type triplet struct {
	row, col int
	val      float64
	mode     writeMode
}

// Builder accumulates triplets for an r×c operator.
// A Builder is not safe for concurrent use; each goroutine owns its own.
type Builder struct {
	r, c    int
	entries []triplet
	opts    Options
}

// NewBuilder returns a Builder for a rows×cols operator.
// Zero dimensions are legal (empty operators); negative ones are not.
//
// Errors:
//   - ErrInvalidDimensions when rows < 0 or cols < 0.
func NewBuilder(rows, cols int, opts ...Option) (*Builder, error) {
	if rows < 0 || cols < 0 {
		return nil, sparseErrorf(opNewBuilder, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	return &Builder{
		r:       rows,
		c:       cols,
		entries: make([]triplet, 0, o.capacity),
		opts:    o,
	}, nil
}

// Dims returns the shape the builder was created with.
func (b *Builder) Dims() (rows, cols int) { return b.r, b.c }

// Len returns the number of recorded triplets (not the final nnz).
func (b *Builder) Len() int { return len(b.entries) }

// Set records cell (i,j) = v, overriding earlier writes to the same cell.
//
// Errors:
//   - ErrOutOfRange for invalid coordinates.
//   - ErrNaNInf when v is not finite and WithValidateNaNInf was requested.
func (b *Builder) Set(i, j int, v float64) error {
	return b.record(opSet, i, j, v, modeSet)
}

// Add records cell (i,j) += v.
// Errors: same as Set.
func (b *Builder) Add(i, j int, v float64) error {
	return b.record(opAccumulate, i, j, v, modeAdd)
}

// record validates a write and appends it.
func (b *Builder) record(tag string, i, j int, v float64, mode writeMode) error {
	if i < 0 || i >= b.r || j < 0 || j >= b.c {
		return indexErrorf(tag, i, j, ErrOutOfRange)
	}
	if b.opts.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return indexErrorf(tag, i, j, ErrNaNInf)
	}
	b.entries = append(b.entries, triplet{row: i, col: j, val: v, mode: mode})

	return nil
}

// Build compresses the recorded triplets into a fresh CSR Matrix.
// The builder stays usable; later writes do not affect returned matrices.
//
// Stored entries are exactly the touched cells, including cells whose folded
// value is 0. Callers that need structural zeros dropped use Prune.
func (b *Builder) Build() *Matrix {
	// Stage 1: stable copy-sort by (row, col) so same-cell writes keep order.
	sorted := slices.Clone(b.entries)
	slices.SortStableFunc(sorted, func(x, y triplet) int {
		if c := cmp.Compare(x.row, y.row); c != 0 {
			return c
		}

		return cmp.Compare(x.col, y.col)
	})

	// Stage 2: fold runs of equal (row, col) into one entry each.
	m := &Matrix{
		r:      b.r,
		c:      b.c,
		rowPtr: make([]int, b.r+1),
		colIdx: make([]int, 0, len(sorted)),
		vals:   make([]float64, 0, len(sorted)),
	}
	for k := 0; k < len(sorted); {
		row, col := sorted[k].row, sorted[k].col
		var acc float64
		for ; k < len(sorted) && sorted[k].row == row && sorted[k].col == col; k++ {
			if sorted[k].mode == modeSet {
				acc = sorted[k].val
			} else {
				acc += sorted[k].val
			}
		}
		m.colIdx = append(m.colIdx, col)
		m.vals = append(m.vals, acc)
		m.rowPtr[row+1]++
	}

	// Stage 3: prefix-sum row counts into row pointers.
	for i := 0; i < b.r; i++ {
		m.rowPtr[i+1] += m.rowPtr[i]
	}

	return m
}
