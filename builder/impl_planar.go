// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_planar.go - planar patches with boundary, lying in z = 0.
//
// Square:
//   0(0,0) 1(1,0) 2(1,1) 3(0,1); faces {0,1,2} {0,2,3}.
//   Both corners opposite the diagonal 0–2 are right angles.
//
// Parallelogram:
//   0(0,0) 1(1,0) 2(0,1) 3(1,−1); faces {0,1,2} {0,3,1}.
//   The corners opposite the shared edge 0–1 are both 45°.
//
// Grid(rows, cols):
//   vertex (r,c) has index r·(cols+1)+c at (c, r, 0); every cell splits
//   on its (r,c)–(r+1,c+1) diagonal into {v00,v01,v11} and {v00,v11,v10}.
//   V=(rows+1)(cols+1), F=2·rows·cols, χ=1.

package builder

import (
	"github.com/katalvlaran/lvdec/mesh"
	"gonum.org/v1/gonum/spatial/r3"
)

// Square returns a Constructor for the unit square split on its diagonal.
func Square() Constructor {
	return func(s *mesh.Soup, cfg builderConfig) error {
		cfg.appendPatch(s,
			[]r3.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}},
			[][]int{{0, 1, 2}, {0, 2, 3}},
		)

		return nil
	}
}

// Parallelogram returns a Constructor for two right isosceles triangles
// sharing the leg 0–1, each with a 45° corner opposite it.
func Parallelogram() Constructor {
	return func(s *mesh.Soup, cfg builderConfig) error {
		cfg.appendPatch(s,
			[]r3.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: -1}},
			[][]int{{0, 1, 2}, {0, 3, 1}},
		)

		return nil
	}
}

// Grid returns a Constructor for a rows×cols triangulated grid of unit cells.
// Returns ErrTooFewVertices if rows or cols < MinGridDim.
func Grid(rows, cols int) Constructor {
	return func(s *mesh.Soup, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return builderErrorf(MethodGrid, ErrTooFewVertices, "rows=%d cols=%d (min %d)", rows, cols, MinGridDim)
		}

		w := cols + 1
		pos := make([]r3.Vec, 0, (rows+1)*w)
		for r := 0; r <= rows; r++ {
			for c := 0; c <= cols; c++ {
				pos = append(pos, r3.Vec{X: float64(c), Y: float64(r)})
			}
		}
		cfg.appendPatch(s, pos, cellFaces(rows, cols, func(r, c int) int { return r*w + c }))

		return nil
	}
}

// cellFaces triangulates a rows×cols cell array addressed through idx.
// idx receives r ∈ [0,rows] and c ∈ [0,cols] and may wrap.
func cellFaces(rows, cols int, idx func(r, c int) int) [][]int {
	faces := make([][]int, 0, 2*rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v00, v01 := idx(r, c), idx(r, c+1)
			v10, v11 := idx(r+1, c), idx(r+1, c+1)
			faces = append(faces, []int{v00, v01, v11}, []int{v00, v11, v10})
		}
	}

	return faces
}
