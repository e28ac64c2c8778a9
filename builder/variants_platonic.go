// SPDX-License-Identifier: MIT
// Package: builder
//
// variants_platonic.go - canonical data for the triangulated Platonic solids.
//
// Design:
//   • Single source of truth for vertex positions and face lists.
//   • Faces are counter-clockwise seen from outside (outward normals).
//   • Datasets are constructed deterministically at init() and kept immutable.
//
// Layout:
//   • Tetrahedron: alternate cube corners, circumradius √3.
//   • Octahedron:  0:+x 1:−x 2:+y 3:−y 4:+z 5:−z.
//   • Icosahedron: 0 north pole; 1..5 upper ring; 6..10 lower ring rotated
//     by π/5; 11 south pole; unit circumradius.

package builder

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// PlatonicName enumerates the triangulated Platonic solids.
type PlatonicName int

const (
	// Tetrahedron has V=4, E=6, F=4.
	Tetrahedron PlatonicName = iota
	// Octahedron has V=6, E=12, F=8.
	Octahedron
	// Icosahedron has V=12, E=30, F=20.
	Icosahedron
)

// String provides a readable identifier for logs/errors.
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Octahedron:
		return "Octahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

// platonicShape is one immutable dataset.
type platonicShape struct {
	positions []r3.Vec
	faces     [][]int
}

var platonicShapes map[PlatonicName]platonicShape

func init() {
	platonicShapes = map[PlatonicName]platonicShape{
		Tetrahedron: {
			positions: []r3.Vec{{X: 1, Y: 1, Z: 1}, {X: 1, Y: -1, Z: -1}, {X: -1, Y: 1, Z: -1}, {X: -1, Y: -1, Z: 1}},
			faces:     [][]int{{0, 1, 2}, {0, 3, 1}, {0, 2, 3}, {1, 3, 2}},
		},
		Octahedron: {
			positions: []r3.Vec{
				{X: 1}, {X: -1},
				{Y: 1}, {Y: -1},
				{Z: 1}, {Z: -1},
			},
			faces: [][]int{
				{0, 2, 4}, {0, 5, 2}, {0, 4, 3}, {0, 3, 5},
				{1, 4, 2}, {1, 2, 5}, {1, 3, 4}, {1, 5, 3},
			},
		},
		Icosahedron: icosahedron(),
	}
}

// icosahedron derives the 12 vertices from two staggered pentagonal rings.
func icosahedron() platonicShape {
	const ring = 5
	h := 1 / math.Sqrt(5) // ring height
	r := 2 / math.Sqrt(5) // ring radius

	pos := make([]r3.Vec, 0, 2*ring+2)
	pos = append(pos, r3.Vec{Z: 1})
	for i := 0; i < ring; i++ {
		a := 2 * math.Pi * float64(i) / ring
		pos = append(pos, r3.Vec{X: r * math.Cos(a), Y: r * math.Sin(a), Z: h})
	}
	for i := 0; i < ring; i++ {
		a := 2*math.Pi*float64(i)/ring + math.Pi/ring
		pos = append(pos, r3.Vec{X: r * math.Cos(a), Y: r * math.Sin(a), Z: -h})
	}
	pos = append(pos, r3.Vec{Z: -1})

	top := func(i int) int { return 1 + i%ring }
	bot := func(i int) int { return 1 + ring + i%ring }
	south := 2*ring + 1

	faces := make([][]int, 0, 4*ring)
	for i := 0; i < ring; i++ {
		faces = append(faces,
			[]int{0, top(i), top(i + 1)},
			[]int{top(i + 1), top(i), bot(i)},
			[]int{top(i + 1), bot(i), bot(i + 1)},
			[]int{south, bot(i + 1), bot(i)},
		)
	}

	return platonicShape{positions: pos, faces: faces}
}
