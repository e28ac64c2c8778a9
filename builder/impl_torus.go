// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_torus.go - closed genus-1 surface.
//
// Layout:
//   • Vertex (i,j) has index i·segments+j, with θ=2πi/rings around the z axis
//     and φ=2πj/segments around the tube:
//     ((R + r·cosφ)·cosθ, (R + r·cosφ)·sinθ, r·sinφ).
//   • Cells are triangulated like Grid with both directions wrapping.
//   • V=rings·segments, E=3V, F=2V, χ=0.

package builder

import (
	"math"

	"github.com/katalvlaran/lvdec/mesh"
	"gonum.org/v1/gonum/spatial/r3"
)

// Torus returns a Constructor for a rings×segments torus with radii
// TorusMajorRadius and TorusMinorRadius.
// Returns ErrTooFewVertices if rings < MinTorusRings or segments < MinTorusSegments.
func Torus(rings, segments int) Constructor {
	return func(s *mesh.Soup, cfg builderConfig) error {
		if rings < MinTorusRings || segments < MinTorusSegments {
			return builderErrorf(MethodTorus, ErrTooFewVertices,
				"rings=%d segments=%d (min %d,%d)", rings, segments, MinTorusRings, MinTorusSegments)
		}

		pos := make([]r3.Vec, 0, rings*segments)
		for i := 0; i < rings; i++ {
			theta := 2 * math.Pi * float64(i) / float64(rings)
			for j := 0; j < segments; j++ {
				phi := 2 * math.Pi * float64(j) / float64(segments)
				rho := TorusMajorRadius + TorusMinorRadius*math.Cos(phi)
				pos = append(pos, r3.Vec{
					X: rho * math.Cos(theta),
					Y: rho * math.Sin(theta),
					Z: TorusMinorRadius * math.Sin(phi),
				})
			}
		}
		// Cell columns run along θ and rows along φ so that normals point outward.
		idx := func(j, i int) int { return (i%rings)*segments + j%segments }
		cfg.appendPatch(s, pos, cellFaces(segments, rings, idx))

		return nil
	}
}
