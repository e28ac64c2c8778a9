// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_platonic.go - implementation of the PlatonicSolid(name) constructor.
//
// Contract:
//   • name ∈ {Tetrahedron, Octahedron, Icosahedron}.
//   • Unknown name → ErrOptionViolation.
//   • Emits the dataset of variants_platonic.go in stored order.
//
// Complexity:
//   • Time/Space: O(V+F) for the selected solid (V≤12, F≤20).

package builder

import (
	"github.com/katalvlaran/lvdec/mesh"
)

// PlatonicSolid returns a Constructor that appends the chosen closed surface.
func PlatonicSolid(name PlatonicName) Constructor {
	return func(s *mesh.Soup, cfg builderConfig) error {
		shape, ok := platonicShapes[name]
		if !ok {
			return builderErrorf(MethodPlatonicSolid, ErrOptionViolation, "unknown solid %d", int(name))
		}
		cfg.appendPatch(s, shape.positions, shape.faces)

		return nil
	}
}
