// SPDX-License-Identifier: MIT

package dec

import "github.com/katalvlaran/lvdec/mesh"

// Mesh is the read-only view the builders consume. *mesh.Mesh satisfies it.
//
// Handles are dense: vertices in [0,NumVertices()), edges in [0,NumEdges()),
// faces in [0,NumFaces()). They are used directly as matrix coordinates.
type Mesh interface {
	NumVertices() int
	NumEdges() int
	NumFaces() int
	NumHalfEdges() int

	// VertexArea is the dual area of v.
	VertexArea(v int) float64
	// FaceArea is the primal area of f.
	FaceArea(f int) float64
	// Cotan is the cotangent of the angle opposite h, 0 on the boundary.
	Cotan(h int) float64

	EdgeHalfEdge(e int) int
	FaceHalfEdge(f int) int
	HalfEdgeEdge(h int) int
	Next(h int) int
	Flip(h int) int
	Origin(h int) int
}

var _ Mesh = (*mesh.Mesh)(nil)

// isNil reports whether m is a nil interface or a typed nil *mesh.Mesh.
func isNil(m Mesh) bool {
	if m == nil {
		return true
	}
	hm, ok := m.(*mesh.Mesh)

	return ok && hm == nil
}
