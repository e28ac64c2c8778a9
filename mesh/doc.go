// SPDX-License-Identifier: MIT

// Package mesh implements an immutable half-edge mesh over an indexed face
// soup, together with the per-element geometry that discrete exterior
// calculus needs: cotangent weights, face areas and dual vertex areas.
//
// Construction:
//
//	m, err := mesh.New(mesh.Soup{Positions: pos, Faces: faces},
//		mesh.WithAreaPolicy(mesh.AreaCircumcentric))
//
// Faces must be consistently oriented and manifold. Open surfaces are
// supported; their missing neighbours become boundary half-edges with face
// NoFace, linked into walkable boundary loops.
//
// Handles are plain ints. Every combinatorial query is O(1) except the cyclic
// walks (FaceHalfEdges, VertexHalfEdges, BoundaryLoops), which are linear in
// their output. A built Mesh is read-only and safe for concurrent use.
package mesh
