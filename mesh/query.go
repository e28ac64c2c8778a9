// SPDX-License-Identifier: MIT
// Package mesh - read-only combinatorial queries.
//
// Handles are dense integers: vertices in [0, NumVertices()), edges in
// [0, NumEdges()), faces in [0, NumFaces()), half-edges in [0, NumHalfEdges()).
// Passing a handle outside its range panics (index out of range).

package mesh

import "gonum.org/v1/gonum/spatial/r3"

// NumVertices returns |V|.
func (m *Mesh) NumVertices() int { return len(m.positions) }

// NumEdges returns |E|.
func (m *Mesh) NumEdges() int { return len(m.edgeHE) }

// NumFaces returns |F|.
func (m *Mesh) NumFaces() int { return len(m.faceHE) }

// NumHalfEdges returns the count of interior plus boundary half-edges (2·|E|).
func (m *Mesh) NumHalfEdges() int { return len(m.halfEdges) }

// NumBoundaryHalfEdges returns the count of half-edges with face NoFace.
func (m *Mesh) NumBoundaryHalfEdges() int { return len(m.halfEdges) - m.interior }

// Euler returns the Euler characteristic V − E + F.
func (m *Mesh) Euler() int { return m.NumVertices() - m.NumEdges() + m.NumFaces() }

// AreaPolicy returns the dual-area policy the mesh was built with.
func (m *Mesh) AreaPolicy() AreaPolicy { return m.policy }

// Next returns the half-edge following h around its face or boundary loop.
func (m *Mesh) Next(h int) int { return m.halfEdges[h].next }

// Flip returns the oppositely oriented half-edge of h's edge.
func (m *Mesh) Flip(h int) int { return m.halfEdges[h].flip }

// Origin returns the vertex h starts at.
func (m *Mesh) Origin(h int) int { return m.halfEdges[h].origin }

// Target returns the vertex h points to.
func (m *Mesh) Target(h int) int { return m.halfEdges[m.halfEdges[h].flip].origin }

// HalfEdgeEdge returns the undirected edge h belongs to.
func (m *Mesh) HalfEdgeEdge(h int) int { return m.halfEdges[h].edge }

// HalfEdgeFace returns the face of h, or NoFace on the boundary.
func (m *Mesh) HalfEdgeFace(h int) int { return m.halfEdges[h].face }

// OnBoundary reports whether h is a boundary half-edge.
func (m *Mesh) OnBoundary(h int) bool { return m.halfEdges[h].face == NoFace }

// IsCanonical reports whether h is the canonical half-edge of its edge.
func (m *Mesh) IsCanonical(h int) bool { return m.edgeHE[m.halfEdges[h].edge] == h }

// EdgeHalfEdge returns the canonical half-edge of e.
func (m *Mesh) EdgeHalfEdge(e int) int { return m.edgeHE[e] }

// EdgeVertices returns (origin, target) of e's canonical half-edge.
func (m *Mesh) EdgeVertices(e int) (from, to int) {
	h := m.edgeHE[e]

	return m.Origin(h), m.Target(h)
}

// IsBoundaryEdge reports whether either half-edge of e lies on the boundary.
func (m *Mesh) IsBoundaryEdge(e int) bool {
	h := m.edgeHE[e]

	return m.OnBoundary(h) || m.OnBoundary(m.Flip(h))
}

// FaceHalfEdge returns the first half-edge of f.
func (m *Mesh) FaceHalfEdge(f int) int { return m.faceHE[f] }

// VertexHalfEdge returns an outgoing half-edge of v (the boundary one when v
// is on the boundary), or -1 for an isolated vertex.
func (m *Mesh) VertexHalfEdge(v int) int { return m.vertexHE[v] }

// IsBoundaryVertex reports whether v lies on a boundary loop.
func (m *Mesh) IsBoundaryVertex(v int) bool {
	h := m.vertexHE[v]

	return h != noHalfEdge && m.OnBoundary(h)
}

// Position returns the coordinates of v.
func (m *Mesh) Position(v int) r3.Vec { return m.positions[v] }
