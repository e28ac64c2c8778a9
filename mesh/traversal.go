// SPDX-License-Identifier: MIT
// Package mesh - cyclic traversals.
//
// Both walks are do/while loops: visit, advance, stop on returning to the
// start. The step count is capped by the half-edge total so a corrupted
// arena cannot spin forever.

package mesh

// FaceHalfEdges returns the half-edges of f in cyclic order, starting with
// its first half-edge.
func (m *Mesh) FaceHalfEdges(f int) []int {
	return m.cycle(m.faceHE[f], func(h int) int { return m.halfEdges[h].next })
}

// FaceDegree returns the number of corners of f.
func (m *Mesh) FaceDegree(f int) int { return len(m.FaceHalfEdges(f)) }

// FaceVertices returns the corner vertices of f in cyclic order.
func (m *Mesh) FaceVertices(f int) []int {
	hs := m.FaceHalfEdges(f)
	out := make([]int, len(hs))
	for i, h := range hs {
		out[i] = m.halfEdges[h].origin
	}

	return out
}

// VertexHalfEdges returns the outgoing half-edges of v in rotational order
// (flip then next). Isolated vertices yield nil.
func (m *Mesh) VertexHalfEdges(v int) []int {
	start := m.vertexHE[v]
	if start == noHalfEdge {
		return nil
	}

	return m.cycle(start, func(h int) int { return m.halfEdges[m.halfEdges[h].flip].next })
}

// VertexDegree returns the number of edges incident to v.
func (m *Mesh) VertexDegree(v int) int { return len(m.VertexHalfEdges(v)) }

// BoundaryLoops returns every boundary loop as a list of boundary half-edges,
// ordered by the smallest half-edge handle in each loop.
func (m *Mesh) BoundaryLoops() [][]int {
	var loops [][]int
	seen := make([]bool, len(m.halfEdges))
	for b := m.interior; b < len(m.halfEdges); b++ {
		if seen[b] {
			continue
		}
		loop := m.cycle(b, func(h int) int { return m.halfEdges[h].next })
		for _, h := range loop {
			seen[h] = true
		}
		loops = append(loops, loop)
	}

	return loops
}

// cycle walks step from start until it returns to start.
func (m *Mesh) cycle(start int, step func(int) int) []int {
	out := make([]int, 0, 6)
	h := start
	for {
		out = append(out, h)
		h = step(h)
		if h == start || h < 0 || len(out) >= len(m.halfEdges) {
			break
		}
	}

	return out
}
