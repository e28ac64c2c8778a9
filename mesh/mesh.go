// SPDX-License-Identifier: MIT
// Package mesh - half-edge arena built from a face soup.
//
// Model:
//   - Vertices, edges, faces and half-edges live in flat slices and refer to
//     each other by dense integer handles; no element owns another, so the
//     cyclic adjacency needs no pointers.
//   - Every face corner yields one interior half-edge. Each undirected edge
//     has exactly two half-edges; when a face edge has no neighbour its twin
//     is a boundary half-edge with face NoFace, and boundary half-edges are
//     chained with next so boundary loops can be walked like faces.
//   - The canonical half-edge of an edge is the first interior half-edge
//     created for it. That choice fixes the orientation of every edge.
//
// Determinism:
//   - Faces keep soup order; half-edges follow face order then corner order;
//     edges are numbered by first appearance; boundary half-edges are appended
//     after all interior ones in edge order. Same soup ⇒ same handles.
//
// Complexity:
//   - New: O(H) time and space for H face corners (hash map on directed pairs).

package mesh

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// NoFace is the face handle of boundary half-edges.
const NoFace = -1

// noHalfEdge marks an isolated vertex (referenced by no face).
const noHalfEdge = -1

// Soup is an indexed face list: positions plus faces listing corner indices
// in counter-clockwise order.
type Soup struct {
	Positions []r3.Vec
	Faces     [][]int
}

// halfEdge is one directed edge record.
type halfEdge struct {
	next   int // next half-edge around the face (or boundary loop)
	flip   int // opposite half-edge of the same edge
	origin int // origin vertex
	edge   int // undirected edge
	face   int // incident face or NoFace
}

// Mesh is an immutable half-edge mesh. All queries are read-only and safe for
// concurrent use.
type Mesh struct {
	positions  []r3.Vec
	halfEdges  []halfEdge
	edgeHE     []int // canonical half-edge per edge
	faceHE     []int // first half-edge per face
	vertexHE   []int // one outgoing half-edge per vertex (boundary one if any)
	vertexArea []float64
	interior   int // number of interior half-edges; boundary ones follow
	policy     AreaPolicy
}

// dirKey is an ordered (origin, target) vertex pair.
type dirKey struct{ from, to int }

// New builds a half-edge mesh from soup. Positions are copied.
//
// Errors:
//   - ErrEmptySoup, ErrFaceTooSmall, ErrVertexOutOfRange, ErrDegenerateFace,
//     ErrNonManifoldEdge, ErrNonManifoldVertex (all wrapped with context).
func New(soup Soup, opts ...Option) (*Mesh, error) {
	o := gatherOptions(opts...)

	// Stage 1: validate the soup.
	nV := len(soup.Positions)
	if nV == 0 || len(soup.Faces) == 0 {
		return nil, ErrEmptySoup
	}
	corners := 0
	for f, face := range soup.Faces {
		if len(face) < 3 {
			return nil, faceErrorf(f, ErrFaceTooSmall, "%d corners", len(face))
		}
		seen := make(map[int]struct{}, len(face))
		for _, v := range face {
			if v < 0 || v >= nV {
				return nil, faceErrorf(f, ErrVertexOutOfRange, "vertex %d not in [0,%d)", v, nV)
			}
			if _, dup := seen[v]; dup {
				return nil, faceErrorf(f, ErrDegenerateFace, "vertex %d repeated", v)
			}
			seen[v] = struct{}{}
		}
		corners += len(face)
	}

	m := &Mesh{
		positions: append([]r3.Vec(nil), soup.Positions...),
		halfEdges: make([]halfEdge, 0, corners+corners/4),
		faceHE:    make([]int, len(soup.Faces)),
		vertexHE:  make([]int, nV),
		interior:  corners,
		policy:    o.areaPolicy,
	}
	for v := range m.vertexHE {
		m.vertexHE[v] = noHalfEdge
	}

	// Stage 2: one interior half-edge per corner, closed into a face cycle.
	directed := make(map[dirKey]int, corners)
	for f, face := range soup.Faces {
		base := len(m.halfEdges)
		m.faceHE[f] = base
		n := len(face)
		for k, v := range face {
			key := dirKey{from: v, to: face[(k+1)%n]}
			if _, dup := directed[key]; dup {
				return nil, faceErrorf(f, ErrNonManifoldEdge, "directed edge %d->%d already used", key.from, key.to)
			}
			h := base + k
			directed[key] = h
			m.halfEdges = append(m.halfEdges, halfEdge{
				next:   base + (k+1)%n,
				flip:   noHalfEdge,
				origin: v,
				edge:   noHalfEdge,
				face:   f,
			})
		}
	}

	// Stage 3: pair flips and number edges by first appearance.
	unmatched := make([]int, 0)
	for h := 0; h < corners; h++ {
		if m.halfEdges[h].flip != noHalfEdge {
			continue
		}
		e := len(m.edgeHE)
		m.edgeHE = append(m.edgeHE, h)
		m.halfEdges[h].edge = e

		from, to := m.halfEdges[h].origin, m.halfEdges[m.halfEdges[h].next].origin
		if t, ok := directed[dirKey{from: to, to: from}]; ok {
			m.halfEdges[h].flip = t
			m.halfEdges[t].flip = h
			m.halfEdges[t].edge = e
			continue
		}
		unmatched = append(unmatched, h)
	}

	// Stage 4: boundary twins, then chain them into boundary loops.
	boundaryFrom := make(map[int]int, len(unmatched))
	for _, h := range unmatched {
		b := len(m.halfEdges)
		to := m.halfEdges[m.halfEdges[h].next].origin
		m.halfEdges = append(m.halfEdges, halfEdge{
			next:   noHalfEdge,
			flip:   h,
			origin: to,
			edge:   m.halfEdges[h].edge,
			face:   NoFace,
		})
		m.halfEdges[h].flip = b
		if _, dup := boundaryFrom[to]; dup {
			return nil, faceErrorf(m.halfEdges[h].face, ErrNonManifoldVertex, "vertex %d starts two boundary half-edges", to)
		}
		boundaryFrom[to] = b
	}
	for b := corners; b < len(m.halfEdges); b++ {
		// b runs w→u as the twin of u→w; continue from the boundary half-edge leaving u.
		u := m.halfEdges[m.halfEdges[b].flip].origin
		m.halfEdges[b].next = boundaryFrom[u]
	}

	// Stage 5: outgoing half-edge per vertex, boundary ones win.
	for h := range m.halfEdges {
		v := m.halfEdges[h].origin
		if m.vertexHE[v] == noHalfEdge || h >= corners {
			m.vertexHE[v] = h
		}
	}

	// Stage 6: dual areas under the selected policy.
	m.vertexArea = m.computeVertexAreas()

	return m, nil
}

// Soup returns a copy of the mesh as an indexed face list. Faces keep their
// corner order starting at their first half-edge.
func (m *Mesh) Soup() Soup {
	s := Soup{
		Positions: append([]r3.Vec(nil), m.positions...),
		Faces:     make([][]int, len(m.faceHE)),
	}
	for f := range m.faceHE {
		for _, h := range m.FaceHalfEdges(f) {
			s.Faces[f] = append(s.Faces[f], m.halfEdges[h].origin)
		}
	}

	return s
}
