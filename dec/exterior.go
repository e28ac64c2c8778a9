// SPDX-License-Identifier: MIT
// Package dec - exterior derivatives (signed incidence).
//
// Sign rule:
//   - d0: edge e runs from Origin(canonical) to Origin(Flip(canonical));
//     row e holds -1 at the tail and +1 at the head.
//   - d1: a face holds +1 for an edge when it owns the edge's canonical
//     half-edge and -1 when it owns the flip.
//
// Complexity:
//   - d0: O(|E|). d1: O(Σ face degree) = O(|H|).

package dec

import (
	"fmt"

	"github.com/katalvlaran/lvdec/sparse"
)

// ExteriorDerivative0 returns the |E|×|V| operator d0 mapping vertex values
// to signed edge differences.
func ExteriorDerivative0(m Mesh) (*sparse.Matrix, error) {
	if isNil(m) {
		return nil, decErrorf(opD0, ErrNilMesh)
	}

	nE := m.NumEdges()
	b, err := sparse.NewBuilder(nE, m.NumVertices(), sparse.WithCapacity(2*nE))
	if err != nil {
		return nil, decErrorf(opD0, err)
	}
	// Orientation of e is its canonical half-edge: tail -1, head +1.
	for e := 0; e < nE; e++ {
		h := m.EdgeHalfEdge(e)
		if err = b.Set(e, m.Origin(h), -1); err != nil {
			return nil, decErrorf(opD0, err)
		}
		if err = b.Set(e, m.Origin(m.Flip(h)), +1); err != nil {
			return nil, decErrorf(opD0, err)
		}
	}

	return b.Build(), nil
}

// ExteriorDerivative1 returns the |F|×|E| operator d1 summing signed edge
// values around each face.
//
// Each face is walked from FaceHalfEdge(f) along Next until the walk returns
// to its start, so faces of any degree are supported. A walk that has not
// closed after NumHalfEdges steps fails with ErrOpenFaceCycle.
func ExteriorDerivative1(m Mesh) (*sparse.Matrix, error) {
	if isNil(m) {
		return nil, decErrorf(opD1, ErrNilMesh)
	}

	nF, nH := m.NumFaces(), m.NumHalfEdges()
	b, err := sparse.NewBuilder(nF, m.NumEdges(), sparse.WithCapacity(3*nF))
	if err != nil {
		return nil, decErrorf(opD1, err)
	}
	for f := 0; f < nF; f++ {
		start := m.FaceHalfEdge(f)
		h, steps := start, 0
		for {
			// +1 where the face runs along e's orientation, -1 against it.
			e := m.HalfEdgeEdge(h)
			sign := -1.0
			if m.EdgeHalfEdge(e) == h {
				sign = +1.0
			}
			if err = b.Set(f, e, sign); err != nil {
				return nil, decErrorf(opD1, err)
			}

			// Advance; the step cap guards against corrupt next links.
			h = m.Next(h)
			steps++
			if h == start {
				break
			}
			if steps >= nH {
				return nil, fmt.Errorf("%s: face %d: %w", opD1, f, ErrOpenFaceCycle)
			}
		}
	}

	return b.Build(), nil
}
