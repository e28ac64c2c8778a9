// SPDX-License-Identifier: MIT
// Package dec - diagonal Hodge stars.
//
// Purpose:
//   - ⋆k maps primal k-forms to dual (2−k)-forms by the ratio of dual to
//     primal element measure. On a triangle mesh all three are diagonal.
//
// Determinism:
//   - One Set per element in index order; output is bit-identical across calls.
//
// Complexity:
//   - O(n) time and space for n elements of the family.

package dec

import (
	"github.com/katalvlaran/lvdec/sparse"
)

// Hodge0 returns the |V|×|V| diagonal with ⋆0[i][i] = m.VertexArea(i).
func Hodge0(m Mesh) (*sparse.Matrix, error) {
	if isNil(m) {
		return nil, decErrorf(opHodge0, ErrNilMesh)
	}

	return diagonal(opHodge0, m.NumVertices(), m.VertexArea)
}

// Hodge1 returns the |E|×|E| diagonal with
//
//	⋆1[e][e] = (cot α + cot β)/2 + ε,
//
// where α and β are the angles opposite e in its two incident faces, read
// from e's canonical half-edge and its flip. ε (WithRegularization, default
// DefaultRegularization) is added to every edge. The cotangent weights are
// defined on triangles only: an edge touching a polygon face gets NaN.
func Hodge1(m Mesh, opts ...Option) (*sparse.Matrix, error) {
	if isNil(m) {
		return nil, decErrorf(opHodge1, ErrNilMesh)
	}
	eps := gatherOptions(opts...).regularization

	return diagonal(opHodge1, m.NumEdges(), func(e int) float64 {
		h := m.EdgeHalfEdge(e)

		return (m.Cotan(h)+m.Cotan(m.Flip(h)))/2 + eps
	})
}

// Hodge2 returns the |F|×|F| diagonal with ⋆2[f][f] = 1/m.FaceArea(f).
// A zero-area face yields +Inf.
func Hodge2(m Mesh) (*sparse.Matrix, error) {
	if isNil(m) {
		return nil, decErrorf(opHodge2, ErrNilMesh)
	}

	return diagonal(opHodge2, m.NumFaces(), func(f int) float64 { return 1 / m.FaceArea(f) })
}

// diagonal assembles an n×n operator with value(i) at (i,i).
func diagonal(tag string, n int, value func(i int) float64) (*sparse.Matrix, error) {
	b, err := sparse.NewBuilder(n, n, sparse.WithCapacity(n))
	if err != nil {
		return nil, decErrorf(tag, err)
	}
	for i := 0; i < n; i++ {
		if err = b.Set(i, i, value(i)); err != nil {
			return nil, decErrorf(tag, err)
		}
	}

	return b.Build(), nil
}
