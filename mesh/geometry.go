// SPDX-License-Identifier: MIT
// Package mesh - per-element geometric queries.
//
// Conventions:
//   - Cotan(h) is the cotangent of the angle opposite h inside h's face; for
//     triangles that is the corner at Origin(Next(Next(h))). A polygon has no
//     single opposite corner, so half-edges of faces with degree != 3 report
//     NaN. Boundary half-edges have no face and report 0.
//   - FaceArea uses the vector area ½|Σ (pᵢ−p₀)×(pᵢ₊₁−p₀)|, exact for planar
//     polygons.
//   - Degenerate geometry is not repaired: a zero-area triangle yields an
//     infinite cotangent. Only VertexArea substitutes a fallback (1.0) for a
//     non-finite or non-positive dual area.

package mesh

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Cotan returns the cotangent of the angle opposite h, 0 on the boundary and
// NaN inside a non-triangular face.
func (m *Mesh) Cotan(h int) float64 {
	if m.OnBoundary(h) {
		return 0
	}
	prev := m.Next(m.Next(h))
	if m.Next(prev) != h {
		return math.NaN()
	}
	opp := m.positions[m.Origin(prev)]
	u := r3.Sub(m.positions[m.Origin(h)], opp)
	v := r3.Sub(m.positions[m.Target(h)], opp)

	return r3.Dot(u, v) / r3.Norm(r3.Cross(u, v))
}

// EdgeLength returns the Euclidean length of e.
func (m *Mesh) EdgeLength(e int) float64 {
	from, to := m.EdgeVertices(e)

	return r3.Norm(r3.Sub(m.positions[to], m.positions[from]))
}

// vectorArea returns Σ (pᵢ−p₀)×(pᵢ₊₁−p₀) over the fan of f (twice the area vector).
func (m *Mesh) vectorArea(f int) r3.Vec {
	vs := m.FaceVertices(f)
	p0 := m.positions[vs[0]]
	var sum r3.Vec
	for i := 1; i+1 < len(vs); i++ {
		a := r3.Sub(m.positions[vs[i]], p0)
		b := r3.Sub(m.positions[vs[i+1]], p0)
		sum = r3.Add(sum, r3.Cross(a, b))
	}

	return sum
}

// FaceArea returns the area of f.
func (m *Mesh) FaceArea(f int) float64 { return 0.5 * r3.Norm(m.vectorArea(f)) }

// FaceNormal returns the unit normal of f following its corner orientation,
// or the zero vector for a degenerate face.
func (m *Mesh) FaceNormal(f int) r3.Vec {
	n := m.vectorArea(f)
	l := r3.Norm(n)
	if l == 0 {
		return r3.Vec{}
	}

	return r3.Scale(1/l, n)
}

// TotalArea returns the sum of all face areas.
func (m *Mesh) TotalArea() float64 {
	var s float64
	for f := range m.faceHE {
		s += m.FaceArea(f)
	}

	return s
}

// VertexArea returns the dual area of v under the mesh's AreaPolicy.
func (m *Mesh) VertexArea(v int) float64 { return m.vertexArea[v] }

// computeVertexAreas evaluates the dual area of every vertex once, at build time.
func (m *Mesh) computeVertexAreas() []float64 {
	areas := make([]float64, len(m.positions))
	switch m.policy {
	case AreaBarycentric:
		// Equal share of each incident face: one third for triangles.
		for f := range m.faceHE {
			vs := m.FaceVertices(f)
			share := m.FaceArea(f) / float64(len(vs))
			for _, v := range vs {
				areas[v] += share
			}
		}
	case AreaCircumcentric:
		// Polygon corners contribute NaN and end in the fallback below.
		// Each interior half-edge i→j adds cot(h)·|eᵢⱼ|²/8 to both i and j.
		for h := 0; h < m.interior; h++ {
			from, to := m.Origin(h), m.Target(h)
			l2 := r3.Norm2(r3.Sub(m.positions[to], m.positions[from]))
			w := m.Cotan(h) * l2 / 8
			areas[from] += w
			areas[to] += w
		}
	default:
		for v := range areas {
			areas[v] = fallbackDualArea
		}
	}

	for v, a := range areas {
		if math.IsNaN(a) || math.IsInf(a, 0) || a <= 0 {
			areas[v] = fallbackDualArea
		}
	}

	return areas
}
