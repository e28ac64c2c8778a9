// SPDX-License-Identifier: MIT
package mesh_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvdec/builder"
	"github.com/katalvlaran/lvdec/mesh"
)

// unitSquare is the unit square split on the diagonal 0–2.
func unitSquare() mesh.Soup {
	return mesh.Soup{
		Positions: []r3.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}},
		Faces:     [][]int{{0, 1, 2}, {0, 2, 3}},
	}
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	tri := []r3.Vec{{}, {X: 1}, {Y: 1}, {X: 1, Y: 1}, {X: -1, Y: 1}}
	cases := []struct {
		name  string
		soup  mesh.Soup
		want  error
		where string
	}{
		{"no positions", mesh.Soup{Faces: [][]int{{0, 1, 2}}}, mesh.ErrEmptySoup, ""},
		{"no faces", mesh.Soup{Positions: tri}, mesh.ErrEmptySoup, ""},
		{"two corners", mesh.Soup{Positions: tri, Faces: [][]int{{0, 1, 2}, {0, 1}}}, mesh.ErrFaceTooSmall, "face 1"},
		{"out of range", mesh.Soup{Positions: tri, Faces: [][]int{{0, 1, 9}}}, mesh.ErrVertexOutOfRange, "face 0"},
		{"negative", mesh.Soup{Positions: tri, Faces: [][]int{{0, -1, 2}}}, mesh.ErrVertexOutOfRange, "face 0"},
		{"repeated corner", mesh.Soup{Positions: tri, Faces: [][]int{{0, 1, 1}}}, mesh.ErrDegenerateFace, "face 0"},
		{"flipped neighbour", mesh.Soup{Positions: tri, Faces: [][]int{{0, 1, 2}, {0, 1, 3}}}, mesh.ErrNonManifoldEdge, "face 1"},
		{"three faces on an edge", mesh.Soup{Positions: tri, Faces: [][]int{{0, 1, 2}, {1, 0, 3}, {0, 1, 4}}}, mesh.ErrNonManifoldEdge, "face 2"},
		{"bowtie", mesh.Soup{Positions: tri, Faces: [][]int{{0, 1, 2}, {0, 3, 4}}}, mesh.ErrNonManifoldVertex, ""},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := mesh.New(tc.soup)
			require.ErrorIs(t, err, tc.want)
			assert.Nil(t, m)
			if tc.where != "" {
				assert.Contains(t, err.Error(), tc.where)
			}
		})
	}
}

func TestNew_SquareConnectivity(t *testing.T) {
	t.Parallel()

	m, err := mesh.New(unitSquare())
	require.NoError(t, err)

	require.Equal(t, 4, m.NumVertices())
	require.Equal(t, 5, m.NumEdges())
	require.Equal(t, 2, m.NumFaces())
	require.Equal(t, 10, m.NumHalfEdges())
	require.Equal(t, 4, m.NumBoundaryHalfEdges())
	assert.Equal(t, 1, m.Euler())

	// Edges are numbered by first appearance along face order.
	want := [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 3}, {3, 0}}
	for e, w := range want {
		from, to := m.EdgeVertices(e)
		assert.Equal(t, w, [2]int{from, to}, "edge %d", e)
		assert.Equal(t, e != 2, m.IsBoundaryEdge(e), "edge %d", e)
	}
	// The diagonal's canonical half-edge lives in face 0; its flip in face 1.
	h := m.EdgeHalfEdge(2)
	assert.Equal(t, 0, m.HalfEdgeFace(h))
	assert.Equal(t, 1, m.HalfEdgeFace(m.Flip(h)))
	assert.False(t, m.IsCanonical(m.Flip(h)))

	loops := m.BoundaryLoops()
	require.Len(t, loops, 1)
	assert.Equal(t, []int{6, 9, 8, 7}, loops[0])
	for _, b := range loops[0] {
		assert.True(t, m.OnBoundary(b))
		assert.Equal(t, mesh.NoFace, m.HalfEdgeFace(b))
		assert.Equal(t, m.Target(b), m.Origin(m.Next(b)))
	}

	assert.Equal(t, []int{3, 2, 3, 2}, []int{m.VertexDegree(0), m.VertexDegree(1), m.VertexDegree(2), m.VertexDegree(3)})
	for v := 0; v < 4; v++ {
		assert.True(t, m.IsBoundaryVertex(v))
		for _, out := range m.VertexHalfEdges(v) {
			assert.Equal(t, v, m.Origin(out))
		}
	}
	assert.Equal(t, []int{0, 2, 3}, m.FaceVertices(1))
}

func TestNew_ClosedInvariants(t *testing.T) {
	t.Parallel()

	fixtures := map[string]builder.Constructor{
		"tetrahedron": builder.PlatonicSolid(builder.Tetrahedron),
		"icosahedron": builder.PlatonicSolid(builder.Icosahedron),
		"torus":       builder.Torus(5, 4),
	}
	for name, ctor := range fixtures {
		ctor := ctor
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			m, err := builder.BuildMesh(nil, nil, ctor)
			require.NoError(t, err)
			require.Zero(t, m.NumBoundaryHalfEdges())
			require.Equal(t, 2*m.NumEdges(), m.NumHalfEdges())
			assert.Empty(t, m.BoundaryLoops())

			canonical := 0
			for h := 0; h < m.NumHalfEdges(); h++ {
				assert.Equal(t, h, m.Flip(m.Flip(h)))
				assert.NotEqual(t, h, m.Flip(h))
				assert.Equal(t, m.HalfEdgeEdge(h), m.HalfEdgeEdge(m.Flip(h)))
				assert.Equal(t, m.Target(h), m.Origin(m.Next(h)))
				assert.Equal(t, h, m.Next(m.Next(m.Next(h))))
				if m.IsCanonical(h) {
					canonical++
					assert.Less(t, h, m.Flip(h), "canonical is the first created")
				}
			}
			assert.Equal(t, m.NumEdges(), canonical)

			degSum := 0
			for v := 0; v < m.NumVertices(); v++ {
				assert.False(t, m.IsBoundaryVertex(v))
				degSum += m.VertexDegree(v)
			}
			assert.Equal(t, 2*m.NumEdges(), degSum)
		})
	}
}

func TestGeometry_Square(t *testing.T) {
	t.Parallel()

	m, err := mesh.New(unitSquare())
	require.NoError(t, err)

	diag := m.EdgeHalfEdge(2)
	assert.InDelta(t, 0, m.Cotan(diag), 1e-15)
	assert.InDelta(t, 0, m.Cotan(m.Flip(diag)), 1e-15)
	assert.Equal(t, 1.0, m.Cotan(m.EdgeHalfEdge(0)))
	assert.Zero(t, m.Cotan(m.Flip(m.EdgeHalfEdge(0))), "boundary cotangent")

	assert.Equal(t, 0.5, m.FaceArea(0))
	assert.Equal(t, 0.5, m.FaceArea(1))
	assert.Equal(t, 1.0, m.TotalArea())
	assert.Equal(t, r3.Vec{Z: 1}, m.FaceNormal(0))
	assert.InDelta(t, math.Sqrt2, m.EdgeLength(2), 1e-15)
}

func TestGeometry_AreaPolicies(t *testing.T) {
	t.Parallel()

	cases := []struct {
		policy mesh.AreaPolicy
		want   []float64
	}{
		{mesh.AreaUnit, []float64{1, 1, 1, 1}},
		{mesh.AreaBarycentric, []float64{1.0 / 3, 1.0 / 6, 1.0 / 3, 1.0 / 6}},
		{mesh.AreaCircumcentric, []float64{0.25, 0.25, 0.25, 0.25}},
	}
	for _, tc := range cases {
		m, err := mesh.New(unitSquare(), mesh.WithAreaPolicy(tc.policy))
		require.NoError(t, err)
		assert.Equal(t, tc.policy, m.AreaPolicy())
		sum := 0.0
		for v, w := range tc.want {
			assert.InDelta(t, w, m.VertexArea(v), 1e-15, "%s v%d", tc.policy, v)
			sum += m.VertexArea(v)
		}
		if tc.policy != mesh.AreaUnit {
			assert.InDelta(t, m.TotalArea(), sum, 1e-15, "%s partitions the area", tc.policy)
		}
	}
}

func TestGeometry_DegenerateFallback(t *testing.T) {
	t.Parallel()

	// Collinear corners plus an unreferenced vertex 3.
	soup := mesh.Soup{
		Positions: []r3.Vec{{X: 0}, {X: 1}, {X: 2}, {Y: 5}},
		Faces:     [][]int{{0, 1, 2}},
	}
	for _, p := range []mesh.AreaPolicy{mesh.AreaUnit, mesh.AreaBarycentric, mesh.AreaCircumcentric} {
		m, err := mesh.New(soup, mesh.WithAreaPolicy(p))
		require.NoError(t, err)
		assert.True(t, math.IsInf(m.Cotan(0), 1))
		assert.Zero(t, m.FaceArea(0))
		assert.Equal(t, r3.Vec{}, m.FaceNormal(0))
		for v := 0; v < m.NumVertices(); v++ {
			assert.Equal(t, 1.0, m.VertexArea(v), "%s v%d", p, v)
		}
		assert.Equal(t, -1, m.VertexHalfEdge(3))
		assert.Nil(t, m.VertexHalfEdges(3))
		assert.False(t, m.IsBoundaryVertex(3))
	}
}

func TestNew_Polygon(t *testing.T) {
	t.Parallel()

	m, err := mesh.New(mesh.Soup{
		Positions: []r3.Vec{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 0, Y: 1}},
		Faces:     [][]int{{0, 1, 2, 3}},
	})
	require.NoError(t, err)
	assert.Equal(t, 4, m.FaceDegree(0))
	assert.Equal(t, 2.0, m.FaceArea(0))
	assert.Equal(t, 4, m.NumEdges())
	assert.Len(t, m.BoundaryLoops()[0], 4)

	// No opposite corner in a quad.
	for _, h := range m.FaceHalfEdges(0) {
		assert.True(t, math.IsNaN(m.Cotan(h)), "half-edge %d", h)
		assert.Zero(t, m.Cotan(m.Flip(h)), "boundary twin of %d", h)
	}
	circ, err := mesh.New(m.Soup(), mesh.WithAreaPolicy(mesh.AreaCircumcentric))
	require.NoError(t, err)
	for v := 0; v < circ.NumVertices(); v++ {
		assert.Equal(t, 1.0, circ.VertexArea(v), "v%d", v)
	}
}

func TestSoup_RoundTrip(t *testing.T) {
	t.Parallel()

	in := unitSquare()
	m, err := mesh.New(in)
	require.NoError(t, err)

	out := m.Soup()
	assert.Equal(t, in, out)

	// Mutating either side leaves the mesh untouched.
	in.Positions[0] = r3.Vec{X: 9}
	out.Positions[1] = r3.Vec{X: 9}
	assert.Equal(t, r3.Vec{}, m.Position(0))
	assert.Equal(t, r3.Vec{X: 1}, m.Position(1))
}

func TestAreaPolicy_Parse(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]mesh.AreaPolicy{
		"":              mesh.AreaUnit,
		"unit":          mesh.AreaUnit,
		" Barycentric ": mesh.AreaBarycentric,
		"circumcentric": mesh.AreaCircumcentric,
		"VORONOI":       mesh.AreaCircumcentric,
	} {
		got, err := mesh.ParseAreaPolicy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := mesh.ParseAreaPolicy("hexagonal")
	require.ErrorIs(t, err, mesh.ErrUnknownAreaPolicy)

	assert.Equal(t, "barycentric", mesh.AreaBarycentric.String())
	assert.Equal(t, "unknown", mesh.AreaPolicy(42).String())
	assert.Panics(t, func() { mesh.WithAreaPolicy(mesh.AreaPolicy(42)) })
	assert.Panics(t, func() { mesh.WithAreaPolicy(mesh.AreaPolicy(-1)) })
}
