// SPDX-License-Identifier: MIT
// Package builder_test contains functional tests for every mesh fixture,
// verifying counts, Euler characteristic, orientation and option handling.
package builder_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvdec/builder"
	"github.com/katalvlaran/lvdec/mesh"
)

// centroid returns the mean corner position of f.
func centroid(m *mesh.Mesh, f int) r3.Vec {
	var c r3.Vec
	vs := m.FaceVertices(f)
	for _, v := range vs {
		c = r3.Add(c, m.Position(v))
	}

	return r3.Scale(1/float64(len(vs)), c)
}

// TestBuilders_Functional checks topology counts for each fixture.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                string
		ctor                builder.Constructor
		wantV, wantE, wantF int
		wantBoundary        int // boundary half-edges
	}{
		{"Tetrahedron", builder.PlatonicSolid(builder.Tetrahedron), 4, 6, 4, 0},
		{"Octahedron", builder.PlatonicSolid(builder.Octahedron), 6, 12, 8, 0},
		{"Icosahedron", builder.PlatonicSolid(builder.Icosahedron), 12, 30, 20, 0},
		{"Square", builder.Square(), 4, 5, 2, 4},
		{"Parallelogram", builder.Parallelogram(), 4, 5, 2, 4},
		{"Grid(2,3)", builder.Grid(2, 3), 12, 23, 12, 10},
		{"Grid(1,1)", builder.Grid(1, 1), 4, 5, 2, 4},
		{"Torus(4,5)", builder.Torus(4, 5), 20, 60, 40, 0},
		{"Torus(3,3)", builder.Torus(3, 3), 9, 27, 18, 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := builder.BuildMesh(nil, nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, m.NumVertices())
			assert.Equal(t, tc.wantE, m.NumEdges())
			assert.Equal(t, tc.wantF, m.NumFaces())
			assert.Equal(t, tc.wantBoundary, m.NumBoundaryHalfEdges())
			assert.Equal(t, tc.wantV-tc.wantE+tc.wantF, m.Euler())
		})
	}
}

// TestPlatonic_Geometry checks outward orientation and regular edge lengths.
func TestPlatonic_Geometry(t *testing.T) {
	t.Parallel()

	for _, name := range []builder.PlatonicName{builder.Tetrahedron, builder.Octahedron, builder.Icosahedron} {
		name := name
		t.Run(name.String(), func(t *testing.T) {
			t.Parallel()
			m, err := builder.BuildMesh(nil, nil, builder.PlatonicSolid(name))
			require.NoError(t, err)
			assert.Equal(t, 2, m.Euler())

			for f := 0; f < m.NumFaces(); f++ {
				assert.Greater(t, r3.Dot(m.FaceNormal(f), centroid(m, f)), 0.0, "face %d points inward", f)
			}
			l0 := m.EdgeLength(0)
			for e := 1; e < m.NumEdges(); e++ {
				assert.InDelta(t, l0, m.EdgeLength(e), 1e-12, "edge %d", e)
			}
		})
	}

	_, err := builder.BuildSoup(nil, builder.PlatonicSolid(builder.PlatonicName(99)))
	require.ErrorIs(t, err, builder.ErrOptionViolation)
	assert.Equal(t, "Unknown", builder.PlatonicName(99).String())
}

// TestTorus_Orientation checks that torus normals point away from the tube axis.
func TestTorus_Orientation(t *testing.T) {
	t.Parallel()

	m, err := builder.BuildMesh(nil, nil, builder.Torus(12, 8))
	require.NoError(t, err)
	assert.Equal(t, 0, m.Euler())
	for f := 0; f < m.NumFaces(); f++ {
		c := centroid(m, f)
		axis := r3.Scale(builder.TorusMajorRadius/math.Hypot(c.X, c.Y), r3.Vec{X: c.X, Y: c.Y})
		assert.Greater(t, r3.Dot(m.FaceNormal(f), r3.Sub(c, axis)), 0.0, "face %d", f)
	}
}

// TestPlanar_Layout pins the exact soups of the hand-written patches.
func TestPlanar_Layout(t *testing.T) {
	t.Parallel()

	sq, err := builder.BuildSoup(nil, builder.Square())
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2}, {0, 2, 3}}, sq.Faces)
	assert.Equal(t, r3.Vec{X: 1, Y: 1}, sq.Positions[2])

	pg, err := builder.BuildSoup(nil, builder.Parallelogram())
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2}, {0, 3, 1}}, pg.Faces)
	assert.Equal(t, r3.Vec{X: 1, Y: -1}, pg.Positions[3])

	g, err := builder.BuildSoup(nil, builder.Grid(1, 2))
	require.NoError(t, err)
	// Row 0: 0 1 2, row 1: 3 4 5.
	assert.Equal(t, [][]int{{0, 1, 4}, {0, 4, 3}, {1, 2, 5}, {1, 5, 4}}, g.Faces)
	assert.Equal(t, r3.Vec{X: 2, Y: 1}, g.Positions[5])
}

// TestBuildSoup_Composition checks index shifting across constructors.
func TestBuildSoup_Composition(t *testing.T) {
	t.Parallel()

	s, err := builder.BuildSoup(nil, builder.Square(), builder.PlatonicSolid(builder.Tetrahedron))
	require.NoError(t, err)
	require.Len(t, s.Positions, 8)
	require.Len(t, s.Faces, 6)
	assert.Equal(t, []int{4, 5, 6}, s.Faces[2])

	m, err := mesh.New(s)
	require.NoError(t, err)
	// Disk plus sphere: 1 + 2.
	assert.Equal(t, 3, m.Euler())
	assert.Len(t, m.BoundaryLoops(), 1)
}

// TestBuildSoup_Errors covers size validation and orchestration failures.
func TestBuildSoup_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		ctor builder.Constructor
	}{
		{"Grid rows", builder.Grid(0, 3)},
		{"Grid cols", builder.Grid(3, -1)},
		{"Torus rings", builder.Torus(2, 5)},
		{"Torus segments", builder.Torus(5, 2)},
	}
	for _, tc := range cases {
		_, err := builder.BuildSoup(nil, tc.ctor)
		require.ErrorIs(t, err, builder.ErrTooFewVertices, tc.name)
		assert.Contains(t, err.Error(), builder.MethodBuildSoup)
	}

	_, err := builder.BuildSoup(nil, builder.Square(), nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)

	_, err = builder.BuildSoup([]builder.BuilderOption{builder.WithJitter(0.1)}, builder.Square())
	require.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildMesh(nil, nil)
	require.ErrorIs(t, err, mesh.ErrEmptySoup)
	assert.Contains(t, err.Error(), builder.MethodBuildMesh)
}

// TestOptions_Placement checks scale, offset and seeded jitter.
func TestOptions_Placement(t *testing.T) {
	t.Parallel()

	opts := []builder.BuilderOption{
		builder.WithScale(2),
		builder.WithOffset(r3.Vec{X: 10, Z: -1}),
	}
	s, err := builder.BuildSoup(opts, builder.Square())
	require.NoError(t, err)
	assert.Equal(t, r3.Vec{X: 12, Y: 2, Z: -1}, s.Positions[2])

	jit := []builder.BuilderOption{builder.WithSeed(7), builder.WithJitter(1e-3)}
	a, err := builder.BuildSoup(jit, builder.Grid(3, 3))
	require.NoError(t, err)
	jit = []builder.BuilderOption{builder.WithSeed(7), builder.WithJitter(1e-3)}
	b, err := builder.BuildSoup(jit, builder.Grid(3, 3))
	require.NoError(t, err)
	assert.Equal(t, a.Positions, b.Positions, "same seed must reproduce")

	plain, err := builder.BuildSoup(nil, builder.Grid(3, 3))
	require.NoError(t, err)
	assert.NotEqual(t, plain.Positions, a.Positions)
	for i := range plain.Positions {
		assert.InDelta(t, 0, r3.Norm(r3.Sub(plain.Positions[i], a.Positions[i])), 1e-2)
	}
}

// TestOptions_Panics verifies fast-fail option constructors.
func TestOptions_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { builder.WithScale(0) })
	assert.Panics(t, func() { builder.WithScale(math.Inf(1)) })
	assert.Panics(t, func() { builder.WithScale(math.NaN()) })
	assert.Panics(t, func() { builder.WithOffset(r3.Vec{Y: math.NaN()}) })
	assert.Panics(t, func() { builder.WithJitter(-1) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.NotPanics(t, func() { builder.WithJitter(0) })
}
