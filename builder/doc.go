// SPDX-License-Identifier: MIT

// Package builder provides deterministic "functional-options"-style mesh
// fixtures. Each fixture is a Constructor that appends vertices and faces to a
// mesh.Soup; BuildSoup and BuildMesh compose any number of them in order.
//
// The package offers the following key components:
//
//   - Orchestrators:
//     – BuildSoup(bopts, cons...):        resolve options, run constructors, return the soup.
//     – BuildMesh(mopts, bopts, cons...): the same, then mesh.New on the result.
//   - Surfaces:
//     – PlatonicSolid(Tetrahedron|Octahedron|Icosahedron): closed, χ = 2.
//     – Torus(rings, segments):                            closed, χ = 0.
//   - Patches with boundary:
//     – Square():             unit square split on its diagonal.
//     – Parallelogram():      two triangles with 45° corners opposite the shared edge.
//     – Grid(rows, cols):     rows×cols cells, two triangles per cell, χ = 1.
//   - Placement options:
//     – WithScale, WithOffset: affine placement of every emitted vertex.
//     – WithSeed/WithRand + WithJitter: reproducible Gaussian perturbation.
//
// Guarantees:
//
//   - Faces are emitted counter-clockwise as seen from outside (or from +z for
//     planar patches), so every fixture is consistently oriented.
//   - Composition is index-safe: each constructor offsets its face indices by
//     the number of positions already present in the soup.
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     invalid build parameters surface as wrapped sentinel errors.
package builder
