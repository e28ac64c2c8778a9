// Package lvdec is a small toolkit for discrete exterior calculus (DEC) on
// oriented triangle meshes. Connectivity, areas and the exterior derivatives
// also accept polygon faces; the cotangent weights of ⋆1 do not (they are NaN
// on any edge of a non-triangular face).
//
// What is inside?
//
//	A half-edge mesh, a CSR sparse matrix, and the five first-order DEC
//	operators built on top of them:
//		• Hodge stars ⋆0 (V×V), ⋆1 (E×E), ⋆2 (F×F), all diagonal
//		• Exterior derivatives d0 (E×V) and d1 (F×E), signed incidence
//		• Composites: cotangent Laplacian L = d0ᵀ⋆1d0, codifferential δ1
//		• Exactness check d1·d0 = 0
//
// Operators satisfy gonum's mat.Matrix, so they drop straight into dense
// factorizations when a solve is needed (see examples/heat_diffusion).
//
// Packages:
//
//	sparse/      - immutable CSR matrix, builder and arithmetic
//	mesh/        - half-edge connectivity, cotangents, dual areas
//	builder/     - deterministic fixtures: platonic solids, grids, tori
//	meshio/      - Wavefront OBJ reader and writer
//	dec/         - Hodge stars, exterior derivatives, BuildAll, Laplacian
//	cmd/decstat/ - CLI printing operator shapes and sanity checks
//
// Quick ASCII example:
//
//	3───2
//	│ ╱ │     unit square, two faces, diagonal 0–2:
//	0───1     ⋆1 on the diagonal is just the regularization ε
//
//	go get github.com/katalvlaran/lvdec
package lvdec
