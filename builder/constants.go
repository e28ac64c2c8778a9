// SPDX-License-Identifier: MIT
// Package builder defines shared constants used by mesh fixtures, ensuring
// consistent defaults and validation across all constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodBuildSoup is the canonical name for the BuildSoup orchestrator.
	MethodBuildSoup = "BuildSoup"
	// MethodBuildMesh is the canonical name for the BuildMesh orchestrator.
	MethodBuildMesh = "BuildMesh"
	// MethodPlatonicSolid is the canonical name for the PlatonicSolid constructor.
	MethodPlatonicSolid = "PlatonicSolid"
	// MethodSquare is the canonical name for the Square constructor.
	MethodSquare = "Square"
	// MethodParallelogram is the canonical name for the Parallelogram constructor.
	MethodParallelogram = "Parallelogram"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
	// MethodTorus is the canonical name for the Torus constructor.
	MethodTorus = "Torus"
)

//-----------------------------------------------------------------------------
// Minimum sizes
//-----------------------------------------------------------------------------

const (
	// MinGridDim is the minimum number of cells per grid side.
	MinGridDim = 1
	// MinTorusRings is the minimum ring count; fewer rings would make a face
	// repeat a vertex.
	MinTorusRings = 3
	// MinTorusSegments is the minimum segment count per ring.
	MinTorusSegments = 3
)

//-----------------------------------------------------------------------------
// Geometry defaults
//-----------------------------------------------------------------------------

const (
	// TorusMajorRadius is the distance from the torus centre to the tube centre.
	TorusMajorRadius = 2.0
	// TorusMinorRadius is the tube radius.
	TorusMinorRadius = 1.0

	defaultScale  = 1.0
	defaultJitter = 0.0
)
