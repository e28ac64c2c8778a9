// SPDX-License-Identifier: MIT
// Package mesh: sentinel errors for half-edge construction.
//
// Only New returns errors. Read-only queries take handles produced by the
// mesh itself and index the arena directly; an invalid handle is a
// programmer error and panics like any out-of-range slice access.

package mesh

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySoup indicates a soup without positions or without faces.
	ErrEmptySoup = errors.New("mesh: empty face soup")

	// ErrFaceTooSmall indicates a face with fewer than three corners.
	ErrFaceTooSmall = errors.New("mesh: face has fewer than 3 corners")

	// ErrVertexOutOfRange indicates a face corner outside [0, len(Positions)).
	ErrVertexOutOfRange = errors.New("mesh: vertex index out of range")

	// ErrDegenerateFace indicates a face that repeats a corner vertex.
	ErrDegenerateFace = errors.New("mesh: face repeats a vertex")

	// ErrNonManifoldEdge indicates a directed edge used by two faces, i.e. an
	// edge shared by more than two faces or a pair of inconsistently oriented
	// neighbours.
	ErrNonManifoldEdge = errors.New("mesh: non-manifold or inconsistently oriented edge")

	// ErrNonManifoldVertex indicates a vertex where two boundary loops touch,
	// so boundary half-edges cannot be chained unambiguously.
	ErrNonManifoldVertex = errors.New("mesh: non-manifold boundary vertex")

	// ErrUnknownAreaPolicy indicates an unrecognized dual-area policy name.
	ErrUnknownAreaPolicy = errors.New("mesh: unknown area policy")
)

const methodNew = "New"

// faceErrorf attaches the offending face index and detail to a sentinel.
func faceErrorf(f int, err error, format string, args ...any) error {
	return fmt.Errorf("%s: face %d: %s: %w", methodNew, f, fmt.Sprintf(format, args...), err)
}
