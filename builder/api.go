// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - Two orchestrators: BuildSoup(bopts, cons...) and BuildMesh(mopts, bopts, cons...).
//   - Public factories are implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical soups.
//
// AI-Hints:
//   - Compose constructors to place several disjoint components in one soup.
//   - Use WithSeed + WithJitter to obtain irregular but reproducible geometry.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvdec/mesh"
)

// Constructor appends one fixture to s using the resolved builderConfig.
// Constructors validate parameters early and return sentinel errors.
type Constructor func(s *mesh.Soup, cfg builderConfig) error

// BuildSoup resolves bopts and applies every constructor in order to an empty
// soup. Constructor errors are wrapped as "BuildSoup: %w".
//
// Complexity: Σ cost of each constructor; each is linear in its output.
func BuildSoup(bopts []BuilderOption, cons ...Constructor) (mesh.Soup, error) {
	// Resolve options; jitter is meaningless without a random source.
	cfg := newBuilderConfig(bopts...)
	if cfg.jitter > 0 && cfg.rng == nil {
		return mesh.Soup{}, fmt.Errorf("%s: WithJitter: %w", MethodBuildSoup, ErrNeedRandSource)
	}

	// Apply constructors in order; each appends its own patch.
	var s mesh.Soup
	for i, fn := range cons {
		// A nil constructor is a caller bug, not an empty patch.
		if fn == nil {
			return mesh.Soup{}, fmt.Errorf("%s: nil constructor at index %d: %w", MethodBuildSoup, i, ErrConstructFailed)
		}
		if err := fn(&s, cfg); err != nil {
			return mesh.Soup{}, fmt.Errorf("%s: %w", MethodBuildSoup, err)
		}
	}

	return s, nil
}

// BuildMesh is BuildSoup followed by mesh.New(soup, mopts...).
func BuildMesh(mopts []mesh.Option, bopts []BuilderOption, cons ...Constructor) (*mesh.Mesh, error) {
	s, err := BuildSoup(bopts, cons...)
	if err != nil {
		return nil, err
	}
	// Connectivity errors (non-manifold composition) surface here.
	m, err := mesh.New(s, mopts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuildMesh, err)
	}

	return m, nil
}
