// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • scale  = 1.0
//   • offset = (0,0,0)
//   • rng    = nil  (pure/deterministic unless seeded)
//   • jitter = 0.0

package builder

import (
	"math/rand"

	"github.com/katalvlaran/lvdec/mesh"
	"gonum.org/v1/gonum/spatial/r3"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	scale  float64    // >0, uniform scale about the fixture origin
	offset r3.Vec     // translation applied after scaling
	rng    *rand.Rand // used only when jitter > 0
	jitter float64    // >=0, Gaussian stddev per coordinate
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		scale:  defaultScale,
		jitter: defaultJitter,
	}
	// Later options override earlier ones.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// place maps a canonical fixture coordinate into the configured frame.
func (cfg builderConfig) place(p r3.Vec) r3.Vec {
	q := r3.Add(r3.Scale(cfg.scale, p), cfg.offset) // scale first, then translate
	// Perturb after placement so sigma is in output units.
	if cfg.jitter > 0 {
		q.X += cfg.rng.NormFloat64() * cfg.jitter
		q.Y += cfg.rng.NormFloat64() * cfg.jitter
		q.Z += cfg.rng.NormFloat64() * cfg.jitter
	}

	return q
}

// appendPatch places positions, shifts faces by the current vertex count and
// appends both to s.
func (cfg builderConfig) appendPatch(s *mesh.Soup, positions []r3.Vec, faces [][]int) {
	base := len(s.Positions) // first index of this patch
	for _, p := range positions {
		s.Positions = append(s.Positions, cfg.place(p))
	}
	// Fresh slices: callers may reuse their canonical face tables.
	for _, f := range faces {
		shifted := make([]int, len(f))
		for k, v := range f {
			shifted[k] = base + v
		}
		s.Faces = append(s.Faces, shifted)
	}
}
