// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go - functional options for mesh fixtures.
//
// Contract:
//   • Option constructors validate eagerly and panic on nonsensical input.
//   • Options are applied in order; later options override earlier ones.

package builder

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
)

// BuilderOption mutates builderConfig before constructors run.
type BuilderOption func(*builderConfig)

// WithScale multiplies every canonical coordinate by s before translation.
// Panics if s is not a positive finite number.
func WithScale(s float64) BuilderOption {
	if !(s > 0) || math.IsInf(s, 0) {
		panic("builder: WithScale(s<=0 or non-finite)")
	}

	return func(cfg *builderConfig) { cfg.scale = s }
}

// WithOffset translates every emitted vertex by d.
// Panics if any component of d is NaN or infinite.
func WithOffset(d r3.Vec) BuilderOption {
	for _, c := range [...]float64{d.X, d.Y, d.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			panic("builder: WithOffset(non-finite)")
		}
	}

	return func(cfg *builderConfig) { cfg.offset = d }
}

// WithRand sets the RNG used by WithJitter. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(cfg *builderConfig) { cfg.rng = r }
}

// WithSeed is shorthand for WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) BuilderOption {
	return func(cfg *builderConfig) { cfg.rng = rand.New(rand.NewSource(seed)) }
}

// WithJitter perturbs every coordinate by N(0, sigma²) noise drawn from the
// configured RNG. Panics if sigma is negative or non-finite.
func WithJitter(sigma float64) BuilderOption {
	if sigma < 0 || math.IsNaN(sigma) || math.IsInf(sigma, 0) {
		panic("builder: WithJitter(sigma<0 or non-finite)")
	}

	return func(cfg *builderConfig) { cfg.jitter = sigma }
}
