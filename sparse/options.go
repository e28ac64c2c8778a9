// SPDX-License-Identifier: MIT
// Package sparse: functional configuration for triplet builders.
//
// Contract:
//   - Option constructors validate and PANIC on nonsensical values
//     (programmer error). Builders themselves never panic on user input.
//   - Defaults are documented constants; no global mutable state.
//   - Options are applied in order; later options override earlier ones.
//
// Numeric policy:
//   - Finite-value validation is OFF by default. Operators assembled from
//     degenerate geometry (e.g. a zero-area face) must carry ±Inf/NaN to the
//     caller unchanged instead of failing assembly.
//   - WithValidateNaNInf turns the strict policy on for callers that want
//     assembly to fail fast on non-finite input.

package sparse

// Defaults (single source of truth).
const (
	// DefaultValidateNaNInf toggles finite-value validation in Set/Add.
	DefaultValidateNaNInf = false

	// DefaultCapacity is the initial triplet capacity when none is given.
	DefaultCapacity = 0
)

const panicCapacityInvalid = "sparse: WithCapacity: n must be >= 0"

// Option mutates builder options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective builder configuration.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
	capacity       int  // DefaultCapacity; preallocated triplet slots
}

// WithValidateNaNInf rejects NaN and ±Inf values in Set/Add with ErrNaNInf.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithCapacity preallocates room for n triplets.
// Panics when n < 0.
//
// AI-Hints:
//   - Operator builders know their exact entry count up front
//     (nV, nE, 2·nE, Σ face degrees); pass it to avoid regrowth.
func WithCapacity(n int) Option {
	if n < 0 {
		panic(panicCapacityInvalid)
	}

	return func(o *Options) { o.capacity = n }
}

// gatherOptions resolves defaults and applies opts in order.
func gatherOptions(opts ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
		capacity:       DefaultCapacity,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
