// SPDX-License-Identifier: MIT
// Package dec: functional options.
//
// Contract:
//   - Option constructors validate eagerly and panic on nonsensical input.
//   - Builders ignore options that do not concern them (Hodge0 has none).

package dec

import (
	"math"

	"go.uber.org/zap"
)

// DefaultRegularization is the ε added to every Hodge1 diagonal entry.
const DefaultRegularization = 1e-8

// Option configures operator assembly.
type Option func(*Options)

// Options holds the resolved configuration. Use the With* constructors.
type Options struct {
	regularization float64
	logger         *zap.Logger
}

// WithRegularization sets ε for Hodge1. Zero disables regularization.
// Panics if eps is negative, NaN or infinite.
func WithRegularization(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic("dec: WithRegularization: eps must be finite and >= 0")
	}

	return func(o *Options) { o.regularization = eps }
}

// WithLogger routes BuildAll assembly traces to l at debug level.
// Panics on nil; pass zap.NewNop() to silence.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("dec: WithLogger(nil)")
	}

	return func(o *Options) { o.logger = l }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		regularization: DefaultRegularization,
		logger:         zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
