// SPDX-License-Identifier: MIT
// Package mesh: functional options and the dual-area policy.

package mesh

import (
	"fmt"
	"strings"
)

// AreaPolicy selects how VertexArea measures the dual cell of a vertex.
type AreaPolicy int

const (
	// AreaUnit assigns every vertex a dual area of 1.0.
	AreaUnit AreaPolicy = iota
	// AreaBarycentric assigns one third of the incident face areas.
	AreaBarycentric
	// AreaCircumcentric assigns the circumcentric (Voronoi) dual area,
	// ⅛ Σ (cot α + cot β)·|e|² over incident edges.
	AreaCircumcentric
)

// DefaultAreaPolicy is the vertex-area convention of a freshly built mesh.
const DefaultAreaPolicy = AreaUnit

// fallbackDualArea replaces non-finite or non-positive dual areas.
const fallbackDualArea = 1.0

// String returns the lowercase policy name used by ParseAreaPolicy.
func (p AreaPolicy) String() string {
	switch p {
	case AreaUnit:
		return "unit"
	case AreaBarycentric:
		return "barycentric"
	case AreaCircumcentric:
		return "circumcentric"
	default:
		return "unknown"
	}
}

// ParseAreaPolicy maps a case-insensitive name to an AreaPolicy.
// The empty string selects DefaultAreaPolicy.
func ParseAreaPolicy(s string) (AreaPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unit":
		return AreaUnit, nil
	case "barycentric":
		return AreaBarycentric, nil
	case "circumcentric", "voronoi":
		return AreaCircumcentric, nil
	default:
		return DefaultAreaPolicy, fmt.Errorf("ParseAreaPolicy: %q: %w", s, ErrUnknownAreaPolicy)
	}
}

// Option configures mesh construction.
type Option func(*options)

type options struct {
	areaPolicy AreaPolicy
}

// WithAreaPolicy selects the dual-area policy. Panics on an unknown policy.
func WithAreaPolicy(p AreaPolicy) Option {
	if p < AreaUnit || p > AreaCircumcentric {
		panic("mesh: WithAreaPolicy: unknown policy")
	}

	return func(o *options) { o.areaPolicy = p }
}

func gatherOptions(opts ...Option) options {
	o := options{areaPolicy: DefaultAreaPolicy}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
