// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvdec/dec"
	"github.com/katalvlaran/lvdec/mesh"
)

var errInvalidConfig = errors.New("decstat: invalid configuration")

// fileConfig is the YAML layout of --config. Absent keys keep defaults.
//
//	regularization: 1.0e-8
//	area_policy: circumcentric
type fileConfig struct {
	Regularization *float64 `yaml:"regularization"`
	AreaPolicy     string   `yaml:"area_policy"`
}

// settings are the resolved knobs after defaults, file and flags.
type settings struct {
	eps    float64
	policy mesh.AreaPolicy
}

func defaultSettings() settings {
	return settings{eps: dec.DefaultRegularization, policy: mesh.DefaultAreaPolicy}
}

// loadConfig decodes path strictly: unknown keys are errors.
func loadConfig(path string) (fileConfig, error) {
	var fc fileConfig
	raw, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("read config: %w", err)
	}
	d := yaml.NewDecoder(bytes.NewReader(raw))
	d.KnownFields(true)
	if err = d.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return fc, fmt.Errorf("parse config %s: %v: %w", path, err, errInvalidConfig)
	}

	return fc, nil
}

// apply overlays fc onto s.
func (s settings) apply(fc fileConfig) (settings, error) {
	if fc.Regularization != nil {
		s.eps = *fc.Regularization
	}
	if fc.AreaPolicy != "" {
		p, err := mesh.ParseAreaPolicy(fc.AreaPolicy)
		if err != nil {
			return s, fmt.Errorf("area_policy: %v: %w", err, errInvalidConfig)
		}
		s.policy = p
	}

	return s, nil
}

// validate rejects values the library options would panic on.
func (s settings) validate() error {
	if s.eps < 0 || math.IsNaN(s.eps) || math.IsInf(s.eps, 0) {
		return fmt.Errorf("regularization %v must be finite and >= 0: %w", s.eps, errInvalidConfig)
	}

	return nil
}
