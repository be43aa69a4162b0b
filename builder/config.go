// SPDX-License-Identifier: MIT
// Package: roadsearch/builder
//
// config.go - per-call settings: DecimalNames, no RNG and unit distances
// unless options say otherwise.

package builder

import "math/rand"

// builderConfig is passed by value to every Constructor.
type builderConfig struct {
	nameFn   NameFn
	rng      *rand.Rand // nil: stochastic constructors refuse to run
	weightFn WeightFn   // must return > 0
}

// newBuilderConfig applies opts in order; later ones win.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{nameFn: DecimalNames, weightFn: DefaultWeightFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws one road distance and rejects non-positive values, which a
// custom WeightFn may produce but core.Graph would refuse anyway.
func (c builderConfig) weight(method string) (int64, error) {
	w := c.weightFn(c.rng)
	if w <= 0 {
		return 0, builderErrorf(method, "weight %d: %w", w, ErrConstructFailed)
	}

	return w, nil
}
