// SPDX-License-Identifier: MIT
// Package: roadsearch/builder
//
// options.go - randomness and road distance options.
//
// Option constructors panic on nil; Constructors themselves return errors.

package builder

import "math/rand"

// BuilderOption mutates the builderConfig shared by every Constructor of one BuildGraph call.
type BuilderOption func(*builderConfig)

// WithRand hands stochastic constructors an existing generator. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed is WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn sets how road distances are drawn. The RNG passed in may be nil.
// Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) { c.weightFn = fn }
}
