// SPDX-License-Identifier: MIT
// Package: roadsearch/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator over unordered pairs {i,j}, i<j: each road is
//     included independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - Adds cities via cfg.nameFn in ascending index order; existing cities are reused,
//     so RandomSparse can add shortcuts on top of Path or another constructor.
//
// Determinism:
//   - Stable trial order: i asc, then j asc (j > i). One Bernoulli draw per pair,
//     followed by one weight draw when the road is kept.

package builder

import (
	"fmt"

	"github.com/katalvlaran/roadsearch/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples random roads between n cities.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			id := cfg.nameFn(i)
			if err := g.AddCity(id); err != nil {
				return fmt.Errorf("%s: AddCity(%s): %w", methodRandomSparse, id, err)
			}
		}

		keep := func() bool {
			if cfg.rng == nil {
				return p == probMax
			}

			return cfg.rng.Float64() < p
		}

		var (
			w    int64
			err  error
			u, v string
		)
		for i := 0; i < n; i++ {
			u = cfg.nameFn(i)
			for j := i + 1; j < n; j++ {
				if !keep() {
					continue
				}
				v = cfg.nameFn(j)
				if w, err = cfg.weight(methodRandomSparse); err != nil {
					return err
				}
				if err = g.AddRoad(u, v, w); err != nil {
					return fmt.Errorf("%s: AddRoad(%s-%s, d=%d): %w", methodRandomSparse, u, v, w, err)
				}
			}
		}

		return nil
	}
}
