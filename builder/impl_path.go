// SPDX-License-Identifier: MIT
// Package: roadsearch/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds cities via cfg.nameFn in ascending index order (0..n-1).
//   - Emits roads (i-1) - i for i=1..n-1 in stable increasing order.
//   - Distances come from cfg.weightFn(cfg.rng).
//
// Complexity:
//   - Time: O(n) cities + O(n-1) roads.
//   - Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/roadsearch/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple chain of n cities.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			id := cfg.nameFn(i)
			if err := g.AddCity(id); err != nil {
				return fmt.Errorf("%s: AddCity(%s): %w", methodPath, id, err)
			}
		}

		var (
			w        int64
			err      error
			uID, vID string
		)
		for i := 1; i < n; i++ {
			uID = cfg.nameFn(i - 1)
			vID = cfg.nameFn(i)

			if w, err = cfg.weight(methodPath); err != nil {
				return err
			}
			if err = g.AddRoad(uID, vID, w); err != nil {
				return fmt.Errorf("%s: AddRoad(%s-%s, d=%d): %w", methodPath, uID, vID, w, err)
			}
		}

		return nil
	}
}
