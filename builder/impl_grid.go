// SPDX-License-Identifier: MIT
// Package: roadsearch/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal street grid with 4-neighborhood.
//   • City IDs use the fixed scheme "r,c" (row-major order), an exception to
//     cfg.nameFn that keeps coordinates explicit.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Adds cities in row-major order.
//   • For each (r,c) emits the road to the right neighbor, then to the bottom
//     neighbor, where they exist.
//
// Complexity:
//   • Time: O(rows*cols) cities + O(rows*cols) roads.
//   • Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/roadsearch/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d" // "r,c"
)

// GridID returns the city name Grid uses for cell (r, c).
func GridID(r, c int) string {
	return fmt.Sprintf(gridIDFmt, r, c)
}

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := GridID(r, c)
				if err := g.AddCity(id); err != nil {
					return fmt.Errorf("%s: AddCity(%s): %w", methodGrid, id, err)
				}
			}
		}

		link := func(u, v string) error {
			w, err := cfg.weight(methodGrid)
			if err != nil {
				return err
			}
			if err = g.AddRoad(u, v, w); err != nil {
				return fmt.Errorf("%s: AddRoad(%s-%s, d=%d): %w", methodGrid, u, v, w, err)
			}

			return nil
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					if err := link(u, GridID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(u, GridID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
