// SPDX-License-Identifier: MIT
// Package: roadsearch/builder
//
// api.go - BuildGraph and the Constructor type. Topologies and labelling
// live in impl_*.go.

package builder

import (
	"fmt"

	"github.com/katalvlaran/roadsearch/core"
)

// Constructor adds cities, roads or heuristics to g. It names new cities
// through cfg.nameFn unless it documents a fixed scheme, reports bad
// parameters as sentinel errors and never panics.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph runs cons in order on a fresh core.NewGraph(gopts...), all
// sharing the configuration resolved from bopts. The first failure is
// returned as "BuildGraph: <err>" and the partial graph is dropped.
//
// Constructors compose: Path(n) followed by RandomSparse(n, p) on the same ID
// scheme yields a connected graph with random shortcuts, and a trailing
// ExactHeuristics(goal, num, den) labels it for informed search.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
