// SPDX-License-Identifier: MIT

// Package builder provides deterministic, functional-options constructors for
// road graph fixtures used by tests, examples and benchmarks.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:        creates a core.Graph and applies Constructors in order.
//     – Constructor:       func(*core.Graph, builderConfig) error.
//   - Topologies:
//     – Path(n):           chain 0-1-…-(n-1).
//     – Grid(rows, cols):  4-neighbour street grid with IDs "r,c".
//     – RandomSparse(n,p): random roads between n cities; composes with Path.
//   - Heuristics:
//     – ExactHeuristics(goal, num, den): h = true distance to goal × num/den.
//   - Configuration primitives:
//     – WithSeed / WithRand:        reproducible randomness.
//     – WithNames, WithLetterNames, WithPrefixNames: city naming.
//     – WithWeightFn, WithConstantWeight, WithUniformWeight: road distances.
//
// Guarantees:
//
//   - Same options, seed and constructor order produce identical graphs.
//   - Option constructors panic on meaningless parameters; Constructors never
//     panic and return sentinel errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrBadScale, ErrConstructFailed) wrapped with context.
package builder
