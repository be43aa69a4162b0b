// SPDX-License-Identifier: MIT
// Package: roadsearch/search
//
// search.go - run-to-completion entry points.

package search

import "github.com/katalvlaran/roadsearch/core"

// RunGreedy runs Greedy Best-First Search from Start to Goal.
// See Run for the return contract.
func RunGreedy(g *core.Graph, opts ...Option) (*Result, error) {
	return Run(g, Greedy, opts...)
}

// RunAStar runs A* Search from Start to Goal.
// See Run for the return contract.
func RunAStar(g *core.Graph, opts ...Option) (*Result, error) {
	return Run(g, AStar, opts...)
}

// Run drives a Stepper until it reaches a terminal state.
//
// Returns:
//   - (res, nil) with res.Found == true when the goal was reached.
//   - (res, nil) with res.Status == Exhausted when no path exists. This is a
//     negative result, not an error.
//   - (nil, err) when the inputs are invalid (see NewStepper).
//   - (res, err) with res.Status == Failed when the run hit a fatal error, for
//     example arena.ErrCapacityExceeded; res holds the trace up to the failure.
func Run(g *core.Graph, strategy Strategy, opts ...Option) (*Result, error) {
	st, err := NewStepper(g, strategy, opts...)
	if err != nil {
		return nil, err
	}
	for !st.Status().Done() {
		if _, err := st.Step(); err != nil {
			return st.Result(), err
		}
	}

	return st.Result(), nil
}
