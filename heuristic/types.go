// SPDX-License-Identifier: MIT
// Package: roadsearch/heuristic
//
// types.go - audit report types and sentinel errors.

package heuristic

import "errors"

// Sentinel errors returned by Check.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("heuristic: graph is nil")

	// ErrEmptyGoal indicates that no goal city was given.
	ErrEmptyGoal = errors.New("heuristic: goal city is empty")

	// ErrGoalNotFound indicates that the goal city is not in the graph.
	ErrGoalNotFound = errors.New("heuristic: goal city not found in graph")
)

// Overestimate records a city whose estimate exceeds its true distance to the goal.
type Overestimate struct {
	City     string
	Estimate int64
	Actual   int64
}

// Excess returns Estimate - Actual.
func (o Overestimate) Excess() int64 { return o.Estimate - o.Actual }

// Inconsistency records a road along which the estimate drops by more than
// the road length: h(From) > Distance + h(To).
type Inconsistency struct {
	From, To string
	HFrom    int64
	HTo      int64
	Distance int64
}

// Report is the outcome of auditing a graph's heuristics against one goal.
type Report struct {
	Goal string

	// Overestimates lists reachable cities with h > true distance, in city order.
	Overestimates []Overestimate

	// Inconsistencies lists road orientations breaking h(u) ≤ d(u,v) + h(v), in road order.
	Inconsistencies []Inconsistency

	// Missing lists cities without a heuristic, in city order.
	Missing []string

	// Unreachable lists cities with no route to the goal, in city order.
	Unreachable []string

	// GoalEstimate is h(goal); anything but 0 is already an overestimate.
	GoalEstimate int64
}

// Admissible reports whether no known estimate overestimates the true distance.
// Cities without a heuristic are judged separately through Missing.
func (r *Report) Admissible() bool { return len(r.Overestimates) == 0 }

// Consistent reports whether every road satisfies the triangle inequality on h.
func (r *Report) Consistent() bool { return len(r.Inconsistencies) == 0 }

// Complete reports whether every city carries a heuristic.
func (r *Report) Complete() bool { return len(r.Missing) == 0 }
