// SPDX-License-Identifier: MIT
// Package: roadsearch/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is smaller
// than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadScale indicates an ExactHeuristics scale with a negative numerator or
// a non-positive denominator.
var ErrBadScale = errors.New("builder: invalid heuristic scale")

// ErrConstructFailed indicates that a constructor could not complete without
// breaking graph invariants (nil constructor, non-positive generated weight,
// rejected city or road).
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes a %w-formatted message with the constructor name,
// producing "<Method>: <message>" while keeping the wrapped sentinel visible to errors.Is.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{method}, args...)...)
}
