// SPDX-License-Identifier: MIT
// Package: roadsearch/dijkstra
//
// types.go - sentinel errors and functional options.

package dijkstra

import (
	"errors"
	"math"
)

var (
	ErrEmptySource    = errors.New("dijkstra: source city is empty")
	ErrNilGraph       = errors.New("dijkstra: graph is nil")
	ErrVertexNotFound = errors.New("dijkstra: source city not found in graph")

	// ErrNoPath is returned by PathTo for a target the source never reached.
	ErrNoPath = errors.New("dijkstra: no path")

	// Option constructors panic with these.
	ErrBadMaxDistance  = errors.New("dijkstra: MaxDistance must be non-negative")
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures one Dijkstra call.
type Options struct {
	Source           string // required
	ReturnPath       bool   // build the predecessor map
	MaxDistance      int64  // settle nothing farther than this; >= 0
	InfEdgeThreshold int64  // roads at or above this are closed; > 0
}

// Option mutates Options.
type Option func(*Options)

// Source names the city distances are measured from.
func Source(name string) Option {
	return func(o *Options) { o.Source = name }
}

// WithReturnPath makes Dijkstra return a predecessor map for PathTo.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// WithMaxDistance leaves cities farther than max at Unreachable.
// Panics with ErrBadMaxDistance on a negative value.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) { o.MaxDistance = max }
}

// WithInfEdgeThreshold closes every road whose distance is >= threshold.
// Panics with ErrBadInfThreshold on zero or a negative value.
func WithInfEdgeThreshold(threshold int64) Option {
	if threshold <= 0 {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) { o.InfEdgeThreshold = threshold }
}

// DefaultOptions returns unlimited distance, no closed roads and no predecessor map.
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}
