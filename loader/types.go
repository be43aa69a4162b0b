// SPDX-License-Identifier: MIT
// Package: roadsearch/loader
//
// types.go - formats, statistics, options and sentinel errors.

package loader

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/roadsearch/core"
)

// Sentinel errors returned by the loader.
var (
	// ErrMalformedLine indicates a text row that is neither a road nor a
	// heuristic, or one the graph rejected. Returned only with WithStrict.
	ErrMalformedLine = errors.New("loader: malformed line")

	// ErrMalformedEntry is the YAML counterpart of ErrMalformedLine.
	ErrMalformedEntry = errors.New("loader: malformed entry")

	// ErrDecode indicates that a YAML document could not be decoded.
	ErrDecode = errors.New("loader: cannot decode document")

	// ErrUnknownFormat indicates a Format outside Text and YAML.
	ErrUnknownFormat = errors.New("loader: unknown format")
)

// Format names an input encoding.
type Format int

const (
	// Text is the section-based plain text format.
	Text Format = iota

	// YAML is the structured format decoded with gopkg.in/yaml.v3.
	YAML
)

// String implements fmt.Stringer.
func (f Format) String() string {
	switch f {
	case Text:
		return "text"
	case YAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Stats counts what a load consumed and what it dropped.
type Stats struct {
	Format Format

	// Lines is the number of physical lines (text) or entries (YAML) read.
	Lines int

	// Roads and Heuristics count rows accepted into the graph.
	Roads      int
	Heuristics int

	// Skipped counts rows that were malformed or rejected by the graph.
	Skipped int

	// Duplicates counts heuristic rows for a city that already had one; the first value is kept.
	Duplicates int
}

// Options configures a load.
type Options struct {
	Strict           bool
	UnknownHeuristic int64
	Logger           logrus.FieldLogger
}

// Option is a functional option for the loader.
type Option func(*Options)

// DefaultOptions returns lenient options with the core sentinel and a discarding logger.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return Options{
		UnknownHeuristic: core.UnknownHeuristic,
		Logger:           l,
	}
}

// WithStrict turns the first skipped row into an ErrMalformedLine (text) or
// ErrMalformedEntry (YAML) error. Duplicate heuristics stay non-fatal.
func WithStrict() Option {
	return func(o *Options) { o.Strict = true }
}

// WithUnknownHeuristic sets the sentinel of the produced graph.
// Panics on a negative value.
func WithUnknownHeuristic(v int64) Option {
	if v < 0 {
		panic("loader: WithUnknownHeuristic(negative)")
	}
	return func(o *Options) { o.UnknownHeuristic = v }
}

// WithLogger routes load diagnostics to l. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func resolve(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
