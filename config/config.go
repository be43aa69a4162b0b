// SPDX-License-Identifier: MIT
// Package: roadsearch/config
//
// config.go - run configuration: defaults, YAML file, dotenv file and
// ROADSEARCH_* environment variables, in increasing precedence. Command-line
// flags are applied on top by the CLI.

package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/roadsearch/arena"
	"github.com/katalvlaran/roadsearch/core"
	"github.com/katalvlaran/roadsearch/frontier"
	"github.com/katalvlaran/roadsearch/loader"
	"github.com/katalvlaran/roadsearch/search"
)

// ErrInvalid indicates a configuration value that cannot be used.
var ErrInvalid = errors.New("config: invalid value")

// Colour modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Frontier names.
const (
	FrontierHeap   = "heap"
	FrontierLinear = "linear"
)

// Config holds everything one roadsearch invocation needs.
type Config struct {
	Data             string   `yaml:"data"`
	Start            string   `yaml:"start"`
	Goal             string   `yaml:"goal"`
	Strategies       []string `yaml:"strategies"`
	Capacity         int      `yaml:"capacity"`
	Frontier         string   `yaml:"frontier"`
	SkipStale        bool     `yaml:"skip_stale"`
	CheckHeuristic   bool     `yaml:"check_heuristic"`
	Strict           bool     `yaml:"strict"`
	UnknownHeuristic int64    `yaml:"unknown_heuristic"`
	LogLevel         string   `yaml:"log_level"`
	Color            string   `yaml:"color"`
	Quiet            bool     `yaml:"quiet"`
}

// Default returns the configuration of the classic run: Malaga to Valladolid
// on data/spain.txt with both strategies.
func Default() *Config {
	return &Config{
		Data:             "data/spain.txt",
		Start:            "Malaga",
		Goal:             "Valladolid",
		Strategies:       []string{search.Greedy.String(), search.AStar.String()},
		Capacity:         arena.DefaultCapacity,
		Frontier:         FrontierHeap,
		UnknownHeuristic: core.UnknownHeuristic,
		LogLevel:         logrus.InfoLevel.String(),
		Color:            ColorAuto,
	}
}

// Load returns Default overlaid with the YAML file at path (skipped when
// path is empty), then with the environment: process variables first, values
// from envFile second. A missing envFile is not an error; a missing YAML file is.
func Load(path, envFile string) (*Config, error) {
	cfg := Default()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		defer f.Close()
		if err = cfg.Decode(f); err != nil {
			return nil, fmt.Errorf("config: %s: %w", path, err)
		}
	}

	dotenv, err := ReadEnvFile(envFile)
	if err != nil {
		return nil, err
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
	if err = cfg.ApplyEnv(lookup); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Decode overlays YAML from r onto c. Unknown keys are rejected.
func (c *Config) Decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// Validate checks every field and returns the first problem wrapped in ErrInvalid.
func (c *Config) Validate() error {
	switch {
	case c.Data == "":
		return fmt.Errorf("%w: data: empty path", ErrInvalid)
	case c.Start == "":
		return fmt.Errorf("%w: start: empty city", ErrInvalid)
	case c.Goal == "":
		return fmt.Errorf("%w: goal: empty city", ErrInvalid)
	case len(c.Strategies) == 0:
		return fmt.Errorf("%w: strategies: none selected", ErrInvalid)
	case c.Capacity < 0:
		return fmt.Errorf("%w: capacity: %d is negative", ErrInvalid, c.Capacity)
	case c.UnknownHeuristic < 0:
		return fmt.Errorf("%w: unknown_heuristic: %d is negative", ErrInvalid, c.UnknownHeuristic)
	}
	if _, err := c.SearchStrategies(); err != nil {
		return fmt.Errorf("%w: strategies: %v", ErrInvalid, err)
	}
	if _, err := c.FrontierOrdering(); err != nil {
		return err
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrInvalid, err)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: color: %q (want %s, %s or %s)", ErrInvalid, c.Color, ColorAuto, ColorAlways, ColorNever)
	}

	return nil
}

// SearchStrategies parses Strategies in order, dropping repeats.
func (c *Config) SearchStrategies() ([]search.Strategy, error) {
	seen := make(map[search.Strategy]bool, len(c.Strategies))
	out := make([]search.Strategy, 0, len(c.Strategies))
	for _, name := range c.Strategies {
		s, err := search.ParseStrategy(name)
		if err != nil {
			return nil, err
		}
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}

	return out, nil
}

// FrontierOrdering maps Frontier to a frontier.Ordering.
func (c *Config) FrontierOrdering() (frontier.Ordering, error) {
	switch strings.ToLower(c.Frontier) {
	case FrontierHeap, "":
		return frontier.Heap, nil
	case FrontierLinear:
		return frontier.LinearScan, nil
	default:
		return 0, fmt.Errorf("%w: frontier: %q (want %s or %s)", ErrInvalid, c.Frontier, FrontierHeap, FrontierLinear)
	}
}

// SearchOptions converts c into search options. Call Validate first.
func (c *Config) SearchOptions(log logrus.FieldLogger) []search.Option {
	ord, _ := c.FrontierOrdering()
	opts := []search.Option{
		search.Start(c.Start),
		search.Goal(c.Goal),
		search.WithCapacity(c.Capacity),
		search.WithFrontierOrdering(ord),
		search.WithLogger(log),
	}
	if c.SkipStale {
		opts = append(opts, search.WithSkipStale())
	}

	return opts
}

// LoaderOptions converts c into loader options. Call Validate first.
func (c *Config) LoaderOptions(log logrus.FieldLogger) []loader.Option {
	opts := []loader.Option{
		loader.WithUnknownHeuristic(c.UnknownHeuristic),
		loader.WithLogger(log),
	}
	if c.Strict {
		opts = append(opts, loader.WithStrict())
	}

	return opts
}
