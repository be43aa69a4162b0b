// SPDX-License-Identifier: MIT
// Package: roadsearch/loader
//
// yaml.go - the structured format.
//
//	name: spain
//	roads:
//	  - {from: Malaga, to: Granada, distance: 125}
//	heuristics:
//	  - {city: Malaga, distance: 548}
//
// Roads are added before heuristics, each list in document order.

package loader

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/roadsearch/core"
)

// Document is the YAML representation of a road graph.
type Document struct {
	Name       string           `yaml:"name,omitempty"`
	Comment    string           `yaml:"comment,omitempty"`
	Roads      []RoadEntry      `yaml:"roads"`
	Heuristics []HeuristicEntry `yaml:"heuristics"`
}

// RoadEntry is one undirected road.
type RoadEntry struct {
	From     string `yaml:"from"`
	To       string `yaml:"to"`
	Distance int64  `yaml:"distance"`
}

// HeuristicEntry is one city's estimate of its remaining distance to the goal.
type HeuristicEntry struct {
	City     string `yaml:"city"`
	Distance int64  `yaml:"distance"`
}

// ParseYAML decodes a Document from r into a new graph. Skipping rules match
// Parse: rejected entries are counted and logged, or fail the load under
// WithStrict, which also rejects unknown document keys.
func ParseYAML(r io.Reader, opts ...Option) (*core.Graph, Stats, error) {
	cfg := resolve(opts)
	st := Stats{Format: YAML}
	log := cfg.Logger.WithField("format", YAML.String())

	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(cfg.Strict)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, st, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	g, err := doc.build(&st, cfg, log)
	if err != nil {
		return nil, st, err
	}
	log.WithFields(logrus.Fields{
		"name":       doc.Name,
		"roads":      st.Roads,
		"heuristics": st.Heuristics,
		"cities":     g.CityCount(),
		"skipped":    st.Skipped,
	}).Info("graph loaded")

	return g, st, nil
}

// build creates a core.Graph from the document, filling st.
func (d *Document) build(st *Stats, cfg Options, log *logrus.Entry) (*core.Graph, error) {
	g := core.NewGraph(core.WithUnknownHeuristic(cfg.UnknownHeuristic))

	reject := func(what string, i int, err error) error {
		st.Skipped++
		if cfg.Strict {
			return fmt.Errorf("%w: %s[%d]: %v", ErrMalformedEntry, what, i, err)
		}
		log.WithField("entry", fmt.Sprintf("%s[%d]", what, i)).WithError(err).Warn("skipping entry")

		return nil
	}

	for i, r := range d.Roads {
		st.Lines++
		if err := g.AddRoad(r.From, r.To, r.Distance); err != nil {
			if err = reject("roads", i, err); err != nil {
				return nil, err
			}
			continue
		}
		st.Roads++
	}
	for i, h := range d.Heuristics {
		st.Lines++
		if err := setHeuristic(g, h.City, h.Distance, st); err != nil {
			if err = reject("heuristics", i, err); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// Export converts g into a Document, preserving road and city order.
// Cities without a heuristic are omitted from Heuristics.
func Export(g *core.Graph, name string) *Document {
	doc := &Document{Name: name}
	for _, r := range g.Roads() {
		doc.Roads = append(doc.Roads, RoadEntry{From: r.From, To: r.To, Distance: r.Distance})
	}
	for _, c := range g.Cities() {
		if h, ok := g.Heuristic(c); ok {
			doc.Heuristics = append(doc.Heuristics, HeuristicEntry{City: c, Distance: h})
		}
	}

	return doc
}

// WriteYAML encodes doc to w.
func WriteYAML(w io.Writer, doc *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("loader: encoding yaml: %w", err)
	}

	return enc.Close()
}
