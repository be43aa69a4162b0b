// SPDX-License-Identifier: MIT
// Package: roadsearch/loader
//
// text.go - the section-based text format.
//
//	NAME: ...                       ignored (also TYPE:, COMMENT:)
//	A B Distance                    switches to road rows:      CityA CityB 123
//	Straight line distance to X     switches to heuristic rows: City 45
//
// Rows before the first header are read as heuristic rows. Lines shorter than
// three characters are ignored. Extra trailing fields on a row are ignored.

package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/roadsearch/core"
)

const (
	roadHeader      = "A B Distance"
	heuristicHeader = "Straight line"
	minLineLen      = 3
)

var ignoredMarkers = []string{"NAME:", "TYPE:", "COMMENT:"}

type section int

const (
	heuristicSection section = iota
	roadSection
)

func (s section) String() string {
	if s == roadSection {
		return "roads"
	}

	return "heuristics"
}

// Parse reads the text format from r into a new graph.
//
// In the default lenient mode malformed rows are skipped, counted in
// Stats.Skipped and logged at Warn; the returned graph may then be
// incomplete. With WithStrict the first such row aborts the load.
// Read errors from r are always returned.
func Parse(r io.Reader, opts ...Option) (*core.Graph, Stats, error) {
	cfg := resolve(opts)
	g := core.NewGraph(core.WithUnknownHeuristic(cfg.UnknownHeuristic))
	st := Stats{Format: Text}
	log := cfg.Logger.WithField("format", Text.String())

	mode := heuristicSection
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		st.Lines++
		line := strings.TrimSpace(sc.Text())

		switch {
		case len(line) < minLineLen, hasMarker(line):
			continue
		case strings.Contains(line, roadHeader):
			mode = roadSection
			log.WithField("line", st.Lines).Debug("road section")
			continue
		case strings.Contains(line, heuristicHeader):
			mode = heuristicSection
			log.WithField("line", st.Lines).Debug("heuristic section")
			continue
		}

		var err error
		if mode == roadSection {
			err = addRoad(g, strings.Fields(line), &st)
		} else {
			err = addHeuristic(g, strings.Fields(line), &st)
		}
		if err == nil {
			continue
		}

		st.Skipped++
		if cfg.Strict {
			return nil, st, fmt.Errorf("%w: line %d (%s): %q: %v", ErrMalformedLine, st.Lines, mode, line, err)
		}
		log.WithFields(logrus.Fields{"line": st.Lines, "section": mode.String()}).
			WithError(err).Warn("skipping line")
	}
	if err := sc.Err(); err != nil {
		return nil, st, fmt.Errorf("loader: reading input: %w", err)
	}

	log.WithFields(logrus.Fields{
		"roads":      st.Roads,
		"heuristics": st.Heuristics,
		"cities":     g.CityCount(),
		"skipped":    st.Skipped,
	}).Info("graph loaded")

	return g, st, nil
}

func hasMarker(line string) bool {
	for _, m := range ignoredMarkers {
		if strings.Contains(line, m) {
			return true
		}
	}

	return false
}

var errTooFewFields = errors.New("too few fields")

func addRoad(g *core.Graph, fields []string, st *Stats) error {
	if len(fields) < 3 {
		return errTooFewFields
	}
	d, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return err
	}
	if err = g.AddRoad(fields[0], fields[1], d); err != nil {
		return err
	}
	st.Roads++

	return nil
}

func addHeuristic(g *core.Graph, fields []string, st *Stats) error {
	if len(fields) < 2 {
		return errTooFewFields
	}
	h, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return err
	}

	return setHeuristic(g, fields[0], h, st)
}

// setHeuristic records h and keeps the first value on duplicates.
func setHeuristic(g *core.Graph, city string, h int64, st *Stats) error {
	err := g.SetHeuristic(city, h)
	switch {
	case errors.Is(err, core.ErrDuplicateHeuristic):
		st.Duplicates++
		return nil
	case err != nil:
		return err
	}
	st.Heuristics++

	return nil
}
