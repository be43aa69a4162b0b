// SPDX-License-Identifier: MIT

// Package loader turns road network files into core.Graph values.
//
// Two formats are supported:
//
//   - Text: header lines (NAME:, TYPE:, COMMENT:), an "A B Distance" section of
//     "CityA CityB km" rows and a "Straight line ..." section of "City km" rows.
//   - YAML: a Document with roads and heuristics lists.
//
// LoadFile dispatches on the file extension. Both parsers are lenient by
// default: rows the graph cannot accept are skipped, counted in Stats and
// logged through the logrus.FieldLogger given with WithLogger. WithStrict
// turns the first such row into an error. A second heuristic for the same
// city is never an error; the first value wins and Stats.Duplicates grows.
package loader
