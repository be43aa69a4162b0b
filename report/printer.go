// SPDX-License-Identifier: MIT
// Package: roadsearch/report
//
// printer.go - plain-text rendering of search runs.

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/roadsearch/heuristic"
	"github.com/katalvlaran/roadsearch/search"
)

const (
	// nocolor = 0
	red    = 31
	green  = 32
	yellow = 33
	cyan   = 36
	gray   = 37
	bold   = 1
)

// Printer writes reports to one writer. It is not safe for concurrent use.
type Printer struct {
	w     io.Writer
	color bool
	trace bool
	err   error
}

// Option configures a Printer.
type Option func(*Printer)

// WithColor enables ANSI colour sequences.
func WithColor(on bool) Option {
	return func(p *Printer) { p.color = on }
}

// WithTrace controls whether expansion traces are printed (default true).
func WithTrace(on bool) Option {
	return func(p *Printer) { p.trace = on }
}

// New returns a Printer writing to w with traces on and colour off.
func New(w io.Writer, opts ...Option) *Printer {
	p := &Printer{w: w, trace: true}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Err returns the first write error, if any. Later writes are dropped once one failed.
func (p *Printer) Err() error { return p.err }

func (p *Printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) paint(code int, s string) string {
	if !p.color {
		return s
	}

	return fmt.Sprintf("\x1b[%dm%s\x1b[0m", code, s)
}

// Banner prints the run title, underlined.
func (p *Printer) Banner(start, goal string) {
	title := fmt.Sprintf("ROUTE SEARCH: %s to %s", start, goal)
	p.printf("%s\n%s\n", p.paint(bold, title), strings.Repeat("=", len(title)))
}

// Loaded prints the size of the loaded graph.
func (p *Printer) Loaded(roads, cities int) {
	p.printf("Loaded %d roads, %d cities\n", roads, cities)
}

// Result prints one strategy's heading, trace and outcome.
func (p *Printer) Result(res *search.Result) {
	p.printf("\n%s\n", p.paint(bold, "=== "+res.Strategy.Title()+" ==="))
	if p.trace {
		for _, e := range res.Trace {
			p.event(res.Strategy, e)
		}
	}

	switch res.Status {
	case search.GoalFound:
		p.printf("\n%s\n", p.paint(green, "✓ "+foundLine(res.Strategy)))
		p.printf("Path: %s\n", strings.Join(res.Path, " -> "))
		p.printf("Total distance: %d km\n", res.Distance)
	case search.Failed:
		p.printf("\n%s\n", p.paint(red, "✗ Search failed!"))
	default:
		p.printf("\n%s\n", p.paint(red, "✗ No path found!"))
	}
}

// Failure prints a fatal search error.
func (p *Printer) Failure(strategy search.Strategy, err error) {
	p.printf("%s\n", p.paint(red, fmt.Sprintf("%s: %v", strategy.Title(), err)))
}

func foundLine(s search.Strategy) string {
	if s == search.AStar {
		return "A* optimal path found!"
	}

	return "Greedy path found!"
}

func (p *Printer) event(s search.Strategy, e search.Event) {
	var costs string
	if s == search.AStar {
		costs = fmt.Sprintf("(g=%d, h=%d, f=%d)", e.G, e.H, e.F)
	} else {
		costs = fmt.Sprintf("(h=%d)", e.H)
	}

	switch e.Kind {
	case search.EventExpand:
		p.printf("%s %s %s\n", p.paint(cyan, "Expanding:"), e.City, costs)
	case search.EventGenerate:
		p.printf("  -> %s %s\n", e.City, costs)
	case search.EventStale:
		p.printf("%s %s %s\n", p.paint(gray, "Stale:"), e.City, costs)
	}
}

// Audit prints a heuristic audit.
func (p *Printer) Audit(rep *heuristic.Report) {
	p.printf("\n%s\n", p.paint(bold, "=== HEURISTIC CHECK (goal "+rep.Goal+") ==="))

	if rep.Admissible() {
		p.printf("%s\n", p.paint(green, "✓ admissible"))
	} else {
		p.printf("%s\n", p.paint(red, fmt.Sprintf("✗ %d overestimates", len(rep.Overestimates))))
		for _, o := range rep.Overestimates {
			p.printf("  %s: h=%d > %d (+%d)\n", o.City, o.Estimate, o.Actual, o.Excess())
		}
	}

	if rep.Consistent() {
		p.printf("%s\n", p.paint(green, "✓ consistent"))
	} else {
		p.printf("%s\n", p.paint(yellow, fmt.Sprintf("! %d inconsistent roads", len(rep.Inconsistencies))))
		for _, in := range rep.Inconsistencies {
			p.printf("  %s -> %s: h=%d > %d + %d\n", in.From, in.To, in.HFrom, in.Distance, in.HTo)
		}
	}

	if len(rep.Missing) > 0 {
		p.printf("%s %s\n", p.paint(yellow, "! no heuristic:"), strings.Join(rep.Missing, ", "))
	}
	if len(rep.Unreachable) > 0 {
		p.printf("%s %s\n", p.paint(yellow, "! unreachable:"), strings.Join(rep.Unreachable, ", "))
	}
}
