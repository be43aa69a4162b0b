// SPDX-License-Identifier: MIT
// Package: roadsearch/search
//
// types.go - strategies, run states, trace events, results, options and
// sentinel errors for the search driver.

package search

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/roadsearch/arena"
	"github.com/katalvlaran/roadsearch/frontier"
)

// Sentinel errors returned by the search driver.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrEmptyStart indicates that no start city was configured.
	ErrEmptyStart = errors.New("search: start city is empty")

	// ErrEmptyGoal indicates that no goal city was configured.
	ErrEmptyGoal = errors.New("search: goal city is empty")

	// ErrStartNotFound indicates that the start city is not in the graph.
	ErrStartNotFound = errors.New("search: start city not found in graph")

	// ErrGoalNotFound indicates that the goal city is not in the graph.
	ErrGoalNotFound = errors.New("search: goal city not found in graph")

	// ErrUnknownStrategy indicates a Strategy value outside Greedy and AStar.
	ErrUnknownStrategy = errors.New("search: unknown strategy")

	// ErrUnknownOrdering indicates an Options.Ordering the frontier does not define.
	ErrUnknownOrdering = errors.New("search: unknown frontier ordering")

	// ErrMissingEdge indicates that a neighbour reported by the graph has no
	// road weight. It can only come from an inconsistent graph and fails the run.
	ErrMissingEdge = errors.New("search: neighbour without road weight")
)

// Strategy selects how frontier priorities are computed.
type Strategy int

const (
	// Greedy is Greedy Best-First Search: priority = h(city).
	Greedy Strategy = iota

	// AStar is A* Search: priority = g + h(city).
	AStar
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case Greedy:
		return "greedy"
	case AStar:
		return "astar"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Title returns the human-readable heading used in reports.
func (s Strategy) Title() string {
	switch s {
	case Greedy:
		return "GREEDY BEST-FIRST"
	case AStar:
		return "A* SEARCH"
	default:
		return strings.ToUpper(s.String())
	}
}

// ParseStrategy maps "greedy" / "astar" (also "a*", "gbfs", case-insensitive) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "greedy", "gbfs", "best-first":
		return Greedy, nil
	case "astar", "a*", "a-star":
		return AStar, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

func (s Strategy) valid() bool { return s == Greedy || s == AStar }

// priority returns the frontier key for a node with accumulated cost g and estimate h.
func (s Strategy) priority(g, h int64) int64 {
	if s == AStar {
		return g + h
	}

	return h
}

// Status is the state of a search run.
type Status int

const (
	// Running means the frontier may still hold the goal.
	Running Status = iota

	// GoalFound means the goal was popped from the frontier.
	GoalFound

	// Exhausted means the frontier emptied without reaching the goal.
	Exhausted

	// Failed means the run hit a fatal error (arena capacity, inconsistent graph).
	Failed
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case GoalFound:
		return "goal-found"
	case Exhausted:
		return "exhausted"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Done reports whether the run reached a terminal state.
func (s Status) Done() bool { return s != Running }

// EventKind distinguishes trace events.
type EventKind int

const (
	// EventExpand is emitted when a node is popped and expanded (or found to be the goal).
	EventExpand EventKind = iota

	// EventGenerate is emitted when a neighbour node is allocated and pushed.
	EventGenerate

	// EventStale is emitted when WithSkipStale discards a popped A* entry.
	EventStale
)

// String implements fmt.Stringer.
func (k EventKind) String() string {
	switch k {
	case EventExpand:
		return "expand"
	case EventGenerate:
		return "generate"
	case EventStale:
		return "stale"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is one entry of a run's trace.
type Event struct {
	Kind   EventKind
	City   string
	Handle arena.Handle
	Parent arena.Handle

	// G is the accumulated road distance, H the heuristic used, F the frontier priority.
	G, H, F int64
}

// Result summarises a finished (or failed) run.
type Result struct {
	Strategy Strategy
	Status   Status

	// Found is true iff Status == GoalFound.
	Found bool

	// Path lists the cities from start to goal; nil unless Found.
	Path []string

	// Distance is the summed road distance along Path.
	Distance int64

	// Goal is the arena handle of the goal node, or arena.NoParent.
	Goal arena.Handle

	// Expanded counts popped nodes that were expanded, goal pop included.
	Expanded int

	// Generated counts allocated search nodes, start node included.
	Generated int

	// Trace lists every event in emission order.
	Trace []Event
}

// Options configures a search run.
type Options struct {
	Start     string             // start city
	Goal      string             // goal city
	Capacity  int                // arena bound; <= 0 means arena.DefaultCapacity
	Ordering  frontier.Ordering  // frontier layout
	SkipStale bool               // discard popped A* entries worse than the best known g
	Logger    logrus.FieldLogger // receives Debug/Trace records of the run

	OnExpand   func(Event)
	OnGenerate func(Event)
}

// Option is a functional option for a search run.
type Option func(*Options)

// DefaultOptions returns options with arena.DefaultCapacity, a heap frontier,
// stale entries kept, no hooks and a logger that discards everything.
func DefaultOptions() Options {
	return Options{
		Capacity:   arena.DefaultCapacity,
		Ordering:   frontier.Heap,
		Logger:     discardLogger(),
		OnExpand:   func(Event) {},
		OnGenerate: func(Event) {},
	}
}

// Start sets the start city.
func Start(name string) Option {
	return func(o *Options) { o.Start = name }
}

// Goal sets the goal city.
func Goal(name string) Option {
	return func(o *Options) { o.Goal = name }
}

// WithCapacity bounds the number of search nodes a run may allocate.
// Zero selects arena.DefaultCapacity. Panics on a negative value.
func WithCapacity(n int) Option {
	if n < 0 {
		panic("search: WithCapacity(negative)")
	}
	return func(o *Options) { o.Capacity = n }
}

// WithLinearFrontier uses the linear-scan frontier instead of the heap.
func WithLinearFrontier() Option {
	return func(o *Options) { o.Ordering = frontier.LinearScan }
}

// WithFrontierOrdering selects the frontier layout explicitly.
// Panics on an ordering the frontier package does not define.
func WithFrontierOrdering(ord frontier.Ordering) Option {
	switch ord {
	case frontier.Heap, frontier.LinearScan:
	default:
		panic("search: WithFrontierOrdering(unknown)")
	}
	return func(o *Options) { o.Ordering = ord }
}

// WithSkipStale makes A* discard a popped entry whose g is worse than the
// best g recorded for its city. Without it such entries are expanded again.
// Greedy never produces stale entries, so the option has no effect there.
func WithSkipStale() Option {
	return func(o *Options) { o.SkipStale = true }
}

// WithLogger routes run diagnostics to l. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnExpand registers a callback invoked for every EventExpand.
func WithOnExpand(fn func(Event)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnGenerate registers a callback invoked for every EventGenerate.
func WithOnGenerate(fn func(Event)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnGenerate = fn
		}
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
