// SPDX-License-Identifier: MIT
// Package: roadsearch/search
//
// stepper.go - the search state machine.
//
// States: Running → GoalFound | Exhausted | Failed.
//
//	init:   allocate start (g=0, priority per strategy), push, mark seen.
//	step:   pop min; goal ⇒ GoalFound (first goal pop wins).
//	expand: Greedy skips visited cities; A* pushes a new node whenever g improves.
//	        Older, worse A* entries stay in the frontier.
//	empty frontier ⇒ Exhausted.

package search

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/roadsearch/arena"
	"github.com/katalvlaran/roadsearch/core"
	"github.com/katalvlaran/roadsearch/frontier"
)

// Stepper runs one search one expansion at a time. It owns the run's arena
// and frontier; nothing is shared between Steppers except the read-only graph.
type Stepper struct {
	g        *core.Graph
	strategy Strategy
	opts     Options
	log      logrus.FieldLogger

	store *arena.Store
	open  *frontier.Queue

	visited map[string]bool  // Greedy: cities ever generated
	best    map[string]int64 // A*: best g generated per city

	status   Status
	err      error
	goal     arena.Handle
	expanded int
	trace    []Event
}

// NewStepper validates the inputs and initialises a run: the start node is
// allocated and pushed, and the returned Stepper is in state Running.
//
// Validation order: ErrEmptyStart, ErrEmptyGoal, ErrNilGraph,
// ErrUnknownStrategy, ErrUnknownOrdering, ErrStartNotFound, ErrGoalNotFound.
func NewStepper(g *core.Graph, strategy Strategy, opts ...Option) (*Stepper, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	switch {
	case cfg.Start == "":
		return nil, ErrEmptyStart
	case cfg.Goal == "":
		return nil, ErrEmptyGoal
	case g == nil:
		return nil, ErrNilGraph
	case !strategy.valid():
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(strategy))
	case cfg.Ordering != frontier.Heap && cfg.Ordering != frontier.LinearScan:
		return nil, fmt.Errorf("%w: %d", ErrUnknownOrdering, int(cfg.Ordering))
	case !g.HasCity(cfg.Start):
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, cfg.Start)
	case !g.HasCity(cfg.Goal):
		return nil, fmt.Errorf("%w: %q", ErrGoalNotFound, cfg.Goal)
	}

	s := &Stepper{
		g:        g,
		strategy: strategy,
		opts:     cfg,
		log: cfg.Logger.WithFields(logrus.Fields{
			"strategy": strategy.String(),
			"start":    cfg.Start,
			"goal":     cfg.Goal,
		}),
		store:  arena.New(cfg.Capacity),
		open:   frontier.New(frontier.WithOrdering(cfg.Ordering)),
		status: Running,
		goal:   arena.NoParent,
	}
	if strategy == Greedy {
		s.visited = make(map[string]bool)
	} else {
		s.best = make(map[string]int64)
	}

	if err := s.init(); err != nil {
		return nil, err
	}

	return s, nil
}

// init allocates and pushes the start node.
func (s *Stepper) init() error {
	start := s.opts.Start
	h := s.g.HeuristicOrDefault(start)
	f := s.strategy.priority(0, h)

	handle, err := s.store.Allocate(start, 0, f, arena.NoParent)
	if err != nil {
		return fmt.Errorf("search: %s: allocating start %q: %w", s.strategy, start, err)
	}
	s.open.Push(handle, f)
	if s.strategy == Greedy {
		s.visited[start] = true
	} else {
		s.best[start] = 0
	}
	s.log.WithFields(logrus.Fields{"city": start, "h": h, "f": f}).Debug("search initialised")

	return nil
}

// Status returns the current state.
func (s *Stepper) Status() Status { return s.status }

// Err returns the error that moved the run to Failed, if any.
func (s *Stepper) Err() error { return s.err }

// Pending returns the number of frontier entries.
func (s *Stepper) Pending() int { return s.open.Len() }

// Expanded returns the number of expansions so far.
func (s *Stepper) Expanded() int { return s.expanded }

// Step performs one pop and, unless it hits the goal, one expansion.
// On a terminal state it returns that state again without doing any work.
// A non-nil error always comes with Failed.
func (s *Stepper) Step() (Status, error) {
	if s.status.Done() {
		return s.status, s.err
	}

	entry, err := s.open.PopMin()
	if errors.Is(err, frontier.ErrEmpty) {
		s.status = Exhausted
		s.log.WithField("expanded", s.expanded).Debug("frontier exhausted, no path")
		return s.status, nil
	}
	if err != nil {
		return s.fail(err)
	}

	node, err := s.store.Node(entry.Handle)
	if err != nil {
		return s.fail(err)
	}
	h := s.g.HeuristicOrDefault(node.City)

	if s.opts.SkipStale && s.strategy == AStar && node.Cost > s.best[node.City] {
		s.emit(Event{Kind: EventStale, City: node.City, Handle: entry.Handle, Parent: node.Parent, G: node.Cost, H: h, F: node.Priority})
		return s.status, nil
	}

	s.expanded++
	s.emit(Event{Kind: EventExpand, City: node.City, Handle: entry.Handle, Parent: node.Parent, G: node.Cost, H: h, F: node.Priority})

	if node.City == s.opts.Goal {
		s.status = GoalFound
		s.goal = entry.Handle
		s.log.WithFields(logrus.Fields{"distance": node.Cost, "expanded": s.expanded}).Debug("goal reached")
		return s.status, nil
	}

	if err := s.expand(entry.Handle, node); err != nil {
		return s.fail(err)
	}

	return s.status, nil
}

// expand generates the neighbours of node according to the strategy.
func (s *Stepper) expand(parent arena.Handle, node arena.Node) error {
	neighbors, err := s.g.Neighbors(node.City)
	if err != nil {
		return fmt.Errorf("search: %s: neighbours of %q: %w", s.strategy, node.City, err)
	}

	for _, nb := range neighbors {
		switch s.strategy {
		case Greedy:
			if s.visited[nb.City] {
				continue
			}
			if err := s.generate(parent, nb.City, node.Cost+nb.Distance); err != nil {
				return err
			}
			s.visited[nb.City] = true

		case AStar:
			w, ok := s.g.EdgeWeight(node.City, nb.City)
			if !ok {
				return fmt.Errorf("%w: %s-%s", ErrMissingEdge, node.City, nb.City)
			}
			gNew := node.Cost + w
			if prev, seen := s.best[nb.City]; seen && gNew >= prev {
				continue
			}
			if err := s.generate(parent, nb.City, gNew); err != nil {
				return err
			}
			s.best[nb.City] = gNew
		}
	}

	return nil
}

// generate allocates a node for city reached with cost g and pushes it.
func (s *Stepper) generate(parent arena.Handle, city string, g int64) error {
	h := s.g.HeuristicOrDefault(city)
	f := s.strategy.priority(g, h)

	handle, err := s.store.Allocate(city, g, f, parent)
	if err != nil {
		return fmt.Errorf("search: %s: generating %q: %w", s.strategy, city, err)
	}
	s.open.Push(handle, f)
	s.emit(Event{Kind: EventGenerate, City: city, Handle: handle, Parent: parent, G: g, H: h, F: f})

	return nil
}

func (s *Stepper) emit(e Event) {
	s.trace = append(s.trace, e)

	entry := s.log.WithFields(logrus.Fields{"city": e.City, "g": e.G, "h": e.H, "f": e.F})
	switch e.Kind {
	case EventExpand:
		entry.Debug("expanding")
		s.opts.OnExpand(e)
	case EventGenerate:
		entry.Trace("generated")
		s.opts.OnGenerate(e)
	case EventStale:
		entry.Trace("skipping stale entry")
	}
}

func (s *Stepper) fail(err error) (Status, error) {
	s.status = Failed
	s.err = err
	s.log.WithError(err).Debug("search failed")

	return s.status, err
}

// Result snapshots the run. Before a terminal state it reports Running with
// the trace so far.
func (s *Stepper) Result() *Result {
	res := &Result{
		Strategy:  s.strategy,
		Status:    s.status,
		Goal:      arena.NoParent,
		Expanded:  s.expanded,
		Generated: s.store.Len(),
		Trace:     append([]Event(nil), s.trace...),
	}
	if s.status != GoalFound {
		return res
	}

	path, err := s.store.Path(s.goal)
	if err != nil {
		// The goal handle came from this store; Path cannot fail for it.
		return res
	}
	node, _ := s.store.Node(s.goal)
	res.Found = true
	res.Path = path
	res.Distance = node.Cost
	res.Goal = s.goal

	return res
}
