// SPDX-License-Identifier: MIT
// Package: roadsearch/dijkstra
//
// dijkstra.go - single-source road distances with a lazy min-heap.
//
// Every city is finalised once, on its first pop; later pops of the same city
// carry outdated distances and are dropped. Roads at or above
// InfEdgeThreshold are closed. Nothing farther than MaxDistance is settled.

package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/roadsearch/core"
)

// Unreachable is the distance reported for cities the source cannot reach.
const Unreachable int64 = math.MaxInt64

// Dijkstra returns the distance from Options.Source to every city of g
// (Unreachable where there is no route) and, with WithReturnPath, a
// predecessor map where prev[v] is the city before v on one shortest route.
// The source and unreached cities map to "".
//
// Validation order: ErrEmptySource, ErrNilGraph, ErrVertexNotFound.
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	switch {
	case cfg.Source == "":
		return nil, nil, ErrEmptySource
	case g == nil:
		return nil, nil, ErrNilGraph
	case !g.HasCity(cfg.Source):
		return nil, nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}

	n := g.CityCount()
	r := &runner{
		g:       g,
		opts:    cfg,
		dist:    make(map[string]int64, n),
		settled: make(map[string]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	if cfg.ReturnPath {
		r.prev = make(map[string]string, n)
	}

	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// runner is the state of one call.
type runner struct {
	g       *core.Graph
	opts    Options
	dist    map[string]int64
	prev    map[string]string // nil unless ReturnPath
	settled map[string]bool
	pq      nodePQ
}

func (r *runner) init() {
	for _, city := range r.g.Cities() {
		r.dist[city] = Unreachable
		if r.prev != nil {
			r.prev[city] = ""
		}
	}
	r.dist[r.opts.Source] = 0
	heap.Push(&r.pq, &nodeItem{city: r.opts.Source})
}

// process pops until the heap is empty or the closest entry lies past MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.settled[item.city] {
			continue
		}
		if item.dist > r.opts.MaxDistance {
			return nil
		}

		r.settled[item.city] = true
		if err := r.relax(item.city, item.dist); err != nil {
			return err
		}
	}

	return nil
}

// relax offers d + road to every neighbour of the settled city u.
// Ties keep the first predecessor found.
func (r *runner) relax(u string, d int64) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbours of %q: %w", u, err)
	}

	for _, nb := range neighbors {
		if nb.Distance >= r.opts.InfEdgeThreshold {
			continue
		}
		cand := d + nb.Distance
		if cand > r.opts.MaxDistance || cand >= r.dist[nb.City] {
			continue
		}

		r.dist[nb.City] = cand
		if r.prev != nil {
			r.prev[nb.City] = u
		}
		heap.Push(&r.pq, &nodeItem{city: nb.City, dist: cand})
	}

	return nil
}

// PathTo rebuilds the route source → … → target from a predecessor map
// returned with WithReturnPath. Returns ErrNoPath when target is unreachable.
func PathTo(prev map[string]string, source, target string) ([]string, error) {
	if source == target {
		return []string{source}, nil
	}

	var rev []string
	for cur := target; cur != source; cur = prev[cur] {
		if prev[cur] == "" || len(rev) > len(prev) {
			return nil, fmt.Errorf("%w: %s→%s", ErrNoPath, source, target)
		}
		rev = append(rev, cur)
	}

	path := make([]string, 0, len(rev)+1)
	path = append(path, source)
	for i := len(rev) - 1; i >= 0; i-- {
		path = append(path, rev[i])
	}

	return path, nil
}

type nodeItem struct {
	city string
	dist int64
}

// nodePQ implements heap.Interface ordered by dist.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	item := old[len(old)-1]
	*pq = old[:len(old)-1]

	return item
}
