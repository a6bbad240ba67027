// Package dijkstra implements the shortest-path computation itself: the
// validation ladder, the heap-backed frontier, and the relaxation loop.
package dijkstra

import (
	"math"

	"github.com/katalvlaran/lvlds/graph"
	"github.com/katalvlaran/lvlds/pqueue"
)

// Dijkstra computes shortest distances from the source vertex selected
// via Source(v) to every vertex of g.
//
// Returns:
//
//   - dist: map from vertex to minimum distance (+Inf if unreachable).
//   - prev: predecessor map when WithReturnPath() is set, nil otherwise.
//     prev[v] == u means the shortest path to v arrives through u; the
//     source and unreachable vertices carry no entry.
//   - err:  a sentinel if the inputs are invalid, nil otherwise.
//
// Preconditions, validated in order:
//
//  1. A Source option was supplied (ErrNoSource).
//  2. g is non-nil (ErrNilGraph).
//  3. g contains the source vertex (ErrVertexNotFound).
//
// Weights must be non-negative; this is NOT validated, and violating it
// yields an unspecified result (see package doc).
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra[V comparable](g *graph.Graph[V], opts ...Option[V]) (map[V]float64, map[V]V, error) {
	// 1) Build the configuration from defaults plus functional options.
	cfg := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validation ladder: source option, graph, source membership.
	if !cfg.hasSource {
		return nil, nil, ErrNoSource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, ErrVertexNotFound
	}

	// 3) Initialize state: every known vertex starts at +Inf, the source
	//    at 0, and the frontier holds the single (source, 0) entry.
	r := &runner[V]{
		g:       g,
		options: cfg,
		dist:    make(map[V]float64, g.VertexCount()),
		frontier: pqueue.New(func(a, b frontierItem[V]) bool {
			return a.dist < b.dist // ascending distance = extraction order
		}),
	}
	if cfg.ReturnPath {
		r.prev = make(map[V]V, g.VertexCount())
	}
	for _, v := range g.Vertices() {
		r.dist[v] = math.Inf(1)
	}
	r.dist[cfg.Source] = 0
	r.frontier.Push(frontierItem[V]{vertex: cfg.Source, dist: 0})

	// 4) Run the extraction/relaxation loop to frontier exhaustion.
	r.process()

	return r.dist, r.prev, nil
}

// frontierItem is one (vertex, tentative distance) candidate awaiting
// extraction in ascending-distance order.
type frontierItem[V comparable] struct {
	vertex V
	dist   float64
}

// runner holds the mutable state of a single Dijkstra execution.
type runner[V comparable] struct {
	g        *graph.Graph[V]
	options  Options[V]
	dist     map[V]float64              // vertex → best known distance
	prev     map[V]V                    // vertex → predecessor (nil unless ReturnPath)
	frontier *pqueue.Heap[frontierItem[V]] // min-heap by tentative distance
}

// process repeatedly extracts the minimum-distance frontier entry and
// relaxes its outgoing arcs. Terminates when the frontier drains or the
// nearest entry exceeds MaxDistance.
func (r *runner[V]) process() {
	for {
		item, ok := r.frontier.PopRoot()
		if !ok {
			return // frontier exhausted: all reachable vertices finalized
		}

		// Lazy decrease-key: a stale entry was superseded by a later,
		// better push for the same vertex. Skip it.
		if item.dist > r.dist[item.vertex] {
			continue
		}

		// Distance cap: the frontier is extracted in non-decreasing
		// order, so once one entry exceeds the cap, all remaining do.
		if item.dist > r.options.MaxDistance {
			return
		}

		r.relax(item.vertex)
	}
}

// relax attempts to improve the distance of every neighbor of u through
// u, pushing an improved (neighbor, distance) entry for each success.
func (r *runner[V]) relax(u V) {
	base := r.dist[u]
	for _, arc := range r.g.Neighbors(u) {
		candidate := base + arc.Weight

		// Vertices beyond the cap stay untouched at +Inf.
		if candidate > r.options.MaxDistance {
			continue
		}

		// Only a strict improvement updates and pushes; equal-cost paths
		// would produce redundant frontier entries.
		if candidate >= r.dist[arc.To] {
			continue
		}

		r.dist[arc.To] = candidate
		if r.prev != nil {
			r.prev[arc.To] = u
		}
		r.frontier.Push(frontierItem[V]{vertex: arc.To, dist: candidate})
	}
}
