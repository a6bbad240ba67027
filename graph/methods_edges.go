// Edge lifecycle and queries.
//
// Multigraph policy:
//   - AddEdge never merges: repeated calls accumulate parallel arcs.
//   - RemoveEdge filters ALL arcs matching (source, destination), not
//     just one. Both halves of the policy are deliberate and documented.

package graph

// AddEdge appends a (destination, weight) arc to source's list,
// auto-creating both endpoints as vertices when missing. With
// Bidirectional() the mirrored arc is appended too, at the same weight.
// Parallel edges are kept (multigraph policy). Complexity: O(1) amortized.
func (g *Graph[V]) AddEdge(source, destination V, weight float64, opts ...EdgeOption) {
	var cfg edgeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	// Every edge endpoint must exist as a vertex; insertion auto-creates.
	g.AddVertex(source)
	g.AddVertex(destination)

	g.adjacency[source] = append(g.adjacency[source], Arc[V]{To: destination, Weight: weight})
	if cfg.bidirectional {
		g.adjacency[destination] = append(g.adjacency[destination], Arc[V]{To: source, Weight: weight})
	}
}

// RemoveEdge filters out every arc source→destination, regardless of
// weight — with parallel edges present, ALL matches go (multigraph
// policy; see package doc). With Bidirectional() the mirrored direction
// is filtered too. Reports whether any arc was removed; unknown endpoints
// are a no-op (soft-fail contract). Complexity: O(deg(source) [+ deg(destination)]).
func (g *Graph[V]) RemoveEdge(source, destination V, opts ...EdgeOption) bool {
	var cfg edgeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	removed := g.filterArcs(source, destination)
	if cfg.bidirectional {
		if g.filterArcs(destination, source) {
			removed = true
		}
	}

	return removed
}

// filterArcs drops all from→to arcs in a single in-place pass and reports
// whether anything was dropped.
func (g *Graph[V]) filterArcs(from, to V) bool {
	arcs, exists := g.adjacency[from]
	if !exists {
		return false
	}

	kept := arcs[:0]
	for _, a := range arcs {
		if a.To != to {
			kept = append(kept, a)
		}
	}
	g.adjacency[from] = kept

	return len(kept) != len(arcs)
}

// Neighbors returns a copy of source's outgoing arcs. Unknown vertices
// yield an empty list (soft-fail contract). Mutating the returned slice
// does not affect the graph. Complexity: O(deg(source)).
func (g *Graph[V]) Neighbors(source V) []Arc[V] {
	arcs := g.adjacency[source]
	out := make([]Arc[V], len(arcs))
	copy(out, arcs)

	return out
}

// EdgeCount returns the total number of stored arcs. An undirected edge
// counts as its two mirrored arcs. Complexity: O(V).
func (g *Graph[V]) EdgeCount() int {
	total := 0
	for _, arcs := range g.adjacency {
		total += len(arcs)
	}

	return total
}
