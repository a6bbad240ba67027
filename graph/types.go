// Package graph defines the Graph and Arc types and the edge options.
package graph

// Arc is one outgoing adjacency entry: a directed hop to a destination
// vertex with a traversal cost.
type Arc[V comparable] struct {
	// To is the destination vertex.
	To V

	// Weight is the traversal cost. Non-negative by contract for
	// shortest-path use; not enforced (see package doc).
	Weight float64
}

// EdgeOption configures a single AddEdge or RemoveEdge call.
type EdgeOption func(*edgeConfig)

// edgeConfig collects per-call edge settings.
type edgeConfig struct {
	bidirectional bool
}

// Bidirectional makes AddEdge insert the mirrored arc as well, and
// RemoveEdge filter the mirrored direction too. Both directions carry the
// same weight and are created/removed together.
func Bidirectional() EdgeOption {
	return func(c *edgeConfig) { c.bidirectional = true }
}

// Graph is an adjacency-list multigraph over a comparable vertex type.
// The zero value is not usable; construct with New.
type Graph[V comparable] struct {
	// adjacency maps every known vertex to its outgoing arcs. Membership
	// in the map IS vertex existence; a vertex with no outgoing edges
	// maps to an empty (possibly nil) arc list.
	adjacency map[V][]Arc[V]
}

// New returns an empty graph. Complexity: O(1).
func New[V comparable]() *Graph[V] {
	return &Graph[V]{adjacency: make(map[V][]Arc[V])}
}
