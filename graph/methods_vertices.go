// Vertex lifecycle and queries.
//
// Determinism:
//   - Vertices() returns a stable order (ascending by formatted value),
//     the graph's stable enumeration surface for reproducible outputs.

package graph

import (
	"fmt"
	"sort"
)

// AddVertex registers v if missing. Idempotent: adding an existing vertex
// leaves its (possibly empty) arc list untouched.
// Complexity: O(1) amortized.
func (g *Graph[V]) AddVertex(v V) {
	if _, exists := g.adjacency[v]; exists {
		return // no-op for existing vertex
	}
	g.adjacency[v] = nil
}

// HasVertex reports whether v is present. Complexity: O(1).
func (g *Graph[V]) HasVertex(v V) bool {
	_, ok := g.adjacency[v]

	return ok
}

// RemoveVertex deletes v's own arc list AND filters v out of every other
// vertex's arc list — the full edge-cascade cleanup, covering v both as
// source and as destination. Reports false (no-op) if v is absent.
// Complexity: O(V+E).
func (g *Graph[V]) RemoveVertex(v V) bool {
	if _, exists := g.adjacency[v]; !exists {
		return false
	}
	delete(g.adjacency, v)

	// Cascade: drop every arc pointing at the removed vertex, in place.
	for from, arcs := range g.adjacency {
		kept := arcs[:0]
		for _, a := range arcs {
			if a.To != v {
				kept = append(kept, a)
			}
		}
		g.adjacency[from] = kept
	}

	return true
}

// Vertices returns every vertex in ascending order of its formatted value.
// Map iteration order is random in Go; sorting the formatted keys gives
// callers a deterministic enumeration even for non-ordered vertex types.
// Complexity: O(V log V).
func (g *Graph[V]) Vertices() []V {
	out := make([]V, 0, len(g.adjacency))
	for v := range g.adjacency {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		return fmt.Sprint(out[i]) < fmt.Sprint(out[j])
	})

	return out
}

// VertexCount returns the number of vertices. Complexity: O(1).
func (g *Graph[V]) VertexCount() int { return len(g.adjacency) }
