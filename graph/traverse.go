// Basic traversal exports: breadth-first and depth-first visit order.
//
// Both walks are the unadorned textbook versions — no hooks, no depth
// limits — because the graph's export surface is limited to sequences a
// caller can format or feed into further analysis. Neighbor expansion
// follows arc-insertion order, so the visit order is deterministic for a
// fixed mutation history.

package graph

// BFSOrder returns the vertices reachable from start in breadth-first
// visit order (start first, then every vertex at hop distance 1, and so
// on). An unknown start yields an empty order (soft-fail contract).
// Parallel arcs do not revisit: each vertex appears at most once.
// Complexity: O(V+E).
func (g *Graph[V]) BFSOrder(start V) []V {
	if !g.HasVertex(start) {
		return nil
	}

	visited := map[V]bool{start: true}
	order := make([]V, 0, len(g.adjacency))
	queue := []V{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		order = append(order, current)

		for _, a := range g.adjacency[current] {
			if visited[a.To] {
				continue
			}
			visited[a.To] = true
			queue = append(queue, a.To)
		}
	}

	return order
}

// DFSOrder returns the vertices reachable from start in pre-order
// depth-first visit order, expanding arcs in insertion order. An unknown
// start yields an empty order (soft-fail contract).
// Complexity: O(V+E), O(V) stack depth worst case.
func (g *Graph[V]) DFSOrder(start V) []V {
	if !g.HasVertex(start) {
		return nil
	}

	visited := make(map[V]bool, len(g.adjacency))
	order := make([]V, 0, len(g.adjacency))

	var walk func(v V)
	walk = func(v V) {
		visited[v] = true
		order = append(order, v)
		for _, a := range g.adjacency[v] {
			if !visited[a.To] {
				walk(a.To)
			}
		}
	}
	walk(start)

	return order
}
