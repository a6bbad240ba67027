// Package dijkstra provides single-source shortest paths over a
// graph.Graph with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum cost from one source vertex to every
//     reachable vertex. It maintains a frontier of (vertex, tentative
//     distance) pairs and always extracts the globally minimum-distance
//     entry next — the critical correctness property: extraction order is
//     strictly non-decreasing by distance, never FIFO/LIFO.
//   - The frontier is a pqueue.Heap ordered ascending by distance, with
//     the lazy-decrease-key strategy: an improved distance pushes a new
//     entry, and stale entries (popped distance greater than the recorded
//     best) are skipped on extraction.
//   - Unreachable vertices keep +Inf (math.Inf(1)) in the distance map.
//
// Key features:
//
//   - Source(v) selects the start vertex (required).
//   - WithReturnPath() additionally returns a predecessor map for path
//     reconstruction; prev[v] == u means the shortest path to v arrives
//     through u. The source and unreachable vertices carry no entry.
//   - WithMaxDistance(d) stops exploring once the nearest frontier entry
//     exceeds d; vertices beyond the cap keep +Inf.
//
// Complexity:
//
//   - Time:  O((V + E) log V) — each vertex extracted at most once, each
//     relaxation may push one entry, each heap operation is O(log V).
//   - Space: O(V + E) — distance/predecessor maps plus worst-case frontier.
//
// Error handling (sentinel errors):
//
//   - ErrNoSource:       no Source option was supplied.
//   - ErrNilGraph:       the graph pointer is nil.
//   - ErrVertexNotFound: the source vertex is not in the graph.
//
// Known limitation:
//
//   - Negative edge weights are unsupported and NOT detected: the result
//     is unspecified rather than an error. Algorithmic conditions never
//     raise; only the three input preconditions above do.
//
// Example usage:
//
//	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(dist["F"]) // cheapest cost A→F
package dijkstra
