// Package graph_test validates the adjacency-list multigraph: vertex
// idempotence, the edge cascade on vertex removal, the remove-all
// parallel-edge policy, and bidirectional edge handling.
package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlds/graph"
)

func TestGraph_AddVertexIdempotent(t *testing.T) {
	g := graph.New[string]()
	g.AddVertex("A")
	g.AddEdge("A", "B", 1)
	g.AddVertex("A") // repeat must not discard A's arc list

	assert.Equal(t, 2, g.VertexCount())
	require.Len(t, g.Neighbors("A"), 1)
	assert.Equal(t, "B", g.Neighbors("A")[0].To)
}

func TestGraph_AddEdgeAutoCreatesEndpoints(t *testing.T) {
	g := graph.New[string]()
	g.AddEdge("X", "Y", 2.5)

	assert.True(t, g.HasVertex("X"))
	assert.True(t, g.HasVertex("Y"))
	require.Len(t, g.Neighbors("X"), 1)
	assert.Equal(t, graph.Arc[string]{To: "Y", Weight: 2.5}, g.Neighbors("X")[0])
	assert.Empty(t, g.Neighbors("Y"), "directed by default: no mirror arc")
}

func TestGraph_BidirectionalEdge(t *testing.T) {
	g := graph.New[string]()
	g.AddEdge("A", "B", 4, graph.Bidirectional())

	require.Len(t, g.Neighbors("A"), 1)
	require.Len(t, g.Neighbors("B"), 1)
	assert.Equal(t, "A", g.Neighbors("B")[0].To)
	assert.Equal(t, 4.0, g.Neighbors("B")[0].Weight)

	// Bidirectional removal drops both mirrored arcs together.
	removed := g.RemoveEdge("A", "B", graph.Bidirectional())
	assert.True(t, removed)
	assert.Empty(t, g.Neighbors("A"))
	assert.Empty(t, g.Neighbors("B"))
}

func TestGraph_ParallelEdgesKeptAndRemovedTogether(t *testing.T) {
	g := graph.New[string]()
	g.AddEdge("A", "B", 1)
	g.AddEdge("A", "B", 9) // parallel arc: kept, not merged
	g.AddEdge("A", "C", 3)

	assert.Equal(t, 3, g.EdgeCount())
	assert.Len(t, g.Neighbors("A"), 3)

	// Remove-all policy: one call filters every A→B arc.
	assert.True(t, g.RemoveEdge("A", "B"))
	arcs := g.Neighbors("A")
	require.Len(t, arcs, 1)
	assert.Equal(t, "C", arcs[0].To)
}

func TestGraph_RemoveEdgeAbsentIsNoOp(t *testing.T) {
	g := graph.New[string]()
	g.AddEdge("A", "B", 1)

	assert.False(t, g.RemoveEdge("A", "Z"))
	assert.False(t, g.RemoveEdge("Z", "A"))
	assert.Equal(t, 1, g.EdgeCount())
}

func TestGraph_RemoveVertexCascades(t *testing.T) {
	// D participates as destination of C→D and A→D and as source of D→E;
	// removing D must erase every trace, in both roles.
	g := graph.New[string]()
	g.AddEdge("A", "D", 1)
	g.AddEdge("C", "D", 2)
	g.AddEdge("D", "E", 3)
	g.AddEdge("A", "B", 4)

	require.True(t, g.RemoveVertex("D"))

	assert.False(t, g.HasVertex("D"))
	for _, v := range g.Vertices() {
		for _, a := range g.Neighbors(v) {
			assert.NotEqual(t, "D", a.To, "dangling arc from %v", v)
		}
	}
	// Unrelated topology survives.
	require.Len(t, g.Neighbors("A"), 1)
	assert.Equal(t, "B", g.Neighbors("A")[0].To)

	// Removing an absent vertex is a reported no-op.
	assert.False(t, g.RemoveVertex("D"))
}

func TestGraph_VerticesDeterministicOrder(t *testing.T) {
	g := graph.New[string]()
	for _, v := range []string{"delta", "alpha", "charlie", "bravo"} {
		g.AddVertex(v)
	}
	assert.Equal(t, []string{"alpha", "bravo", "charlie", "delta"}, g.Vertices())
}

func TestGraph_IntVertices(t *testing.T) {
	// The vertex type is generic: any comparable works as a key.
	g := graph.New[int]()
	g.AddEdge(1, 2, 1.5)
	g.AddEdge(2, 3, 0.5)

	assert.True(t, g.HasVertex(3))
	assert.Equal(t, 3, g.VertexCount())
}

func TestGraph_NeighborsReturnsCopy(t *testing.T) {
	g := graph.New[string]()
	g.AddEdge("A", "B", 1)

	arcs := g.Neighbors("A")
	arcs[0].To = "Z" // caller-side mutation must not leak into the graph
	assert.Equal(t, "B", g.Neighbors("A")[0].To)
}

func TestGraph_TraversalOrders(t *testing.T) {
	//      A
	//     / \
	//    B   C
	//    |   |
	//    D   E
	g := graph.New[string]()
	g.AddEdge("A", "B", 1)
	g.AddEdge("A", "C", 1)
	g.AddEdge("B", "D", 1)
	g.AddEdge("C", "E", 1)

	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, g.BFSOrder("A"))
	assert.Equal(t, []string{"A", "B", "D", "C", "E"}, g.DFSOrder("A"))

	// Unknown start soft-fails to an empty order.
	assert.Empty(t, g.BFSOrder("missing"))
	assert.Empty(t, g.DFSOrder("missing"))
}
