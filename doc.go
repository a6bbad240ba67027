// Package lvlds is your in-memory toolbox of fundamental data structures —
// the containers the standard library hides behind `map` and `append`,
// rebuilt from scratch so you can read, test, and trust every invariant.
//
// 🚀 What is lvlds?
//
//	A compact, zero-dependency library that brings together:
//		• vec       — growable buffer: contiguous storage, doubling growth
//		• pqueue    — binary heap / priority queue with a caller-supplied order
//		• hashtable — chained hash table with load-factor driven rehashing
//		• bst       — binary search tree with recursive insert/search/delete
//		• graph     — weighted adjacency-list multigraph over any comparable key
//		• dijkstra  — single-source shortest paths on top of graph + pqueue
//
// ✨ Why choose lvlds?
//
//   - Learning-friendly – every sift, rehash and relaxation is plain Go you can step through
//   - Honest contracts – each operation documents its complexity and its failure policy
//   - Pure Go – no cgo, no hidden deps, generics throughout
//   - Composable – the heap doubles as the graph's shortest-path frontier
//
// Two failure policies coexist on purpose and are documented per operation:
//
//	hard-fail  — vec panics on an out-of-range index, like built-in slices
//	soft-fail  — pqueue, hashtable, graph and bst return (zero, false) or no-op
//
// Quick ASCII example:
//
//	    A──2──C
//	    │     │
//	    5     1
//	    │     │
//	    B     D──3──E──2──F
//
//	dijkstra from A finds A→C→D→E→F = 8, beating A→B→… = 15.
//
// All containers are single-threaded by contract: wrap them in your own
// synchronization if you share them across goroutines.
//
//	go get github.com/katalvlaran/lvlds
package lvlds
