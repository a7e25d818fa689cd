// Package core provides the labelled, weighted, undirected Graph that every
// search in this module runs over.
//
// The Graph G = (V,E) is deliberately small:
//
//   - Vertices are dense integer ids 0..n-1, fixed by NewGraph, each with a
//     display label. Labels need not be unique; they are only what searches
//     print.
//   - Edges are undirected with a non-negative int64 cost. AddEdge stores two
//     directed AdjacencyEntry records, one per endpoint, under a single lock.
//   - Adjacency is an arena indexed by vertex id ([][]AdjacencyEntry), not a
//     map: ids are dense, so a slice lookup is all that is needed.
//   - Parallel edges and self-loops are accepted as given.
//
// Determinism:
//
//	Neighbors(v) returns entries in insertion order. BFS and DFS visit order,
//	and tie-breaking in the priority-based searches, follow that order, so
//	the order edges are added is part of the observable behavior.
//
// Lifecycle:
//
//	g, err := core.NewGraph(3, []string{"S", "A", "Z"})
//	_ = g.AddEdge(0, 1, 4)
//	_ = g.AddEdge(1, 2, 2)
//	// g is now read-only for all searches.
//
// Core Methods:
//
//	NewGraph(n int, labels []string) (*Graph, error)  // O(V)
//	AddEdge(from, to int, cost int64) error           // O(1) amortized
//	Neighbors(v int) ([]AdjacencyEntry, error)         // O(deg v), copy
//	Degree(v int) (int, error)                         // O(1)
//	VertexCount() int, EdgeCount() int                 // O(1)
//	HasVertex(v int) bool, CheckVertex(role, v) error  // O(1)
//	Label(v int) (string, error), Labels(), LabelsOf() // O(1) / O(V)
//	Edges() []Edge                                     // O(E), insertion order
//	Components() [][]int, Connected(u, v int)          // O(V + E·α(V))
//
// Errors:
//
//	ErrInvalidArgument   – root of every validation error below
//	ErrLabelCount        – len(labels) != vertex count
//	ErrVertexOutOfRange  – vertex id outside 0..n-1
//	ErrNegativeCost      – AddEdge with cost < 0
//
// Concurrency:
//
//	A sync.RWMutex guards adjacency and the edge catalog. Searches only take
//	read locks, so any number of them may run against one Graph at once.
package core
