// Package suite runs the six searches by name.
//
// Names lists the algorithms in presentation order (BFS, DFS, Best-First,
// Hill Climbing, Branch and Bound, Dijkstra). Parse accepts the display names
// and a set of short aliases, case-insensitively. Run dispatches one search;
// All runs every search over the same graph and endpoints.
//
// Explain classifies a StatusNoPath result: either start and goal lie in
// different connected components, or a greedy search stopped although a path
// exists.
package suite
