// Package branchbound implements branch-and-bound search (uniform-cost
// search) over a core.Graph.
//
// The frontier holds whole paths keyed by their cumulative cost. A popped path
// whose last vertex was already expanded is discarded; otherwise that vertex is
// marked and either completes the search (it is the goal) or the path is
// extended by every unvisited neighbor. With non-negative costs the first
// completed path is a minimum-cost path.
//
// Paths are persistent lists (github.com/benbjohnson/immutable): extending a
// path shares its prefix with every sibling extension instead of copying it,
// and the cumulative cost travels with the path so it is never resummed.
//
// The result lists the vertices of the returned path. When the frontier
// empties first, the result is an empty path with StatusNoPath.
//
// Complexity: O(E log E) queue operations; each stored path costs O(log n)
// extra memory over its parent.
package branchbound
