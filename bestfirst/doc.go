// Package bestfirst implements greedy best-first search over a core.Graph.
//
// The frontier is a min-priority queue keyed by the cost of the single edge
// that reached each entry, not by the cost accumulated from the start. The
// search therefore always expands the locally cheapest hop and may report a
// route that is far from optimal; that is the intended greedy behavior.
//
// Algorithm:
//
//  1. Push start with key 0 and mark it visited.
//  2. Pop the cheapest entry and emit it.
//  3. If it is the goal, stop (the goal is part of the output).
//  4. Otherwise push every unvisited neighbor keyed by its edge cost and
//     mark it visited at push time.
//
// Equal keys pop in push order. The result lists every popped vertex; when the
// queue empties before the goal is popped the status is StatusNoPath and the
// list still holds everything that was expanded.
//
// Complexity: O((V + E) log V) time, O(V) memory.
package bestfirst
