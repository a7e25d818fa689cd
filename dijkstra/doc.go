// Package dijkstra computes minimum-cost paths on a core.Graph with
// non-negative edge costs, in the dynamic-programming formulation: a table of
// best known costs is improved edge by edge until no entry can get cheaper.
//
// Overview:
//
//   - ShortestPath(g, start, goal, opts...) returns the cheapest path from
//     start to goal and its total cost (Result.Cost, Result.HasCost).
//   - cost[v] starts at Inf for every vertex except the source (0); prev[v]
//     starts at -1.
//   - A min-priority queue of (tentative cost, vertex) drives relaxation:
//     cost[u] + w < cost[v] updates cost[v], sets prev[v] = u and pushes v.
//   - The path is rebuilt by following prev from the goal and reversing.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E); the queue may hold one entry per successful relaxation.
//
// Notes on implementation choices:
//
//   - Lazy decrease-key: improved vertices are pushed again and outdated
//     entries stay in the queue. They are not filtered out when popped;
//     relaxing from them is a no-op.
//   - Equal queue keys pop in push order, so among equal-cost paths the one
//     discovered first wins.
//
// Error handling (sentinel errors):
//
//   - search.ErrGraphNil, search.ErrOptionViolation, core.ErrVertexOutOfRange
//     for invalid input; all wrap core.ErrInvalidArgument.
//   - search.ErrStepLimit and context errors abort the computation.
//
// An unreachable goal yields StatusNoPath with an empty path; Result.Err then
// returns search.ErrNoPathFound.
//
// Example:
//
//	res, err := dijkstra.ShortestPath(g, 0, 7)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Path, res.Cost) // [S B C E Z] 10
package dijkstra
