// Package bfs provides breadth-first search over a core.Graph, returning the
// sequence of labels in visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop distance (edge count) from a
//     start vertex; edge costs are ignored.
//   - Neighbors are taken in adjacency order, i.e. the order edges were added,
//     so the visit sequence is fully reproducible.
//   - A vertex is marked visited when it is first discovered (on enqueue).
//     This is what keeps a vertex from being queued twice.
//   - Returns a search.Result whose Path lists every reachable vertex once.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the queue and visited markers.
//
// Usage
//
//	res, err := bfs.BFS(g, 0)
//	if err != nil {
//	    // search.ErrGraphNil, core.ErrVertexOutOfRange, search.ErrOptionViolation,
//	    // search.ErrStepLimit, context errors, or hook errors
//	}
//	fmt.Println(res) // "BFS: S A B D C F E Z"
//
// Options
//
//	All search.Option values apply: WithContext, WithLogger, WithMaxSteps
//	(one step per dequeued vertex) and WithOnVisit.
package bfs
