// Package dfs provides depth-first search over a core.Graph.
//
// What:
//
//   - DFS(g, start, opts...) visits every vertex reachable from start in
//     pre-order: a vertex is emitted when it is first reached, before any of
//     its neighbors are explored.
//   - Neighbors are explored in adjacency (insertion) order, so the visit
//     sequence is fully determined by the order edges were added.
//
// How:
//
//   - Recursion is replaced by an explicit stack of frames. Each frame holds a
//     vertex and the index of the next adjacency entry to inspect. The top
//     frame resumes at that index; an unvisited neighbor pushes a new frame,
//     an exhausted frame is popped. The emitted order is exactly the one the
//     recursive formulation produces, without call-stack depth limits.
//
// Complexity:
//
//   - Time:   O(V + E).
//   - Memory: O(V) for visited markers and the frame stack.
//
// Options (package search):
//
//   - WithContext(ctx)     cancellation, checked once per vertex visit.
//   - WithMaxSteps(n)      bound on the number of vertex visits.
//   - WithOnVisit(fn)      pre-order hook; an error aborts the traversal.
//   - WithLogger(l)        golog debug trace of every visit.
//
// Errors:
//
//   - search.ErrGraphNil       if g is nil.
//   - core.ErrVertexOutOfRange if start is not a vertex of g.
//   - search.ErrStepLimit      when the step bound is exceeded.
//   - context errors and hook errors, wrapped with "DFS:".
//
// Example:
//
//	res, err := dfs.DFS(g, 0)
//	fmt.Println(res) // DFS: S A B C D F E Z
package dfs
