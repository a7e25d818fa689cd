// Package search holds what the six search packages (bfs, dfs, bestfirst,
// hillclimb, branchbound, dijkstra) have in common.
//
// What
//
//   - Result: the ordered vertex ids and labels a search produced, a Status
//     tag (StatusFound / StatusNoPath) and, for the shortest-path search, the
//     total cost.
//   - Options: functional options (WithContext, WithLogger, WithMaxSteps,
//     WithOnVisit) accepted by every search.
//   - Run: the per-invocation state (visited markers, emitted sequence, step
//     counter). Each call to a search allocates its own Run, so searches are
//     reentrant and may run concurrently over one graph.
//   - MinQueue: a stable min-priority queue; equal keys pop in push order.
//
// Errors
//
//   - ErrGraphNil, ErrOptionViolation and core.ErrVertexOutOfRange are input
//     errors; all wrap core.ErrInvalidArgument and are returned with a nil
//     Result.
//   - ErrNoPathFound is never returned directly by a search: a goal that was
//     not reached is a Result with Status StatusNoPath, and Result.Err
//     converts it to an error for callers that prefer one.
//   - ErrStepLimit and context errors abort a search in progress.
//
// Usage
//
//	res, err := bestfirst.Search(g, start, goal, search.WithMaxSteps(1000))
//	if err != nil {
//	    // invalid input, cancellation or step limit
//	}
//	if !res.Found() {
//	    // res.Path still holds the labels visited before giving up
//	}
//	fmt.Println(res) // "Best-First Search: S B C E Z"
package search
