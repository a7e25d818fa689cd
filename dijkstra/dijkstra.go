package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/search"
)

// Inf is the tentative cost of a vertex no path has reached yet.
const Inf int64 = math.MaxInt64

// ErrBrokenPath reports a predecessor chain that does not end at the source.
var ErrBrokenPath = errors.New("dijkstra: broken predecessor chain")

// noPrev marks a vertex without predecessor (the source, or unreached).
const noPrev = -1

// ShortestPath computes the minimum-cost path from start to goal and reports
// it together with its total cost.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (search.ErrGraphNil).
//  2. Options must be valid (search.ErrOptionViolation).
//  3. start and goal must be vertices of g (core.ErrVertexOutOfRange).
//
// Costs are non-negative and bounded by core.Graph.MaxCost, both enforced by
// AddEdge, so no tentative cost can overflow or reach Inf.
//
// Returns a StatusFound result with HasCost set, or a StatusNoPath result with
// an empty path when goal is unreachable.
func ShortestPath(g *core.Graph, start, goal int, opts ...search.Option) (*search.Result, error) {
	// 1) Validate graph, options and endpoints.
	run, err := search.Begin(g, search.ShortestPath, opts, search.Start(start), search.Goal(goal))
	if err != nil {
		return nil, err
	}

	// 2) Initialize runner state and relax until the queue drains.
	r := newRunner(run, start)
	if err = r.process(); err != nil {
		return nil, err
	}

	// 3) Goal never reached: cost stayed at Inf.
	if r.cost[goal] == Inf {
		return run.NoPath(nil), nil
	}

	// 4) Rebuild the path and emit it in order.
	path, err := r.pathTo(goal)
	if err != nil {
		return nil, err
	}
	for _, v := range path {
		if err = run.Emit(v); err != nil {
			return nil, err
		}
	}

	return run.FoundWithCost(run.Order(), r.cost[goal]), nil
}

// runner holds the mutable state for a single execution.
type runner struct {
	run  *search.Run
	cost []int64              // best known cost from the source
	prev []int                // predecessor on the best known path
	pq   search.MinQueue[int] // (tentative cost, vertex)
}

// newRunner sets cost[v] = Inf and prev[v] = noPrev for all v, then seeds the
// queue with the source at cost 0.
func newRunner(run *search.Run, source int) *runner {
	n := run.Graph.VertexCount()
	r := &runner{
		run:  run,
		cost: make([]int64, n),
		prev: make([]int, n),
	}
	for v := 0; v < n; v++ {
		r.cost[v] = Inf
		r.prev[v] = noPrev
	}
	r.cost[source] = 0
	r.pq.Push(0, source)

	return r
}

// process pops the cheapest entry and relaxes its neighbors until the queue is
// empty. Entries are never marked settled: a stale entry carries a key larger
// than cost[u], and relaxing from it changes nothing because relax reads
// cost[u], which is already final.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		if err := r.run.Step(); err != nil {
			return err
		}

		key, u := r.pq.Pop()
		if key > r.cost[u] {
			r.run.Logf("stale entry %d (key=%d, cost=%d)", u, key, r.cost[u])
		}
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve every neighbor of u through u. Strict "<" keeps the
// first predecessor found among equal-cost paths.
func (r *runner) relax(u int) error {
	nbs, err := r.run.Neighbors(u)
	if err != nil {
		return err
	}

	for _, nb := range nbs {
		candidate := r.cost[u] + nb.Cost
		if candidate >= r.cost[nb.To] {
			continue
		}
		r.cost[nb.To] = candidate
		r.prev[nb.To] = u
		r.pq.Push(candidate, nb.To)
	}

	return nil
}

// pathTo follows predecessors back from goal and reverses the result.
// A simple path has at most VertexCount vertices; a longer chain means the
// predecessor links are corrupt.
func (r *runner) pathTo(goal int) ([]int, error) {
	limit := len(r.prev)
	path := make([]int, 0, limit)
	for v := goal; v != noPrev; v = r.prev[v] {
		if len(path) == limit {
			return nil, fmt.Errorf("%s: %w: predecessor chain from %d exceeds %d vertices",
				r.run.Name, ErrBrokenPath, goal, limit)
		}
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
