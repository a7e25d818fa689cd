// Package bfs provides breadth-first search over a core.Graph,
// returning the visit order from a start vertex.
//
// BFS explores vertices in non-decreasing hop distance from the start,
// taking neighbors in adjacency (insertion) order.
package bfs

import (
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/search"
)

// walker encapsulates mutable BFS state.
type walker struct {
	run   *search.Run
	queue []int
}

// BFS runs breadth-first search on g starting from start.
//
// A vertex is marked visited when it is discovered (enqueued), not when it is
// dequeued, so no vertex is ever queued twice. Every reachable vertex appears
// exactly once in the result, which always has StatusFound.
//
// Returns ErrGraphNil, ErrOptionViolation or core.ErrVertexOutOfRange for
// invalid input; ErrStepLimit, a context error or a hook error abort the walk.
func BFS(g *core.Graph, start int, opts ...search.Option) (*search.Result, error) {
	run, err := search.Begin(g, search.BFS, opts, search.Start(start))
	if err != nil {
		return nil, err
	}

	w := &walker{
		run:   run,
		queue: make([]int, 0, g.VertexCount()),
	}
	// Seed queue with start vertex
	w.enqueue(start)
	if err = w.loop(); err != nil {
		return nil, err
	}

	return run.Found(run.Order()), nil
}

// enqueue marks v visited and adds it to the queue.
func (w *walker) enqueue(v int) {
	w.run.Visited[v] = true
	w.queue = append(w.queue, v)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		if err := w.run.Step(); err != nil {
			return err
		}

		v := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.run.Emit(v); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(v); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors enqueues each not-yet-discovered neighbor of v in
// adjacency order.
func (w *walker) enqueueNeighbors(v int) error {
	nbs, err := w.run.Neighbors(v)
	if err != nil {
		return err
	}
	for _, nb := range nbs {
		if !w.run.Visited[nb.To] {
			w.enqueue(nb.To)
		}
	}

	return nil
}
