package bestfirst

import (
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/search"
)

// Search runs greedy best-first search from start towards goal.
//
// Errors:
//   - search.ErrGraphNil, core.ErrVertexOutOfRange, search.ErrOptionViolation
//     for invalid input.
//   - search.ErrStepLimit, context and hook errors abort the search.
//
// An unreached goal is not an error: the result carries StatusNoPath.
func Search(g *core.Graph, start, goal int, opts ...search.Option) (*search.Result, error) {
	run, err := search.Begin(g, search.BestFirst, opts, search.Start(start), search.Goal(goal))
	if err != nil {
		return nil, err
	}

	var (
		frontier search.MinQueue[int]
		nbs      []core.AdjacencyEntry
	)
	frontier.Push(0, start)
	run.Visited[start] = true

	for frontier.Len() > 0 {
		if err = run.Step(); err != nil {
			return nil, err
		}

		key, v := frontier.Pop()
		run.Logf("pop %d (key=%d)", v, key)
		if err = run.Emit(v); err != nil {
			return nil, err
		}
		if v == goal {
			return run.Found(run.Order()), nil
		}

		nbs, err = run.Neighbors(v)
		if err != nil {
			return nil, err
		}
		for _, nb := range nbs {
			if run.Visited[nb.To] {
				continue
			}
			run.Visited[nb.To] = true
			frontier.Push(nb.Cost, nb.To)
		}
	}

	return run.NoPath(run.Order()), nil
}
