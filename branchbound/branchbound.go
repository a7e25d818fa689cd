package branchbound

import (
	"github.com/benbjohnson/immutable"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/search"
)

// path is a frontier entry: the vertices from start to its tip.
type path = *immutable.List[int]

func tip(p path) int { return p.Get(p.Len() - 1) }

// Search returns the cheapest path from start to goal.
//
// Errors:
//   - search.ErrGraphNil, core.ErrVertexOutOfRange, search.ErrOptionViolation
//     for invalid input.
//   - search.ErrStepLimit, context and hook errors abort the search.
func Search(g *core.Graph, start, goal int, opts ...search.Option) (*search.Result, error) {
	run, err := search.Begin(g, search.BranchAndBound, opts, search.Start(start), search.Goal(goal))
	if err != nil {
		return nil, err
	}

	var (
		frontier search.MinQueue[path]
		nbs      []core.AdjacencyEntry
	)
	frontier.Push(0, immutable.NewList(start))

	for frontier.Len() > 0 {
		if err = run.Step(); err != nil {
			return nil, err
		}

		cost, p := frontier.Pop()
		last := tip(p)
		if run.Visited[last] {
			continue
		}
		run.Visited[last] = true

		if last == goal {
			run.Logf("goal reached, cost=%d, length=%d", cost, p.Len())
			return complete(run, p)
		}

		if nbs, err = run.Neighbors(last); err != nil {
			return nil, err
		}
		for _, nb := range nbs {
			if !run.Visited[nb.To] {
				frontier.Push(cost+nb.Cost, p.Append(nb.To))
			}
		}
	}

	return run.NoPath(nil), nil
}

// complete emits the vertices of p in order and wraps them in a result.
func complete(run *search.Run, p path) (*search.Result, error) {
	itr := p.Iterator()
	for !itr.Done() {
		_, v := itr.Next()
		if err := run.Emit(v); err != nil {
			return nil, err
		}
	}

	return run.Found(run.Order()), nil
}
