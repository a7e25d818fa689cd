package hillclimb

import (
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/search"
)

// noMove marks the absence of an unvisited neighbor.
const noMove = -1

// Search climbs from start towards goal and returns the walk taken.
// StatusFound means the walk ends at goal; StatusNoPath means it stalled at
// a dead end.
func Search(g *core.Graph, start, goal int, opts ...search.Option) (*search.Result, error) {
	run, err := search.Begin(g, search.HillClimbing, opts, search.Start(start), search.Goal(goal))
	if err != nil {
		return nil, err
	}

	var next int
	current := start
	run.Visited[current] = true
	if err = run.Emit(current); err != nil {
		return nil, err
	}

	for current != goal {
		if err = run.Step(); err != nil {
			return nil, err
		}

		next, err = cheapestUnvisited(run, current)
		if err != nil {
			return nil, err
		}
		if next == noMove {
			run.Logf("dead end at %d", current)
			return run.NoPath(run.Order()), nil
		}

		run.Visited[next] = true
		if err = run.Emit(next); err != nil {
			return nil, err
		}
		current = next
	}

	return run.Found(run.Order()), nil
}

// cheapestUnvisited returns the unvisited neighbor of v with the smallest
// edge cost, the earliest one on ties, or noMove.
func cheapestUnvisited(run *search.Run, v int) (int, error) {
	nbs, err := run.Neighbors(v)
	if err != nil {
		return noMove, err
	}

	best, bestCost := noMove, int64(0)
	for _, nb := range nbs {
		if run.Visited[nb.To] {
			continue
		}
		if best == noMove || nb.Cost < bestCost {
			best, bestCost = nb.To, nb.Cost
		}
	}

	return best, nil
}
