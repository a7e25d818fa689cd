package suite

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvsearch/bestfirst"
	"github.com/katalvlaran/lvsearch/bfs"
	"github.com/katalvlaran/lvsearch/branchbound"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/dfs"
	"github.com/katalvlaran/lvsearch/dijkstra"
	"github.com/katalvlaran/lvsearch/hillclimb"
	"github.com/katalvlaran/lvsearch/search"
)

// ErrUnknownAlgorithm is returned by Parse and Run for a name that matches no
// search.
var ErrUnknownAlgorithm = errors.New("suite: unknown algorithm")

// Func is the common shape of a goal-directed search. Traversals that have no
// goal ignore it.
type Func func(g *core.Graph, start, goal int, opts ...search.Option) (*search.Result, error)

// traversal adapts a start-only search to Func.
func traversal(fn func(*core.Graph, int, ...search.Option) (*search.Result, error)) Func {
	return func(g *core.Graph, start, _ int, opts ...search.Option) (*search.Result, error) {
		return fn(g, start, opts...)
	}
}

var registry = []struct {
	name    search.Algorithm
	aliases []string
	run     Func
}{
	{search.BFS, []string{"bfs", "breadth-first"}, traversal(bfs.BFS)},
	{search.DFS, []string{"dfs", "depth-first"}, traversal(dfs.DFS)},
	{search.BestFirst, []string{"best-first", "bestfirst", "greedy"}, bestfirst.Search},
	{search.HillClimbing, []string{"hill-climbing", "hillclimb", "hill"}, hillclimb.Search},
	{search.BranchAndBound, []string{"branch-and-bound", "branchbound", "bnb", "ucs"}, branchbound.Search},
	{search.ShortestPath, []string{"dijkstra", "dp", "shortest-path"}, dijkstra.ShortestPath},
}

// Names returns every algorithm in presentation order.
func Names() []search.Algorithm {
	out := make([]search.Algorithm, len(registry))
	for i, r := range registry {
		out[i] = r.name
	}

	return out
}

// Parse resolves a display name or alias, ignoring case and surrounding space.
func Parse(name string) (search.Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, r := range registry {
		if key == strings.ToLower(string(r.name)) {
			return r.name, nil
		}
		for _, a := range r.aliases {
			if key == a {
				return r.name, nil
			}
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Lookup returns the search registered under name.
func Lookup(name search.Algorithm) (Func, error) {
	for _, r := range registry {
		if r.name == name {
			return r.run, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Run executes the named search. BFS and DFS ignore goal.
func Run(g *core.Graph, name search.Algorithm, start, goal int, opts ...search.Option) (*search.Result, error) {
	fn, err := Lookup(name)
	if err != nil {
		return nil, err
	}

	return fn(g, start, goal, opts...)
}

// All runs every search in Names order and stops at the first error. A
// StatusNoPath result is not an error.
func All(g *core.Graph, start, goal int, opts ...search.Option) ([]*search.Result, error) {
	o, err := search.Resolve(opts...)
	if err != nil {
		return nil, fmt.Errorf("suite: %w", err)
	}

	var res *search.Result
	results := make([]*search.Result, 0, len(registry))
	for _, r := range registry {
		if res, err = r.run(g, start, goal, opts...); err != nil {
			return results, err
		}
		o.Logger.Debugf("suite: %s -> %s (%d vertices)", r.name, res.Status, len(res.Vertices))
		results = append(results, res)
	}

	return results, nil
}
