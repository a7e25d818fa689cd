package dfs

import (
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/search"
)

// frame is one level of the emulated recursion: vertex v with its adjacency
// and the index of the next entry to inspect.
type frame struct {
	v    int
	nbs  []core.AdjacencyEntry
	next int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	run   *search.Run
	stack []frame
}

// DFS performs a pre-order depth-first traversal of g from start and returns
// the visit order with StatusFound. Only the start's connected component is
// visited.
func DFS(g *core.Graph, start int, opts ...search.Option) (*search.Result, error) {
	run, err := search.Begin(g, search.DFS, opts, search.Start(start))
	if err != nil {
		return nil, err
	}

	w := &dfsWalker{run: run}
	if err = w.traverse(start); err != nil {
		return nil, err
	}

	return run.Found(run.Order()), nil
}

// traverse runs the frame loop rooted at root.
func (w *dfsWalker) traverse(root int) error {
	if err := w.visit(root); err != nil {
		return err
	}

	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		if top.next == len(top.nbs) {
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}

		nid := top.nbs[top.next].To
		top.next++
		if w.run.Visited[nid] {
			continue
		}
		// top may be invalidated by the append inside visit
		if err := w.visit(nid); err != nil {
			return err
		}
	}

	return nil
}

// visit marks v, emits it and pushes its frame.
func (w *dfsWalker) visit(v int) error {
	if err := w.run.Step(); err != nil {
		return err
	}
	w.run.Visited[v] = true
	if err := w.run.Emit(v); err != nil {
		return err
	}

	nbs, err := w.run.Neighbors(v)
	if err != nil {
		return err
	}
	w.stack = append(w.stack, frame{v: v, nbs: nbs})

	return nil
}
