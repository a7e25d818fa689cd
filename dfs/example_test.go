package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/dfs"
	"github.com/katalvlaran/lvsearch/scenario"
)

// ExampleDFS walks example graph 1 depth-first from S.
func ExampleDFS() {
	g, err := scenario.GraphOne()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := dfs.DFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res)
	// Output:
	// DFS: S A B C D F E Z
}

// ExampleDFS_diamond demonstrates pre-order on a diamond-shaped graph.
// Graph structure:
//
//	  A
//	 / \
//	B   C
//	 \ /
//	  D
//	 / \
//	E   F
//
// From A the walk dives A→B→D, then reaches C through D before E and F.
func ExampleDFS_diamond() {
	g, _ := core.NewGraph(6, []string{"A", "B", "C", "D", "E", "F"})
	for _, e := range [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}, {3, 4}, {3, 5}} {
		_ = g.AddEdge(e[0], e[1], 1)
	}

	res, err := dfs.DFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path)
	// Output:
	// [A B D C E F]
}
