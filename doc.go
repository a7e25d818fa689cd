// Package lvsearch is a small library of classical graph searches over a
// weighted undirected graph with dense integer vertex ids and string labels.
//
// Subpackages:
//
//	core/         Graph: labelled vertices, insertion-ordered adjacency, components
//	search/       shared Result, Options, run state and the stable priority queue
//	bfs/          breadth-first traversal
//	dfs/          depth-first pre-order traversal (explicit frame stack)
//	bestfirst/    greedy best-first search keyed by local edge cost
//	hillclimb/    steepest-descent hill climbing, no backtracking
//	branchbound/  branch-and-bound (uniform-cost) search over persistent paths
//	dijkstra/     minimum-cost path with total cost
//	suite/        run searches by name; explain missed goals
//	report/       line-oriented, optionally colored output
//	builder/      deterministic graph fixtures (path, cycle, grid, random…)
//	scenario/     the two example graphs
//	cmd/graphsearch  command-line driver
//
// Quick start:
//
//	g, _ := scenario.GraphOne()
//	res, err := dijkstra.ShortestPath(g, 0, 7)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res, res.Cost) // Shortest Path (Dijkstra): S B C E Z 10
//
// Every search owns its state for the duration of one call, never mutates the
// graph, and is deterministic: neighbors are taken in insertion order and
// equal priority-queue keys pop in push order.
package lvsearch
