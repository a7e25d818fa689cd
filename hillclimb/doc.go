// Package hillclimb implements steepest-descent hill climbing over a
// core.Graph, with edge cost as the objective.
//
// From the current vertex the search moves to the unvisited neighbor reached
// by the cheapest edge. Ties go to the neighbor that comes first in adjacency
// order. There is no backtracking: when the current vertex has no unvisited
// neighbor before the goal is reached, the search stops at that local optimum
// and reports StatusNoPath together with the partial walk.
//
// Each move costs one step against search.WithMaxSteps.
//
// Complexity: O(V + E) time, O(V) memory.
package hillclimb
