// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: neighborhood queries.
// Determinism:
//   - Neighbors() returns entries in insertion order. BFS/DFS visit order and
//     priority tie-breaking depend on it, so the order is part of the contract.

package core

// Neighbors returns the adjacency entries of v in insertion order.
//
// Implementation:
//   - Stage 1: Validate v (ErrVertexOutOfRange).
//   - Stage 2: Copy adjacency[v] under the read lock.
//
// Behavior highlights:
//   - The returned slice is independent of the graph; callers may keep it.
//   - Parallel edges appear once per AddEdge call.
//
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(v int) ([]AdjacencyEntry, error) {
	if err := g.CheckVertex("vertex", v); err != nil {
		return nil, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]AdjacencyEntry, len(g.adjacency[v]))
	copy(out, g.adjacency[v])

	return out, nil
}

// Degree returns the number of adjacency entries of v.
// Parallel edges count once each; a self-loop counts twice.
func (g *Graph) Degree(v int) (int, error) {
	if err := g.CheckVertex("vertex", v); err != nil {
		return 0, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[v]), nil
}
