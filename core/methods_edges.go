// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: edge insertion and edge catalog queries.
// Determinism:
//   - Edges() returns edges in insertion order.
// Concurrency:
//   - AddEdge takes the write lock; both adjacency records are appended under it.

package core

import (
	"fmt"
	"math"
)

// AddEdge inserts the undirected edge from—to with the given cost.
//
// Implementation:
//   - Stage 1: Validate both endpoints and the cost.
//   - Stage 2: Under the write lock append (to,cost) to from's adjacency and
//     (from,cost) to to's adjacency, then record the edge in the catalog.
//
// Behavior highlights:
//   - No duplicate detection: repeating a call creates a parallel edge that
//     every search traverses independently.
//   - A self-loop (from == to) appends two records to the same vertex.
//
// Errors:
//   - ErrVertexOutOfRange if either endpoint is not a vertex of g.
//   - ErrNegativeCost if cost < 0.
//   - ErrCostOverflow if cost > MaxCost().
//
// Complexity: amortized O(1).
func (g *Graph) AddEdge(from, to int, cost int64) error {
	if err := g.CheckVertex("from", from); err != nil {
		return err
	}
	if err := g.CheckVertex("to", to); err != nil {
		return err
	}
	if cost < 0 {
		return fmt.Errorf("%w: %d—%d cost=%d", ErrNegativeCost, from, to, cost)
	}
	if limit := g.MaxCost(); cost > limit {
		return fmt.Errorf("%w: %d—%d cost=%d > %d", ErrCostOverflow, from, to, cost, limit)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.adjacency[from] = append(g.adjacency[from], AdjacencyEntry{To: to, Cost: cost})
	g.adjacency[to] = append(g.adjacency[to], AdjacencyEntry{To: from, Cost: cost})
	g.edges = append(g.edges, Edge{From: from, To: to, Cost: cost})

	return nil
}

// Edges returns a snapshot of all edges in insertion order, one record per
// undirected edge.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of undirected edges inserted so far.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// MaxCost returns the largest cost AddEdge accepts: math.MaxInt64 divided by
// the vertex count. A simple path has fewer edges than vertices, so any path
// sum, plus one more edge, stays below math.MaxInt64.
func (g *Graph) MaxCost() int64 {
	if g.vertexCount <= 1 {
		return math.MaxInt64
	}

	return math.MaxInt64 / int64(g.vertexCount)
}
