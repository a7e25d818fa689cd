// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, AdjacencyEntry and Edge types, sentinel errors, and NewGraph.
// Concurrency:
//   - mu guards adjacency and edges; labels and vertexCount are fixed at construction.

package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidArgument is the root of every validation failure in this module.
	// Callers branch on it with errors.Is.
	ErrInvalidArgument = errors.New("core: invalid argument")

	// ErrLabelCount indicates len(labels) differs from the requested vertex count.
	ErrLabelCount = fmt.Errorf("%w: label count does not match vertex count", ErrInvalidArgument)

	// ErrVertexOutOfRange indicates a vertex id outside 0..VertexCount()-1.
	ErrVertexOutOfRange = fmt.Errorf("%w: vertex id out of range", ErrInvalidArgument)

	// ErrNegativeCost indicates AddEdge received a cost below zero.
	ErrNegativeCost = fmt.Errorf("%w: negative edge cost", ErrInvalidArgument)

	// ErrCostOverflow indicates AddEdge received a cost above MaxCost, which
	// could overflow int64 when summed along a path.
	ErrCostOverflow = fmt.Errorf("%w: edge cost too large", ErrInvalidArgument)
)

// AdjacencyEntry is one directed adjacency record: the neighbor reached and
// the cost of the edge that reaches it. Every undirected edge produces two.
type AdjacencyEntry struct {
	// To is the neighbor vertex id.
	To int

	// Cost is the non-negative edge weight.
	Cost int64
}

// Edge is one undirected edge as it was inserted by AddEdge.
type Edge struct {
	From int
	To   int
	Cost int64
}

// Graph is a labelled, weighted, undirected graph over dense integer vertex ids.
//
// The vertex set is fixed by NewGraph. Edges are added during a setup phase;
// afterwards the graph is treated as read-only by every search.
// adjacency is an arena indexed by vertex id: adjacency[v] holds v's entries
// in insertion order, which is the traversal order seen by all searches.
type Graph struct {
	mu sync.RWMutex // guards adjacency and edges

	vertexCount int
	labels      []string

	adjacency [][]AdjacencyEntry
	edges     []Edge
}

// NewGraph allocates a Graph with vertexCount vertices whose display labels
// are labels[0..vertexCount-1]. The labels slice is copied.
//
// Errors:
//   - ErrInvalidArgument if vertexCount < 0.
//   - ErrLabelCount if len(labels) != vertexCount.
//
// Complexity: O(V).
func NewGraph(vertexCount int, labels []string) (*Graph, error) {
	if vertexCount < 0 {
		return nil, fmt.Errorf("%w: negative vertex count %d", ErrInvalidArgument, vertexCount)
	}
	if len(labels) != vertexCount {
		return nil, fmt.Errorf("%w: got %d labels for %d vertices", ErrLabelCount, len(labels), vertexCount)
	}

	g := &Graph{
		vertexCount: vertexCount,
		labels:      make([]string, vertexCount),
		adjacency:   make([][]AdjacencyEntry, vertexCount),
	}
	copy(g.labels, labels)
	for v := range g.adjacency {
		g.adjacency[v] = []AdjacencyEntry{}
	}

	return g, nil
}
