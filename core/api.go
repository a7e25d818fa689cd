// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: read-only getters over the fixed vertex set (counts, labels, membership).
// Policy:
//   - No locking is needed for labels and vertexCount: both are immutable after NewGraph.

package core

import "fmt"

// VertexCount returns the number of vertices fixed at construction.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	return g.vertexCount
}

// HasVertex reports whether v is a valid vertex id for g.
// Complexity: O(1).
func (g *Graph) HasVertex(v int) bool {
	return v >= 0 && v < g.vertexCount
}

// Label returns the display label of vertex v.
//
// Errors:
//   - ErrVertexOutOfRange if v is not a vertex of g.
//
// Complexity: O(1).
func (g *Graph) Label(v int) (string, error) {
	if err := g.CheckVertex("vertex", v); err != nil {
		return "", err
	}

	return g.labels[v], nil
}

// Labels returns a copy of all labels, indexed by vertex id.
func (g *Graph) Labels() []string {
	out := make([]string, len(g.labels))
	copy(out, g.labels)

	return out
}

// LabelsOf maps a sequence of vertex ids to their labels, preserving order.
// Ids outside the graph render as "?" so that a diagnostic print never panics.
func (g *Graph) LabelsOf(ids []int) []string {
	out := make([]string, len(ids))
	for i, v := range ids {
		if g.HasVertex(v) {
			out[i] = g.labels[v]
		} else {
			out[i] = "?"
		}
	}

	return out
}

// CheckVertex returns ErrVertexOutOfRange, wrapped with role ("from",
// "start", "goal", ...) and the offending id, unless v is a vertex of g.
func (g *Graph) CheckVertex(role string, v int) error {
	if g.HasVertex(v) {
		return nil
	}

	return fmt.Errorf("%w: %s=%d not in [0,%d)", ErrVertexOutOfRange, role, v, g.vertexCount)
}
