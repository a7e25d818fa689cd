// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// impl_complete.go - Complete() and Star() constructors.
//
// Contract:
//   - Complete: n ≥ 1; emits i—j for every i<j, i asc then j asc.
//   - Star: n ≥ 2; vertex 0 is the center; emits 0—i for i=1..n-1.
//
// Complexity:
//   - Complete: O(n²) edges. Star: O(n) edges.

package builder

import "github.com/katalvlaran/lvsearch/core"

const (
	methodComplete   = "Complete"
	methodStar       = "Star"
	minCompleteNodes = 1
	minStarNodes     = 2
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := atLeast(methodComplete, g, minCompleteNodes); err != nil {
			return err
		}
		n := g.VertexCount()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(methodComplete, g, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Star returns a Constructor that joins vertex 0 to every other vertex.
func Star() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := atLeast(methodStar, g, minStarNodes); err != nil {
			return err
		}
		for i := 1; i < g.VertexCount(); i++ {
			if err := addEdge(methodStar, g, cfg, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}
