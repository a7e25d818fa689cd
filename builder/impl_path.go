// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// impl_path.go - Path() and Cycle() constructors.
//
// Contract:
//   - Path: n ≥ 2; emits (i-1)—i for i=1..n-1 in increasing order.
//   - Cycle: n ≥ 3; emits the Path edges, then (n-1)—0.
//
// Complexity:
//   - Time: O(n). Space: O(1) extra.

package builder

import "github.com/katalvlaran/lvsearch/core"

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor that links all vertices into a simple path P_n.
func Path() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := atLeast(methodPath, g, minPathNodes); err != nil {
			return err
		}

		return emitPath(methodPath, g, cfg)
	}
}

// Cycle returns a Constructor that links all vertices into a simple cycle C_n.
func Cycle() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := atLeast(methodCycle, g, minCycleNodes); err != nil {
			return err
		}
		if err := emitPath(methodCycle, g, cfg); err != nil {
			return err
		}

		return addEdge(methodCycle, g, cfg, g.VertexCount()-1, 0)
	}
}

func emitPath(method string, g *core.Graph, cfg builderConfig) error {
	for i := 1; i < g.VertexCount(); i++ {
		if err := addEdge(method, g, cfg, i-1, i); err != nil {
			return err
		}
	}

	return nil
}
