// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// impl_grid.go - Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighborhood.
//   • Vertex r*cols+c is cell (r,c), row-major.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • rows*cols must equal the vertex count (else ErrBadSize).
//   • For each cell in row-major order emit Right then Bottom where present.
//
// Complexity:
//   • Time: O(rows*cols). Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		if n := g.VertexCount(); rows*cols != n {
			return fmt.Errorf("%s: rows*cols=%d but n=%d: %w", methodGrid, rows*cols, n, ErrBadSize)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				v := r*cols + c
				if c+1 < cols {
					if err := addEdge(methodGrid, g, cfg, v, v+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(methodGrid, g, cfg, v, v+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
