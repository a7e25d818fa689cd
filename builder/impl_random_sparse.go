// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// impl_random_sparse.go - RandomSparse(p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator: include each unordered pair {i,j}, i<j,
//     independently with probability p.
//
// Contract:
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - Costs come from cfg.weightFn(cfg.rng), drawn right after each accepted trial.
//
// Determinism:
//   - Stable trial order: i asc, then j asc. Fixed seed ⇒ identical graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

const (
	methodRandomSparse = "RandomSparse"
	probMin            = 0.0
	probMax            = 1.0
)

// RandomSparse returns a Constructor that samples edges over all vertex pairs
// with independent probability p.
func RandomSparse(p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		n := g.VertexCount()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				var keep bool
				switch {
				case p == probMax:
					keep = true
				case p == probMin:
					keep = false
				default:
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err := addEdge(methodRandomSparse, g, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
