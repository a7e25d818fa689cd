// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// api.go - public entry point and topology factories.
//
// Design contract:
//   - One orchestrator: BuildGraph(n, bopts, cons...). Creates g with n
//     labelled vertices, resolves cfg, runs cons in order.
//   - Determinism: same n/options/seed and constructor order ⇒ identical
//     graphs, including adjacency order.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

// Constructor adds edges to g using the resolved builderConfig. Constructors
// MUST validate early, return sentinel errors (no panics), and emit edges in
// a stable, documented order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a core.Graph with n vertices labelled by the configured
// label scheme, then applies all constructors in order. Constructors compose:
// Path() followed by Star() overlays both edge sets.
//
// Errors:
//   - core.ErrInvalidArgument if n < 0.
//   - ErrConstructFailed for a nil constructor.
//   - Constructor sentinels, wrapped with "BuildGraph: %w".
func BuildGraph(n int, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)

	if n < 0 {
		return nil, fmt.Errorf("BuildGraph: n=%d: %w", n, core.ErrInvalidArgument)
	}
	labels := make([]string, n)
	for i := range labels {
		labels[i] = cfg.labelFn(i)
	}
	g, err := core.NewGraph(n, labels)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addEdge draws a cost from cfg and inserts u—v, wrapping failures with the
// constructor name.
func addEdge(method string, g *core.Graph, cfg builderConfig, u, v int) error {
	w := cfg.weightFn(cfg.rng)
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d—%d, w=%d): %w: %v", method, u, v, w, ErrConstructFailed, err)
	}

	return nil
}

// atLeast reports ErrTooFewVertices when g has fewer than min vertices.
func atLeast(method string, g *core.Graph, min int) error {
	if n := g.VertexCount(); n < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, min, ErrTooFewVertices)
	}

	return nil
}
