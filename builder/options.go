// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes the behavior of constructors by mutating a
// builderConfig instance before graph construction begins.
type BuilderOption func(*builderConfig)

// WithLabelScheme sets the deterministic label generator: index -> label.
// Panics on nil to surface programmer error early.
func WithLabelScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithLabelScheme(nil)")
	}
	return func(c *builderConfig) {
		c.labelFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge cost generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}
