// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • labelFn  = DecimalLabel      ("0","1","2",...)
//   • rng      = nil               (pure/deterministic unless seeded)
//   • weightFn = DefaultWeightFn   (constant DefaultEdgeWeight)

package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Label strategy: vertex index -> display label.
	labelFn func(int) string
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for edges.
	weightFn WeightFn
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		labelFn:  DecimalLabel,
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// DecimalLabel renders an index as a base-10 string ("0","1","2",...).
func DecimalLabel(i int) string {
	return strconv.Itoa(i)
}

// AlphaLabel renders an index in spreadsheet-column style:
// 0→"A", 25→"Z", 26→"AA", 27→"AB", ...
func AlphaLabel(i int) string {
	var buf []byte
	for i++; i > 0; i = (i - 1) / 26 {
		buf = append([]byte{byte('A' + (i-1)%26)}, buf...)
	}

	return string(buf)
}
