// Package builder provides helper functions and types
// for configuring edge-cost distributions in graph constructors.
package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the cost assigned to each edge when no custom
// WeightFn is provided.
const DefaultEdgeWeight int64 = 1

// WeightFn produces an edge cost given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed and never return a
// negative cost.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 0.
func ConstantWeightFn(value int64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %d", value))
	}

	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max] inclusive.
// Panics if min < 0 or max < min, or if the range holds more than
// math.MaxInt64 values and so cannot be sampled by Int63n.
// If rng is nil, yields min to maintain a deterministic fallback.
func UniformWeightFn(min, max int64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}
	if max-min == math.MaxInt64 {
		panic(fmt.Sprintf("UniformWeightFn: range [%d, %d] too wide", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil {
			return min
		}
		return min + rng.Int63n(max-min+1)
	}
}
