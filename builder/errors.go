// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Constructors never panic at runtime; validation panics are confined to
//     option constructor functions (WithX..., XWeightFn).

package builder

import "errors"

// ErrTooFewVertices indicates that the graph has fewer vertices than the
// requested topology needs (e.g. Cycle on 2 vertices).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrBadSize indicates that a shape parameter does not fit the vertex count
// (e.g. Grid rows*cols != n).
var ErrBadSize = errors.New("builder: invalid size/length")

// ErrInvalidProbability indicates that a probability value is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a failed core insertion.
var ErrConstructFailed = errors.New("builder: construction failed")
