package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/builder"
)

func TestDefaultWeightFn(t *testing.T) {
	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(nil))
}

func TestConstantWeightFn(t *testing.T) {
	fn := builder.ConstantWeightFn(7)
	assert.Equal(t, int64(7), fn(nil))
	assert.Equal(t, int64(7), fn(rand.New(rand.NewSource(1))))
	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
}

func TestUniformWeightFn(t *testing.T) {
	fn := builder.UniformWeightFn(2, 4)
	assert.Equal(t, int64(2), fn(nil), "nil rng falls back to min")

	rng := rand.New(rand.NewSource(3))
	seen := map[int64]bool{}
	for i := 0; i < 200; i++ {
		w := fn(rng)
		assert.GreaterOrEqual(t, w, int64(2))
		assert.LessOrEqual(t, w, int64(4))
		seen[w] = true
	}
	assert.Len(t, seen, 3)

	assert.Panics(t, func() { builder.UniformWeightFn(-1, 3) })
	assert.Panics(t, func() { builder.UniformWeightFn(5, 3) })
	assert.Panics(t, func() { builder.UniformWeightFn(0, math.MaxInt64) })
}

func TestUniformWeightFn_WideRange(t *testing.T) {
	var fn builder.WeightFn
	require.NotPanics(t, func() { fn = builder.UniformWeightFn(1, math.MaxInt64) })
	rng := rand.New(rand.NewSource(9))
	for i := 0; i < 50; i++ {
		assert.GreaterOrEqual(t, fn(rng), int64(1))
	}

	require.NotPanics(t, func() { fn = builder.UniformWeightFn(0, math.MaxInt64-1) })
	for i := 0; i < 50; i++ {
		assert.GreaterOrEqual(t, fn(rng), int64(0))
	}
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithLabelScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
}
