// Package dijkstra_test contains unit tests for the shortest-path search.
// These tests validate input handling, the example scenarios, agreement with
// exhaustive enumeration and branch-and-bound, and edge cases such as
// single-vertex, parallel-edge and disconnected graphs.
package dijkstra_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/branchbound"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/dijkstra"
	"github.com/katalvlaran/lvsearch/internal/searchtest"
	"github.com/katalvlaran/lvsearch/search"
)

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestShortestPath_NilGraph(t *testing.T) {
	_, err := dijkstra.ShortestPath(nil, 0, 1)
	if !errors.Is(err, search.ErrGraphNil) {
		t.Fatalf("Expected ErrGraphNil, got %v", err)
	}
}

func TestShortestPath_VertexOutOfRange(t *testing.T) {
	g := searchtest.GraphOne(t)
	for _, tc := range []struct{ start, goal int }{{-1, 7}, {8, 7}, {0, 8}, {0, -5}} {
		_, err := dijkstra.ShortestPath(g, tc.start, tc.goal)
		if !errors.Is(err, core.ErrVertexOutOfRange) {
			t.Fatalf("start=%d goal=%d: expected ErrVertexOutOfRange, got %v", tc.start, tc.goal, err)
		}
	}
}

// ------------------------------------------------------------------------
// 2. Basic Functionality: example graphs and small hand-built graphs.
// ------------------------------------------------------------------------

func TestShortestPath_Scenarios(t *testing.T) {
	one := searchtest.GraphOne(t)
	two := searchtest.GraphTwo(t)

	cases := []struct {
		name string
		g    *core.Graph
		goal int
		want []string
		cost int64
	}{
		{"one to S", one, 0, []string{"S"}, 0},
		{"one to B", one, 2, []string{"S", "B"}, 3},
		{"one to D", one, 4, []string{"S", "A", "D"}, 9},
		{"one to E", one, 5, []string{"S", "B", "C", "E"}, 8},
		{"one to Z", one, 7, []string{"S", "B", "C", "E", "Z"}, 10},
		{"two to D", two, 3, []string{"A", "B", "D"}, 7},
		{"two to F", two, 5, []string{"A", "B", "D", "F"}, 10},
		{"two to G", two, 6, []string{"A", "C", "E", "G"}, 10},
		{"two to Z", two, 7, []string{"A", "B", "D", "F", "Z"}, 12},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := dijkstra.ShortestPath(tc.g, 0, tc.goal)
			require.NoError(t, err)
			assert.Equal(t, search.StatusFound, res.Status)
			assert.Equal(t, tc.want, res.Path)
			assert.True(t, res.HasCost)
			assert.Equal(t, tc.cost, res.Cost)
			assert.Equal(t, tc.cost, searchtest.PathCost(t, tc.g, res.Vertices))
		})
	}
}

func TestShortestPath_SimpleTriangle(t *testing.T) {
	// Graph: A—B(1), B—C(2), A—C(5).
	g, err := core.NewGraph(3, []string{"A", "B", "C"})
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 2))
	require.NoError(t, g.AddEdge(0, 2, 5))

	res, err := dijkstra.ShortestPath(g, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Path)
	assert.Equal(t, int64(3), res.Cost)
}

func TestShortestPath_EqualCostKeepsFirst(t *testing.T) {
	// Square A—B—D and A—C—D, every edge costs 1: B is discovered first.
	g, err := core.NewGraph(4, []string{"A", "B", "C", "D"})
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(0, 2, 1))
	require.NoError(t, g.AddEdge(1, 3, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))

	res, err := dijkstra.ShortestPath(g, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D"}, res.Path)
	assert.Equal(t, int64(2), res.Cost)
}

func TestShortestPath_ParallelEdges(t *testing.T) {
	g, err := core.NewGraph(2, []string{"A", "B"})
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 9))
	require.NoError(t, g.AddEdge(1, 0, 4))
	require.NoError(t, g.AddEdge(0, 1, 6))

	res, err := dijkstra.ShortestPath(g, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(4), res.Cost)
	assert.Equal(t, []string{"B", "A"}, res.Path)
}

// ------------------------------------------------------------------------
// 3. Edge cases: single vertex, unreachable goal.
// ------------------------------------------------------------------------

func TestShortestPath_SingleVertex(t *testing.T) {
	g, err := core.NewGraph(1, []string{"X"})
	require.NoError(t, err)
	res, err := dijkstra.ShortestPath(g, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"X"}, res.Path)
	assert.Zero(t, res.Cost)
	assert.True(t, res.HasCost)
}

func TestShortestPath_Unreachable(t *testing.T) {
	res, err := dijkstra.ShortestPath(searchtest.Disconnected(t), 0, 2)
	require.NoError(t, err)
	assert.Equal(t, search.StatusNoPath, res.Status)
	assert.Empty(t, res.Path)
	assert.False(t, res.HasCost)
	assert.ErrorIs(t, res.Err(), search.ErrNoPathFound)
}

// TestShortestPath_MaxCostEdges builds a graph whose expensive detour sums to
// more than math.MaxInt64 / 2. The cheap route must win and the detour's
// middle vertex must still report its exact cost.
func TestShortestPath_MaxCostEdges(t *testing.T) {
	g, err := core.NewGraph(4, []string{"S", "X", "G", "Y"})
	require.NoError(t, err)
	c := g.MaxCost()
	require.NoError(t, g.AddEdge(0, 1, c))
	require.NoError(t, g.AddEdge(1, 2, c))
	require.NoError(t, g.AddEdge(0, 3, 1))
	require.NoError(t, g.AddEdge(3, 2, 1))
	require.ErrorIs(t, g.AddEdge(0, 2, math.MaxInt64), core.ErrCostOverflow)

	res, err := dijkstra.ShortestPath(g, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "Y", "G"}, res.Path)
	assert.Equal(t, int64(2), res.Cost)

	res, err = dijkstra.ShortestPath(g, 0, 1)
	require.NoError(t, err)
	assert.True(t, res.Found())
	assert.Equal(t, []string{"S", "X"}, res.Path)
	assert.Equal(t, c, res.Cost)
}

func TestShortestPath_MaxCostChain(t *testing.T) {
	for _, n := range []int{2, 3, 8} {
		labels := make([]string, n)
		for i := range labels {
			labels[i] = string(rune('A' + i))
		}
		g, err := core.NewGraph(n, labels)
		require.NoError(t, err)
		for v := 0; v+1 < n; v++ {
			require.NoError(t, g.AddEdge(v, v+1, g.MaxCost()))
		}

		res, err := dijkstra.ShortestPath(g, 0, n-1, search.WithMaxSteps(10*n))
		require.NoError(t, err, "n=%d", n)
		assert.True(t, res.Found(), "n=%d", n)
		assert.Equal(t, labels, res.Path, "n=%d", n)
		assert.Equal(t, int64(n-1)*g.MaxCost(), res.Cost, "n=%d", n)
		assert.Less(t, res.Cost, dijkstra.Inf, "n=%d", n)
	}
}

// ------------------------------------------------------------------------
// 4. Properties: brute force, branch-and-bound agreement, idempotence.
// ------------------------------------------------------------------------

func TestShortestPath_MatchesBruteForce(t *testing.T) {
	for _, g := range []*core.Graph{searchtest.GraphOne(t), searchtest.GraphTwo(t)} {
		for goal := 0; goal < g.VertexCount(); goal++ {
			want, ok := searchtest.MinCost(g, 0, goal)
			require.True(t, ok)
			res, err := dijkstra.ShortestPath(g, 0, goal)
			require.NoError(t, err)
			assert.Equal(t, want, res.Cost, "goal %d", goal)
		}
	}

	for seed := int64(100); seed < 130; seed++ {
		g := searchtest.Random(t, 10, 0.25, seed)
		start, goal := int(seed%10), 9-int(seed%10)
		want, ok := searchtest.MinCost(g, start, goal)
		require.True(t, ok)
		res, err := dijkstra.ShortestPath(g, start, goal)
		require.NoError(t, err)
		require.Equal(t, want, res.Cost, "seed %d", seed)
		require.Equal(t, want, searchtest.PathCost(t, g, res.Vertices), "seed %d", seed)
		searchtest.RequireSimple(t, g, res.Vertices)
	}
}

func TestShortestPath_AgreesWithBranchAndBound(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := searchtest.Random(t, 14, 0.2, seed)
		for goal := 0; goal < g.VertexCount(); goal += 3 {
			dp, err := dijkstra.ShortestPath(g, 0, goal)
			require.NoError(t, err)
			bb, err := branchbound.Search(g, 0, goal)
			require.NoError(t, err)
			require.True(t, bb.Found())
			assert.Equal(t, dp.Cost, searchtest.PathCost(t, g, bb.Vertices), "seed=%d goal=%d", seed, goal)
		}
	}
}

func TestShortestPath_Idempotent(t *testing.T) {
	g := searchtest.GraphOne(t)
	a, err := dijkstra.ShortestPath(g, 0, 6)
	require.NoError(t, err)
	b, err := dijkstra.ShortestPath(g, 0, 6)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// ------------------------------------------------------------------------
// 5. Options: step bound and cancellation.
// ------------------------------------------------------------------------

func TestShortestPath_Limits(t *testing.T) {
	g := searchtest.GraphTwo(t)
	_, err := dijkstra.ShortestPath(g, 0, 7, search.WithMaxSteps(3))
	require.ErrorIs(t, err, search.ErrStepLimit)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dijkstra.ShortestPath(g, 0, 7, search.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}
