// Package searchtest holds fixtures and brute-force oracles shared by the
// search package tests. Oracles are deliberately naive: they iterate over the
// edge catalog instead of adjacency so they never share code with the
// algorithms they check.
package searchtest

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/builder"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/scenario"
)

// Unreachable marks a vertex with no path from the source.
const Unreachable = -1

// GraphOne returns example graph 1 or fails the test.
func GraphOne(t testing.TB) *core.Graph {
	t.Helper()
	g, err := scenario.GraphOne()
	require.NoError(t, err)

	return g
}

// GraphTwo returns example graph 2 or fails the test.
func GraphTwo(t testing.TB) *core.Graph {
	t.Helper()
	g, err := scenario.GraphTwo()
	require.NoError(t, err)

	return g
}

// Disconnected returns A—B:1 and C—D:1 with no edge between the pairs.
func Disconnected(t testing.TB) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(4, []string{"A", "B", "C", "D"})
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))

	return g
}

// Random returns a seeded sparse graph with a spanning path, so every vertex
// is reachable from every other one. Costs are uniform in [1,9].
func Random(t testing.TB, n int, p float64, seed int64) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(n,
		[]builder.BuilderOption{
			builder.WithSeed(seed),
			builder.WithLabelScheme(builder.AlphaLabel),
			builder.WithWeightFn(builder.UniformWeightFn(1, 9)),
		},
		builder.Path(),
		builder.RandomSparse(p),
	)
	require.NoError(t, err)

	return g
}

// HopDistances returns edge-count distances from src by repeated relaxation
// over the edge catalog; Unreachable for vertices with no path.
func HopDistances(g *core.Graph, src int) []int {
	n := g.VertexCount()
	dist := make([]int, n)
	for i := range dist {
		dist[i] = Unreachable
	}
	dist[src] = 0
	edges := g.Edges()
	for changed := true; changed; {
		changed = false
		for _, e := range edges {
			for _, d := range [][2]int{{e.From, e.To}, {e.To, e.From}} {
				u, v := d[0], d[1]
				if dist[u] == Unreachable {
					continue
				}
				if dist[v] == Unreachable || dist[u]+1 < dist[v] {
					dist[v] = dist[u] + 1
					changed = true
				}
			}
		}
	}

	return dist
}

// MinCost enumerates every simple path from src to dst and returns the
// cheapest total cost. ok is false when dst is unreachable. Exponential:
// only for graphs of a dozen vertices or so.
func MinCost(g *core.Graph, src, dst int) (best int64, ok bool) {
	n := g.VertexCount()
	cost := make([][]int64, n)
	for i := range cost {
		cost[i] = make([]int64, n)
		for j := range cost[i] {
			cost[i][j] = math.MaxInt64
		}
	}
	for _, e := range g.Edges() {
		if e.Cost < cost[e.From][e.To] {
			cost[e.From][e.To] = e.Cost
			cost[e.To][e.From] = e.Cost
		}
	}

	best = math.MaxInt64
	onPath := make([]bool, n)
	var walk func(u int, acc int64)
	walk = func(u int, acc int64) {
		if u == dst {
			if acc < best {
				best = acc
			}
			return
		}
		onPath[u] = true
		for v := 0; v < n; v++ {
			if !onPath[v] && cost[u][v] != math.MaxInt64 {
				walk(v, acc+cost[u][v])
			}
		}
		onPath[u] = false
	}
	walk(src, 0)

	return best, best != math.MaxInt64
}

// PathCost sums the cheapest edge between each consecutive pair of vertices
// and fails the test if some pair is not adjacent.
func PathCost(t testing.TB, g *core.Graph, vertices []int) int64 {
	t.Helper()
	var total int64
	for i := 1; i < len(vertices); i++ {
		nbs, err := g.Neighbors(vertices[i-1])
		require.NoError(t, err)
		step := int64(math.MaxInt64)
		for _, nb := range nbs {
			if nb.To == vertices[i] && nb.Cost < step {
				step = nb.Cost
			}
		}
		require.NotEqual(t, int64(math.MaxInt64), step, "%d and %d are not adjacent", vertices[i-1], vertices[i])
		total += step
	}

	return total
}

// RequireSimple fails the test unless every id is a vertex of g and none
// repeats.
func RequireSimple(t testing.TB, g *core.Graph, vertices []int) {
	t.Helper()
	seen := make(map[int]bool, len(vertices))
	for _, v := range vertices {
		require.True(t, g.HasVertex(v), "vertex %d out of range", v)
		require.False(t, seen[v], "vertex %d repeated in %v", v, vertices)
		seen[v] = true
	}
}

// RequireWalk fails the test unless consecutive vertices are adjacent.
func RequireWalk(t testing.TB, g *core.Graph, vertices []int) {
	t.Helper()
	PathCost(t, g, vertices)
}
