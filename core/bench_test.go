// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"testing"

	"github.com/katalvlaran/lvsearch/core"
)

// BenchmarkAddEdge measures appending edges onto a fixed vertex set.
func BenchmarkAddEdge(b *testing.B) {
	const n = 1024
	g, _ := core.NewGraph(n, make([]string, n))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge(i%n, (i*7+1)%n, int64(i%13))
	}
}

// BenchmarkNeighbors measures the copy-out cost of a neighbor lookup.
func BenchmarkNeighbors(b *testing.B) {
	const n = 64
	g, _ := core.NewGraph(n, make([]string, n))
	for v := 1; v < n; v++ {
		_ = g.AddEdge(0, v, int64(v))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Neighbors(0)
	}
}
