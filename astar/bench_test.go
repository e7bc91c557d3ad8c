package astar_test

import (
	"testing"

	"github.com/katalvlaran/pathsearch/astar"
)

// BenchmarkCompute measures in-place searches corner to corner on a 100×100 lattice.
func BenchmarkCompute(b *testing.B) {
	grid := buildLattice(100, 100) // pre-build graph once
	start, goal := grid[0][0], grid[0][99]
	b.ResetTimer() // exclude graph construction
	for i := 0; i < b.N; i++ {
		_, _ = astar.Compute(start, goal)
	}
}

// BenchmarkComputeStandard is BenchmarkCompute under CostModelStandard.
func BenchmarkComputeStandard(b *testing.B) {
	grid := buildLattice(100, 100)
	start, goal := grid[0][0], grid[0][99]
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.Compute(start, goal, astar.WithCostModel(astar.CostModelStandard))
	}
}

// BenchmarkComputeShared measures side-table searches on the same lattice.
func BenchmarkComputeShared(b *testing.B) {
	grid := buildLattice(100, 100)
	start, goal := grid[0][0], grid[0][99]
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.ComputeShared(start, goal)
	}
}
