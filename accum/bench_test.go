package accum_test

import (
	"math/rand"
	"testing"

	"github.com/uihilab/hydrodem/accum"
	"github.com/uihilab/hydrodem/dem"
)

// BenchmarkAccumulate measures the full fill → directions → propagation
// pipeline on a randomly generated 1000×1000 raster.
// Complexity: O(n log n)
func BenchmarkAccumulate(b *testing.B) {
	const n = 1000
	rng := rand.New(rand.NewSource(42))
	cells := make([]float64, n*n)
	for i := range cells {
		cells[i] = rng.Float64() * 500
	}
	g, err := dem.NewGrid(n, n, cells)
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = accum.Accumulate(g)
	}
}
