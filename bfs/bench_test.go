package bfs_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/blizzard/bfs"
)

// sparseBasin builds a w×h basin whose interior holds a blizzard in about a
// quarter of the cells, dense enough to force waiting but rarely blocking.
func sparseBasin(w, h int, seed int64) string {
	rng := rand.New(rand.NewSource(seed))
	var sb strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			switch {
			case y == 0 && x == 1, y == h-1 && x == w-2:
				sb.WriteByte('.')
			case x == 0 || y == 0 || x == w-1 || y == h-1:
				sb.WriteByte('#')
			case rng.Intn(4) == 0:
				sb.WriteByte("^v<>"[rng.Intn(4)])
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// BenchmarkShortestTime measures a full crossing of a 42×17 basin
// (interior 40×15, period ≤ 120). The cache is built once outside the loop.
// Complexity: O(W×H×P).
func BenchmarkShortestTime(b *testing.B) {
	grid, cache := buildCache(b, sparseBasin(42, 17, 3))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.ShortestTime(cache, grid.Start(), grid.End())
	}
}
