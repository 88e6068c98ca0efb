package pattern_test

import (
	"testing"

	"glyphforge/builder"
	"glyphforge/grid"
	"glyphforge/pattern"
)

// benchmarkAnalyze runs whole-grid analysis on a prebuilt grid.
// It resets the timer before the loop and fails on an unexpected predicate
// count.
func benchmarkAnalyze(b *testing.B, g *grid.Grid, wantPredicates int) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res := pattern.Analyze(g)
		if len(res.Predicates) != wantPredicates {
			b.Fatalf("predicate count = %d; want %d", len(res.Predicates), wantPredicates)
		}
	}
}

// BenchmarkAnalyze_Checkerboard100 measures the parity rule on a 100×100 grid.
func BenchmarkAnalyze_Checkerboard100(b *testing.B) {
	g, err := builder.Checkerboard(100, 100, 0, '#')
	if err != nil {
		b.Fatalf("Checkerboard failed: %v", err)
	}
	benchmarkAnalyze(b, g, 1)
}

// BenchmarkAnalyze_Border100 measures the outline rule on a 100×100 grid.
func BenchmarkAnalyze_Border100(b *testing.B) {
	g, err := builder.Border(100, 100, '#')
	if err != nil {
		b.Fatalf("Border failed: %v", err)
	}
	benchmarkAnalyze(b, g, 1)
}

// BenchmarkAnalyze_ScatterFallback measures the worst case: 200 scattered
// cells that fall through every tester to the enumeration.
func BenchmarkAnalyze_ScatterFallback(b *testing.B) {
	coords := make([]grid.Coord, 0, 200)
	for i := 0; i < 200; i++ {
		// Deterministic pseudo-scatter; no closed form matches it.
		coords = append(coords, grid.Coord{Row: (i * 37) % 100, Col: (i*53 + i/100) % 100})
	}
	g, err := builder.Scatter(100, 100, coords, '*')
	if err != nil {
		b.Fatalf("Scatter failed: %v", err)
	}
	benchmarkAnalyze(b, g, 1)
}
