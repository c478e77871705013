package splines

import (
	"context"
	"testing"
)

// BenchmarkGroupsSequential benchmarks sequential group evaluation.
func BenchmarkGroupsSequential(b *testing.B) {
	benchmarkGroups(b, false)
}

// BenchmarkGroupsParallel benchmarks parallel group evaluation.
func BenchmarkGroupsParallel(b *testing.B) {
	benchmarkGroups(b, true)
}

func benchmarkGroups(b *testing.B, parallel bool) {
	b.Helper()

	const (
		numGroups  = 64
		numQueries = 44100
	)

	groups := makeGroups(numGroups)
	cfg := Config{
		Method: CatmullRom,
		Fill:   FillConstant(0),
		Xi:     Linspace(-0.1, 1.1, numQueries),
	}

	g, err := NewGroupInterpolator(nil, GroupOptions{Parallel: parallel})
	if err != nil {
		b.Fatalf("Failed to create group interpolator: %v", err)
	}

	b.ReportAllocs()

	for b.Loop() {
		if _, err := g.Run(context.Background(), groups, cfg); err != nil {
			b.Fatalf("Run failed: %v", err)
		}
	}
}

// BenchmarkInterpolateChunked benchmarks chunk-parallel evaluation of one
// large query sequence.
func BenchmarkInterpolateChunked(b *testing.B) {
	x := Linspace(0, 1, 1000)
	y := make([]float64, len(x))
	for i := range x {
		y[i] = x[i] * x[i]
	}
	cfg := Config{Method: Cosine, Xi: Linspace(0, 1, 1<<20), Parallel: true}

	b.ReportAllocs()

	for b.Loop() {
		if _, err := Interpolate(x, y, cfg); err != nil {
			b.Fatalf("Interpolate failed: %v", err)
		}
	}
}
