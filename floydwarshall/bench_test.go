package floydwarshall_test

import (
	"testing"

	"github.com/katalvlaran/apsp/densegraph"
	"github.com/katalvlaran/apsp/floydwarshall"
)

// buildSynthetic builds the n-vertex benchmark graph: a directed edge u→v
// wherever (u+v)%7 == 0 and u != v, with weight (u+v)%20 - 10. Weights span
// [-10, 9], so the graph generally contains negative cycles; the benchmark
// measures the full relaxation either way, since cycle detection only runs
// after the triple loop completes.
func buildSynthetic(n int) *densegraph.Graph {
	g, _ := densegraph.New(n)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u != v && (u+v)%7 == 0 {
				g.AddDirectedEdge(u, v, int64((u+v)%20-10))
			}
		}
	}

	return g
}

// BenchmarkSolve_100 measures a full solve (snapshot + relaxation + cycle
// scan) on a synthetic 100-vertex graph.
func BenchmarkSolve_100(b *testing.B) {
	const n = 100
	g := buildSynthetic(n)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		// Solve is single-shot, so each iteration needs a fresh solver.
		s, err := floydwarshall.New(g)
		if err != nil {
			b.Fatal(err)
		}
		_ = s.Solve() // negative-cycle failure is an expected outcome here
	}
}

// BenchmarkSolve_300 is the same workload at 3× the vertex count, for
// observing the O(V³) scaling.
func BenchmarkSolve_300(b *testing.B) {
	const n = 300
	g := buildSynthetic(n)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		s, err := floydwarshall.New(g)
		if err != nil {
			b.Fatal(err)
		}
		_ = s.Solve()
	}
}
