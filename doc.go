// Package apsp computes all-pairs shortest paths on dense weighted
// directed graphs.
//
// 🚀 What is apsp?
//
//	A small, focused library built from two pieces:
//		• densegraph    — dense V×V adjacency structure with optional signed
//		                  edge weights (explicit "no edge" state, no sentinels)
//		• floydwarshall — the Floyd–Warshall solver: distance + successor
//		                  matrices, negative-cycle detection, path reconstruction
//
// ✨ Why choose apsp?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Honest optionals – comma-ok results everywhere, no magic "infinity"
//   - Pure Go – no cgo, no hidden deps
//   - Negative weights welcome – only negative cycles are rejected, loudly
//
// Quick sketch:
//
//	g, _ := densegraph.New(4)
//	g.AddDirectedEdge(0, 1, 3)
//	g.AddDirectedEdge(1, 2, -2)
//	g.AddDirectedEdge(2, 3, 2)
//
//	solver, _ := floydwarshall.New(g)
//	if err := solver.Solve(); err != nil {
//	    // errors.Is(err, floydwarshall.ErrNegativeCycle)
//	}
//	d, ok := solver.Distance(0, 3)
//	path, ok := solver.Path(0, 3)
//
// See the package docs of densegraph and floydwarshall for the full
// contracts, and examples/ for a runnable demonstration.
package apsp
