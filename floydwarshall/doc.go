// Package floydwarshall provides an all-pairs shortest-path solver for
// dense weighted directed graphs, based on the Floyd–Warshall dynamic
// programming recurrence, with shortest-path reconstruction and
// negative-cycle detection.
//
// Overview:
//
//   - The solver snapshots a densegraph.Graph at construction and owns its
//     distance and successor matrices outright: mutating the source graph
//     afterwards cannot disturb a running or completed solve.
//   - Solve relaxes every ordered pair over every intermediate vertex in
//     the fixed k → i → j order. After the pass for vertex k, each known
//     distance is optimal over paths whose intermediate vertices come only
//     from {0..k}; after the final pass, over all paths.
//   - Negative edge weights are fully supported. What is not supported is a
//     negative cycle: if relaxation drives any self-distance below zero,
//     Solve fails with ErrNegativeCycle naming an affected vertex, and the
//     solver refuses to answer queries (its matrices are contaminated for
//     every pair at that point).
//   - Solve is single-shot. A second call returns ErrResolved: re-running
//     successor initialization over already-relaxed distances would produce
//     silently wrong pointers, so the API forbids it instead.
//
// When to use:
//
//   - Dense graphs, or whenever distances between all ordered pairs are
//     needed at once — routing tables, transitive closures with costs,
//     centrality pre-computation.
//   - For single-source queries on sparse non-negative graphs, Dijkstra's
//     algorithm is the better tool; this package trades per-query speed for
//     complete V×V answers and negative-weight support.
//
// Performance and complexity:
//
//   - Time:  O(V³) — the triple relaxation loop dominates; the successor
//     initialization and diagonal scan are O(V²) and O(V).
//   - Space: O(V²) for each of the distance, presence, and successor
//     matrices; Solve itself allocates nothing.
//   - Path reconstruction is O(L) for a path of L vertices.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:
//     Returned by New when the graph is nil.
//   - ErrNegativeCycle:
//     Returned (wrapped, with the offending vertex) by Solve when a
//     negative cycle is detected. Match with errors.Is.
//   - ErrResolved:
//     Returned by Solve on any invocation after the first.
//
// Example usage:
//
//	g, _ := densegraph.New(4)
//	g.AddDirectedEdge(0, 1, 3)
//	g.AddDirectedEdge(1, 2, -2)
//	g.AddDirectedEdge(2, 3, 2)
//
//	solver, err := floydwarshall.New(g)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err = solver.Solve(); err != nil {
//	    log.Fatal(err) // e.g. negative cycle
//	}
//	d, ok := solver.Distance(0, 3)   // 3, true
//	path, ok := solver.Path(0, 3)    // [0 1 2 3], true
package floydwarshall
