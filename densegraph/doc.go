// Package densegraph provides a dense, index-addressed representation of a
// weighted directed graph, designed as the input structure for all-pairs
// shortest-path computations.
//
// Overview:
//
//   - Vertices are identified by zero-based integer indices in [0, V).
//   - Edges live in a V×V adjacency matrix of optional signed weights:
//     every ordered pair (u, v) either carries a weight or carries nothing.
//     "Nothing" is an explicit state, not a sentinel value, so negative and
//     zero weights are first-class and summation can never collide with a
//     reserved magic number.
//   - On construction the diagonal is pre-seeded with weight 0 (a vertex is
//     at distance zero from itself). A later self-loop insertion overwrites
//     that default; the structure treats this as a valid edge.
//
// When to use:
//
//   - As the input to floydwarshall.New, or anywhere a fixed-size graph with
//     O(1) edge lookup beats adjacency lists (dense graphs, matrix-style
//     dynamic programming).
//
// Permissive indexing:
//
//   - AddDirectedEdge and AddUndirectedEdge silently ignore calls whose
//     endpoints fall outside [0, V). This mirrors the accessor side, where
//     Weight reports (0, false) for out-of-range pairs. It is a deliberate
//     policy of this API, not an oversight; callers that need strict bounds
//     enforcement should validate indices before calling.
//
// Complexity:
//
//   - Space: O(V²) regardless of edge count.
//   - New: O(V²). AddDirectedEdge/AddUndirectedEdge/Weight/HasEdge: O(1).
//     Clone: O(V²).
//
// Error handling (sentinel errors):
//
//   - ErrNegativeVertexCount:
//     Returned by New when the requested vertex count is negative.
//
// Example usage:
//
//	g, err := densegraph.New(4)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	g.AddDirectedEdge(0, 1, 3)
//	g.AddDirectedEdge(1, 2, -2)
//	w, ok := g.Weight(0, 1) // 3, true
package densegraph
