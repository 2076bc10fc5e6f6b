package densegraph

// Graph is a dense weighted directed graph over vertices 0..n-1.
//
// Storage is a single flat row-major buffer per matrix: cell (u, v) lives at
// offset u*n+v. weights holds the edge weight for every present cell and is
// meaningless where present is false. Keeping presence in its own bool slice
// (rather than encoding "no edge" as a reserved weight) makes every int64 a
// legal weight and keeps the hot relaxation loops of downstream solvers free
// of sentinel comparisons.
//
// A Graph is not safe for concurrent mutation. Once a snapshot has been
// taken (Clone, or solver construction), further mutation of the original
// never affects the snapshot.
type Graph struct {
	n       int     // vertex count
	weights []int64 // flat row-major V×V weight buffer
	present []bool  // flat row-major V×V presence flags
}

// New allocates a graph with vertexCount vertices and no edges except the
// pre-seeded diagonal: weight 0 from every vertex to itself. A later
// self-loop insertion overwrites the default.
//
// Returns ErrNegativeVertexCount if vertexCount < 0. Zero is valid and
// yields an empty graph.
//
// Complexity: O(V²).
func New(vertexCount int) (*Graph, error) {
	// Validate: a negative count is a contract violation, surfaced as a
	// sentinel rather than a panic.
	if vertexCount < 0 {
		return nil, ErrNegativeVertexCount
	}

	g := &Graph{
		n:       vertexCount,
		weights: make([]int64, vertexCount*vertexCount),
		present: make([]bool, vertexCount*vertexCount),
	}

	// Seed the diagonal: distance from a vertex to itself is zero.
	// weights is already zero-valued, so only presence needs setting.
	for i := 0; i < vertexCount; i++ {
		g.present[i*vertexCount+i] = true
	}

	return g, nil
}

// VertexCount returns the number of vertices the graph was created with.
func (g *Graph) VertexCount() int { return g.n }

// AddDirectedEdge sets the weight of the edge u→v, overwriting any prior
// value, including the diagonal default when u == v.
//
// Permissive policy: if u or v lies outside [0, VertexCount), the call is a
// silent no-op. See the package documentation.
func (g *Graph) AddDirectedEdge(u, v int, weight int64) {
	if !g.inRange(u) || !g.inRange(v) {
		return // out-of-range endpoints are ignored, not rejected
	}
	idx := u*g.n + v
	g.weights[idx] = weight
	g.present[idx] = true
}

// AddUndirectedEdge inserts the pair of directed edges u→v and v→u with the
// same weight. Each half follows AddDirectedEdge semantics independently.
func (g *Graph) AddUndirectedEdge(u, v int, weight int64) {
	g.AddDirectedEdge(u, v, weight)
	g.AddDirectedEdge(v, u, weight)
}

// Weight reports the weight of the edge u→v. The second result is false when
// no such edge exists or either index is out of range; the first result is 0
// in that case and must not be interpreted as a weight.
func (g *Graph) Weight(u, v int) (int64, bool) {
	if !g.inRange(u) || !g.inRange(v) {
		return 0, false
	}
	idx := u*g.n + v
	if !g.present[idx] {
		return 0, false
	}

	return g.weights[idx], true
}

// HasEdge reports whether the edge u→v exists. Out-of-range indices yield
// false.
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.Weight(u, v)

	return ok
}

// Clone returns a deep copy of the graph. Mutating either copy afterwards
// never affects the other.
//
// Complexity: O(V²).
func (g *Graph) Clone() *Graph {
	clone := &Graph{
		n:       g.n,
		weights: make([]int64, len(g.weights)),
		present: make([]bool, len(g.present)),
	}
	copy(clone.weights, g.weights)
	copy(clone.present, g.present)

	return clone
}

// inRange reports whether i is a valid vertex index.
func (g *Graph) inRange(i int) bool { return i >= 0 && i < g.n }
