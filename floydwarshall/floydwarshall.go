// Package floydwarshall implements the Floyd–Warshall all-pairs
// shortest-path algorithm with path reconstruction and negative-cycle
// detection. See doc.go for the package overview.
package floydwarshall

import (
	"fmt"

	"github.com/katalvlaran/apsp/densegraph"
)

// Solver computes all-pairs shortest distances and successor pointers for a
// single graph snapshot.
//
// Storage mirrors the input's dense layout: one flat row-major buffer per
// matrix, cell (i, j) at offset i*n+j. dist and known always move together —
// a relaxation step writes distance, presence, and successor atomically, so
// the three views never observably diverge.
//
// A Solver is exclusively owned: it is not safe for concurrent use during
// Solve, and it never shares memory with the graph it was built from.
type Solver struct {
	n           int     // vertex count, fixed at construction
	dist        []int64 // flat V×V shortest-distance buffer
	known       []bool  // flat V×V presence flags for dist
	next        []int   // flat V×V successor pointers (noSuccessor = none)
	state       solveState
	cycleVertex int // vertex named by negative-cycle detection, -1 otherwise
}

// New constructs a solver for g, taking a defensive copy of the adjacency
// data: mutating g after New returns can never affect this solver, whether
// Solve has run or not.
//
// Returns ErrNilGraph if g is nil.
//
// Complexity: O(V²) time and space.
func New(g *densegraph.Graph) (*Solver, error) {
	// 1) Validate the input graph.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2) Allocate the solver's own matrices.
	n := g.VertexCount()
	s := &Solver{
		n:           n,
		dist:        make([]int64, n*n),
		known:       make([]bool, n*n),
		next:        make([]int, n*n),
		cycleVertex: noSuccessor,
	}

	// 3) Snapshot the adjacency matrix into the distance buffers and clear
	//    every successor pointer. After this loop the solver is independent
	//    of g.
	var (
		u, v, base int
		w          int64
		ok         bool
	)
	for u = 0; u < n; u++ {
		base = u * n
		for v = 0; v < n; v++ {
			if w, ok = g.Weight(u, v); ok {
				s.dist[base+v] = w
				s.known[base+v] = true
			}
			s.next[base+v] = noSuccessor
		}
	}

	return s, nil
}

// VertexCount returns the number of vertices in the solved graph snapshot.
func (s *Solver) VertexCount() int { return s.n }

// Solve runs the full computation: successor initialization, triple-nested
// relaxation, and the negative-cycle scan.
//
// Solve is single-shot. A second invocation returns ErrResolved without
// touching any state, regardless of the first call's outcome.
//
// On success, Solve returns nil and the solver answers Distance and Path
// queries. On negative-cycle detection it returns an error wrapping
// ErrNegativeCycle that names one affected vertex; the matrices are
// contaminated for all pairs at that point, so subsequent queries report
// no result.
//
// Complexity: O(V³) time, O(1) extra space (fully in-place on the solver's
// own buffers).
func (s *Solver) Solve() error {
	// 1) Guard against re-entry: relaxed distances must never be mistaken
	//    for original adjacency when deriving successors.
	if s.state != stateUnsolved {
		return ErrResolved
	}

	// 2) Initialize successor pointers from the (still original) distances.
	s.initSuccessors()

	// 3) Relax over every intermediate vertex.
	s.relax()

	// 4) Scan the diagonal: a known negative self-distance proves a
	//    negative cycle through that vertex.
	var i, idx int
	for i = 0; i < s.n; i++ {
		idx = i*s.n + i
		if s.known[idx] && s.dist[idx] < 0 {
			s.cycleVertex = i
			s.state = stateFailed

			return fmt.Errorf("%w: vertex %d", ErrNegativeCycle, i)
		}
	}

	s.state = stateSolved

	return nil
}

// initSuccessors sets next[i][j] = j for every ordered pair with a known
// distance and i ≠ j. Unknown pairs and the diagonal keep noSuccessor: a
// vertex needs no step to reach itself, and an unreachable pair has no
// first step to record.
func (s *Solver) initSuccessors() {
	var i, j, base int
	for i = 0; i < s.n; i++ {
		base = i * s.n
		for j = 0; j < s.n; j++ {
			if s.known[base+j] && i != j {
				s.next[base+j] = j
			}
		}
	}
}

// relax performs the Floyd–Warshall triple loop in the fixed k → i → j
// order. The order is load-bearing: after the pass for a given k, every
// dist[i][j] is the shortest path using intermediate vertices drawn only
// from {0..k}, which is the induction the algorithm rests on.
//
// Each improvement updates distance, presence, and successor together, so
// the matrices never diverge mid-step. Unknown cells are filled by the
// first candidate; known cells only by a strictly smaller one (strict
// comparison keeps accumulation deterministic under ties).
//
// No allocations inside the hot loops.
func (s *Solver) relax() {
	n := s.n

	// Predeclare loop counters and temporaries; reuse across iterations.
	var (
		k, i, j      int   // loop indices
		baseK, baseI int   // row base offsets in the flat buffers
		ik, cand     int64 // dist[i][k] and the candidate via k
		idx          int   // offset of the (i, j) cell
	)

	// Local aliases shorten the access path in the innermost loop.
	dist, known, next := s.dist, s.known, s.next

	for k = 0; k < n; k++ { // outer: intermediate vertex
		baseK = k * n

		for i = 0; i < n; i++ { // middle: source vertex
			baseI = i * n
			if !known[baseI+k] { // i cannot reach k,
				continue // so no path via k can improve any i→j
			}
			ik = dist[baseI+k]

			for j = 0; j < n; j++ { // inner: destination vertex
				if !known[baseK+j] { // k cannot reach j
					continue
				}
				cand = ik + dist[baseK+j]
				idx = baseI + j
				if !known[idx] || cand < dist[idx] {
					// Relax: distance, presence and successor move as one.
					dist[idx] = cand
					known[idx] = true
					next[idx] = next[baseI+k]
				}
			}
		}
	}
}
