package floydwarshall

// Distance reports the shortest known distance from u to v.
//
// The second result is false when:
//   - the solver has not completed a successful Solve (unsolved or failed),
//   - u or v is out of range, or
//   - no path from u to v exists.
//
// The first result is 0 in all of those cases and must not be read as a
// distance.
func (s *Solver) Distance(u, v int) (int64, bool) {
	if s.state != stateSolved || !s.inRange(u) || !s.inRange(v) {
		return 0, false
	}
	idx := u*s.n + v
	if !s.known[idx] {
		return 0, false
	}

	return s.dist[idx], true
}

// Path reconstructs the shortest path from u to v as a sequence of vertex
// indices, starting with u and ending with v inclusive. Path(i, i) yields
// the single-vertex path [i].
//
// The second result is false under the same conditions as Distance, and
// additionally if the successor chain turns out malformed (a missing
// pointer mid-walk, or a walk longer than V steps). Neither can occur after
// a successful solve on well-formed state; the guards exist so that a
// corrupted chain terminates instead of looping forever.
func (s *Solver) Path(u, v int) ([]int, bool) {
	if s.state != stateSolved || !s.inRange(u) || !s.inRange(v) {
		return nil, false
	}
	if !s.known[u*s.n+v] {
		return nil, false // no path exists
	}

	path := make([]int, 0, pathReserve)
	path = append(path, u)

	// Walk successor pointers until v is reached. A shortest path on a
	// negative-cycle-free graph is simple, so it visits at most n vertices.
	cur := u
	for cur != v {
		nxt := s.next[cur*s.n+v]
		if nxt == noSuccessor {
			return nil, false // malformed chain: no way forward
		}
		cur = nxt
		path = append(path, cur)
		if len(path) > s.n {
			return nil, false // malformed chain: cycle in successors
		}
	}

	return path, true
}

// HasNegativeCycle reports whether any diagonal distance is known and
// negative, i.e. whether some vertex can reach itself at negative total
// cost. After a failed Solve this is true; after a successful Solve it is
// false; before Solve it reflects only explicitly inserted negative
// self-loops.
func (s *Solver) HasNegativeCycle() bool {
	var idx int
	for i := 0; i < s.n; i++ {
		idx = i*s.n + i
		if s.known[idx] && s.dist[idx] < 0 {
			return true
		}
	}

	return false
}

// NegativeCycleVertex returns the vertex named by a failed Solve. The second
// result is false unless Solve has run and detected a negative cycle.
func (s *Solver) NegativeCycleVertex() (int, bool) {
	if s.state != stateFailed {
		return 0, false
	}

	return s.cycleVertex, true
}

// inRange reports whether i is a valid vertex index for this solver.
func (s *Solver) inRange(i int) bool { return i >= 0 && i < s.n }
