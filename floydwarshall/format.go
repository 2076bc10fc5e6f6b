package floydwarshall

import (
	"fmt"
	"strings"
)

// Rendering helpers. These are pure read-only formatting over the solver's
// current matrices; they participate in no algorithmic contract. They are
// meaningful after a successful Solve — before that, DistanceMatrixString
// shows the raw adjacency snapshot and AllPathsString reports every pair as
// having no path.

// DistanceMatrixString renders the distance matrix as a table with a header
// row and column of vertex indices. Unknown distances render as ∞.
func (s *Solver) DistanceMatrixString() string {
	var b strings.Builder

	// Header row of destination indices.
	b.WriteString("     ")
	for j := 0; j < s.n; j++ {
		fmt.Fprintf(&b, "%5d", j)
	}
	b.WriteByte('\n')

	var base int
	for i := 0; i < s.n; i++ {
		fmt.Fprintf(&b, "%5d", i)
		base = i * s.n
		for j := 0; j < s.n; j++ {
			if s.known[base+j] {
				fmt.Fprintf(&b, "%5d", s.dist[base+j])
			} else {
				fmt.Fprintf(&b, "%5s", "∞")
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// AllPathsString renders one line per ordered pair (i, j) with i ≠ j:
// either the pair's distance and reconstructed path, or "no path".
func (s *Solver) AllPathsString() string {
	var b strings.Builder

	for i := 0; i < s.n; i++ {
		for j := 0; j < s.n; j++ {
			if i == j {
				continue
			}
			if path, ok := s.Path(i, j); ok {
				d, _ := s.Distance(i, j)
				fmt.Fprintf(&b, "%d -> %d: distance = %d, path = %v\n", i, j, d, path)
			} else {
				fmt.Fprintf(&b, "%d -> %d: no path\n", i, j)
			}
		}
	}

	return b.String()
}
