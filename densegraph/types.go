// Package densegraph: sentinel error set.
// All user-triggered failure conditions surface as these sentinels; callers
// match them via errors.Is. The package never panics on user input.
package densegraph

import "errors"

// Sentinel errors for densegraph construction.
var (
	// ErrNegativeVertexCount indicates that New was asked for a graph with a
	// negative number of vertices. Zero vertices is a valid (empty) graph;
	// a negative count can never be represented and is a caller bug.
	ErrNegativeVertexCount = errors.New("densegraph: vertex count must be non-negative")
)
