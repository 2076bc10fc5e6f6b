// Package floydwarshall: core types and sentinel errors for the all-pairs
// shortest-path solver.
package floydwarshall

import "errors"

// Sentinel errors returned by the floydwarshall implementation.
// All of them are matched via errors.Is; ErrNegativeCycle is returned
// wrapped with the offending vertex index for context.
var (
	// ErrNilGraph indicates that a nil *densegraph.Graph was passed to New.
	ErrNilGraph = errors.New("floydwarshall: graph is nil")

	// ErrNegativeCycle indicates that relaxation drove a diagonal distance
	// below zero: the graph contains a cycle of strictly negative total
	// weight, and shortest paths are undefined for every pair that can
	// route through it. The wrapped message names one vertex on or
	// reachable through such a cycle.
	ErrNegativeCycle = errors.New("floydwarshall: negative cycle detected")

	// ErrResolved indicates that Solve was invoked more than once on the
	// same solver. Solve is single-shot: re-running relaxation on top of
	// already-relaxed state would re-derive successor pointers from
	// non-original distances, so a second call is rejected outright
	// whether or not the first call succeeded.
	ErrResolved = errors.New("floydwarshall: Solve may be invoked at most once per solver")
)

// solveState tracks the lifecycle of a Solver.
//
// The machine is linear: a solver is born stateUnsolved, and a single Solve
// call moves it to stateSolved on success or stateFailed on negative-cycle
// detection. There are no further transitions.
type solveState int

const (
	// stateUnsolved: Solve has not run; queries report no result.
	stateUnsolved solveState = iota

	// stateSolved: Solve succeeded; distance and successor matrices are
	// final and queries are answerable.
	stateSolved

	// stateFailed: Solve detected a negative cycle. The matrices are
	// contaminated for every pair, so queries report no result rather than
	// exposing meaningless numbers.
	stateFailed
)

// noSuccessor marks an absent successor pointer in the flat next matrix.
// Vertex indices are non-negative, so -1 can never collide with a real one.
const noSuccessor = -1

// pathReserve is the initial capacity for reconstructed path slices.
const pathReserve = 8
