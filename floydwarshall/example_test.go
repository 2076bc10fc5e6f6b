// Package floydwarshall_test provides examples demonstrating the all-pairs
// shortest-path solver. Each example is runnable via “go test -run Example”,
// showing both code and expected output.
package floydwarshall_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/apsp/densegraph"
	"github.com/katalvlaran/apsp/floydwarshall"
)

// ExampleSolver_Solve demonstrates solving a small directed graph with a
// negative edge and reconstructing the cheapest route.
// Complexity: O(V³) relaxation, O(V²) memory.
func ExampleSolver_Solve() {
	// 1) Build a 4-vertex directed graph. The direct edge 0→3 costs 15,
	//    but detouring through the negative edge 1→2 costs only 3.
	g, _ := densegraph.New(4)
	g.AddDirectedEdge(0, 1, 3)
	g.AddDirectedEdge(0, 2, 6)
	g.AddDirectedEdge(0, 3, 15)
	g.AddDirectedEdge(1, 2, -2)
	g.AddDirectedEdge(2, 3, 2)
	g.AddDirectedEdge(3, 0, 1)

	// 2) Construct the solver (it snapshots the graph) and solve once.
	solver, err := floydwarshall.New(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err = solver.Solve(); err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Query a few distances and the reconstructed route 0→3.
	d01, _ := solver.Distance(0, 1)
	d02, _ := solver.Distance(0, 2)
	d03, _ := solver.Distance(0, 3)
	path, _ := solver.Path(0, 3)

	fmt.Printf("dist(0,1)=%d dist(0,2)=%d dist(0,3)=%d\n", d01, d02, d03)
	fmt.Printf("path(0,3)=%v\n", path)
	// Output:
	// dist(0,1)=3 dist(0,2)=1 dist(0,3)=3
	// path(0,3)=[0 1 2 3]
}

// ExampleSolver_Solve_negativeCycle demonstrates negative-cycle detection:
// the cycle 0→1→2→0 sums to -1, so Solve fails and names a vertex.
func ExampleSolver_Solve_negativeCycle() {
	g, _ := densegraph.New(3)
	g.AddDirectedEdge(0, 1, 1)
	g.AddDirectedEdge(1, 2, -3)
	g.AddDirectedEdge(2, 0, 1)

	solver, _ := floydwarshall.New(g)
	err := solver.Solve()

	fmt.Println("negative cycle:", errors.Is(err, floydwarshall.ErrNegativeCycle))
	fmt.Println(err)
	// Output:
	// negative cycle: true
	// floydwarshall: negative cycle detected: vertex 0
}
