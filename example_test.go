package kirchhoff_test

import (
	"fmt"

	"github.com/katalvlaran/kirchhoff"
	"github.com/katalvlaran/kirchhoff/circuit"
)

// ExampleAnalyze solves a single loop: a 6 V source in series with 1, 2 and 3 Ω.
func ExampleAnalyze() {
	adj, _ := circuit.NewAdjacency(3)
	_ = adj.Connect(0, 1, 1, 6)
	_ = adj.Connect(1, 2, 2, 0)
	_ = adj.Connect(2, 0, 3, 0)

	rep, err := kirchhoff.Analyze(adj)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, bc := range rep.Currents {
		fmt.Printf("%v %v: %.3g A\n", bc.Edge, adj.At(bc.Edge.From, bc.Edge.To), bc.Current)
	}

	// Output:
	// 0-1 (1R, 6V): 1 A
	// 0-2 (3R, 0V): -1 A
	// 1-2 (2R, 0V): 1 A
}
