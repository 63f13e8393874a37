package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/kirchhoff/dfs"
)

// ExampleFindCycles enumerates the loops of a square with one diagonal.
//
//	0 --- 1
//	|  \  |
//	3 --- 2
func ExampleFindCycles() {
	g := newGraph(4,
		[2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 0},
		[2]int{0, 2})

	cycles, err := dfs.FindCycles(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, c := range cycles {
		fmt.Println(dfs.JoinSig(c))
	}

	// Output:
	// 0,1,2,0
	// 0,1,2,3,0
	// 0,2,3,0
}
