package dfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/kirchhoff/dfs"
)

// ladder builds a 2×k ladder graph, the usual shape of a resistor mesh.
func ladder(k int) *graph {
	var edges [][2]int
	for i := 0; i < k; i++ {
		edges = append(edges, [2]int{2 * i, 2*i + 1})
		if i+1 < k {
			edges = append(edges, [2]int{2 * i, 2 * (i + 1)}, [2]int{2*i + 1, 2*(i+1) + 1})
		}
	}

	return newGraph(2*k, edges...)
}

var sinkCycles [][]int

func BenchmarkFindCycles_Ladder(b *testing.B) {
	for _, k := range []int{3, 5, 7} {
		g := ladder(k)
		b.Run(fmt.Sprintf("k=%d", k), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				cycles, err := dfs.FindCycles(g)
				if err != nil {
					b.Fatal(err)
				}
				sinkCycles = cycles
			}
		})
	}
}
