package netlist_test

import (
	"fmt"

	"github.com/katalvlaran/kirchhoff/netlist"
)

func ExampleParse() {
	nl, err := netlist.Parse("chain", `
		0 -- 1, 4R, 12V;
		1 -- 2, 2R;
	`)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, b := range nl.Branches {
		fmt.Printf("%v: %gR %gV\n", b.Edge(), b.Resistance, b.Voltage)
	}
	// Output:
	// 0-1: 4R 12V
	// 1-2: 2R 0V
}
