// Package kirchhoff computes the branch currents of a resistive network.
//
// A network is a circuit.Adjacency: vertices are junctions, each branch has
// a resistance and an optional source voltage. Analyze runs the whole
// pipeline:
//
//	adjacency ─► dfs.FindCycles ─► circuit.Assembler ─► solver.Solve
//	                 (loops)        (Kirchhoff rows)     (x = p + F·t)
//
// and reports one current per branch, signed along the orientation in which
// the branch was registered.
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/   dense float64 engine: elimination, rank, determinant, text form
//	dfs/      cycle enumeration over a Neighborhood
//	circuit/  Branch, Adjacency, variable index, Kirchhoff law assembly
//	solver/   particular + fundamental solution of a linear system
//	netlist/  textual circuit description ("0 -- 1, 2R, 5V;")
//	cmd/kirchhoff  command-line front end
//
// Quick ASCII example:
//
//	    0 ──(1Ω, 6V)── 1
//	     \            /
//	     (3Ω)      (2Ω)
//	        \      /
//	           2
//
//	carries 1 A around the loop.
package kirchhoff
