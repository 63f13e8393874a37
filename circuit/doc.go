// Package circuit turns a resistive network into a linear system.
//
// A network is an Adjacency: a square table of Branch cells, where cell
// (u,v) holds the resistance of the branch u–v and the source voltage acting
// from u to v, and NoBranch marks an empty cell.
//
// The Assembler assigns one unknown current per branch (VariableIndex),
// discovers the cycles of the network (dfs.FindCycles) and writes
//
//   - one current-law row per vertex: the signed sum of branch currents at
//     the vertex is zero;
//   - one voltage-law row per cycle: the signed resistive drops around the
//     loop sum to the source voltages met along the walk.
//
// Execute stacks both blocks into a System for the solver package.
package circuit
