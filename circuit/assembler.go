// SPDX-License-Identifier: MIT

// Package circuit - Assembler: Kirchhoff's laws as a stacked linear system.
//
// Construction copies the adjacency table, validates it, enumerates its
// cycles (dfs.FindCycles) and registers one variable per branch by a
// row-major scan of the table, so the first orientation met in that scan
// (normally (i,j) with i < j) fixes the sign of each branch current.
//
// Sign convention:
//   - x[e] is the current flowing along the registered orientation of e.
//   - Node law row v: +1 for each branch registered as leaving v,
//     -1 for each branch registered as entering v; rhs 0.
//   - Loop law row c: walking a→b, +R when (a,b) is the registered
//     orientation, -R otherwise; rhs is the sum of the walked cells' voltages.
//
// Execute stacks the node rows (one per vertex) on top of the loop rows
// (one per cycle). The column count is the number of branches.

package circuit

import (
	"fmt"

	"github.com/katalvlaran/kirchhoff/dfs"
	"github.com/katalvlaran/kirchhoff/matrix"
)

const (
	opNewAssembler = "NewAssembler"
	opNodeLaw      = "NodeLaw"
	opLoopLaw      = "LoopLaw"
	opExecute      = "Execute"

	opGetVariableIdx = "GetVariableIdx"
)

// Assembler builds the Kirchhoff system of one network.
type Assembler struct {
	adj    *Adjacency
	cycles [][]int
	vars   *VariableIndex
}

// NewAssembler prepares an Assembler over a private copy of adj.
//
// Errors:
//   - ErrNilAdjacency when adj is nil.
//   - ErrNegativeResistance, ErrAsymmetric from Validate.
//   - ErrInvalidEdge when the table holds a self-loop branch.
func NewAssembler(adj *Adjacency) (*Assembler, error) {
	if adj == nil {
		return nil, circuitErrorf(opNewAssembler, ErrNilAdjacency)
	}
	a := &Assembler{adj: adj.Clone(), vars: NewVariableIndex()}
	if err := a.adj.Validate(); err != nil {
		return nil, circuitErrorf(opNewAssembler, err)
	}

	var err error
	if a.cycles, err = dfs.FindCycles(a.adj); err != nil {
		return nil, circuitErrorf(opNewAssembler, err)
	}

	n := a.adj.Order()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if !a.adj.At(i, j).IsPresent() {
				continue
			}
			if _, _, err = a.vars.Lookup(Edge{From: i, To: j}); err != nil {
				return nil, circuitErrorf(opNewAssembler, err)
			}
		}
	}

	return a, nil
}

// Adjacency returns the assembler's copy of the table. Callers must not mutate it.
func (a *Assembler) Adjacency() *Adjacency { return a.adj }

// Cycles returns a copy of the discovered cycles, each closed (first == last).
func (a *Assembler) Cycles() [][]int {
	out := make([][]int, len(a.cycles))
	for i, c := range a.cycles {
		out[i] = append([]int(nil), c...)
	}

	return out
}

// Variables returns the variable index shared by both law passes.
func (a *Assembler) Variables() *VariableIndex { return a.vars }

// GetVariableIdx returns the variable of e and whether e is the reversed
// orientation. It never registers e, so the system width stays the branch count.
//
// Errors:
//   - ErrInvalidEdge when e is a self-loop.
//   - ErrNotBranch when e is not a branch of the network.
func (a *Assembler) GetVariableIdx(e Edge) (int, bool, error) {
	if e.IsLoop() {
		return 0, false, fmt.Errorf("%s(%v): %w", opGetVariableIdx, e, ErrInvalidEdge)
	}
	idx, reversed, ok := a.vars.Find(e)
	if !ok {
		return 0, false, fmt.Errorf("%s(%v): %w", opGetVariableIdx, e, ErrNotBranch)
	}

	return idx, reversed, nil
}

// NodeLaw builds the current-law block: one row per vertex.
func (a *Assembler) NodeLaw() (System, error) {
	n, cols := a.adj.Order(), a.vars.Len()
	lhs, rhs, err := newBlock(n, cols)
	if err != nil {
		return System{}, circuitErrorf(opNodeLaw, err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if !a.adj.At(i, j).IsPresent() {
				continue
			}
			idx, reversed, err := a.GetVariableIdx(Edge{From: i, To: j})
			if err != nil {
				return System{}, circuitErrorf(opNodeLaw, err)
			}
			if err = lhs.Set(i, idx, direction(reversed)); err != nil {
				return System{}, circuitErrorf(opNodeLaw, err)
			}
		}
	}

	return System{LHS: lhs, RHS: rhs}, nil
}

// LoopLaw builds the voltage-law block: one row per cycle.
func (a *Assembler) LoopLaw() (System, error) {
	lhs, rhs, err := newBlock(len(a.cycles), a.vars.Len())
	if err != nil {
		return System{}, circuitErrorf(opLoopLaw, err)
	}
	for row, cycle := range a.cycles {
		var volts float64
		for k := 0; k+1 < len(cycle); k++ {
			e := Edge{From: cycle[k], To: cycle[k+1]}
			idx, reversed, err := a.GetVariableIdx(e)
			if err != nil {
				return System{}, circuitErrorf(opLoopLaw, err)
			}
			b := a.adj.At(e.From, e.To)
			if err = lhs.Set(row, idx, direction(reversed)*b.Resistance); err != nil {
				return System{}, circuitErrorf(opLoopLaw, fmt.Errorf("cycle %d edge %v: %w", row, e, err))
			}
			volts += b.Voltage
		}
		if err = rhs.Set(row, 0, volts); err != nil {
			return System{}, circuitErrorf(opLoopLaw, err)
		}
	}

	return System{LHS: lhs, RHS: rhs}, nil
}

// Execute returns the node-law block stacked on top of the loop-law block.
func (a *Assembler) Execute() (System, error) {
	node, err := a.NodeLaw()
	if err != nil {
		return System{}, circuitErrorf(opExecute, err)
	}
	loop, err := a.LoopLaw()
	if err != nil {
		return System{}, circuitErrorf(opExecute, err)
	}
	if err = node.LHS.AppendRows(loop.LHS, false); err != nil {
		return System{}, circuitErrorf(opExecute, err)
	}
	if err = node.RHS.AppendRows(loop.RHS, false); err != nil {
		return System{}, circuitErrorf(opExecute, err)
	}

	return node, nil
}

// newBlock allocates a rows×cols coefficient block and its rows×1 rhs.
func newBlock(rows, cols int) (*matrix.Dense, *matrix.Dense, error) {
	lhs, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, nil, err
	}
	rhs, err := matrix.NewDense(rows, 1)
	if err != nil {
		return nil, nil, err
	}

	return lhs, rhs, nil
}

// direction is +1 along the registered orientation and -1 against it.
func direction(reversed bool) float64 {
	if reversed {
		return -1
	}

	return 1
}
