// SPDX-License-Identifier: MIT

package kirchhoff

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/kirchhoff/circuit"
	"github.com/katalvlaran/kirchhoff/solver"
)

// ErrUnknownBranch is returned by CurrentOn for an edge that is not a branch of the network.
var ErrUnknownBranch = errors.New("kirchhoff: unknown branch")

// BranchCurrent is the current through one branch, positive along Edge.
type BranchCurrent struct {
	Edge    circuit.Edge // registered orientation
	Index   int          // column of the branch in the system
	Current float64
}

// Report is the result of Analyze.
type Report struct {
	System   circuit.System  // stacked node-law and loop-law rows
	Cycles   [][]int         // loops used for the voltage law
	Solution solver.Solution // general solution of System
	Rank     int             // rank of System.LHS
	Currents []BranchCurrent // indexed by variable
}

// Analyze assembles and solves the Kirchhoff system of adj.
// adj is not modified.
//
// Currents are read from the particular solution. When the system is
// under-determined (a loop of zero total resistance, for instance) the free
// currents are reported as 0 and Solution.Fundamental spans the alternatives.
func Analyze(adj *circuit.Adjacency) (*Report, error) {
	a, err := circuit.NewAssembler(adj)
	if err != nil {
		return nil, fmt.Errorf("Analyze: %w", err)
	}
	sys, err := a.Execute()
	if err != nil {
		return nil, fmt.Errorf("Analyze: %w", err)
	}
	s, err := solver.New(sys.LHS, sys.RHS)
	if err != nil {
		return nil, fmt.Errorf("Analyze: %w", err)
	}
	sol, err := s.Execute()
	if err != nil {
		return nil, fmt.Errorf("Analyze: %w", err)
	}

	x := sol.Particular.Data()
	edges := a.Variables().Edges()
	currents := make([]BranchCurrent, len(edges))
	for i, e := range edges {
		currents[i] = BranchCurrent{Edge: e, Index: i, Current: x[i]}
	}

	return &Report{
		System:   sys,
		Cycles:   a.Cycles(),
		Solution: sol,
		Rank:     s.Rank(),
		Currents: currents,
	}, nil
}

// CurrentOn returns the current flowing along e. Asking for the reversed
// orientation of a branch negates the result.
func (r *Report) CurrentOn(e circuit.Edge) (float64, error) {
	for _, bc := range r.Currents {
		switch e {
		case bc.Edge:
			return bc.Current, nil
		case bc.Edge.Reversed():
			return -bc.Current, nil
		}
	}

	return 0, fmt.Errorf("CurrentOn(%v): %w", e, ErrUnknownBranch)
}
