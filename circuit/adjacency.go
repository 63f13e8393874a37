// SPDX-License-Identifier: MIT

// Package circuit - Adjacency: square, growable table of Branch cells.
//
// Purpose:
//   - Row-major storage of one Branch per ordered vertex pair; NoBranch marks
//     an empty cell.
//   - Growth on write: Set beyond the current order re-allocates the table
//     (new buffer, overlap copied, new cells NoBranch).
//   - Implements dfs.Neighborhood so cycle enumeration reads it directly.
//
// Conventions:
//   - Connect(u, v, r, volts) stores (r, volts) at (u,v) and (r, -volts) at
//     (v,u): the voltage of a cell is the source acting along that direction.

package circuit

import (
	"fmt"

	"github.com/katalvlaran/kirchhoff/dfs"
)

const (
	opSet      = "Adjacency.Set"
	opConnect  = "Adjacency.Connect"
	opValidate = "Adjacency.Validate"
)

// Adjacency is the branch table of a network over vertices [0, Order()).
type Adjacency struct {
	n     int
	cells []Branch // len == n*n, row-major
}

var _ dfs.Neighborhood = (*Adjacency)(nil)

// NewAdjacency returns an n×n table of NoBranch cells.
// A negative n yields ErrBadVertex.
func NewAdjacency(n int) (*Adjacency, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewAdjacency(%d): %w", n, ErrBadVertex)
	}
	a := &Adjacency{n: n, cells: make([]Branch, n*n)}
	for i := range a.cells {
		a.cells[i] = NoBranch
	}

	return a, nil
}

// Order returns the number of vertices.
func (a *Adjacency) Order() int { return a.n }

// At returns the cell (i, j). Cells outside the table are NoBranch.
func (a *Adjacency) At(i, j int) Branch {
	if i < 0 || j < 0 || i >= a.n || j >= a.n {
		return NoBranch
	}

	return a.cells[i*a.n+j]
}

// Linked reports whether cell (u, v) holds a branch.
func (a *Adjacency) Linked(u, v int) bool { return a.At(u, v).IsPresent() }

// Set stores b at (i, j), growing the table to max(i, j)+1 vertices if needed.
// Only the single cell is written; use Connect for a symmetric branch.
func (a *Adjacency) Set(i, j int, b Branch) error {
	if i < 0 || j < 0 {
		return fmt.Errorf("%s(%d,%d): %w", opSet, i, j, ErrBadVertex)
	}
	if need := max(i, j) + 1; need > a.n {
		a.grow(need)
	}
	a.cells[i*a.n+j] = b

	return nil
}

// grow re-allocates the table at order n, copying the existing cells.
func (a *Adjacency) grow(n int) {
	next := make([]Branch, n*n)
	for i := range next {
		next[i] = NoBranch
	}
	for i := 0; i < a.n; i++ {
		copy(next[i*n:i*n+a.n], a.cells[i*a.n:(i+1)*a.n])
	}
	a.n, a.cells = n, next
}

// Connect registers the branch u→v with resistance r and a source of volts
// acting from u to v. The mirrored cell (v, u) receives -volts.
//
// Errors:
//   - ErrInvalidEdge when u == v.
//   - ErrNegativeResistance when r < 0.
//   - ErrBadVertex on a negative index.
func (a *Adjacency) Connect(u, v int, r, volts float64) error {
	if u == v {
		return fmt.Errorf("%s(%d,%d): %w", opConnect, u, v, ErrInvalidEdge)
	}
	if r < 0 {
		return fmt.Errorf("%s(%d,%d): r=%g: %w", opConnect, u, v, r, ErrNegativeResistance)
	}
	if err := a.Set(u, v, Branch{Resistance: r, Voltage: volts}); err != nil {
		return circuitErrorf(opConnect, err)
	}

	back := -volts
	if back == 0 {
		back = 0 // a source-free branch stores +0 in both cells
	}

	return a.Set(v, u, Branch{Resistance: r, Voltage: back})
}

// Edges returns every branch once, as (i, j) with i < j, in row-major order.
// Self-loop cells are not branches and are skipped.
func (a *Adjacency) Edges() []Edge {
	var out []Edge
	for i := 0; i < a.n; i++ {
		for j := i + 1; j < a.n; j++ {
			if a.cells[i*a.n+j].IsPresent() {
				out = append(out, Edge{From: i, To: j})
			}
		}
	}

	return out
}

// Clone returns a deep copy.
func (a *Adjacency) Clone() *Adjacency {
	cp := make([]Branch, len(a.cells))
	copy(cp, a.cells)

	return &Adjacency{n: a.n, cells: cp}
}

// Validate checks the table invariants:
//   - every present cell has a non-negative resistance (ErrNegativeResistance);
//   - (u,v) present iff (v,u) present, with equal resistance (ErrAsymmetric).
//
// Self-loop cells are left for the variable index to reject.
func (a *Adjacency) Validate() error {
	for i := 0; i < a.n; i++ {
		for j := 0; j < a.n; j++ {
			b := a.cells[i*a.n+j]
			if !b.IsPresent() {
				continue
			}
			if b.Resistance < 0 {
				return fmt.Errorf("%s: cell %d-%d %v: %w", opValidate, i, j, b, ErrNegativeResistance)
			}
			m := a.cells[j*a.n+i]
			if !m.IsPresent() || m.Resistance != b.Resistance {
				return fmt.Errorf("%s: cell %d-%d %v vs %v: %w", opValidate, i, j, b, m, ErrAsymmetric)
			}
		}
	}

	return nil
}

// String renders the table one row per line.
func (a *Adjacency) String() string {
	var s []byte
	for i := 0; i < a.n; i++ {
		for j := 0; j < a.n; j++ {
			if j > 0 {
				s = append(s, ' ')
			}
			s = append(s, a.cells[i*a.n+j].String()...)
		}
		s = append(s, '\n')
	}

	return string(s)
}
