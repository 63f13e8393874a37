// Package circuit defines the Branch, Edge and Adjacency types of a resistive
// network and assembles Kirchhoff's current and voltage laws into matrix form.
//
// This file declares Vertex, Edge, Branch, System and the sentinel errors.
//
// Errors:
//
//	ErrInvalidEdge         - self-loop edge (u == u) used as a circuit branch.
//	ErrAsymmetric          - adjacency presence or resistance differs between (u,v) and (v,u).
//	ErrNilAdjacency        - nil *Adjacency passed to NewAssembler.
//	ErrNegativeResistance  - a present branch with resistance < 0.
//	ErrBadVertex           - negative or too large vertex index.
//	ErrNotBranch           - edge that is not a branch of the assembled network.
package circuit

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/kirchhoff/matrix"
)

// Sentinel errors for circuit operations.
var (
	// ErrInvalidEdge indicates a self-loop edge; such an edge cannot carry a branch current.
	ErrInvalidEdge = errors.New("circuit: invalid edge (self-loop)")

	// ErrAsymmetric indicates that cell (u,v) and cell (v,u) disagree on presence or resistance.
	ErrAsymmetric = errors.New("circuit: asymmetric adjacency")

	// ErrNilAdjacency indicates a nil adjacency table.
	ErrNilAdjacency = errors.New("circuit: adjacency is nil")

	// ErrNegativeResistance indicates a present branch with a negative resistance.
	ErrNegativeResistance = errors.New("circuit: negative resistance")

	// ErrBadVertex indicates a negative or too large vertex index.
	ErrBadVertex = errors.New("circuit: vertex index out of range")

	// ErrNotBranch indicates an edge that carries no branch in the assembled network.
	ErrNotBranch = errors.New("circuit: edge is not a branch")
)

// circuitErrorf wraps err with an operation tag, preserving it for errors.Is.
func circuitErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Vertex is a node of the network, a dense index in [0, Order()).
type Vertex = int

// Edge is an ordered vertex pair. (u,v) and (v,u) name the same physical
// branch; the orientation that was registered first fixes the sign of the
// branch current.
type Edge struct {
	From Vertex
	To   Vertex
}

// Less orders edges lexicographically by (From, To).
func (e Edge) Less(o Edge) bool {
	if e.From != o.From {
		return e.From < o.From
	}

	return e.To < o.To
}

// Reversed returns (To, From).
func (e Edge) Reversed() Edge { return Edge{From: e.To, To: e.From} }

// Canonical returns the orientation with From <= To.
func (e Edge) Canonical() Edge {
	if e.To < e.From {
		return e.Reversed()
	}

	return e
}

// IsLoop reports From == To.
func (e Edge) IsLoop() bool { return e.From == e.To }

// String renders "u-v".
func (e Edge) String() string { return fmt.Sprintf("%d-%d", e.From, e.To) }

// edgeComparator orders Edge keys for the variable index tree.
func edgeComparator(a, b interface{}) int {
	ea, eb := a.(Edge), b.(Edge)
	switch {
	case ea.Less(eb):
		return -1
	case eb.Less(ea):
		return 1
	default:
		return 0
	}
}

// Branch is the attribute of one adjacency cell: the resistance of the
// branch and the source voltage acting along the cell's direction.
type Branch struct {
	Resistance float64
	Voltage    float64
}

// NoBranch marks an empty adjacency cell.
var NoBranch = Branch{Resistance: -1, Voltage: -1}

// IsPresent reports whether b describes a branch. Only the NoBranch
// sentinel (both components -1) means "no edge".
func (b Branch) IsPresent() bool { return b != NoBranch }

// String renders "(2R, 0V)"; an empty cell renders "(-)".
func (b Branch) String() string {
	if !b.IsPresent() {
		return "(-)"
	}

	return fmt.Sprintf("(%gR, %gV)", b.Resistance, b.Voltage)
}

// System is a linear system LHS·x = RHS. RHS is a single column.
type System struct {
	LHS *matrix.Dense
	RHS *matrix.Dense
}
