// SPDX-License-Identifier: MIT

// Package netlist reads a textual circuit description into a
// circuit.Adjacency.
//
// One branch per statement, terminated by ';'. The unit suffixes are optional
// and the voltage defaults to 0:
//
//	# 6 V source in series with three resistors
//	0 -- 1, 1R, 6V;
//	1 -- 2, 2R;
//	2 -- 0, 3;
//
// A source voltage acts from the first vertex of the statement to the second.
package netlist

import (
	"os"

	"github.com/pkg/errors"

	"github.com/katalvlaran/kirchhoff/circuit"
)

// MaxVertex is the highest vertex index a netlist may use. The branch table
// is dense, so its size grows with the square of the highest index.
const MaxVertex = 1023

var (
	// ErrSyntax wraps every grammar error.
	ErrSyntax = errors.New("netlist: syntax error")

	// ErrDuplicateBranch is returned when two statements join the same pair of vertices.
	ErrDuplicateBranch = errors.New("netlist: duplicate branch")
)

// Branch is one parsed statement.
type Branch struct {
	From       int
	To         int
	Resistance float64
	Voltage    float64
	Line       int // 1-based source line
}

// Edge returns the declared orientation of b.
func (b Branch) Edge() circuit.Edge { return circuit.Edge{From: b.From, To: b.To} }

// Netlist is a parsed circuit description.
type Netlist struct {
	Name     string
	Branches []Branch // declaration order
}

// Parse parses src; name is used in error positions.
//
// Errors:
//   - ErrSyntax on malformed input.
//   - circuit.ErrBadVertex on a negative vertex or one above MaxVertex.
//   - circuit.ErrInvalidEdge on a self-loop statement.
//   - circuit.ErrNegativeResistance on a negative resistance.
//   - ErrDuplicateBranch when a vertex pair is declared twice (in either orientation).
func Parse(name, src string) (*Netlist, error) {
	expr, err := parseNetlist.ParseString(name, src)
	if err != nil {
		return nil, errors.Wrap(ErrSyntax, err.Error())
	}

	nl := &Netlist{Name: name, Branches: make([]Branch, 0, len(expr.Branches))}
	seen := make(map[circuit.Edge]int, len(expr.Branches))
	for _, be := range expr.Branches {
		b := Branch{From: be.From, To: be.To, Resistance: be.Resistance, Line: be.Pos.Line}
		if be.Voltage != nil {
			b.Voltage = *be.Voltage
		}
		switch {
		case b.From < 0 || b.To < 0:
			return nil, errors.Wrapf(circuit.ErrBadVertex, "%s: %d -- %d", be.Pos, b.From, b.To)
		case b.From > MaxVertex || b.To > MaxVertex:
			return nil, errors.Wrapf(circuit.ErrBadVertex, "%s: %d -- %d exceeds vertex %d",
				be.Pos, b.From, b.To, MaxVertex)
		case b.From == b.To:
			return nil, errors.Wrapf(circuit.ErrInvalidEdge, "%s: %d -- %d", be.Pos, b.From, b.To)
		case b.Resistance < 0:
			return nil, errors.Wrapf(circuit.ErrNegativeResistance, "%s: %gR", be.Pos, b.Resistance)
		}
		key := b.Edge().Canonical()
		if line, dup := seen[key]; dup {
			return nil, errors.Wrapf(ErrDuplicateBranch, "%s: %d -- %d already declared on line %d",
				be.Pos, b.From, b.To, line)
		}
		seen[key] = b.Line
		nl.Branches = append(nl.Branches, b)
	}

	return nl, nil
}

// ParseFile reads and parses the file at path.
func ParseFile(path string) (*Netlist, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "netlist: read %s", path)
	}

	return Parse(path, string(src))
}

// Order returns one more than the highest vertex referenced (0 when empty).
func (nl *Netlist) Order() int {
	n := 0
	for _, b := range nl.Branches {
		n = max(n, b.From+1, b.To+1)
	}

	return n
}

// GivenEdges returns the declared orientation of every branch, in declaration order.
func (nl *Netlist) GivenEdges() []circuit.Edge {
	out := make([]circuit.Edge, len(nl.Branches))
	for i, b := range nl.Branches {
		out[i] = b.Edge()
	}

	return out
}

// Adjacency builds the branch table. Vertices that no statement mentions
// become isolated junctions.
func (nl *Netlist) Adjacency() (*circuit.Adjacency, error) {
	adj, err := circuit.NewAdjacency(nl.Order())
	if err != nil {
		return nil, errors.Wrap(err, nl.Name)
	}
	for _, b := range nl.Branches {
		if err = adj.Connect(b.From, b.To, b.Resistance, b.Voltage); err != nil {
			return nil, errors.Wrapf(err, "%s:%d", nl.Name, b.Line)
		}
	}

	return adj, nil
}
