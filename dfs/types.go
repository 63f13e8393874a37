// Package dfs defines the graph view and sentinel errors used by the
// depth-first cycle enumeration.
package dfs

import "errors"

// Vertex visitation state during a cycle walk.
const (
	White = iota // White: the vertex is not on the current path.
	Gray         // Gray: the vertex is on the current path (in the recursion stack).
)

// ErrGraphNil is returned when a nil Neighborhood is passed to FindCycles.
var ErrGraphNil = errors.New("dfs: graph is nil")

// Neighborhood is the read-only view of an undirected graph over the dense
// vertex range [0, Order()). Linked must be symmetric; Linked(u, u) may be
// true but self-loops are never followed.
type Neighborhood interface {
	// Order returns the number of vertices.
	Order() int

	// Linked reports whether a branch joins u and v.
	Linked(u, v int) bool
}
