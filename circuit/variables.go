// SPDX-License-Identifier: MIT

package circuit

import (
	"fmt"

	"github.com/emirpasic/gods/maps/treemap"
)

const opLookup = "VariableIndex.Lookup"

// VariableIndex assigns one unknown (branch current) per physical branch.
// Keys are edges in the orientation that was registered first; a lookup in
// the opposite orientation reuses the index and reports reversed = true.
// Indices are handed out densely from 0 in registration order.
type VariableIndex struct {
	ids  *treemap.Map // Edge -> int
	next int
}

// NewVariableIndex returns an empty index.
func NewVariableIndex() *VariableIndex {
	return &VariableIndex{ids: treemap.NewWith(edgeComparator)}
}

// Lookup returns the variable of e, registering e with the next free index
// when neither e nor its reversal is known yet.
//
// Errors:
//   - ErrInvalidEdge when e is a self-loop.
func (vi *VariableIndex) Lookup(e Edge) (idx int, reversed bool, err error) {
	if e.IsLoop() {
		return 0, false, fmt.Errorf("%s(%v): %w", opLookup, e, ErrInvalidEdge)
	}
	if known, rev, ok := vi.Find(e); ok {
		return known, rev, nil
	}
	idx = vi.next
	vi.ids.Put(e, idx)
	vi.next++

	return idx, false, nil
}

// Find is Lookup without registration.
func (vi *VariableIndex) Find(e Edge) (idx int, reversed, ok bool) {
	if v, found := vi.ids.Get(e); found {
		return v.(int), false, true
	}
	if v, found := vi.ids.Get(e.Reversed()); found {
		return v.(int), true, true
	}

	return 0, false, false
}

// Len returns the number of registered variables.
func (vi *VariableIndex) Len() int { return vi.next }

// Edges returns the registered orientation of every variable, indexed by variable.
func (vi *VariableIndex) Edges() []Edge {
	out := make([]Edge, vi.next)
	it := vi.ids.Iterator()
	for it.Next() {
		out[it.Value().(int)] = it.Key().(Edge)
	}

	return out
}
