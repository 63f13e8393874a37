// Package dfs enumerates simple cycles of an undirected graph given as a
// Neighborhood. FindCycles walks depth-first from every vertex as a root,
// marks the current path Gray, and closes a cycle only when the walk returns
// to the path's start vertex. The immediate predecessor is never revisited,
// so a single branch u–v never yields the spurious walk u→v→u.
//
// Cycles are de-duplicated by their vertex *set*: two walks over the same
// vertices count once and the first one found is kept. Backtracking resets
// vertices to White so disjoint cycles through a shared vertex are still found.
//
// Complexity:
//
//   - Time:   exponential in the worst case (every simple path is walked);
//     intended for hand-sized circuits.
//   - Memory: O(V + C·L) (recursion stack + path + cycle storage)
//     (C=#cycles, L=avg cycle length). Recursion depth is bounded by V.
package dfs

import "github.com/emirpasic/gods/sets/hashset"

// walker holds the state of one FindCycles run.
type walker struct {
	g      Neighborhood
	n      int
	state  []int        // White/Gray per vertex
	path   []int        // current DFS path (stack)
	seen   *hashset.Set // SetSignature of every recorded cycle
	cycles [][]int      // recorded closed walks, discovery order
}

// FindCycles returns the distinct simple cycles of g, each as a closed vertex
// sequence v0, v1, ..., v0. Cycles appear in discovery order (roots ascending,
// neighbors ascending). A graph without cycles yields an empty, non-nil slice.
//
// Errors:
//   - ErrGraphNil when g is nil.
func FindCycles(g Neighborhood) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.Order()
	w := &walker{
		g:      g,
		n:      n,
		state:  make([]int, n),
		path:   make([]int, 0, n+1),
		seen:   hashset.New(),
		cycles: make([][]int, 0),
	}
	for root := 0; root < n; root++ {
		w.step(root, -1)
	}

	return w.cycles, nil
}

// step visits cur coming from prev (-1 for a root).
func (w *walker) step(cur, prev int) {
	if w.state[cur] == Gray {
		// A Gray vertex closes a cycle only when it is the start of the path.
		if cur != w.path[0] {
			return
		}
		w.record(cur)
		return
	}

	w.state[cur] = Gray
	w.path = append(w.path, cur)
	for next := 0; next < w.n; next++ {
		if next == cur || next == prev || !w.g.Linked(cur, next) {
			continue
		}
		w.step(next, cur)
	}
	w.path = w.path[:len(w.path)-1]
	w.state[cur] = White
}

// record appends path+[start] if its vertex set is new.
func (w *walker) record(start int) {
	sig := SetSignature(w.path)
	if w.seen.Contains(sig) {
		return
	}
	w.seen.Add(sig)
	cycle := make([]int, 0, len(w.path)+1)
	cycle = append(cycle, w.path...)
	w.cycles = append(w.cycles, append(cycle, start))
}
