// Package dfs implements depth-first cycle enumeration over a dense,
// integer-indexed undirected graph.
//
// What:
//
//   - FindCycles: enumerates the distinct simple cycles of a Neighborhood,
//     walking depth-first from every vertex so disconnected components are
//     all covered. Each cycle is a closed vertex sequence (first == last).
//   - Cycles are de-duplicated by vertex set; the first walk found wins.
//
// Why:
//   - One Kirchhoff voltage-law equation is written per discovered cycle, so
//     the set must cover every independent loop of the circuit.
//
// Key Types & Constants:
//
//   - Neighborhood: Order() and Linked(u, v); implemented by circuit.Adjacency.
//   - White, Gray: path markers.
//
// Complexity:
//
//   - FindCycles: exponential worst case (all simple paths), Memory O(V + C*L).
//     Recursion depth is bounded by the vertex count.
//
// Errors:
//
//   - ErrGraphNil  graph is nil
package dfs
