// Package prim_kruskal computes a maximum-weight spanning forest over a
// similarity multigraph of core.Edge values, with two interchangeable
// strategies: Kruskal (sort-and-union) and Prim (frontier growth).
//
// What & Why
//
//   - What is a maximum spanning forest?
//     For every connected component of G = (V, E) pick |Vc|−1 edges that connect
//     the component without a cycle, maximizing the total weight. Over the whole
//     graph the forest holds |V| − (#components) edges.
//
//   - Why maximum?
//     Edges are similarity links. Keeping the strongest link that still grows a
//     tree highlights how each group of items hangs together.
//
// Ordering
//
//	"Best" always means core.Compare: higher Weight first, then more SharedLines.
//	There is no third key. Two edges equal on both are order-equivalent and the
//	strategies may pick different ones; the total weight is identical either way.
//
// Algorithms Provided
//
//   - Kruskal(edges []core.Edge) []core.Edge
//
//   - Strategy: stable-sort a copy of the edges best-first, register every
//     endpoint in a dsu.DSU, keep each edge whose Union succeeds.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
//
//   - Determinism: the stable sort keeps input order among order-equivalent edges.
//
//   - Prim(edges []core.Edge) []core.Edge
//
//   - Strategy: for every unvisited node (first-seen order) seed a max-heap
//     frontier with a synthetic seed item, pop the best candidate, skip visited
//     targets, keep the edge and push the new node's edges to unvisited ends.
//
//   - Complexity: O(E log E) time, O(V + E) memory.
//
// Selection
//
//	Builder is the single operation both strategies share. New(WithMethod(m))
//	returns one; ParseMethod accepts "kruskal"/"sort-and-union"/"1" and
//	"prim"/"frontier-growth"/"2".
//
// Errors
//
//	ErrUnknownMethod - method name not recognized by ParseMethod or New.
//
// Edge cases
//
//   - Empty input → empty forest, weight 0.
//   - Duplicate edges between the same pair compete independently.
//   - Self-loops are never selected.
package prim_kruskal
