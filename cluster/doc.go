// Package cluster partitions the nodes of a similarity multigraph into
// connected components and scores each component.
//
// What:
//
//   - Discover walks every component depth-first (explicit stack, no recursion)
//     and returns one Group per component.
//   - Each edge contributes PercentA to its A endpoint, PercentB to its B
//     endpoint, and one unit of edge count to its A endpoint only, so every
//     edge is counted exactly once per component.
//   - Similarity = RoundEven(percentSum / (2·edgeCount), 1): the mean of each
//     edge's average percentage, rounded half-to-even to one decimal.
//
// Invariants:
//
//   - Groups are pairwise disjoint and cover every node referenced by an edge.
//   - Every group has at least one edge, so the score is always defined and lies in [0,100].
//
// Complexity: O(V + E) time and memory, plus O(Vc log Vc) to sort each group's items.
package cluster
