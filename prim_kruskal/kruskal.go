package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/simforest/core"
	"github.com/katalvlaran/simforest/dsu"
)

// Kruskal builds a maximum-weight spanning forest by sorting and merging.
//
// Steps:
//  1. Copy edges and stable-sort the copy best-first by core.Compare.
//  2. Register both endpoints of every edge in a fresh DSU.
//  3. Walk the sorted edges; keep each edge whose Union merges two sets.
//
// The result holds |V| − (#components) edges in selection order.
// Complexity: O(E log E + α(V)·E). Memory: O(V + E).
func Kruskal(edges []core.Edge) []core.Edge {
	// 1. Sort a private copy; the caller's order is left alone.
	sorted := make([]core.Edge, len(edges))
	copy(sorted, edges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return core.Less(sorted[i], sorted[j])
	})

	// 2. Every endpoint becomes a singleton set.
	sets := dsu.NewWithCapacity(len(sorted))
	for _, e := range sorted {
		sets.Add(e.A) // Add is idempotent, repeats are free
		sets.Add(e.B)
	}

	// 3. One pass; a successful union means the edge joins two trees.
	forest := make([]core.Edge, 0, sets.Len())
	for _, e := range sorted {
		if sets.Union(e.A, e.B) {
			// Endpoints were in different trees: the edge is part of the forest.
			forest = append(forest, e)
		}
		// Otherwise the edge would close a cycle (self-loops always do).
	}

	return forest
}
