package cluster

import (
	"sort"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/simforest/core"
)

// scorePrecision is the number of decimals kept in Group.Similarity.
const scorePrecision = 1

// Group is one connected component.
type Group struct {
	// Items holds the member node ids in ascending order.
	Items []int

	// Similarity is the component score in [0,100] with one decimal.
	Similarity float64

	// Edges is the number of edges inside the component (duplicates included).
	Edges int

	// PercentSum is the sum of PercentA+PercentB over those edges.
	PercentSum int
}

// Size returns the number of members.
func (g Group) Size() int { return len(g.Items) }

// Discover returns the connected components of edges in the order their first
// node was seen. Empty input yields no groups.
//
// Steps:
//  1. Index edges in both directions with core.NewAdjacency.
//  2. Accumulate per-node contributions: percent share on each side, edge
//     count on the A side.
//  3. From each unvisited node run an explicit-stack DFS, summing the
//     contributions of every node it reaches.
//  4. Sort members and compute the similarity score.
func Discover(edges []core.Edge) []Group {
	// 1. Adjacency with deterministic node order.
	adj := core.NewAdjacency(edges)

	// 2. Per-node contributions.
	percent := make(map[int]int, adj.Len())
	count := make(map[int]int, adj.Len())
	for _, e := range edges {
		percent[e.A] += e.PercentA
		percent[e.B] += e.PercentB
		count[e.A]++
	}

	// 3. One traversal per component.
	visited := make(map[int]bool, adj.Len())
	var groups []Group
	var stack []int
	for _, start := range adj.Nodes() {
		if visited[start] {
			continue
		}
		g := Group{}
		stack = append(stack[:0], start)
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if visited[n] {
				continue
			}
			visited[n] = true
			g.Items = append(g.Items, n)
			g.PercentSum += percent[n]
			g.Edges += count[n]

			// Reverse push keeps the recursive pre-order.
			inc := adj.Incident(n)
			for i := len(inc) - 1; i >= 0; i-- {
				if !visited[inc[i].To] {
					stack = append(stack, inc[i].To)
				}
			}
		}

		// 4. Finish the group.
		sort.Ints(g.Items)
		g.Similarity = Similarity(g.PercentSum, g.Edges)
		groups = append(groups, g)
	}

	return groups
}

// Similarity returns percentSum / (2·edgeCount) rounded half-to-even to one
// decimal. It returns 0 when edgeCount is not positive.
func Similarity(percentSum, edgeCount int) float64 {
	if edgeCount <= 0 {
		return 0
	}

	return scalar.RoundEven(float64(percentSum)/(2*float64(edgeCount)), scorePrecision)
}
