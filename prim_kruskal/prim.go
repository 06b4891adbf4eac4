package prim_kruskal

import (
	"container/heap"

	"github.com/katalvlaran/simforest/core"
)

// Prim builds a maximum-weight spanning forest by growing one tree per
// component from a priority frontier.
//
// Steps:
//  1. Index edges with core.NewAdjacency (nodes in first-seen order).
//  2. For each unvisited node, seed the frontier with a synthetic seed item
//     targeting that node.
//  3. Pop the best candidate; skip it if its target is visited; otherwise mark
//     the target visited, keep the edge unless it is the seed, and push every
//     incident edge whose far end is still unvisited.
//  4. When the frontier drains, move on to the next unvisited node.
//
// Complexity: O(E log E). Memory: O(V + E).
func Prim(edges []core.Edge) []core.Edge {
	// 1. Adjacency with deterministic node order.
	adj := core.NewAdjacency(edges)
	visited := make(map[int]bool, adj.Len())
	forest := make([]core.Edge, 0, adj.Len())

	pq := &frontier{}
	for _, root := range adj.Nodes() {
		if visited[root] {
			continue
		}

		// 2. New tree.
		heap.Push(pq, candidate{to: root, seed: true})

		// 3. Grow until the frontier drains.
		for pq.Len() > 0 {
			c := heap.Pop(pq).(candidate) // best remaining candidate
			if visited[c.to] {
				// Stale entry: the target joined the tree through a better edge.
				continue
			}
			visited[c.to] = true
			if !c.seed {
				forest = append(forest, c.edge)
			}
			// Offer every edge leaving the new node; edges back into the tree
			// (including self-loops) are never pushed.
			for _, inc := range adj.Incident(c.to) {
				if !visited[inc.To] {
					heap.Push(pq, candidate{edge: inc.Edge, to: inc.To})
				}
			}
		}
	}

	return forest
}

// candidate is a frontier entry: an edge reaching node to. The seed entry that
// starts each tree carries no edge.
type candidate struct {
	edge core.Edge
	to   int
	seed bool
}

// frontier implements heap.Interface as a max-heap under core.Compare:
// the root is always the best candidate.
type frontier []candidate

// Len returns the number of candidates.
func (f frontier) Len() int { return len(f) }

// Less orders better edges first. A seed is alone in its tree's frontier when
// pushed, so its ordering against real edges never matters.
func (f frontier) Less(i, j int) bool { return core.Less(f[i].edge, f[j].edge) }

// Swap swaps candidates i and j.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push appends a candidate; called by heap.Push which then sifts it up.
func (f *frontier) Push(x any) { *f = append(*f, x.(candidate)) }

// Pop removes the last candidate; heap.Pop has already moved the root there
// and sifted the replacement down.
func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	c := old[n-1]
	*f = old[:n-1]

	return c
}
