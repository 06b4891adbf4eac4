// Package dsu implements a disjoint-set union (union-find) over integer node ids
// with union by size and full path compression.
//
// The structure only grows: nodes are registered with Add and sets are merged
// with Union; nothing is ever removed. One DSU serves one computation and is
// then discarded.
//
// Complexity: Add O(1), Find and Union amortized O(α(n)). Memory O(n).
package dsu

import (
	"errors"
	"fmt"
)

// ErrUnknownNode is the panic value cause when Find or Union touches a node
// that was never registered with Add. This is a caller bug, not an input error.
var ErrUnknownNode = errors.New("dsu: node not registered")

// DSU holds parent links and set sizes keyed by node id.
// The zero value is not usable; call New.
type DSU struct {
	parent map[int]int
	size   map[int]int
	sets   int
}

// New returns an empty DSU.
func New() *DSU { return NewWithCapacity(0) }

// NewWithCapacity returns an empty DSU with room for n nodes.
func NewWithCapacity(n int) *DSU {
	return &DSU{
		parent: make(map[int]int, n),
		size:   make(map[int]int, n),
	}
}

// Add registers x as a singleton set. Adding a known node is a no-op.
func (d *DSU) Add(x int) {
	if _, ok := d.parent[x]; ok {
		return
	}
	d.parent[x] = x
	d.size[x] = 1
	d.sets++
}

// Contains reports whether x has been registered.
func (d *DSU) Contains(x int) bool {
	_, ok := d.parent[x]

	return ok
}

// Find returns the root of the set containing x and points every node on the
// walked path directly at that root. Find panics if x was never added.
func (d *DSU) Find(x int) int {
	// 1. Walk up to the root.
	root, ok := d.parent[x]
	if !ok {
		panic(fmt.Errorf("%w: %d", ErrUnknownNode, x))
	}
	for {
		p := d.parent[root]
		if p == root {
			// A root is its own parent.
			break
		}
		root = p
	}

	// 2. Compress: re-point the whole path at root.
	for x != root {
		next := d.parent[x] // remember the old parent before overwriting
		d.parent[x] = root
		x = next
	}

	return root
}

// Union merges the sets of a and b, attaching the smaller root under the larger.
// On equal sizes b's root goes under a's. It reports whether a merge happened.
func (d *DSU) Union(a, b int) bool {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		// Already in the same set; nothing to merge.
		return false
	}
	// Keep ra as the larger root; on a tie ra stays a's root.
	if d.size[ra] < d.size[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	d.size[ra] += d.size[rb]
	delete(d.size, rb) // sizes are tracked for roots only
	d.sets--

	return true
}

// SetSize returns the number of nodes in x's set.
func (d *DSU) SetSize(x int) int { return d.size[d.Find(x)] }

// Len returns the number of registered nodes.
func (d *DSU) Len() int { return len(d.parent) }

// Sets returns the current number of disjoint sets.
func (d *DSU) Sets() int { return d.sets }
