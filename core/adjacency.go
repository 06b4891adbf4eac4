package core

// Incidence is one edge seen from one of its endpoints; To is the far end.
type Incidence struct {
	Edge Edge
	To   int
}

// Adjacency maps each node id to its incident edges, remembering the order in
// which nodes were first seen. It is built once and then only read.
type Adjacency struct {
	order []int
	inc   map[int][]Incidence
}

// NewAdjacency indexes edges in both directions. Nodes are recorded in
// first-seen order (A before B, edges in slice order) and each node's
// incidences keep the input edge order.
//
// Complexity: O(E) time and memory.
func NewAdjacency(edges []Edge) *Adjacency {
	adj := &Adjacency{
		order: make([]int, 0, len(edges)),
		inc:   make(map[int][]Incidence, len(edges)),
	}
	for _, e := range edges {
		adj.touch(e.A)
		adj.touch(e.B)
		adj.inc[e.A] = append(adj.inc[e.A], Incidence{Edge: e, To: e.B})
		adj.inc[e.B] = append(adj.inc[e.B], Incidence{Edge: e, To: e.A})
	}

	return adj
}

func (a *Adjacency) touch(id int) {
	if _, ok := a.inc[id]; ok {
		return
	}
	a.order = append(a.order, id)
	a.inc[id] = nil
}

// Nodes returns node ids in first-seen order. The slice must not be modified.
func (a *Adjacency) Nodes() []int { return a.order }

// Len returns the number of distinct nodes.
func (a *Adjacency) Len() int { return len(a.order) }

// Has reports whether id is an endpoint of some edge.
func (a *Adjacency) Has(id int) bool {
	_, ok := a.inc[id]

	return ok
}

// Incident returns the incidences of id in input order, or nil for unknown ids.
func (a *Adjacency) Incident(id int) []Incidence { return a.inc[id] }
