// Package rank orders similarity clusters and uses that order to arrange the
// spanning-forest report.
//
// Groups are ranked by Similarity descending, then by member count descending;
// ranks start at 1. Forest edges are then ordered by the rank of their A
// endpoint's group, and by SharedLines descending within a rank, so the
// tightest, most similar clusters lead the report.
package rank

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/simforest/cluster"
	"github.com/katalvlaran/simforest/core"
)

// ErrUnranked is the panic cause when Order meets an edge whose A endpoint has
// no rank. Every forest endpoint belongs to some group, so this is a caller bug.
var ErrUnranked = errors.New("rank: node has no group rank")

// Ranked is a group together with its 1-based rank.
type Ranked struct {
	Rank int
	cluster.Group
}

// Sort orders groups in place: higher Similarity first, then more members.
// Groups equal on both keep their relative order.
func Sort(groups []cluster.Group) {
	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].Similarity != groups[j].Similarity {
			return groups[i].Similarity > groups[j].Similarity
		}

		return groups[i].Size() > groups[j].Size()
	})
}

// Assign sorts a copy of groups and numbers them from 1.
func Assign(groups []cluster.Group) []Ranked {
	sorted := make([]cluster.Group, len(groups))
	copy(sorted, groups)
	Sort(sorted)

	out := make([]Ranked, len(sorted))
	for i, g := range sorted {
		out[i] = Ranked{Rank: i + 1, Group: g}
	}

	return out
}

// Ranks maps every member node id to its group's rank.
func Ranks(ranked []Ranked) map[int]int {
	n := 0
	for _, r := range ranked {
		n += r.Size()
	}
	m := make(map[int]int, n)
	for _, r := range ranked {
		for _, id := range r.Items {
			m[id] = r.Rank
		}
	}

	return m
}

// Order returns a copy of forest sorted by ascending rank of each edge's A
// endpoint, then by SharedLines descending. It panics if an A endpoint is
// missing from ranks.
func Order(forest []core.Edge, ranks map[int]int) []core.Edge {
	rankOf := func(id int) int {
		r, ok := ranks[id]
		if !ok {
			panic(fmt.Errorf("%w: %d", ErrUnranked, id))
		}

		return r
	}

	out := make([]core.Edge, len(forest))
	copy(out, forest)
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := rankOf(out[i].A), rankOf(out[j].A)
		if ri != rj {
			return ri < rj
		}

		return out[i].SharedLines > out[j].SharedLines
	})

	return out
}
