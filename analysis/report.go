package analysis

import (
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/simforest/prim_kruskal"
)

// ForestRow is one spanning-forest edge as handed to a report writer.
type ForestRow struct {
	LabelA      string `json:"labelA"`
	RefA        string `json:"refA,omitempty"`
	LabelB      string `json:"labelB"`
	RefB        string `json:"refB,omitempty"`
	SharedLines int    `json:"sharedLines"`
}

// GroupRow is one ranked similarity cluster.
type GroupRow struct {
	// Index is the 1-based rank of the group.
	Index      int     `json:"index"`
	Members    []int   `json:"members"`
	Similarity float64 `json:"similarity"`
	Count      int     `json:"count"`
}

// MemberList renders Members as "1, 2, 3".
func (g GroupRow) MemberList() string {
	parts := make([]string, len(g.Members))
	for i, id := range g.Members {
		parts[i] = strconv.Itoa(id)
	}

	return strings.Join(parts, ", ")
}

// Timings are the wall-clock durations of the analysis stages.
type Timings struct {
	Parse    time.Duration `json:"parse"`
	Forest   time.Duration `json:"forest"`
	Grouping time.Duration `json:"grouping"`
	Total    time.Duration `json:"total"`
}

// Report is the complete result for one dataset.
type Report struct {
	Name        string              `json:"name"`
	Method      prim_kruskal.Method `json:"method"`
	Forest      []ForestRow         `json:"forest"`
	Groups      []GroupRow          `json:"groups"`
	TotalWeight int                 `json:"totalWeight"`
	Nodes       int                 `json:"nodes"`
	Edges       int                 `json:"edges"`
	Timings     Timings             `json:"timings"`
}
