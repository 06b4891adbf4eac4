package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/simforest/core"
	"github.com/katalvlaran/simforest/prim_kruskal"
)

// ExampleKruskal runs sort-and-union on three items that all overlap.
// 10–12 (95) and 10–11 (80) are kept; 11–12 (55) would close a cycle.
func ExampleKruskal() {
	edges, err := core.FromRecords([]core.Record{
		{LabelA: "Item10(80%)", LabelB: "Item11(60%)", SharedLines: 10},
		{LabelA: "Item11(55%)", LabelB: "Item12(40%)", SharedLines: 5},
		{LabelA: "Item10(90%)", LabelB: "Item12(95%)", SharedLines: 20},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	forest := prim_kruskal.Kruskal(edges)
	fmt.Printf("Total: %d, Edges:", prim_kruskal.TotalWeight(forest))
	for _, e := range forest {
		fmt.Printf(" %d-%d", e.A, e.B)
	}
	fmt.Println()
	// Output: Total: 175, Edges: 10-12 10-11
}

// ExampleCompute selects frontier growth by name, as a configuration would.
func ExampleCompute() {
	edges, _ := core.FromRecords([]core.Record{
		{LabelA: "a1(30%)", LabelB: "b2(70%)", SharedLines: 4},
		{LabelA: "c3(50%)", LabelB: "d4(10%)", SharedLines: 2},
	})

	m, _ := prim_kruskal.ParseMethod("frontier-growth")
	forest, total, err := prim_kruskal.Compute(edges, prim_kruskal.WithMethod(m))
	fmt.Println(m, len(forest), total, err)
	// Output: prim 2 120 <nil>
}
