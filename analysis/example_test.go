package analysis_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/simforest/analysis"
	"github.com/katalvlaran/simforest/core"
	"github.com/katalvlaran/simforest/prim_kruskal"
)

// ExampleAnalyzer_Analyze runs the pipeline over the reference triangle.
func ExampleAnalyzer_Analyze() {
	a, err := analysis.New(analysis.WithMethod(prim_kruskal.MethodPrim))
	if err != nil {
		fmt.Println(err)
		return
	}
	rep, err := a.Analyze(context.Background(), "demo", []core.Record{
		{LabelA: "Item10(80%)", LabelB: "Item11(60%)", SharedLines: 10},
		{LabelA: "Item11(55%)", LabelB: "Item12(40%)", SharedLines: 5},
		{LabelA: "Item10(90%)", LabelB: "Item12(95%)", SharedLines: 20},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, r := range rep.Forest {
		fmt.Printf("%s | %s | %d\n", r.LabelA, r.LabelB, r.SharedLines)
	}
	for _, g := range rep.Groups {
		fmt.Printf("%d: %s avg %.1f\n", g.Index, g.MemberList(), g.Similarity)
	}
	// Output:
	// Item10 (90%) | Item12 (95%) | 20
	// Item10 (80%) | Item11 (60%) | 10
	// 1: 10, 11, 12 avg 70.0
}
