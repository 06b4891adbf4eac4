// Package simforest groups items by pairwise similarity and reports how each
// group hangs together.
//
// 🚀 What is simforest?
//
//	A small pipeline over "item A shares N lines with item B" records:
//		• Edge model: labels like "Item17(80%)" parsed into ids and percents
//		• Spanning forest: maximum-weight Kruskal or Prim, one tree per component
//		• Clusters: connected components with an average-similarity score
//		• Ranking: clusters ordered by score, forest rows ordered by cluster rank
//		• I/O: xlsx and csv in, xlsx and csv out, plus an HTTP API
//
// Packages:
//
//	core/          - Record, Label, Edge, ordering contract, adjacency index
//	dsu/           - disjoint-set union (path compression, union by size)
//	prim_kruskal/  - spanning-forest strategies behind one Builder
//	cluster/       - component discovery and similarity score
//	rank/          - group ranking and forest ordering
//	analysis/      - per-dataset pipeline and concurrent batches
//	internal/      - config, logging, metrics, dataset files, HTTP server
//	cmd/simforest/ - CLI: run and serve
//
// Quick example:
//
//	Item10(80%) -- Item11(60%)   10 lines
//	Item11(55%) -- Item12(40%)    5 lines
//	Item10(90%) -- Item12(95%)   20 lines
//
//	forest: 10-12 (95), 10-11 (80)   total 175
//	group:  [10 11 12]  similarity 70.0
//
//	go install github.com/katalvlaran/simforest/cmd/simforest@latest
package simforest
