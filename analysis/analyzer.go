// Package analysis runs the full similarity pipeline for a dataset: parse the
// raw records, build the spanning forest, discover and rank clusters, and
// arrange the report payload. RunBatch fans independent datasets out over a
// bounded number of goroutines.
package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/simforest/cluster"
	"github.com/katalvlaran/simforest/core"
	"github.com/katalvlaran/simforest/internal/logger"
	"github.com/katalvlaran/simforest/internal/metrics"
	"github.com/katalvlaran/simforest/prim_kruskal"
	"github.com/katalvlaran/simforest/rank"
)

// Analyzer holds the run-wide choices; it keeps no per-dataset state and is
// safe for concurrent use.
type Analyzer struct {
	method  prim_kruskal.Method
	builder prim_kruskal.Builder
	log     *slog.Logger
	metrics *metrics.Metrics
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithMethod selects the spanning-forest strategy (default Kruskal).
func WithMethod(m prim_kruskal.Method) Option {
	return func(a *Analyzer) { a.method = m }
}

// WithLogger replaces the component logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *Analyzer) {
		if l != nil {
			a.log = l
		}
	}
}

// WithMetrics records stage timings and outcomes on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(a *Analyzer) { a.metrics = m }
}

// New returns an Analyzer, failing on an unknown method.
func New(opts ...Option) (*Analyzer, error) {
	a := &Analyzer{
		method: prim_kruskal.MethodKruskal,
		log:    logger.WithComponent("analysis"),
	}
	for _, fn := range opts {
		fn(a)
	}
	b, err := prim_kruskal.New(prim_kruskal.WithMethod(a.method))
	if err != nil {
		return nil, err
	}
	a.builder = b

	return a, nil
}

// Method returns the selected strategy.
func (a *Analyzer) Method() prim_kruskal.Method { return a.method }

// Analyze processes one dataset. A malformed record aborts with a wrapped
// *core.ParseError and no partial report. ctx is checked between stages.
func (a *Analyzer) Analyze(ctx context.Context, name string, recs []core.Record) (*Report, error) {
	log := a.log.With("dataset", name, "method", a.method)
	if id, ok := logger.RunID(ctx); ok {
		log = log.With("run_id", id)
	}
	defer a.metrics.Track()()
	start := time.Now()

	rep, err := a.analyze(ctx, name, recs)
	if err != nil {
		a.metrics.DatasetDone(string(a.method), metrics.StatusFailed)
		log.Error("analysis failed", "error", err)

		return nil, err
	}
	rep.Timings.Total = time.Since(start)

	a.metrics.ObserveStage(metrics.StageTotal, rep.Timings.Total)
	a.metrics.ObserveResult(len(rep.Forest), len(rep.Groups))
	a.metrics.DatasetDone(string(a.method), metrics.StatusOK)
	log.Info("analysis complete",
		"edges", rep.Edges,
		"nodes", rep.Nodes,
		"forest_edges", len(rep.Forest),
		"groups", len(rep.Groups),
		"total_weight", rep.TotalWeight,
		"forest_ms", rep.Timings.Forest.Milliseconds(),
		"grouping_ms", rep.Timings.Grouping.Milliseconds(),
		"total_ms", rep.Timings.Total.Milliseconds(),
	)

	return rep, nil
}

func (a *Analyzer) analyze(ctx context.Context, name string, recs []core.Record) (*Report, error) {
	rep := &Report{Name: name, Method: a.method}

	// 1. Parse: all or nothing.
	t := time.Now()
	edges, err := core.FromRecords(recs)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", name, err)
	}
	rep.Timings.Parse = time.Since(t)
	a.metrics.ObserveStage(metrics.StageParse, rep.Timings.Parse)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// 2. Spanning forest.
	t = time.Now()
	forest := a.builder.Build(edges)
	rep.Timings.Forest = time.Since(t)
	a.metrics.ObserveStage(metrics.StageForest, rep.Timings.Forest)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// 3. Clusters and ranks.
	t = time.Now()
	ranked := rank.Assign(cluster.Discover(edges))
	rep.Timings.Grouping = time.Since(t)
	a.metrics.ObserveStage(metrics.StageGrouping, rep.Timings.Grouping)

	// 4. Payload.
	ordered := rank.Order(forest, rank.Ranks(ranked))
	rep.Forest = forestRows(ordered)
	rep.Groups = groupRows(ranked)
	rep.TotalWeight = prim_kruskal.TotalWeight(forest)
	rep.Edges = len(edges)
	for _, g := range ranked {
		rep.Nodes += g.Size()
	}

	return rep, nil
}

func forestRows(edges []core.Edge) []ForestRow {
	rows := make([]ForestRow, len(edges))
	for i, e := range edges {
		rows[i] = ForestRow{
			LabelA:      e.DisplayA(),
			RefA:        e.RefA,
			LabelB:      e.DisplayB(),
			RefB:        e.RefB,
			SharedLines: e.SharedLines,
		}
	}

	return rows
}

func groupRows(ranked []rank.Ranked) []GroupRow {
	rows := make([]GroupRow, len(ranked))
	for i, g := range ranked {
		rows[i] = GroupRow{
			Index:      g.Rank,
			Members:    g.Items,
			Similarity: g.Similarity,
			Count:      g.Size(),
		}
	}

	return rows
}
