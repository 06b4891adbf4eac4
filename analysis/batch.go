package analysis

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/simforest/core"
)

// Dataset is one named input. Load is called from the worker goroutine.
type Dataset struct {
	Name string
	Load func(ctx context.Context) ([]core.Record, error)
}

// Sink receives each finished report. It may be called concurrently.
type Sink func(ctx context.Context, rep *Report) error

// RunBatch analyzes datasets with at most concurrency in flight. Datasets share
// nothing, so one failing dataset never stops the others; every failure is
// returned joined. Cancelling ctx stops datasets that have not started yet.
func (a *Analyzer) RunBatch(ctx context.Context, datasets []Dataset, concurrency int, sink Sink) error {
	if concurrency < 1 {
		concurrency = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	var (
		mu   sync.Mutex
		errs []error
	)
	fail := func(name string, err error) {
		mu.Lock()
		errs = append(errs, fmt.Errorf("%s: %w", name, err))
		mu.Unlock()
	}

	for _, ds := range datasets {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				fail(ds.Name, err)
				return nil
			}
			recs, err := ds.Load(gctx)
			if err != nil {
				fail(ds.Name, fmt.Errorf("load: %w", err))
				return nil
			}
			rep, err := a.Analyze(gctx, ds.Name, recs)
			if err != nil {
				fail(ds.Name, err)
				return nil
			}
			if sink != nil {
				if err := sink(gctx, rep); err != nil {
					fail(ds.Name, fmt.Errorf("write: %w", err))
				}
			}

			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
