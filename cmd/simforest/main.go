// Command simforest analyzes item-similarity datasets: for each dataset it
// builds a maximum spanning forest, discovers clusters of similar items, and
// writes the ranked forest and cluster statistics as xlsx or csv.
//
// Usage:
//
//	simforest [-config simforest.yaml] [-env .env] run   [-method kruskal|prim] [-format xlsx|csv] [-input dir] [-output dir] [-concurrency n] [files...]
//	simforest [-config simforest.yaml] [-env .env] serve [-addr :8080] [-method kruskal|prim]
//
// With no subcommand, run is assumed.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/katalvlaran/simforest/analysis"
	"github.com/katalvlaran/simforest/internal/config"
	"github.com/katalvlaran/simforest/internal/dataset"
	"github.com/katalvlaran/simforest/internal/logger"
	"github.com/katalvlaran/simforest/internal/metrics"
	"github.com/katalvlaran/simforest/internal/server"
	"github.com/katalvlaran/simforest/prim_kruskal"
)

func main() {
	configPath := flag.String("config", "", "path to a .yaml or .toml config file")
	envFile := flag.String("env", ".env", "dotenv file loaded before the config")
	flag.Usage = printUsage
	flag.Parse()

	if err := config.LoadDotEnv(*envFile); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load env: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	args := flag.Args()
	cmd := "run"
	if len(args) > 0 && (args[0] == "run" || args[0] == "serve") {
		cmd, args = args[0], args[1:]
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cmd {
	case "serve":
		err = cmdServe(ctx, cfg, args)
	default:
		err = cmdRun(ctx, cfg, args)
	}
	if err != nil {
		slog.Error(cmd+" failed", "error", err)
		os.Exit(1)
	}
}

func cmdRun(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	fs.StringVar(&cfg.Method, "method", cfg.Method, "spanning-forest strategy: kruskal (1) or prim (2)")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "output format: xlsx or csv")
	fs.StringVar(&cfg.InputDir, "input", cfg.InputDir, "directory scanned for datasets")
	fs.StringVar(&cfg.OutputDir, "output", cfg.OutputDir, "directory for reports")
	fs.IntVar(&cfg.Concurrency, "concurrency", cfg.Concurrency, "datasets analyzed in parallel")
	fs.Parse(args)

	if err := cfg.Validate(); err != nil {
		return err
	}
	logger.Setup(cfg.Logging.Level, cfg.Logging.Format)
	method, _ := prim_kruskal.ParseMethod(cfg.Method)

	ctx, runID := logger.WithRunID(ctx)
	log := logger.FromContext(ctx).With("component", "cli")

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
		shutdown := m.StartServer(cfg.Metrics.Addr)
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdown(sctx)
		}()
	}

	datasets, err := collectDatasets(cfg, fs.Args())
	if err != nil {
		return err
	}
	if len(datasets) == 0 {
		log.Warn("no datasets found", "input_dir", cfg.InputDir)
		return nil
	}

	a, err := analysis.New(analysis.WithMethod(method), analysis.WithMetrics(m))
	if err != nil {
		return err
	}
	log.Info("starting run",
		"run_id", runID,
		"datasets", len(datasets),
		"method", method,
		"concurrency", cfg.Concurrency,
	)

	start := time.Now()
	err = a.RunBatch(ctx, datasets, cfg.Concurrency, func(ctx context.Context, rep *analysis.Report) error {
		paths, err := dataset.WriteReport(cfg.OutputDir, cfg.Format, rep)
		if err != nil {
			return err
		}
		logger.FromContext(ctx).Info("report written", "dataset", rep.Name, "files", strings.Join(paths, ", "))

		return nil
	})
	log.Info("run finished", "elapsed_ms", time.Since(start).Milliseconds(), "failed", err != nil)

	return err
}

// collectDatasets prefers explicit file arguments, then configured datasets,
// then every supported file in InputDir.
func collectDatasets(cfg *config.Config, files []string) ([]analysis.Dataset, error) {
	if len(files) > 0 {
		out := make([]analysis.Dataset, 0, len(files))
		for _, f := range files {
			if _, err := dataset.FormatOf(f); err != nil {
				return nil, err
			}
			out = append(out, dataset.Source(strings.TrimSuffix(filepath.Base(f), filepath.Ext(f)), f))
		}
		return out, nil
	}
	if len(cfg.Datasets) > 0 {
		out := make([]analysis.Dataset, 0, len(cfg.Datasets))
		for _, d := range cfg.Datasets {
			path := cfg.DatasetPath(d)
			name := d.Name
			if name == "" {
				name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			}
			out = append(out, dataset.Source(name, path))
		}
		return out, nil
	}
	ds, err := dataset.Glob(cfg.InputDir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	return ds, err
}

func cmdServe(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	fs.StringVar(&cfg.Server.Addr, "addr", cfg.Server.Addr, "listen address")
	fs.StringVar(&cfg.Method, "method", cfg.Method, "default spanning-forest strategy")
	fs.Parse(args)

	if err := cfg.Validate(); err != nil {
		return err
	}
	logger.Setup(cfg.Logging.Level, cfg.Logging.Format)
	method, _ := prim_kruskal.ParseMethod(cfg.Method)

	srv, err := server.New(cfg.Server, method, metrics.New())
	if err != nil {
		return err
	}

	return srv.Run(ctx)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage:
  simforest [-config file] [-env file] run   [-method kruskal|prim] [-format xlsx|csv] [-input dir] [-output dir] [-concurrency n] [files...]
  simforest [-config file] [-env file] serve [-addr :8080] [-method kruskal|prim]`)
	flag.PrintDefaults()
}
