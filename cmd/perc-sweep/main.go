package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"percolator/internal/config"
	"percolator/internal/core"
	"percolator/internal/percolation"
	"percolator/internal/telemetry"
)

func main() {
	fs := flag.NewFlagSet("perc-sweep", flag.ExitOnError)
	seeds := fs.Int("seeds", 32, "number of grids to sample")
	workers := fs.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	out := fs.String("out", "", "per-seed CSV output (empty = stdout)")
	curveOut := fs.String("curve", "", "spanning curve CSV output (empty = skip)")
	strict := fs.Bool("strict", false, "treat a cell as open only when weight < p")
	dump := fs.String("dump-config", "", "write the effective config to this YAML path")

	cfg, err := config.Parse(fs, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *strict {
		cfg.Threshold.Openness = percolation.Strict.String()
	}
	log := cfg.Logger(os.Stderr)
	slog.SetDefault(log)

	if *dump != "" {
		if err := cfg.WriteYAML(*dump); err != nil {
			log.Error("dump config", "error", err)
			os.Exit(1)
		}
	}

	base := cfg.Seed
	if base == 0 {
		base = core.RandomSeed()
	}
	ext := percolation.Extractor{Openness: percolation.ParseOpenness(cfg.Threshold.Openness)}
	w, h, step := cfg.Grid.Width, cfg.Grid.Height, cfg.StepLevel()

	log.Info("sweeping",
		"seeds", *seeds, "workers", *workers, "width", w, "height", h,
		"step", step.String(), "openness", ext.Openness.String(), "base_seed", base)

	start := time.Now()
	results := make([]seedResult, *seeds)
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(max(*workers, 1))
	for i := range results {
		seed := base + int64(i)
		g.Go(func() error {
			res, err := runSeed(ctx, w, h, seed, ext, step)
			if err != nil {
				return err
			}
			results[i] = res
			log.Debug("seed done", "seed", seed)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Error("sweep failed", "error", err)
		os.Exit(1)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].seed < results[j].seed })

	if err := writeRows(*out, flatten(results, w, h)); err != nil {
		log.Error("write rows", "error", err)
		os.Exit(1)
	}
	curve := spanCurve(results)
	if *curveOut != "" {
		if err := writeCurve(*curveOut, curve); err != nil {
			log.Error("write curve", "error", err)
			os.Exit(1)
		}
	}

	attrs := []any{"grids", len(results), "elapsed", time.Since(start).Round(time.Millisecond)}
	if pc, ok := criticalEstimate(curve); ok {
		attrs = append(attrs, "p_span_half", pc)
	}
	log.Info("sweep complete", attrs...)
}

func writeRows(path string, rows []telemetry.Row) error {
	if path == "" {
		return telemetry.NewWriter(os.Stdout).Write(rows)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	return telemetry.NewWriter(f).Write(rows)
}

func writeCurve(path string, points []telemetry.SpanPoint) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	return telemetry.WriteCurve(f, points)
}
