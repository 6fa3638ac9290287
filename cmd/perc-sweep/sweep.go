package main

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/stat"

	"percolator/internal/core"
	"percolator/internal/frames"
	"percolator/internal/percolation"
	"percolator/internal/telemetry"
)

type seedResult struct {
	seed  int64
	stats []percolation.Stats
}

// runSeed generates one grid and returns its statistics at every level.
func runSeed(ctx context.Context, w, h int, seed int64, ext percolation.Extractor, step core.Level) (seedResult, error) {
	grid, err := percolation.GenerateSeeded(w, h, seed)
	if err != nil {
		return seedResult{}, err
	}
	cache := frames.New(grid, ext, frames.Options{Strategy: frames.Eager, Step: step})
	if err := cache.Populate(ctx); err != nil {
		return seedResult{}, fmt.Errorf("seed %d: %w", seed, err)
	}
	levels := core.Levels(step)
	res := seedResult{seed: seed, stats: make([]percolation.Stats, 0, len(levels))}
	for _, l := range levels {
		res.stats = append(res.stats, percolation.ComputeStats(grid, cache.Get(l)))
	}
	return res, nil
}

// spanCurve averages spanning and largest-cluster fraction per level.
// Every result must cover the same levels in the same order.
func spanCurve(results []seedResult) []telemetry.SpanPoint {
	if len(results) == 0 {
		return nil
	}
	points := make([]telemetry.SpanPoint, len(results[0].stats))
	spans := make([]float64, len(results))
	largest := make([]float64, len(results))
	for i := range points {
		for j, r := range results {
			st := r.stats[i]
			spans[j] = 0
			if st.Spans {
				spans[j] = 1
			}
			largest[j] = st.LargestFraction()
		}
		points[i] = telemetry.SpanPoint{
			P:           results[0].stats[i].Level.String(),
			Samples:     len(results),
			SpanRate:    stat.Mean(spans, nil),
			MeanLargest: stat.Mean(largest, nil),
		}
	}
	return points
}

// criticalEstimate returns the first level whose span rate reaches 0.5.
func criticalEstimate(points []telemetry.SpanPoint) (string, bool) {
	for _, pt := range points {
		if pt.SpanRate >= 0.5 {
			return pt.P, true
		}
	}
	return "", false
}

func flatten(results []seedResult, w, h int) []telemetry.Row {
	var rows []telemetry.Row
	for _, r := range results {
		for _, st := range r.stats {
			rows = append(rows, telemetry.NewRow(r.seed, w, h, st))
		}
	}
	return rows
}
