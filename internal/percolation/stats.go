package percolation

import (
	"log/slog"

	"gonum.org/v1/gonum/stat"

	"percolator/internal/core"
)

// Stats summarizes one partition.
type Stats struct {
	Level      core.Level
	Components int
	OpenCells  int
	Cells      int
	Largest    int
	MeanSize   float64
	StdDevSize float64
	Spans      bool
}

// OpenFraction returns the share of open cells.
func (s Stats) OpenFraction() float64 {
	if s.Cells == 0 {
		return 0
	}
	return float64(s.OpenCells) / float64(s.Cells)
}

// LargestFraction returns the share of all cells held by the largest cluster.
func (s Stats) LargestFraction() float64 {
	if s.Cells == 0 {
		return 0
	}
	return float64(s.Largest) / float64(s.Cells)
}

// ComputeStats derives Stats for p over g.
func ComputeStats(g *core.WeightGrid, p Partition) Stats {
	s := Stats{
		Level:      p.Level,
		Components: p.Len(),
		OpenCells:  p.OpenCells(),
		Cells:      g.Len(),
		Spans:      len(p.Spanning(g)) > 0,
	}
	if s.Components == 0 {
		return s
	}
	sizes := make([]float64, len(p.Components))
	for i, c := range p.Components {
		sizes[i] = float64(len(c))
	}
	s.Largest = len(p.Components[p.Largest()])
	if len(sizes) > 1 {
		s.MeanSize, s.StdDevSize = stat.MeanStdDev(sizes, nil)
	} else {
		s.MeanSize = sizes[0]
	}
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("p", s.Level.String()),
		slog.Int("components", s.Components),
		slog.Int("open", s.OpenCells),
		slog.Int("largest", s.Largest),
		slog.Float64("mean_size", s.MeanSize),
		slog.Float64("std_size", s.StdDevSize),
		slog.Bool("spans", s.Spans),
	)
}
