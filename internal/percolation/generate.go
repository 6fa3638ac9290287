package percolation

import (
	"math"

	"percolator/internal/core"
)

// Generate builds a w×h grid by sampling src once per cell, row by row, and
// rounding each sample to hundredths.
func Generate(w, h int, src *core.RNG) (*core.WeightGrid, error) {
	g, err := core.NewWeightGrid(w, h)
	if err != nil {
		return nil, err
	}
	cells := g.Levels()
	for i := range cells {
		cells[i] = core.Level(math.Round(src.Float64() * 100))
	}
	return g, nil
}

// GenerateSeeded is Generate with a deterministic RNG built from seed.
func GenerateSeeded(w, h int, seed int64) (*core.WeightGrid, error) {
	return Generate(w, h, core.NewRNG(seed))
}
