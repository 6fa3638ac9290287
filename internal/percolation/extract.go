package percolation

import (
	"slices"

	"percolator/internal/core"
)

// Openness selects how a cell weight is compared with the threshold.
type Openness int

const (
	// Inclusive opens cells with weight <= p.
	Inclusive Openness = iota
	// Strict opens cells with weight < p. At MaxLevel every cell is open,
	// including those of weight 1.00.
	Strict
)

// Open reports whether a cell of weight w is open at level p.
func (o Openness) Open(w, p core.Level) bool {
	if o == Strict {
		return w < p || p == core.MaxLevel
	}
	return w <= p
}

// String returns the config name of the predicate.
func (o Openness) String() string {
	if o == Strict {
		return "strict"
	}
	return "inclusive"
}

// ParseOpenness maps "inclusive"/"strict" to an Openness; anything else is
// Inclusive.
func ParseOpenness(s string) Openness {
	if s == "strict" {
		return Strict
	}
	return Inclusive
}

// neighborOffsets lists the 4-connected neighbors: N, E, S, W.
var neighborOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Extractor computes component partitions with a fixed openness predicate.
type Extractor struct {
	Openness Openness
}

// Extract partitions the open cells of g at level p into maximal 4-connected
// components. Components are sorted internally and ordered by their lowest
// index, which falls out of the row-major scan.
func (e Extractor) Extract(g *core.WeightGrid, p core.Level) Partition {
	cells := g.Levels()
	seen := make([]bool, len(cells))
	var comps []Component
	var stack []int

	for i0, w := range cells {
		if seen[i0] || !e.Openness.Open(w, p) {
			continue
		}
		seen[i0] = true
		stack = append(stack[:0], i0)
		comp := Component{i0}

		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			ux, uy := g.Coord(u)
			for _, d := range neighborOffsets {
				vx, vy := ux+d[0], uy+d[1]
				if !g.InBounds(vx, vy) {
					continue
				}
				vi := g.Index(vx, vy)
				if seen[vi] || !e.Openness.Open(cells[vi], p) {
					continue
				}
				seen[vi] = true
				comp = append(comp, vi)
				stack = append(stack, vi)
			}
		}
		slices.Sort(comp)
		comps = append(comps, comp)
	}
	return Partition{Level: p, Components: comps}
}

// ExtractAt quantizes p and extracts.
func (e Extractor) ExtractAt(g *core.WeightGrid, p float64) Partition {
	return e.Extract(g, core.Quantize(p))
}

// Extract runs the default inclusive extractor.
func Extract(g *core.WeightGrid, p core.Level) Partition {
	return Extractor{}.Extract(g, p)
}
