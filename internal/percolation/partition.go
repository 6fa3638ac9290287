package percolation

import (
	"cmp"
	"slices"

	"percolator/internal/core"
)

// Component is an ascending list of linear cell indices.
type Component []int

// ID returns the lowest member index, used as the component's identity.
func (c Component) ID() int { return c[0] }

// Size returns the number of member cells.
func (c Component) Size() int { return len(c) }

// Partition is the set of components for one (grid, level) pair.
type Partition struct {
	Level      core.Level
	Components []Component
}

// Len returns the number of components.
func (p Partition) Len() int { return len(p.Components) }

// OpenCells returns the number of cells covered by the partition.
func (p Partition) OpenCells() int {
	n := 0
	for _, c := range p.Components {
		n += len(c)
	}
	return n
}

// Largest returns the position of the biggest component, or -1 when there
// are none. Ties go to the lower identity.
func (p Partition) Largest() int {
	best := -1
	for i, c := range p.Components {
		if best < 0 || len(c) > len(p.Components[best]) {
			best = i
		}
	}
	return best
}

// BySize returns component positions ordered by descending size, ties broken
// by ascending identity.
func (p Partition) BySize() []int {
	order := make([]int, len(p.Components))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(len(p.Components[b]), len(p.Components[a]))
	})
	return order
}

// Labels returns a per-cell slice holding the component position of each
// open cell and -1 for closed cells.
func (p Partition) Labels(cells int) []int {
	labels := make([]int, cells)
	for i := range labels {
		labels[i] = -1
	}
	for ci, c := range p.Components {
		for _, idx := range c {
			labels[idx] = ci
		}
	}
	return labels
}

// Spanning returns the positions of components touching both the top and the
// bottom row of g.
func (p Partition) Spanning(g *core.WeightGrid) []int {
	var out []int
	lastRow := (g.H - 1) * g.W
	for i, c := range p.Components {
		// members are sorted, so the first and last entries bound the rows
		if c[0] < g.W && c[len(c)-1] >= lastRow {
			out = append(out, i)
		}
	}
	return out
}

// Equal reports whether two partitions hold the same components.
func (p Partition) Equal(o Partition) bool {
	if p.Level != o.Level || len(p.Components) != len(o.Components) {
		return false
	}
	for i := range p.Components {
		if !slices.Equal(p.Components[i], o.Components[i]) {
			return false
		}
	}
	return true
}
