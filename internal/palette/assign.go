package palette

import (
	"fmt"
	"image/color"

	"percolator/internal/core"
	"percolator/internal/percolation"
)

// Assigner returns one color per component, aligned with p.Components.
type Assigner interface {
	Colors(p percolation.Partition) []color.RGBA
}

// Policy names a color assignment policy.
type Policy string

const (
	// PolicyStable keys colors by component identity through a per-cell table.
	PolicyStable Policy = "stable"
	// PolicyRank keys colors by size rank: the largest cluster of every frame
	// takes the first slot, the next largest the second, and so on.
	PolicyRank Policy = "rank"
	// PolicyFrame draws fresh colors for every frame.
	PolicyFrame Policy = "frame"
	// PolicyTwoTone hashes the component identity onto two fixed colors.
	PolicyTwoTone Policy = "twotone"
)

// New builds the assigner for policy. cells is the grid size; rng seeds the
// random policies.
func New(policy Policy, cells int, rng *core.RNG, src Source) (Assigner, error) {
	switch policy {
	case PolicyStable, "":
		return NewStableTable(cells, rng, src), nil
	case PolicyRank:
		return NewRankTable(rng, src), nil
	case PolicyFrame:
		return NewPerFrame(rng, src), nil
	case PolicyTwoTone:
		return DefaultTwoTone(), nil
	}
	return nil, fmt.Errorf("palette: unknown policy %q", policy)
}

// StableTable holds one color per possible component identity. A component
// keeps its color while its lowest-index member is unchanged; a merge adopts
// the color of the side with the smaller identity.
type StableTable struct {
	table []color.RGBA
}

// NewStableTable draws cells colors from src using rng.
func NewStableTable(cells int, rng *core.RNG, src Source) *StableTable {
	t := &StableTable{table: make([]color.RGBA, cells)}
	for i := range t.table {
		t.table[i] = src(rng)
	}
	return t
}

// ColorOf returns the color for a component identity.
func (t *StableTable) ColorOf(id int) color.RGBA { return t.table[id] }

// Colors implements Assigner.
func (t *StableTable) Colors(p percolation.Partition) []color.RGBA {
	out := make([]color.RGBA, len(p.Components))
	for i, c := range p.Components {
		out[i] = t.table[c.ID()]
	}
	return out
}

// RankTable hands out colors by size rank. Slots are drawn on first use and
// kept for the life of the table, so slot k is the k-th draw from rng no
// matter which frame asked for it first.
type RankTable struct {
	rng   *core.RNG
	src   Source
	slots []color.RGBA
}

// NewRankTable returns an empty RankTable.
func NewRankTable(rng *core.RNG, src Source) *RankTable {
	return &RankTable{rng: rng, src: src}
}

// Slot returns the color of size rank k, drawing slots up to k if needed.
func (t *RankTable) Slot(k int) color.RGBA {
	for len(t.slots) <= k {
		t.slots = append(t.slots, t.src(t.rng))
	}
	return t.slots[k]
}

// Colors implements Assigner.
func (t *RankTable) Colors(p percolation.Partition) []color.RGBA {
	out := make([]color.RGBA, len(p.Components))
	for rank, i := range p.BySize() {
		out[i] = t.Slot(rank)
	}
	return out
}

// PerFrame draws new colors on every call. There is no continuity between
// frames.
type PerFrame struct {
	rng *core.RNG
	src Source
}

// NewPerFrame returns a PerFrame assigner.
func NewPerFrame(rng *core.RNG, src Source) *PerFrame {
	return &PerFrame{rng: rng, src: src}
}

// Colors implements Assigner.
func (f *PerFrame) Colors(p percolation.Partition) []color.RGBA {
	out := make([]color.RGBA, len(p.Components))
	for i := range out {
		out[i] = f.src(f.rng)
	}
	return out
}

// TwoTone maps each identity to one of two colors with an integer hash.
type TwoTone struct {
	A, B color.RGBA
}

// DefaultTwoTone returns the light/slate pair.
func DefaultTwoTone() TwoTone {
	return TwoTone{
		A: color.RGBA{R: 0xe0, G: 0xe1, B: 0xdd, A: 255},
		B: color.RGBA{R: 0x41, G: 0x5a, B: 0x77, A: 255},
	}
}

// Colors implements Assigner.
func (t TwoTone) Colors(p percolation.Partition) []color.RGBA {
	out := make([]color.RGBA, len(p.Components))
	for i, c := range p.Components {
		if mixID(c.ID())&1 == 0 {
			out[i] = t.A
		} else {
			out[i] = t.B
		}
	}
	return out
}

func mixID(id int) uint32 {
	x := uint32(id)
	x ^= x >> 16
	x *= 0x7feb352d
	x ^= x >> 15
	x *= 0x846ca68b
	x ^= x >> 16
	return x
}
