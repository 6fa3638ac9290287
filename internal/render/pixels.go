package render

import (
	"image/color"

	"percolator/internal/core"
	"percolator/internal/percolation"
)

// FillPartitionRGBA clears buf to bg and paints every member cell of each
// component in its color. buf holds 4 bytes per cell in the grid's
// row-major pixel layout; cell positions come from g.Coord.
func FillPartitionRGBA(buf []byte, g *core.WeightGrid, p percolation.Partition, colors []color.RGBA, bg color.RGBA) {
	for i := 0; i+3 < len(buf); i += 4 {
		buf[i+0] = bg.R
		buf[i+1] = bg.G
		buf[i+2] = bg.B
		buf[i+3] = bg.A
	}
	for ci, comp := range p.Components {
		if ci >= len(colors) {
			break
		}
		col := colors[ci]
		for _, idx := range comp {
			x, y := g.Coord(idx)
			base := (y*g.W + x) * 4
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = 255
		}
	}
}

// DimExceptRGBA scales the color of every cell outside keep by factor. It is
// used to highlight a subset of clusters on an already filled buffer.
func DimExceptRGBA(buf []byte, cells int, keep []percolation.Component, factor float64) {
	kept := make([]bool, cells)
	for _, comp := range keep {
		for _, idx := range comp {
			kept[idx] = true
		}
	}
	for i, k := range kept {
		if k {
			continue
		}
		base := i * 4
		buf[base+0] = uint8(float64(buf[base+0]) * factor)
		buf[base+1] = uint8(float64(buf[base+1]) * factor)
		buf[base+2] = uint8(float64(buf[base+2]) * factor)
	}
}
