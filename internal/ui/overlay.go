//go:build ebiten

package ui

import (
	"image/color"

	"percolator/internal/core"
	"percolator/internal/percolation"
	"percolator/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws optional debugging visuals on top of the grid view.
type Overlay struct {
	scale        int
	showSpanning bool
	showProgress bool
	changed      bool
	pixel        *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(scale int) *Overlay {
	o := &Overlay{scale: scale, showProgress: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles overlays: 1 highlights spanning clusters, 2 shows the cache
// fill bar.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showSpanning = !o.showSpanning
		o.changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showProgress = !o.showProgress
	}
}

// Changed reports and clears whether the pixel buffer must be rebuilt.
func (o *Overlay) Changed() bool {
	c := o.changed
	o.changed = false
	return c
}

// Apply modifies a freshly filled buffer: with the spanning highlight on,
// every cluster that does not connect the top and bottom rows is dimmed.
func (o *Overlay) Apply(buf []byte, g *core.WeightGrid, p percolation.Partition) {
	if !o.showSpanning {
		return
	}
	var keep []percolation.Component
	for _, i := range p.Spanning(g) {
		keep = append(keep, p.Components[i])
	}
	render.DimExceptRGBA(buf, g.Len(), keep, 0.25)
}

// Draw paints the cache progress bar along the top edge while an eager fill
// is running.
func (o *Overlay) Draw(screen *ebiten.Image, done, total int) {
	if !o.showProgress || total == 0 || done >= total {
		return
	}
	w := screen.Bounds().Dx()
	filled := w * done / total
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(filled), float64(2*o.scale))
	op.ColorScale.ScaleWithColor(color.RGBA{R: 120, G: 160, B: 220, A: 255})
	screen.DrawImage(o.pixel, op)
}
