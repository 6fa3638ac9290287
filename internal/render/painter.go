//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter owns an RGBA buffer and the image it is uploaded to.
type GridPainter struct {
	img *ebiten.Image
	buf []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Buffer exposes the pixel buffer for the fill helpers.
func (gp *GridPainter) Buffer() []byte { return gp.buf }

// Upload copies the buffer into the image.
func (gp *GridPainter) Upload() { gp.img.WritePixels(gp.buf) }

// Draw paints the image onto dst scaled by scale.
func (gp *GridPainter) Draw(dst *ebiten.Image, scale int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
