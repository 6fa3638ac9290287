//go:build !ebiten

package ui

import (
	"percolator/internal/core"
	"percolator/internal/percolation"
)

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(int) *Overlay { return &Overlay{} }

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Changed always reports false in headless builds.
func (o *Overlay) Changed() bool { return false }

// Apply leaves the buffer untouched in headless builds.
func (o *Overlay) Apply([]byte, *core.WeightGrid, percolation.Partition) {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any, int, int) {}
