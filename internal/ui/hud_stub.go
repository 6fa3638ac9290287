//go:build !ebiten

package ui

import "percolator/internal/core"

// Model is what the HUD reads and adjusts.
type Model interface {
	core.ParameterControlsProvider
	core.FloatParameterReader
	core.FloatParameterSetter
}

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(Model, int, int) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update(int) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int) {}
