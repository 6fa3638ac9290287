//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"percolator/internal/core"
	"percolator/internal/percolation"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Model is what the HUD reads and adjusts.
type Model interface {
	core.ParameterControlsProvider
	core.FloatParameterReader
	core.FloatParameterSetter
}

type statusProvider interface {
	Playing() bool
	Stats() percolation.Stats
	CacheProgress() (done, total int)
}

type playToggler interface {
	TogglePlay()
}

// HUD renders the threshold slider panel below the grid view.
type HUD struct {
	model  Model
	status statusProvider
	play   playToggler

	control  core.ParameterControl
	hasCtrl  bool
	width    int
	height   int
	dragging bool

	panel *ebiten.Image
	pixel *ebiten.Image

	minusRect image.Rectangle
	plusRect  image.Rectangle
	playRect  image.Rectangle
	trackRect image.Rectangle
}

// NewHUD constructs a HUD of the given panel size for model. The first
// float control exposed by model drives the slider.
func NewHUD(model Model, width, height int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{model: model, width: width, height: height}
	if s, ok := model.(statusProvider); ok {
		h.status = s
	}
	if p, ok := model.(playToggler); ok {
		h.play = p
	}
	for _, ctrl := range model.ParameterControls() {
		if ctrl.Type == core.ParamTypeFloat {
			h.control = ctrl
			h.hasCtrl = true
			break
		}
	}
	if width > 0 && height > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
		h.panel = ebiten.NewImage(width, height)
	}
	h.layout()
	return h
}

// Update handles HUD interactions. offsetY is the panel's top edge in screen
// coordinates.
func (h *HUD) Update(offsetY int) {
	if h == nil || !h.hasCtrl {
		return
	}
	mx, my := ebiten.CursorPosition()
	my -= offsetY

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		switch {
		case pointInRect(mx, my, h.minusRect):
			h.applyAdjustment(-1)
		case pointInRect(mx, my, h.plusRect):
			h.applyAdjustment(1)
		case pointInRect(mx, my, h.playRect):
			if h.play != nil {
				h.play.TogglePlay()
			}
		case pointInRect(mx, my, h.trackRect):
			h.dragging = true
		}
	}
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		h.dragging = false
	}
	if h.dragging {
		h.setFromTrack(mx)
	}
}

func (h *HUD) setFromTrack(mx int) {
	span := h.trackRect.Dx()
	if span <= 0 {
		return
	}
	frac := float64(mx-h.trackRect.Min.X) / float64(span)
	target := h.control.Clamp(h.control.Min + frac*(h.control.Max-h.control.Min))
	cur, ok := h.model.FloatParameter(h.control.Key)
	if ok && core.Quantize(cur) == core.Quantize(target) {
		return
	}
	h.model.SetFloatParameter(h.control.Key, target)
}

func (h *HUD) applyAdjustment(direction int) {
	cur, ok := h.model.FloatParameter(h.control.Key)
	if !ok {
		return
	}
	step := h.control.Step
	if step <= 0 {
		step = 0.01
	}
	target := h.control.Clamp(cur + float64(direction)*step)
	if math.Abs(target-cur) < 1e-9 {
		return
	}
	h.model.SetFloatParameter(h.control.Key, target)
}

// Draw paints the panel at offsetY.
func (h *HUD) Draw(screen *ebiten.Image, offsetY int) {
	if h == nil || h.panel == nil {
		return
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	face := basicfont.Face7x13
	labelColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor := color.RGBA{R: 160, G: 160, B: 170, A: 255}

	if !h.hasCtrl {
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, rowBaseline, dimColor)
	} else {
		cur, _ := h.model.FloatParameter(h.control.Key)
		text.Draw(h.panel, core.Quantize(cur).Percent(), face, panelPadding, rowBaseline, labelColor)
		h.drawButton(h.minusRect, "-", cur > h.control.Min)
		h.drawButton(h.plusRect, "+", cur < h.control.Max)
		h.drawSlider(cur)
		playing := h.status != nil && h.status.Playing()
		label := "Play"
		if playing {
			label = "Pause"
		}
		h.drawButton(h.playRect, label, h.play != nil)
	}
	if h.status != nil {
		text.Draw(h.panel, statusLine(h.status), face, panelPadding, rowBaseline+lineHeight, dimColor)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(offsetY))
	screen.DrawImage(h.panel, op)
}

func statusLine(s statusProvider) string {
	st := s.Stats()
	spans := "no"
	if st.Spans {
		spans = "yes"
	}
	line := fmt.Sprintf("clusters %d  largest %d  open %.0f%%  spans %s",
		st.Components, st.Largest, st.OpenFraction()*100, spans)
	if done, total := s.CacheProgress(); total > 0 && done < total {
		line += fmt.Sprintf("  cache %d/%d", done, total)
	}
	return line
}

func (h *HUD) drawSlider(value float64) {
	track := h.trackRect
	mid := track.Min.Y + track.Dy()/2
	h.fillRect(image.Rect(track.Min.X, mid-1, track.Max.X, mid+2), color.RGBA{R: 70, G: 72, B: 84, A: 255})
	span := h.control.Max - h.control.Min
	if span <= 0 {
		return
	}
	frac := (value - h.control.Min) / span
	kx := track.Min.X + int(math.Round(frac*float64(track.Dx())))
	h.fillRect(image.Rect(track.Min.X, mid-1, kx, mid+2), color.RGBA{R: 120, G: 160, B: 220, A: 255})
	h.fillRect(image.Rect(kx-3, track.Min.Y, kx+3, track.Max.Y), color.RGBA{R: 230, G: 230, B: 240, A: 255})
}

func (h *HUD) fillRect(rect image.Rectangle, c color.RGBA) {
	if h.pixel == nil || rect.Empty() {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(c)
	h.panel.DrawImage(h.pixel, op)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	h.fillRect(rect, bg)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

// layout places, left to right: label, minus, track, plus, play.
func (h *HUD) layout() {
	top := panelPadding
	labelRight := panelPadding + labelWidth
	h.minusRect = image.Rect(labelRight, top, labelRight+buttonSize, top+buttonSize)
	playLeft := h.width - panelPadding - playWidth
	h.playRect = image.Rect(playLeft, top, h.width-panelPadding, top+buttonSize)
	plusLeft := playLeft - buttonGap - buttonSize
	h.plusRect = image.Rect(plusLeft, top, plusLeft+buttonSize, top+buttonSize)
	h.trackRect = image.Rect(h.minusRect.Max.X+buttonGap*2, top, plusLeft-buttonGap*2, top+buttonSize)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return image.Pt(x, y).In(rect)
}

const (
	panelPadding = 8
	lineHeight   = 24
	buttonSize   = 20
	buttonGap    = 6
	labelWidth   = 84
	playWidth    = 52
	rowBaseline  = panelPadding + 15
)
