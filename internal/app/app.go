//go:build ebiten

package app

import (
	"context"
	"image/color"
	"log/slog"
	"time"

	"percolator/internal/config"
	"percolator/internal/core"
	"percolator/internal/render"
	"percolator/internal/ui"
	"percolator/internal/viewer"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a viewer to the ebiten.Game interface.
type Game struct {
	ctx     context.Context
	v       *viewer.Viewer
	log     *slog.Logger
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	background color.RGBA

	scale     int
	hudHeight int
	painted   int
}

// New constructs a Game for the provided viewer. The game ends when ctx is
// done.
func New(ctx context.Context, v *viewer.Viewer, cfg *config.Config, log *slog.Logger) *Game {
	size := v.Grid().Size()
	return &Game{
		ctx:        ctx,
		v:          v,
		log:        log,
		painter:    render.NewGridPainter(size.W, size.H),
		hud:        ui.NewHUD(v, size.W*cfg.View.Scale, cfg.View.HUDHeight),
		overlay:    ui.NewOverlay(cfg.View.Scale),
		background: color.RGBA{R: 8, G: 8, B: 12, A: 255},
		scale:      cfg.View.Scale,
		hudHeight:  cfg.View.HUDHeight,
		painted:    -1,
	}
}

// Update handles per-frame input and advances the viewer.
func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	now := time.Now()
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.v.TogglePlay()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		g.v.Nudge(now, -1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.v.Nudge(now, 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.v.Reseed(core.RandomSeed()); err != nil {
			g.log.Error("reseed failed", "error", err)
		}
	}

	g.overlay.Update()
	g.hud.Update(g.gridHeight())
	g.v.Tick(now)
	return nil
}

// Draw renders the current frame, the overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.overlay.Changed() || g.painted != g.v.Version() {
		frame, colors := g.v.Frame()
		buf := g.painter.Buffer()
		render.FillPartitionRGBA(buf, g.v.Grid(), frame, colors, g.background)
		g.overlay.Apply(buf, g.v.Grid(), frame)
		g.painter.Upload()
		g.painted = g.v.Version()
	}
	g.painter.Draw(screen, g.scale)
	done, total := g.v.CacheProgress()
	g.overlay.Draw(screen, done, total)
	g.hud.Draw(screen, g.gridHeight())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.v.Grid().Size()
	return s.W * g.scale, g.gridHeight() + g.hudHeight
}

func (g *Game) gridHeight() int { return g.v.Grid().H * g.scale }
