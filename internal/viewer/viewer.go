// Package viewer holds the session-scoped state of the interactive viewer:
// the grid, its frame cache, color assignment and the threshold controls.
// It has no GUI dependency; internal/app drives it from the ebiten loop.
package viewer

import (
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"percolator/internal/config"
	"percolator/internal/control"
	"percolator/internal/core"
	"percolator/internal/frames"
	"percolator/internal/palette"
	"percolator/internal/percolation"
	"percolator/internal/session"
)

// ParamThreshold is the HUD key of the threshold control.
const ParamThreshold = "p"

// paletteSalt decorrelates the color stream from the grid stream.
const paletteSalt = 0x5eed

// Viewer is not safe for concurrent use; call it from one goroutine.
type Viewer struct {
	cfg *config.Config
	log *slog.Logger
	now func() time.Time

	ext      percolation.Extractor
	strategy frames.Strategy
	policy   palette.Policy
	src      palette.Source

	seed   int64
	grid   *core.WeightGrid
	cache  *frames.Cache
	colors palette.Assigner

	debounce *control.Debouncer
	sweep    *control.Sweeper

	level       core.Level
	frame       percolation.Partition
	frameColors []color.RGBA
	stats       percolation.Stats
	version     int
}

// New builds a viewer from cfg. A saved session supplies the seed and the
// threshold unless cfg pins a seed.
func New(cfg *config.Config, log *slog.Logger) (*Viewer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.Default()
	}
	strategy, err := frames.ParseStrategy(cfg.Cache.Strategy)
	if err != nil {
		return nil, err
	}
	src := palette.HSV()
	if cfg.Color.Source == "derived" {
		base, err := palette.ParseBase(cfg.Color.Palette)
		if err != nil {
			return nil, err
		}
		src = palette.Derived(base)
	}

	v := &Viewer{
		cfg:      cfg,
		log:      log,
		now:      time.Now,
		ext:      percolation.Extractor{Openness: percolation.ParseOpenness(cfg.Threshold.Openness)},
		strategy: strategy,
		policy:   palette.Policy(cfg.Color.Policy),
		src:      src,
		debounce: control.NewDebouncer(cfg.Debounce()),
		sweep:    control.NewSweeper(cfg.Control.PlayFPS, cfg.StepLevel()),
	}

	seed := cfg.Seed
	level := cfg.InitialLevel()
	st, resumed, err := session.Load(cfg.Session.Path)
	if err != nil {
		log.Warn("ignoring saved session", "path", cfg.Session.Path, "error", err)
		resumed = false
	}
	if seed == 0 {
		if resumed && st.Seed != 0 {
			seed = st.Seed
			level = st.Threshold(level)
		} else {
			seed = core.RandomSeed()
		}
	}
	if err := v.Reseed(seed); err != nil {
		return nil, err
	}
	v.apply(level)
	log.Info("viewer ready",
		"seed", seed,
		"width", cfg.Grid.Width,
		"height", cfg.Grid.Height,
		"cache", strategy.String(),
		"colors", cfg.Color.Policy,
		"openness", v.ext.Openness.String(),
		"resumed", resumed,
	)
	return v, nil
}

// Reseed regenerates the grid from seed and invalidates every frame.
func (v *Viewer) Reseed(seed int64) error {
	grid, err := percolation.GenerateSeeded(v.cfg.Grid.Width, v.cfg.Grid.Height, seed)
	if err != nil {
		return fmt.Errorf("generating grid: %w", err)
	}
	colors, err := palette.New(v.policy, grid.Len(), core.NewRNG(seed^paletteSalt), v.src)
	if err != nil {
		return err
	}
	v.seed = seed
	v.grid = grid
	v.colors = colors
	if v.cache == nil {
		v.cache = frames.New(grid, v.ext, frames.Options{Strategy: v.strategy, Step: v.cfg.StepLevel()})
	} else {
		v.cache.Reset(grid)
	}
	if v.version > 0 {
		v.apply(v.level)
		v.persist()
		v.log.Info("reseeded", "seed", seed)
	}
	return nil
}

// Seed returns the current grid seed.
func (v *Viewer) Seed() int64 { return v.seed }

// Grid returns the current grid.
func (v *Viewer) Grid() *core.WeightGrid { return v.grid }

// Level returns the control position. It may run ahead of the displayed
// frame while input is being debounced.
func (v *Viewer) Level() core.Level { return v.level }

// Frame returns the displayed partition and its colors.
func (v *Viewer) Frame() (percolation.Partition, []color.RGBA) { return v.frame, v.frameColors }

// Stats returns statistics of the displayed partition.
func (v *Viewer) Stats() percolation.Stats { return v.stats }

// Version increases every time a new frame is applied.
func (v *Viewer) Version() int { return v.version }

// Playing reports whether the sweep is running.
func (v *Viewer) Playing() bool { return v.sweep.Playing() }

// CacheProgress reports eager fill progress.
func (v *Viewer) CacheProgress() (done, total int) { return v.cache.Progress() }

// Input moves the control to level. Play stops, and the recompute waits for
// the quiet period.
func (v *Viewer) Input(now time.Time, level core.Level) {
	v.sweep.Stop()
	v.level = level
	v.debounce.Input(now, level)
}

// Nudge moves the control by steps control increments.
func (v *Viewer) Nudge(now time.Time, steps int) {
	v.Input(now, v.level.Add(steps*int(v.cfg.StepLevel())))
}

// TogglePlay starts or stops the sweep.
func (v *Viewer) TogglePlay() {
	if v.sweep.Playing() {
		v.sweep.Stop()
		v.persist()
		return
	}
	v.debounce.Cancel()
	v.sweep.Start(v.level)
}

// Tick advances cooperative work: one eager cache level, a due sweep frame,
// and a settled debounce.
func (v *Viewer) Tick(now time.Time) {
	if v.cache.Strategy() == frames.Eager && v.cache.Step() && v.cache.Done() {
		v.log.Debug("frame cache filled", "levels", v.cache.Len())
	}
	if next, ok := v.sweep.Advance(now, v.level); ok {
		v.level = next
		v.apply(next)
	}
	if level, ok := v.debounce.Poll(now); ok {
		v.apply(level)
		v.persist()
	}
}

func (v *Viewer) apply(level core.Level) {
	v.level = level
	v.frame = v.cache.Get(level)
	v.frameColors = v.colors.Colors(v.frame)
	v.stats = percolation.ComputeStats(v.grid, v.frame)
	v.version++
	v.log.Debug("frame", "stats", v.stats)
}

// Session returns the state to persist.
func (v *Viewer) Session() session.State { return session.New(v.seed, v.level) }

// Close saves the session.
func (v *Viewer) Close() error {
	return session.Save(v.cfg.Session.Path, v.Session())
}

// persist saves the session after a settled change. Failures are logged;
// the next settled change or Close tries again.
func (v *Viewer) persist() {
	if err := v.Close(); err != nil {
		v.log.Warn("saving session", "path", v.cfg.Session.Path, "error", err)
	}
}

// ParameterControls implements core.ParameterControlsProvider.
func (v *Viewer) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{{
		Key:    ParamThreshold,
		Label:  "Threshold",
		Type:   core.ParamTypeFloat,
		Step:   v.cfg.StepLevel().Float(),
		Min:    0,
		Max:    1,
		HasMin: true,
		HasMax: true,
	}}
}

// FloatParameter implements core.FloatParameterReader.
func (v *Viewer) FloatParameter(key string) (float64, bool) {
	if key != ParamThreshold {
		return 0, false
	}
	return v.level.Float(), true
}

// SetFloatParameter implements core.FloatParameterSetter.
func (v *Viewer) SetFloatParameter(key string, value float64) bool {
	if key != ParamThreshold {
		return false
	}
	v.Input(v.now(), v.snap(core.Quantize(value)))
	return true
}

// snap rounds level to the nearest multiple of the control step.
func (v *Viewer) snap(level core.Level) core.Level {
	step := int(v.cfg.StepLevel())
	snapped := (int(level) + step/2) / step * step
	return core.Level(0).Add(snapped)
}
