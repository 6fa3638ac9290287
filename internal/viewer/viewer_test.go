package viewer

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"percolator/internal/config"
	"percolator/internal/core"
	"percolator/internal/percolation"
	"percolator/internal/session"
)

var t0 = time.Unix(1_700_000_000, 0)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Grid.Width = 24
	cfg.Grid.Height = 16
	cfg.Seed = 77
	cfg.Session.Path = filepath.Join(t.TempDir(), "session.yaml")
	return cfg
}

func quietLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func newViewer(t *testing.T, cfg *config.Config) *Viewer {
	t.Helper()
	v, err := New(cfg, quietLogger())
	require.NoError(t, err)
	return v
}

func TestNewShowsInitialFrame(t *testing.T) {
	cfg := testConfig(t)
	cfg.Threshold.Initial = 0.6
	v := newViewer(t, cfg)
	assert.Equal(t, int64(77), v.Seed())
	assert.Equal(t, core.Level(60), v.Level())
	p, colors := v.Frame()
	assert.True(t, p.Equal(percolation.Extract(v.Grid(), 60)))
	assert.Len(t, colors, p.Len())
	assert.Equal(t, 1, v.Version())
	assert.Equal(t, p.Len(), v.Stats().Components)
}

func TestInputIsDebounced(t *testing.T) {
	v := newViewer(t, testConfig(t))
	v.Input(t0, 30)
	v.Input(t0.Add(20*time.Millisecond), 45)
	assert.Equal(t, core.Level(45), v.Level(), "control moves immediately")

	v.Tick(t0.Add(50 * time.Millisecond))
	p, _ := v.Frame()
	assert.Equal(t, core.Level(0), p.Level, "frame waits for the quiet period")

	v.Tick(t0.Add(120 * time.Millisecond))
	p, _ = v.Frame()
	assert.Equal(t, core.Level(45), p.Level)
	assert.Equal(t, 2, v.Version(), "one recompute for the burst")
}

func TestPlaySweepsAndInputStopsIt(t *testing.T) {
	v := newViewer(t, testConfig(t))
	v.TogglePlay()
	require.True(t, v.Playing())

	now := t0
	for i := 0; i < 3; i++ {
		v.Tick(now)
		now = now.Add(time.Second / 15)
	}
	assert.Equal(t, core.Level(3), v.Level())
	p, _ := v.Frame()
	assert.Equal(t, core.Level(3), p.Level)

	v.Input(now, 80)
	assert.False(t, v.Playing())
	v.Tick(now.Add(time.Second))
	assert.Equal(t, core.Level(80), v.Level())

	v.TogglePlay()
	v.TogglePlay()
	assert.False(t, v.Playing())
}

func TestEagerCacheFillsOneLevelPerTick(t *testing.T) {
	cfg := testConfig(t)
	cfg.Threshold.Step = 0.05
	v := newViewer(t, cfg)
	_, total := v.CacheProgress()
	require.Equal(t, 21, total)
	for i := 0; i < 5; i++ {
		v.Tick(t0)
	}
	done, _ := v.CacheProgress()
	assert.Equal(t, 6, done, "level 0 was stored by the initial frame and is skipped for free")
}

func TestSessionResume(t *testing.T) {
	cfg := testConfig(t)
	v := newViewer(t, cfg)
	v.Input(t0, 42)
	require.NoError(t, v.Close())

	cfg2 := testConfig(t)
	cfg2.Session.Path = cfg.Session.Path
	cfg2.Seed = 0
	resumed := newViewer(t, cfg2)
	assert.Equal(t, int64(77), resumed.Seed())
	assert.Equal(t, core.Level(42), resumed.Level())
	assert.Equal(t, v.Grid().Levels(), resumed.Grid().Levels())
}

func TestPinnedSeedIgnoresSession(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, session.Save(cfg.Session.Path, session.New(5, 90)))
	v := newViewer(t, cfg)
	assert.Equal(t, int64(77), v.Seed())
	assert.Equal(t, core.Level(0), v.Level())
}

func TestReseedInvalidatesFrames(t *testing.T) {
	cfg := testConfig(t)
	cfg.Cache.Strategy = "lazy"
	v := newViewer(t, cfg)
	v.Input(t0, 55)
	v.Tick(t0.Add(time.Second))
	before := v.Grid()

	require.NoError(t, v.Reseed(78))
	assert.NotEqual(t, before.Levels(), v.Grid().Levels())
	p, _ := v.Frame()
	assert.True(t, p.Equal(percolation.Extract(v.Grid(), 55)))
}

func TestThresholdParameter(t *testing.T) {
	cfg := testConfig(t)
	cfg.Threshold.Step = 0.02
	v := newViewer(t, cfg)
	v.now = func() time.Time { return t0 }

	ctrls := v.ParameterControls()
	require.Len(t, ctrls, 1)
	assert.Equal(t, ParamThreshold, ctrls[0].Key)
	assert.InDelta(t, 0.02, ctrls[0].Step, 1e-9)

	assert.True(t, v.SetFloatParameter(ParamThreshold, 0.33))
	got, ok := v.FloatParameter(ParamThreshold)
	require.True(t, ok)
	assert.InDelta(t, 0.34, got, 1e-9)

	assert.False(t, v.SetFloatParameter("q", 0.5))
	_, ok = v.FloatParameter("q")
	assert.False(t, ok)
}

func TestNudge(t *testing.T) {
	v := newViewer(t, testConfig(t))
	v.Nudge(t0, 3)
	assert.Equal(t, core.Level(3), v.Level())
	v.Nudge(t0, -10)
	assert.Equal(t, core.Level(0), v.Level())
}

func TestNewRejectsBadConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Grid.Width = 0
	_, err := New(cfg, quietLogger())
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestSettledChangesAreSaved(t *testing.T) {
	cfg := testConfig(t)
	v := newViewer(t, cfg)

	v.Input(t0, 30)
	_, ok, err := session.Load(cfg.Session.Path)
	require.NoError(t, err)
	assert.False(t, ok, "nothing saved while input is pending")

	v.Tick(t0.Add(100 * time.Millisecond))
	st, ok, err := session.Load(cfg.Session.Path)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(77), st.Seed)
	assert.Equal(t, core.Level(30), st.Threshold(0))

	require.NoError(t, v.Reseed(123))
	st, _, err = session.Load(cfg.Session.Path)
	require.NoError(t, err)
	assert.Equal(t, int64(123), st.Seed)
	assert.Equal(t, core.Level(30), st.Threshold(0))
}
