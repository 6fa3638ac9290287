package control

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"percolator/internal/core"
)

var t0 = time.Unix(1_700_000_000, 0)

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

func TestDebouncerCoalescesBurst(t *testing.T) {
	d := NewDebouncer(ms(80))
	d.Input(t0, 10)
	d.Input(t0.Add(ms(30)), 11)
	d.Input(t0.Add(ms(60)), 12)

	_, ok := d.Poll(t0.Add(ms(100)))
	assert.False(t, ok, "quiet period restarts on each input")

	level, ok := d.Poll(t0.Add(ms(140)))
	require.True(t, ok)
	assert.Equal(t, core.Level(12), level)

	_, ok = d.Poll(t0.Add(ms(500)))
	assert.False(t, ok, "fires once")
}

func TestDebouncerCancel(t *testing.T) {
	d := NewDebouncer(0)
	d.Input(t0, 40)
	assert.True(t, d.Pending())
	d.Cancel()
	assert.False(t, d.Pending())
	_, ok := d.Poll(t0.Add(time.Second))
	assert.False(t, ok)
}

func TestSweeperHeadsToNearerExtreme(t *testing.T) {
	s := NewSweeper(10, 1)
	s.Start(30)
	assert.Equal(t, -1, s.Direction())
	s.Start(70)
	assert.Equal(t, 1, s.Direction())
	s.Start(0)
	assert.Equal(t, 1, s.Direction())
	s.Start(core.MaxLevel)
	assert.Equal(t, -1, s.Direction())
}

func TestSweeperPacesAndBounces(t *testing.T) {
	s := NewSweeper(10, 1)
	cur := core.Level(98)
	s.Start(cur)

	now := t0
	var seen []core.Level
	for i := 0; i < 5; i++ {
		next, ok := s.Advance(now, cur)
		require.True(t, ok, "frame %d due", i)
		cur = next
		seen = append(seen, cur)

		_, ok = s.Advance(now.Add(ms(10)), cur)
		require.False(t, ok, "no frame between ticks")
		now = now.Add(ms(100))
	}
	assert.Equal(t, []core.Level{99, 100, 99, 98, 97}, seen)
}

func TestSweeperBouncesAtZero(t *testing.T) {
	s := NewSweeper(10, 2)
	cur := core.Level(3)
	s.Start(cur)
	now := t0
	var seen []core.Level
	for i := 0; i < 4; i++ {
		cur, _ = s.Advance(now, cur)
		seen = append(seen, cur)
		now = now.Add(ms(100))
	}
	assert.Equal(t, []core.Level{1, 0, 2, 4}, seen)
}

func TestSweeperStopCancelsFrames(t *testing.T) {
	s := NewSweeper(0, 0)
	s.Start(50)
	require.True(t, s.Playing())
	s.Stop()
	assert.False(t, s.Playing())
	cur, ok := s.Advance(t0.Add(time.Hour), 50)
	assert.False(t, ok)
	assert.Equal(t, core.Level(50), cur)
}
