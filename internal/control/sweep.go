package control

import (
	"time"

	"percolator/internal/core"
)

// DefaultFPS is the play-mode frame rate.
const DefaultFPS = 15

// Sweeper drives the threshold back and forth between 0 and 1 at a fixed
// rate while playing.
type Sweeper struct {
	pace    *core.FixedStep
	step    int
	dir     int
	playing bool
}

// NewSweeper returns a stopped Sweeper advancing step levels per frame at
// fps frames per second.
func NewSweeper(fps int, step core.Level) *Sweeper {
	if fps <= 0 {
		fps = DefaultFPS
	}
	if step == 0 {
		step = 1
	}
	return &Sweeper{pace: core.NewFixedStep(fps), step: int(step), dir: 1}
}

// Playing reports whether the sweep is running.
func (s *Sweeper) Playing() bool { return s.playing }

// Direction returns +1 when rising and -1 when falling.
func (s *Sweeper) Direction() int { return s.dir }

// Start begins playing from cur, heading toward the nearer extreme.
func (s *Sweeper) Start(cur core.Level) {
	s.dir = 1
	if cur < core.MaxLevel/2 {
		s.dir = -1
	}
	switch cur {
	case 0:
		s.dir = 1
	case core.MaxLevel:
		s.dir = -1
	}
	s.playing = true
	s.pace.Reset()
}

// Stop halts the sweep. No further frames are produced until Start.
func (s *Sweeper) Stop() { s.playing = false }

// Advance returns the next level when a frame is due at now. Direction flips
// on reaching either extreme.
func (s *Sweeper) Advance(now time.Time, cur core.Level) (core.Level, bool) {
	if !s.playing || !s.pace.StepAt(now) {
		return cur, false
	}
	next := cur.Add(s.dir * s.step)
	switch {
	case next >= core.MaxLevel:
		next = core.MaxLevel
		s.dir = -1
	case next == 0:
		s.dir = 1
	}
	return next, true
}
