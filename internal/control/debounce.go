// Package control turns raw threshold input into recompute requests: a
// debouncer for slider drags and a bouncing sweep for play mode. Both are
// polled from the update loop with an explicit clock.
package control

import (
	"time"

	"percolator/internal/core"
)

// DefaultQuiet is the quiet period after the last slider input.
const DefaultQuiet = 80 * time.Millisecond

// Debouncer coalesces bursts of level changes. Each Input replaces the
// pending level and restarts the quiet period; Poll fires once after it.
type Debouncer struct {
	quiet    time.Duration
	pending  bool
	level    core.Level
	deadline time.Time
}

// NewDebouncer returns a Debouncer with the given quiet period. Non-positive
// values use DefaultQuiet.
func NewDebouncer(quiet time.Duration) *Debouncer {
	if quiet <= 0 {
		quiet = DefaultQuiet
	}
	return &Debouncer{quiet: quiet}
}

// Input records a new level at now.
func (d *Debouncer) Input(now time.Time, level core.Level) {
	d.pending = true
	d.level = level
	d.deadline = now.Add(d.quiet)
}

// Cancel drops any pending level.
func (d *Debouncer) Cancel() { d.pending = false }

// Pending reports whether a level is waiting for its quiet period.
func (d *Debouncer) Pending() bool { return d.pending }

// Poll returns the pending level once the quiet period has elapsed.
func (d *Debouncer) Poll(now time.Time) (core.Level, bool) {
	if !d.pending || now.Before(d.deadline) {
		return 0, false
	}
	d.pending = false
	return d.level, true
}
