// Package frames memoizes component partitions per quantized threshold so
// that moving the threshold control becomes a lookup.
package frames

import (
	"context"
	"fmt"
	"sync"

	"percolator/internal/core"
	"percolator/internal/percolation"
)

// Strategy selects how the cache is populated.
type Strategy int

const (
	// Eager precomputes every level on the step grid, one level per Step.
	Eager Strategy = iota
	// Lazy computes and stores a level the first time it is requested.
	Lazy
	// Off never stores anything; every Get extracts.
	Off
)

// String returns the config name of the strategy.
func (s Strategy) String() string {
	switch s {
	case Lazy:
		return "lazy"
	case Off:
		return "off"
	default:
		return "eager"
	}
}

// ParseStrategy maps a config name to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "eager", "":
		return Eager, nil
	case "lazy":
		return Lazy, nil
	case "off":
		return Off, nil
	}
	return Eager, fmt.Errorf("frames: unknown cache strategy %q", s)
}

// Options configure a Cache.
type Options struct {
	Strategy Strategy
	// Step is the spacing of the eager level grid. Zero means one hundredth.
	Step core.Level
}

// Cache maps levels to partitions for one grid. It is safe for concurrent
// use, so an eager fill may run on its own goroutine while the render path
// reads.
type Cache struct {
	mu      sync.Mutex
	ext     percolation.Extractor
	opts    Options
	grid    *core.WeightGrid
	frames  map[core.Level]percolation.Partition
	pending []core.Level
	total   int
}

// New returns a cache bound to grid. Partitions are produced only by ext.
func New(grid *core.WeightGrid, ext percolation.Extractor, opts Options) *Cache {
	c := &Cache{ext: ext, opts: opts}
	c.Reset(grid)
	return c
}

// Reset drops every stored partition and binds the cache to grid.
func (c *Cache) Reset(grid *core.WeightGrid) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.grid = grid
	c.frames = make(map[core.Level]percolation.Partition)
	c.pending = nil
	c.total = 0
	if c.opts.Strategy == Eager {
		c.pending = core.Levels(c.opts.Step)
		c.total = len(c.pending)
	}
}

// Strategy returns the population strategy.
func (c *Cache) Strategy() Strategy { return c.opts.Strategy }

// Get returns the partition for level, extracting it on a miss. Misses are
// stored unless the strategy is Off.
func (c *Cache) Get(level core.Level) percolation.Partition {
	c.mu.Lock()
	if p, ok := c.frames[level]; ok {
		c.mu.Unlock()
		return p
	}
	grid := c.grid
	c.mu.Unlock()

	p := c.ext.Extract(grid, level)
	c.store(grid, p)
	return p
}

// Has reports whether level is stored.
func (c *Cache) Has(level core.Level) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.frames[level]
	return ok
}

// Len returns the number of stored partitions.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.frames)
}

// Step fills the next pending eager level. It returns false once nothing is
// left to do. Levels already stored by a Get are skipped without cost.
func (c *Cache) Step() bool {
	c.mu.Lock()
	for len(c.pending) > 0 {
		level := c.pending[0]
		c.pending = c.pending[1:]
		if _, ok := c.frames[level]; ok {
			continue
		}
		grid := c.grid
		c.mu.Unlock()
		c.store(grid, c.ext.Extract(grid, level))
		return true
	}
	c.mu.Unlock()
	return false
}

// Populate runs Step until the eager fill is complete or ctx is done.
func (c *Cache) Populate(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !c.Step() {
			return nil
		}
	}
}

// Progress reports how many eager levels are done out of the total. Lazy and
// Off caches report (0, 0).
func (c *Cache) Progress() (done, total int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total - len(c.pending), c.total
}

// Done reports whether the eager fill has finished.
func (c *Cache) Done() bool {
	done, total := c.Progress()
	return done == total
}

// store saves p unless the cache has been reset onto another grid meanwhile.
func (c *Cache) store(grid *core.WeightGrid, p percolation.Partition) {
	if c.opts.Strategy == Off {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.grid != grid {
		return
	}
	c.frames[p.Level] = p
}
