package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedStepPacing(t *testing.T) {
	fs := NewFixedStep(10)
	assert.Equal(t, 100*time.Millisecond, fs.Interval())

	t0 := time.Unix(1000, 0)
	assert.True(t, fs.StepAt(t0), "first call fires immediately")
	assert.False(t, fs.StepAt(t0.Add(50*time.Millisecond)))
	assert.True(t, fs.StepAt(t0.Add(100*time.Millisecond)))
	assert.False(t, fs.StepAt(t0.Add(110*time.Millisecond)))
}

func TestFixedStepNoBurstAfterStall(t *testing.T) {
	fs := NewFixedStep(10)
	t0 := time.Unix(1000, 0)
	fs.StepAt(t0)
	assert.True(t, fs.StepAt(t0.Add(5*time.Second)))
	assert.False(t, fs.StepAt(t0.Add(5*time.Second+time.Millisecond)))
}

func TestFixedStepReset(t *testing.T) {
	fs := NewFixedStep(0)
	assert.Equal(t, time.Second/60, fs.Interval())
	t0 := time.Unix(1000, 0)
	fs.StepAt(t0)
	fs.Reset()
	assert.True(t, fs.StepAt(t0.Add(time.Millisecond)))
}
