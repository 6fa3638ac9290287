package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Level is a threshold or weight quantized to hundredths. Zero is 0.00 and
// MaxLevel is 1.00.
type Level uint8

// MaxLevel is the quantized value of 1.0.
const MaxLevel Level = 100

// Quantize rounds p to the nearest hundredth and clamps it into [0, 1].
func Quantize(p float64) Level {
	if math.IsNaN(p) || p <= 0 {
		return 0
	}
	if p >= 1 {
		return MaxLevel
	}
	return Level(math.Round(p * 100))
}

// ParseLevel parses a decimal string such as "0.42".
func ParseLevel(s string) (Level, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || v < 0 || v > 1 {
		return 0, fmt.Errorf("%w: %q", ErrLevelFormat, s)
	}
	return Quantize(v), nil
}

// Float returns the level as a value in [0, 1].
func (l Level) Float() float64 { return float64(l) / 100 }

// String formats the level with two decimals.
func (l Level) String() string {
	return strconv.FormatFloat(l.Float(), 'f', 2, 64)
}

// Percent formats the level as "P = 42 %".
func (l Level) Percent() string {
	return fmt.Sprintf("P = %d %%", int(l))
}

// Add moves the level by delta hundredths and clamps to [0, MaxLevel].
func (l Level) Add(delta int) Level {
	v := int(l) + delta
	if v < 0 {
		return 0
	}
	if v > int(MaxLevel) {
		return MaxLevel
	}
	return Level(v)
}

// Levels lists 0, step, 2*step, ... up to and including MaxLevel. A step
// that does not divide 100 still ends on MaxLevel.
func Levels(step Level) []Level {
	if step == 0 {
		step = 1
	}
	out := make([]Level, 0, int(MaxLevel)/int(step)+2)
	for v := 0; v < int(MaxLevel); v += int(step) {
		out = append(out, Level(v))
	}
	return append(out, MaxLevel)
}
