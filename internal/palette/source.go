// Package palette assigns display colors to percolation components.
package palette

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"percolator/internal/core"
)

// DefaultBase is the base palette used by Derived when none is configured.
var DefaultBase = []string{"#355070", "#6d597a", "#b56576", "#e56b6f", "#eaac8b"}

// Source draws one color from r.
type Source func(r *core.RNG) color.RGBA

// ParseBase parses hex color strings such as "#355070".
func ParseBase(hexes []string) ([]colorful.Color, error) {
	out := make([]colorful.Color, 0, len(hexes))
	for _, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("palette: parsing %q: %w", h, err)
		}
		out = append(out, c)
	}
	return out, nil
}

// Luminance returns the relative luminance of c with channels in [0, 1].
func Luminance(c colorful.Color) float64 {
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}

// Vary darkens bright colors (scale 0.4) and lightens dark ones (scale 1.6)
// so variants stay away from both extremes.
func Vary(c colorful.Color) color.RGBA {
	scale := 1.6
	if Luminance(c) > 0.5 {
		scale = 0.4
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: scaleChannel(r, scale), G: scaleChannel(g, scale), B: scaleChannel(b, scale), A: 255}
}

func scaleChannel(v uint8, scale float64) uint8 {
	return uint8(math.Min(255, math.Floor(float64(v)*scale)))
}

// Derived picks a random base entry and varies it. An empty base falls back
// to DefaultBase.
func Derived(base []colorful.Color) Source {
	if len(base) == 0 {
		base, _ = ParseBase(DefaultBase)
	}
	return func(r *core.RNG) color.RGBA {
		return Vary(base[r.IntN(len(base))])
	}
}

// HSV draws a random hue with saturation and value kept in the upper half so
// clusters stand out on a dark background.
func HSV() Source {
	return func(r *core.RNG) color.RGBA {
		c := colorful.Hsv(r.Float64()*360, 0.5+r.Float64()*0.5, 0.6+r.Float64()*0.4)
		red, green, blue := c.RGB255()
		return color.RGBA{R: red, G: green, B: blue, A: 255}
	}
}
