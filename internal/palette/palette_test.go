package palette

import (
	"image/color"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"percolator/internal/core"
	"percolator/internal/percolation"
)

func hex(t *testing.T, s string) colorful.Color {
	t.Helper()
	c, err := colorful.Hex(s)
	require.NoError(t, err)
	return c
}

func TestVaryDarkensBrightColors(t *testing.T) {
	got := Vary(hex(t, "#eaac8b"))
	assert.Equal(t, color.RGBA{R: 93, G: 68, B: 55, A: 255}, got)
}

func TestVaryLightensDarkColors(t *testing.T) {
	got := Vary(hex(t, "#355070"))
	assert.Equal(t, color.RGBA{R: 84, G: 128, B: 179, A: 255}, got)
}

func TestVaryClampsLightenedChannels(t *testing.T) {
	c := hex(t, "#b56576")
	require.LessOrEqual(t, Luminance(c), 0.5)
	assert.Equal(t, color.RGBA{R: 255, G: 161, B: 188, A: 255}, Vary(c))
}

func TestParseBase(t *testing.T) {
	base, err := ParseBase(DefaultBase)
	require.NoError(t, err)
	assert.Len(t, base, len(DefaultBase))

	_, err = ParseBase([]string{"teal"})
	assert.Error(t, err)
}

func TestDerivedDrawsFromVariants(t *testing.T) {
	base, err := ParseBase(DefaultBase)
	require.NoError(t, err)
	allowed := map[color.RGBA]bool{}
	for _, c := range base {
		allowed[Vary(c)] = true
	}
	src := Derived(nil)
	rng := core.NewRNG(5)
	for i := 0; i < 200; i++ {
		require.True(t, allowed[src(rng)])
	}
}

func TestHSVIsOpaqueAndSeeded(t *testing.T) {
	a, b := core.NewRNG(9), core.NewRNG(9)
	src := HSV()
	for i := 0; i < 20; i++ {
		ca, cb := src(a), src(b)
		require.Equal(t, ca, cb)
		require.Equal(t, uint8(255), ca.A)
	}
}

func partitionOf(t *testing.T, rows [][]float64, p core.Level) percolation.Partition {
	t.Helper()
	g, err := core.GridFromWeights(rows)
	require.NoError(t, err)
	return percolation.Extract(g, p)
}

func TestStableTableKeepsColorAcrossGrowth(t *testing.T) {
	rows := [][]float64{
		{0.1, 0.5, 0.9},
		{0.9, 0.9, 0.9},
		{0.2, 0.9, 0.3},
	}
	table := NewStableTable(9, core.NewRNG(1), HSV())
	low := partitionOf(t, rows, 10)
	high := partitionOf(t, rows, 50)
	require.Equal(t, 0, low.Components[0].ID())
	require.Equal(t, 0, high.Components[0].ID())
	assert.Greater(t, high.Components[0].Size(), low.Components[0].Size())
	assert.Equal(t, table.Colors(low)[0], table.Colors(high)[0])
	assert.Equal(t, table.ColorOf(0), table.Colors(low)[0])
}

func TestPerFrameDrawsInComponentOrder(t *testing.T) {
	p := partitionOf(t, [][]float64{{0.1, 0.9, 0.1}}, 10)
	require.Equal(t, 2, p.Len())

	src := HSV()
	rng := core.NewRNG(3)
	want := []color.RGBA{src(rng), src(rng)}
	assert.Equal(t, want, NewPerFrame(core.NewRNG(3), src).Colors(p))
}

func TestRankTableKeepsLargestSlot(t *testing.T) {
	rows := [][]float64{
		{0.1, 0.9, 0.1},
		{0.9, 0.9, 0.1},
		{0.5, 0.9, 0.1},
	}
	low := partitionOf(t, rows, 10)
	high := partitionOf(t, rows, 50)
	require.Equal(t, 2, low.Len())
	require.Equal(t, 3, high.Len())

	src := HSV()
	rng := core.NewRNG(3)
	first, second := src(rng), src(rng)

	table := NewRankTable(core.NewRNG(3), src)
	// {2,5,8} is the largest component at both levels, at position 1.
	got := table.Colors(low)
	assert.Equal(t, first, got[1])
	assert.Equal(t, second, got[0])
	assert.Equal(t, got, table.Colors(low))

	again := table.Colors(high)
	assert.Equal(t, first, again[1])
	assert.Equal(t, table.Slot(2), again[2])
}

func TestTwoToneIsDeterministic(t *testing.T) {
	p := partitionOf(t, [][]float64{{0.1, 0.9, 0.1, 0.9, 0.1}}, 10)
	tt := DefaultTwoTone()
	first := tt.Colors(p)
	assert.Equal(t, first, tt.Colors(p))
	for _, c := range first {
		assert.Contains(t, []color.RGBA{tt.A, tt.B}, c)
	}
}

func TestNewPolicies(t *testing.T) {
	for _, pol := range []Policy{PolicyStable, PolicyRank, PolicyFrame, PolicyTwoTone, ""} {
		a, err := New(pol, 4, core.NewRNG(1), HSV())
		require.NoError(t, err)
		require.NotNil(t, a)
	}
	_, err := New("rainbow", 4, core.NewRNG(1), HSV())
	assert.Error(t, err)
}
