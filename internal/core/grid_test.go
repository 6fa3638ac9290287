package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWeightGridRejectsDegenerate(t *testing.T) {
	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 4}} {
		_, err := NewWeightGrid(dims[0], dims[1])
		assert.ErrorIs(t, err, ErrEmptyGrid)
	}
}

func TestGridFromWeights(t *testing.T) {
	g, err := GridFromWeights([][]float64{
		{0.1, 0.2, 0.3},
		{0.4, 0.5, 0.666},
	})
	require.NoError(t, err)
	assert.Equal(t, Size{W: 3, H: 2}, g.Size())
	assert.Equal(t, 6, g.Len())
	assert.InDelta(t, 0.67, g.Weight(2, 1), 1e-9)
	assert.Equal(t, Level(40), g.Level(3))

	_, err = GridFromWeights(nil)
	assert.ErrorIs(t, err, ErrEmptyGrid)
	_, err = GridFromWeights([][]float64{{}})
	assert.ErrorIs(t, err, ErrEmptyGrid)
	_, err = GridFromWeights([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, ErrNonRectangular)
}

func TestIndexCoordRoundTripNonSquare(t *testing.T) {
	g, err := NewWeightGrid(5, 3)
	require.NoError(t, err)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			i := g.Index(x, y)
			gx, gy := g.Coord(i)
			require.Equal(t, [2]int{x, y}, [2]int{gx, gy})
		}
	}
	assert.Equal(t, 7, g.Index(2, 1))
	assert.True(t, g.InBounds(4, 2))
	assert.False(t, g.InBounds(5, 0))
	assert.False(t, g.InBounds(0, -1))
}

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(7), NewRNG(7)
	for i := 0; i < 100; i++ {
		va, vb := a.Float64(), b.Float64()
		require.Equal(t, va, vb)
		require.GreaterOrEqual(t, va, 0.0)
		require.Less(t, va, 1.0)
	}
	assert.NotEqual(t, NewRNG(7).Float64(), NewRNG(8).Float64())
	assert.Equal(t, 0, a.IntN(0))
}
