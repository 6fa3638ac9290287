package core

// WeightGrid stores per-cell weights as hundredths in row-major order. Cell
// (x, y) lives at index y*W + x. Index and Coord are the only conversions
// between the two forms; everything that maps cells to pixels goes through
// them.
type WeightGrid struct {
	W, H int
	data []Level
}

// NewWeightGrid allocates a zero-weight grid. Degenerate sizes are rejected.
func NewWeightGrid(w, h int) (*WeightGrid, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyGrid
	}
	return &WeightGrid{W: w, H: h, data: make([]Level, w*h)}, nil
}

// GridFromWeights builds a grid from rows of weights, quantizing each value
// to hundredths. values[y][x] is the weight of cell (x, y).
func GridFromWeights(values [][]float64) (*WeightGrid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g, err := NewWeightGrid(w, h)
	if err != nil {
		return nil, err
	}
	for y, row := range values {
		for x, v := range row {
			g.data[g.Index(x, y)] = Quantize(v)
		}
	}
	return g, nil
}

// Size returns the grid dimensions.
func (g *WeightGrid) Size() Size { return Size{W: g.W, H: g.H} }

// Len reports the number of cells.
func (g *WeightGrid) Len() int { return len(g.data) }

// Levels exposes the backing slice. Callers must treat it as read-only once
// the grid has been handed out.
func (g *WeightGrid) Levels() []Level { return g.data }

// Level returns the quantized weight at linear index i.
func (g *WeightGrid) Level(i int) Level { return g.data[i] }

// Weight returns the weight of cell (x, y) in [0, 1].
func (g *WeightGrid) Weight(x, y int) float64 { return g.data[g.Index(x, y)].Float() }

// InBounds reports whether (x, y) lies within the grid.
func (g *WeightGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Index returns the linear slice index for coordinates (x, y).
func (g *WeightGrid) Index(x, y int) int { return y*g.W + x }

// Coord converts a linear index back to (x, y).
func (g *WeightGrid) Coord(i int) (x, y int) { return i % g.W, i / g.W }
