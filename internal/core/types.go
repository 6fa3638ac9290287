package core

// Size describes the dimensions of a grid.
type Size struct {
	W int
	H int
}
