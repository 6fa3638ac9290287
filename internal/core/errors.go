package core

import "errors"

var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("core: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("core: all rows must have the same length")
	// ErrLevelFormat indicates a threshold string that is not a number in [0,1].
	ErrLevelFormat = errors.New("core: threshold must be a number in [0,1]")
)
