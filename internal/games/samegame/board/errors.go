package board

import "errors"

var (
	// ErrInvalidDimensions is returned when a grid is built from a cell list
	// that does not form a non-empty width x height rectangle.
	ErrInvalidDimensions = errors.New("board: invalid dimensions")

	// ErrOutOfBounds is returned when a coordinate lies outside the grid.
	ErrOutOfBounds = errors.New("board: coordinate out of bounds")

	// ErrInvalidPalette is returned when a palette size is outside [1, MaxPalette].
	ErrInvalidPalette = errors.New("board: invalid palette size")

	// ErrInvalidLayout is returned when an ASCII layout cannot be parsed.
	ErrInvalidLayout = errors.New("board: invalid layout")
)
