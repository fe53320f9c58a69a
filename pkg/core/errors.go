package core

import "errors"

var (
	// ErrInvalidDimension reports a row or column count outside [0, MaxDimension]
	// or one that could not be parsed.
	ErrInvalidDimension = errors.New("invalid grid dimension")
	// ErrOutOfBounds reports cell coordinates outside the grid.
	ErrOutOfBounds = errors.New("cell out of bounds")
	// ErrMalformedGrid reports nested rows that do not form a binary rectangle.
	ErrMalformedGrid = errors.New("malformed grid")
)
