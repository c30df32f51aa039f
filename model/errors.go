package model

import "github.com/pkg/errors"

var (
	// ErrOutOfBounds is returned when a coordinate falls outside the grid
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrInvalidDimensions is returned when stepping or querying a zero-sized grid
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
)
