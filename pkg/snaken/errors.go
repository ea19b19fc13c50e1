package snaken

import "errors"

var (
	// ErrInvalidDimensions is returned when a world is created with a non-positive size.
	ErrInvalidDimensions = errors.New("snaken: invalid world dimensions")
	// ErrIndexOutOfRange is returned when a cell or apple index falls outside the world.
	ErrIndexOutOfRange = errors.New("snaken: index out of range")
	// ErrInvalidDirection is returned when turning from or to an unrecognized direction.
	ErrInvalidDirection = errors.New("snaken: invalid direction")
	// ErrInvalidParameter is returned when a configuration value is outside its domain.
	ErrInvalidParameter = errors.New("snaken: invalid parameter")
	// ErrNoFreeCell is returned when no wall-free cell can be found for an apple.
	ErrNoFreeCell = errors.New("snaken: no free cell for apple placement")
	// ErrSnakeDead is returned by every mutating call once the snake has died.
	ErrSnakeDead = errors.New("snaken: snake is dead")
)
