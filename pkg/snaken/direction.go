package snaken

import (
	"fmt"
	"strings"
)

// Direction is the absolute facing of the snake.
type Direction uint8

// Counter-clockwise order: turning left advances by one.
const (
	Up Direction = iota
	Left
	Down
	Right
)

var directionNames = [...]string{"up", "left", "down", "right"}

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool { return d <= Right }

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
	return directionNames[d]
}

// Left returns the direction after a 90° turn to the left.
func (d Direction) Left() (Direction, error) {
	if !d.Valid() {
		return d, fmt.Errorf("turn left from %v: %w", d, ErrInvalidDirection)
	}
	return (d + 1) % 4, nil
}

// Right returns the direction after a 90° turn to the right.
func (d Direction) Right() (Direction, error) {
	if !d.Valid() {
		return d, fmt.Errorf("turn right from %v: %w", d, ErrInvalidDirection)
	}
	return (d + 3) % 4, nil
}

// Opposite returns the reverse direction. Invalid directions are returned as is.
func (d Direction) Opposite() Direction {
	if !d.Valid() {
		return d
	}
	return (d + 2) % 4
}

// Delta returns the unit grid step for d, with y growing downwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Left:
		return -1, 0
	case Down:
		return 0, 1
	case Right:
		return 1, 0
	}
	return 0, 0
}

// ParseDirection converts a case-insensitive name ("up", "left", ...) to a Direction.
func ParseDirection(s string) (Direction, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range directionNames {
		if n == name {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("parse %q: %w", s, ErrInvalidDirection)
}

// Cell classifies a grid cell as seen by the snake.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellWall
	CellApple
	CellBody
	CellHead
)

var cellRunes = [...]byte{'.', '#', '*', 'o', '@'}

func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellWall:
		return "wall"
	case CellApple:
		return "apple"
	case CellBody:
		return "body"
	case CellHead:
		return "head"
	}
	return fmt.Sprintf("cell(%d)", uint8(c))
}

// Rune returns the single-character glyph used by View.String.
func (c Cell) Rune() byte {
	if int(c) < len(cellRunes) {
		return cellRunes[c]
	}
	return '?'
}
