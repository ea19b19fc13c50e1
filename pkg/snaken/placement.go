package snaken

import (
	"fmt"
	"slices"
)

// maxPlacementAttempts bounds rejection sampling so a nearly walled-in world
// fails with ErrNoFreeCell instead of spinning forever.
func maxPlacementAttempts(cells int) int {
	return 64*cells + 64
}

// SpawnApple relocates the apple at index to a random wall-free cell. Apples
// may share cells with each other and with the snake.
func (w *World) SpawnApple(index int) error {
	if !w.alive {
		return ErrSnakeDead
	}
	if index < 0 || index >= len(w.apples) {
		return fmt.Errorf("apple %d of %d: %w", index, len(w.apples), ErrIndexOutOfRange)
	}
	return w.spawnApple(index)
}

func (w *World) spawnApple(index int) error {
	cell, err := w.freeCell()
	if err != nil {
		return err
	}
	w.apples[index] = cell
	return nil
}

func (w *World) freeCell() (int, error) {
	attempts := maxPlacementAttempts(w.grid.Cells())
	for i := 0; i < attempts; i++ {
		cell := w.rng.Cell(w.grid)
		if _, ok := w.wallSet[cell]; !ok {
			return cell, nil
		}
	}
	return 0, ErrNoFreeCell
}

// SetApplesCount resizes the apple set. Existing apples keep their cells and
// only the added entries are spawned.
func (w *World) SetApplesCount(n int) error {
	if !w.alive {
		return ErrSnakeDead
	}
	if n < 0 {
		return fmt.Errorf("apples %d: %w", n, ErrInvalidParameter)
	}
	if n <= len(w.apples) {
		w.apples = w.apples[:n]
		w.cfg.Params.Apples = n
		return nil
	}
	if err := w.growApples(n); err != nil {
		return err
	}
	w.cfg.Params.Apples = n
	return nil
}

func (w *World) growApples(n int) error {
	for len(w.apples) < n {
		w.apples = append(w.apples, 0)
		if err := w.spawnApple(len(w.apples) - 1); err != nil {
			w.apples = w.apples[:len(w.apples)-1]
			return err
		}
	}
	return nil
}

// SetWalls replaces the wall set.
func (w *World) SetWalls(cells []int) error {
	if !w.alive {
		return ErrSnakeDead
	}
	if err := w.checkWalls(cells, nil); err != nil {
		return err
	}
	w.walls = w.walls[:0]
	clear(w.wallSet)
	w.appendWalls(cells)
	return w.evictApples()
}

// AddWalls appends cells to the existing wall set.
func (w *World) AddWalls(cells []int) error {
	if !w.alive {
		return ErrSnakeDead
	}
	if err := w.checkWalls(cells, w.wallSet); err != nil {
		return err
	}
	w.appendWalls(cells)
	return w.evictApples()
}

// checkWalls validates cells against the grid and makes sure at least one
// cell stays free once they are merged with existing.
func (w *World) checkWalls(cells []int, existing map[int]struct{}) error {
	distinct := make(map[int]struct{}, len(cells)+len(existing))
	for c := range existing {
		distinct[c] = struct{}{}
	}
	for _, c := range cells {
		if !w.grid.Contains(c) {
			return fmt.Errorf("wall cell %d: %w", c, ErrIndexOutOfRange)
		}
		distinct[c] = struct{}{}
	}
	if len(distinct) >= w.grid.Cells() {
		return fmt.Errorf("%d walls on %d cells: %w", len(distinct), w.grid.Cells(), ErrNoFreeCell)
	}
	return nil
}

func (w *World) appendWalls(cells []int) {
	for _, c := range cells {
		if _, ok := w.wallSet[c]; ok {
			continue
		}
		w.wallSet[c] = struct{}{}
		w.walls = append(w.walls, c)
	}
}

// evictApples respawns apples that now sit under a wall.
func (w *World) evictApples() error {
	for i, a := range w.apples {
		if _, ok := w.wallSet[a]; !ok {
			continue
		}
		if err := w.spawnApple(i); err != nil {
			return err
		}
	}
	return nil
}

// IsWall reports whether the cell at index is a wall.
func (w *World) IsWall(index int) bool {
	_, ok := w.wallSet[index]
	return ok
}

// HasApple reports whether any apple sits on the cell at index.
func (w *World) HasApple(index int) bool {
	return slices.Contains(w.apples, index)
}
