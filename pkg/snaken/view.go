package snaken

import "strings"

// View is the square window of classified cells around the head, expressed
// in the snake's own frame: row 0 is the forward side and column 0 the
// snake's left. The head sits at (Radius, Radius).
type View struct {
	Radius int
	Cells  []Cell
}

// Diameter returns the side length of the window.
func (v View) Diameter() int { return 2*v.Radius + 1 }

// At returns the cell at column x, row y.
func (v View) At(x, y int) Cell { return v.Cells[y*v.Diameter()+x] }

// Ahead returns the cell directly in front of the head.
func (v View) Ahead() Cell { return v.At(v.Radius, v.Radius-1) }

// Count returns how many cells carry the given classification.
func (v View) Count(c Cell) int {
	n := 0
	for _, cell := range v.Cells {
		if cell == c {
			n++
		}
	}
	return n
}

func (v View) String() string {
	d := v.Diameter()
	var b strings.Builder
	b.Grow(d * (d + 1))
	for y := 0; y < d; y++ {
		for x := 0; x < d; x++ {
			b.WriteByte(v.At(x, y).Rune())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// View computes the oriented local view. It is never cached.
func (w *World) View() View {
	return View{Radius: w.cfg.Params.ViewRadius, Cells: w.ViewInto(nil)}
}

// ViewInto writes the oriented view into dst, reallocating only when dst is
// too small, and returns the filled slice.
//
// The window is first read map-aligned (local (i, j) is world head+(i-r, j-r))
// and then rotated so the facing points up: Left rotates the map 90°
// clockwise, Down 180°, Right 90° counter-clockwise.
func (w *World) ViewInto(dst []Cell) []Cell {
	r := w.cfg.Params.ViewRadius
	d := 2*r + 1
	n := d * d
	if cap(dst) < n {
		dst = make([]Cell, n)
	}
	dst = dst[:n]
	if len(w.body) == 0 {
		clear(dst)
		return dst
	}

	head := w.body[0]
	for y := 0; y < d; y++ {
		for x := 0; x < d; x++ {
			i, j := rotate(x-r, y-r, w.dir)
			dst[y*d+x] = w.classify(w.grid.Offset(head, i, j))
		}
	}
	return dst
}

// rotate maps a frame-relative offset (a to the snake's right, b behind it)
// onto the map-aligned offset read from the unrotated window.
func rotate(a, b int, dir Direction) (int, int) {
	switch dir {
	case Left:
		return b, -a
	case Down:
		return -a, -b
	case Right:
		return -b, a
	}
	return a, b
}

// classify labels a world cell using the fixed priority
// head > body > apple > wall > empty.
func (w *World) classify(cell int) Cell {
	if cell == w.body[0] {
		return CellHead
	}
	for _, seg := range w.body[1:] {
		if seg == cell {
			return CellBody
		}
	}
	for _, apple := range w.apples {
		if apple == cell {
			return CellApple
		}
	}
	if _, ok := w.wallSet[cell]; ok {
		return CellWall
	}
	return CellEmpty
}

// Cells classifies the whole world into dst using the same priority as the
// oriented view, map-aligned. dst is reallocated when too small.
func (w *World) Cells(dst []Cell) []Cell {
	n := w.grid.Cells()
	if cap(dst) < n {
		dst = make([]Cell, n)
	}
	dst = dst[:n]
	clear(dst)
	for _, c := range w.walls {
		dst[c] = CellWall
	}
	for _, a := range w.apples {
		dst[a] = CellApple
	}
	for i := len(w.body) - 1; i >= 0; i-- {
		if i == 0 {
			dst[w.body[i]] = CellHead
			continue
		}
		dst[w.body[i]] = CellBody
	}
	return dst
}
