package core

// Grid describes a toroidal 2D grid addressed by linear row-major indices.
type Grid struct {
	W, H int
}

// NewGrid returns a grid with the given dimensions. Non-positive dimensions
// are clamped to 1.
func NewGrid(w, h int) Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return Grid{W: w, H: h}
}

// Cells returns the number of cells in the grid.
func (g Grid) Cells() int { return g.W * g.H }

// Index returns the linear index for coordinates (x, y).
func (g Grid) Index(x, y int) int { return y*g.W + x }

// Coords decodes a linear index into (x, y).
func (g Grid) Coords(i int) (int, int) { return i % g.W, i / g.W }

// Contains reports whether i is a valid linear index.
func (g Grid) Contains(i int) bool { return i >= 0 && i < g.W*g.H }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g Grid) Wrap(x, y int) (int, int) {
	return WrapCoord(x, g.W), WrapCoord(y, g.H)
}

// Offset moves the cell at index i by (dx, dy), wrapping around the edges.
func (g Grid) Offset(i, dx, dy int) int {
	x, y := g.Coords(i)
	x, y = g.Wrap(x+dx, y+dy)
	return g.Index(x, y)
}

// WrapCoord maps c into [0, n) using true modulo, so negative values wrap
// to the far edge.
func WrapCoord(c, n int) int {
	return (c%n + n) % n
}
