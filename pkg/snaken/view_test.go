package snaken

import "testing"

func newViewWorld(t *testing.T, radius int) *World {
	t.Helper()
	world := newTestWorld(t, 10, 10)
	if err := world.SetViewRadius(radius); err != nil {
		t.Fatalf("SetViewRadius: %v", err)
	}
	return world
}

func TestViewShape(t *testing.T) {
	world := newViewWorld(t, 2)
	for _, dir := range []Direction{Up, Left, Down, Right} {
		world.SetDirection(dir)
		view := world.View()
		if len(view.Cells) != 25 {
			t.Fatalf("%v: expected 25 cells, got %d", dir, len(view.Cells))
		}
		if view.Count(CellHead) != 1 {
			t.Fatalf("%v: expected exactly one head, got %d", dir, view.Count(CellHead))
		}
		if view.At(2, 2) != CellHead {
			t.Fatalf("%v: head must sit at the centre", dir)
		}
	}
}

func TestViewIsOrientedToFacing(t *testing.T) {
	for _, dir := range []Direction{Up, Left, Down, Right} {
		world := newViewWorld(t, 2)
		g := world.Size()
		head := world.Head()
		left, _ := dir.Left()
		right, _ := dir.Right()

		ahead := offsetTo(g.Offset, head, dir)
		world.SetWalls([]int{ahead})
		world.SetApplesCount(1)
		world.apples[0] = offsetTo(g.Offset, head, left)
		world.SetDirection(dir)

		view := world.View()
		r := view.Radius
		if view.Ahead() != CellWall {
			t.Fatalf("%v: expected wall ahead, view:\n%s", dir, view)
		}
		if got := view.At(r-1, r); got != CellApple {
			t.Fatalf("%v: expected apple on the left, got %v, view:\n%s", dir, got, view)
		}
		if got := view.At(r+1, r); got != CellEmpty {
			t.Fatalf("%v: expected empty on the right, got %v", dir, got)
		}

		world.SetWalls([]int{offsetTo(g.Offset, head, right)})
		view = world.View()
		if got := view.At(r+1, r); got != CellWall {
			t.Fatalf("%v: expected wall on the right, got %v, view:\n%s", dir, got, view)
		}
		if got := view.At(r, r+1); got != CellEmpty {
			t.Fatalf("%v: expected empty behind, got %v", dir, got)
		}
	}
}

func offsetTo(offset func(i, dx, dy int) int, from int, dir Direction) int {
	dx, dy := dir.Delta()
	return offset(from, dx, dy)
}

func TestViewClassificationPriority(t *testing.T) {
	world := newViewWorld(t, 2)
	g := world.Size()
	world.Step()
	world.Step()
	// Head at (5,3), first body segment at (5,4).
	world.SetApplesCount(2)
	world.apples[0] = g.Index(5, 4)
	world.apples[1] = g.Index(6, 3)
	world.walls = append(world.walls, g.Index(6, 3))
	world.wallSet[g.Index(6, 3)] = struct{}{}

	view := world.View()
	if got := view.At(2, 3); got != CellBody {
		t.Fatalf("body must win over apple, got %v", got)
	}
	if got := view.At(3, 2); got != CellApple {
		t.Fatalf("apple must win over wall, got %v", got)
	}
	if got := view.At(2, 2); got != CellHead {
		t.Fatalf("expected head at the centre, got %v", got)
	}
}

func TestViewWrapsAroundEdges(t *testing.T) {
	world := newViewWorld(t, 2)
	g := world.Size()
	world.body = []int{g.Index(0, 0)}
	world.SetWalls([]int{g.Index(9, 9), g.Index(0, 8)})

	view := world.View()
	if got := view.At(1, 1); got != CellWall {
		t.Fatalf("expected wrapped wall up-left of the head, view:\n%s", view)
	}
	if got := view.At(2, 0); got != CellWall {
		t.Fatalf("expected wrapped wall two rows ahead, view:\n%s", view)
	}
	if view.Count(CellWall) != 2 {
		t.Fatalf("expected 2 walls in view, got %d", view.Count(CellWall))
	}
}

func TestViewString(t *testing.T) {
	world := newViewWorld(t, 1)
	world.SetWalls([]int{world.Size().Offset(world.Head(), 0, -1)})

	want := ".#.\n.@.\n...\n"
	if got := world.View().String(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestViewIntoReusesBuffer(t *testing.T) {
	world := newViewWorld(t, 2)
	buf := make([]Cell, 0, 32)
	out := world.ViewInto(buf)
	if len(out) != 25 {
		t.Fatalf("expected 25 cells, got %d", len(out))
	}
	if &out[0] != &buf[:1][0] {
		t.Fatal("expected the provided buffer to be reused")
	}

	small := make([]Cell, 4)
	if out := world.ViewInto(small); len(out) != 25 {
		t.Fatalf("expected reallocation to 25 cells, got %d", len(out))
	}
}

func TestCellsMatchesWorldState(t *testing.T) {
	world := newViewWorld(t, 1)
	g := world.Size()
	world.Step()
	world.SetWalls([]int{g.Index(0, 0)})
	world.SetApplesCount(1)
	world.apples[0] = g.Index(9, 9)

	cells := world.Cells(nil)
	if len(cells) != g.Cells() {
		t.Fatalf("expected %d cells, got %d", g.Cells(), len(cells))
	}
	checks := map[int]Cell{
		g.Index(5, 4): CellHead,
		g.Index(5, 5): CellBody,
		g.Index(0, 0): CellWall,
		g.Index(9, 9): CellApple,
		g.Index(3, 3): CellEmpty,
	}
	for idx, want := range checks {
		if cells[idx] != want {
			t.Fatalf("cell %d: expected %v, got %v", idx, want, cells[idx])
		}
	}
}
