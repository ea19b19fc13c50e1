package snaken

import (
	"errors"
	"slices"
	"testing"
)

func TestSpawnAppleRejectsUnknownIndex(t *testing.T) {
	world := newTestWorld(t, 10, 10)
	world.SetApplesCount(2)

	for _, idx := range []int{-1, 2, 10} {
		if err := world.SpawnApple(idx); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("SpawnApple(%d): expected ErrIndexOutOfRange, got %v", idx, err)
		}
	}
	if err := world.SpawnApple(1); err != nil {
		t.Fatalf("SpawnApple(1): %v", err)
	}
}

func TestSetApplesCountKeepsPrefix(t *testing.T) {
	world := newTestWorld(t, 10, 10)
	if err := world.SetApplesCount(4); err != nil {
		t.Fatalf("SetApplesCount: %v", err)
	}
	before := world.Apples()

	world.SetApplesCount(2)
	if !slices.Equal(world.Apples(), before[:2]) {
		t.Fatalf("shrinking must keep the first apples, got %v want %v", world.Apples(), before[:2])
	}

	world.SetApplesCount(6)
	after := world.Apples()
	if len(after) != 6 || !slices.Equal(after[:2], before[:2]) {
		t.Fatalf("growing must keep existing apples, got %v", after)
	}
	if world.Config().Params.Apples != 6 {
		t.Fatalf("expected config to track apples, got %d", world.Config().Params.Apples)
	}

	if err := world.SetApplesCount(-1); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
}

func TestSetWallsValidatesBeforeMutating(t *testing.T) {
	world := newTestWorld(t, 10, 10)
	world.SetWalls([]int{3, 4})

	if err := world.SetWalls([]int{5, 100}); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	if err := world.AddWalls([]int{-1}); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	if !slices.Equal(world.Walls(), []int{3, 4}) {
		t.Fatalf("failed calls must not change walls, got %v", world.Walls())
	}
}

func TestWallsCoveringEveryCellAreRejected(t *testing.T) {
	world := newTestWorld(t, 3, 3)
	all := make([]int, 9)
	for i := range all {
		all[i] = i
	}
	if err := world.SetWalls(all); !errors.Is(err, ErrNoFreeCell) {
		t.Fatalf("expected ErrNoFreeCell, got %v", err)
	}

	world.SetWalls(all[:5])
	if err := world.AddWalls(all[4:]); !errors.Is(err, ErrNoFreeCell) {
		t.Fatalf("expected ErrNoFreeCell when merged walls fill the grid, got %v", err)
	}
	if len(world.Walls()) != 5 {
		t.Fatalf("expected 5 walls after rejected add, got %d", len(world.Walls()))
	}
}

func TestAddWallsAppendsInOrder(t *testing.T) {
	world := newTestWorld(t, 10, 10)
	world.SetWalls([]int{7, 2})
	world.AddWalls([]int{9, 2, 1, 9})

	if want := []int{7, 2, 9, 1}; !slices.Equal(world.Walls(), want) {
		t.Fatalf("expected %v, got %v", want, world.Walls())
	}
	for _, c := range []int{7, 2, 9, 1} {
		if !world.IsWall(c) {
			t.Fatalf("expected %d to be a wall", c)
		}
	}
	if world.IsWall(3) {
		t.Fatal("3 is not a wall")
	}
}

func TestApplesLandOnTheOnlyFreeCell(t *testing.T) {
	world := newTestWorld(t, 5, 5)
	free := world.Size().Index(1, 3)
	walls := make([]int, 0, 24)
	for i := 0; i < 25; i++ {
		if i != free {
			walls = append(walls, i)
		}
	}
	if err := world.SetWalls(walls); err != nil {
		t.Fatalf("SetWalls: %v", err)
	}
	if err := world.SetApplesCount(3); err != nil {
		t.Fatalf("SetApplesCount: %v", err)
	}
	for i, a := range world.Apples() {
		if a != free {
			t.Fatalf("apple %d at %d, expected the free cell %d", i, a, free)
		}
	}
	if !world.HasApple(free) {
		t.Fatal("HasApple should report the free cell")
	}
}

func TestNewWallsEvictApples(t *testing.T) {
	world := newTestWorld(t, 10, 10)
	world.SetApplesCount(5)
	covered := world.Apples()

	if err := world.SetWalls(covered); err != nil {
		t.Fatalf("SetWalls: %v", err)
	}
	for _, a := range world.Apples() {
		if world.IsWall(a) {
			t.Fatalf("apple %d left under a wall", a)
		}
	}
	if world.ApplesCount() != 5 {
		t.Fatalf("eviction must keep the apple count, got %d", world.ApplesCount())
	}
}

func TestApplesMayOverlapSnake(t *testing.T) {
	world := newTestWorld(t, 5, 5)
	head := world.Head()
	walls := make([]int, 0, 24)
	for i := 0; i < 25; i++ {
		if i != head {
			walls = append(walls, i)
		}
	}
	world.SetWalls(walls)
	if err := world.SetApplesCount(2); err != nil {
		t.Fatalf("SetApplesCount: %v", err)
	}
	if !world.HasApple(head) {
		t.Fatal("apples must be allowed on the snake")
	}
}

func TestSetApplesCountTracksConfig(t *testing.T) {
	world := newTestWorld(t, 8, 8)
	for _, n := range []int{4, 2, 0, 3} {
		if err := world.SetApplesCount(n); err != nil {
			t.Fatalf("SetApplesCount(%d): %v", n, err)
		}
		if world.ApplesCount() != n || world.Config().Params.Apples != n {
			t.Fatalf("apples %d: count %d, config %d", n, world.ApplesCount(), world.Config().Params.Apples)
		}
	}
	if err := world.SetApplesCount(-1); err == nil {
		t.Fatal("expected negative count to be rejected")
	}
	if world.Config().Params.Apples != 3 {
		t.Fatalf("rejected count must leave config alone, got %d", world.Config().Params.Apples)
	}
}
