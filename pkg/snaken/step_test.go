package snaken

import (
	"slices"
	"testing"

	"snaken/pkg/core"
)

func TestStepMovesHeadUpAndBodyFollows(t *testing.T) {
	world := newTestWorld(t, 10, 10)
	g := world.Size()

	for i := 0; i < 3; i++ {
		if err := world.Step(); err != nil {
			t.Fatalf("Step: %v", err)
		}
	}

	want := []int{g.Index(5, 2), g.Index(5, 3), g.Index(5, 4), g.Index(5, 5), g.Index(5, 5)}
	if !slices.Equal(world.Body(), want) {
		t.Fatalf("expected body %v, got %v", want, world.Body())
	}
	if !world.Alive() || world.SnakeLength() != 5 {
		t.Fatalf("expected live snake of length 5, alive=%v length=%d", world.Alive(), world.SnakeLength())
	}
	if world.LastOutcome() != OutcomeMoved {
		t.Fatalf("expected moved outcome, got %v", world.LastOutcome())
	}
}

func TestStepWrapsAroundEdges(t *testing.T) {
	world := newTestWorld(t, 10, 10)

	world.SetDirection(Left)
	for i := 0; i < 5; i++ {
		world.Step()
	}
	if x, y := world.HeadXY(); x != 0 || y != 5 {
		t.Fatalf("expected head at (0,5), got (%d,%d)", x, y)
	}
	world.Step()
	if x, y := world.HeadXY(); x != 9 || y != 5 {
		t.Fatalf("moving left from x=0 should wrap to x=9, got (%d,%d)", x, y)
	}

	world.SetDirection(Up)
	for i := 0; i < 6; i++ {
		world.Step()
	}
	if x, y := world.HeadXY(); x != 9 || y != 9 {
		t.Fatalf("moving up past row 0 should wrap to row 9, got (%d,%d)", x, y)
	}

	world.SetDirection(Right)
	world.Step()
	if x, y := world.HeadXY(); x != 0 || y != 9 {
		t.Fatalf("moving right from x=9 should wrap to x=0, got (%d,%d)", x, y)
	}

	world.SetDirection(Down)
	world.Step()
	if x, y := world.HeadXY(); x != 0 || y != 0 {
		t.Fatalf("moving down from y=9 should wrap to y=0, got (%d,%d)", x, y)
	}
}

func TestSpeedZeroNeverMoves(t *testing.T) {
	world := newTestWorld(t, 10, 10)
	world.SetSpeed(0)
	head := world.Head()

	for i := 0; i < 1000; i++ {
		world.Step()
		if world.LastOutcome() != OutcomeIdle {
			t.Fatalf("step %d: expected idle outcome, got %v", i, world.LastOutcome())
		}
	}
	if world.Head() != head {
		t.Fatal("speed 0 must never move the head")
	}
}

func TestMaxSpeedMovesEveryStep(t *testing.T) {
	world := newTestWorld(t, 7, 7)
	world.SetDirection(Right)
	g := world.Size()

	for i := 1; i <= 20; i++ {
		prev := world.Head()
		world.Step()
		if want := g.Offset(prev, 1, 0); world.Head() != want {
			t.Fatalf("step %d: expected head %d, got %d", i, want, world.Head())
		}
		if world.SpeedStep() != 0 {
			t.Fatalf("step %d: speed step must reset on move, got %d", i, world.SpeedStep())
		}
	}
}

func TestCadenceGateThreshold(t *testing.T) {
	world := newTestWorld(t, 10, 10)
	world.SetSpeed(MaxSpeed - 2)
	head := world.Head()

	world.Step()
	world.Step()
	if world.Head() != head {
		t.Fatal("threshold 3 must hold the head for two steps")
	}
	if world.SpeedStep() != 2 {
		t.Fatalf("expected speed step 2, got %d", world.SpeedStep())
	}
	world.Step()
	if world.Head() == head {
		t.Fatal("expected a move on the third step")
	}
	if world.SpeedStep() != 0 {
		t.Fatalf("expected speed step reset, got %d", world.SpeedStep())
	}
}

func TestEatingGrowsAndRelocatesApple(t *testing.T) {
	world := newTestWorld(t, 10, 10)
	g := world.Size()
	world.SetStamina(4)
	world.Step()
	world.Step()
	if world.StaminaStep() != 2 {
		t.Fatalf("expected stamina step 2, got %d", world.StaminaStep())
	}

	if err := world.SetApplesCount(3); err != nil {
		t.Fatalf("SetApplesCount: %v", err)
	}
	world.apples[0] = g.Index(0, 0)
	world.apples[1] = g.Offset(world.Head(), 0, -1)
	world.apples[2] = g.Index(9, 9)
	others := []int{world.apples[0], world.apples[2]}
	before := world.Body()

	world.Step()

	if world.LastOutcome() != OutcomeAte {
		t.Fatalf("expected ate outcome, got %v", world.LastOutcome())
	}
	if world.SnakeLength() != len(before)+1 {
		t.Fatalf("expected length %d, got %d", len(before)+1, world.SnakeLength())
	}
	body := world.Body()
	if body[len(body)-1] != body[len(body)-2] {
		t.Fatalf("new tail must duplicate the previous tail, got %v", body)
	}
	if world.ApplesCount() != 3 {
		t.Fatalf("apple count must not change, got %d", world.ApplesCount())
	}
	if world.apples[0] != others[0] || world.apples[2] != others[1] {
		t.Fatal("only the eaten apple may move")
	}
	if world.StaminaStep() != 0 {
		t.Fatalf("eating must reset stamina step, got %d", world.StaminaStep())
	}
	if world.ApplesEaten() != 1 {
		t.Fatalf("expected one apple eaten, got %d", world.ApplesEaten())
	}
}

func TestAppleTakesPriorityOverWall(t *testing.T) {
	world := newTestWorld(t, 10, 10)
	world.SetApplesCount(1)
	cell := world.Size().Offset(world.Head(), 0, -1)

	// Only reachable by bypassing SetWalls, which evicts apples from walls.
	world.walls = append(world.walls, cell)
	world.wallSet[cell] = struct{}{}
	world.apples[0] = cell

	world.Step()
	if !world.Alive() {
		t.Fatal("an apple on the head cell must skip the wall check")
	}
	if world.LastOutcome() != OutcomeAte {
		t.Fatalf("expected ate outcome, got %v", world.LastOutcome())
	}
	if world.IsWall(world.apples[0]) {
		t.Fatal("respawned apple must avoid walls")
	}
}

func TestWallHitKills(t *testing.T) {
	world := newTestWorld(t, 10, 10)
	world.Step()
	wall := world.Size().Offset(world.Head(), 0, -1)
	if err := world.SetWalls([]int{wall}); err != nil {
		t.Fatalf("SetWalls: %v", err)
	}

	world.Step()
	if world.Alive() {
		t.Fatal("expected the snake to die on the wall")
	}
	if world.DeathCause() != OutcomeHitWall {
		t.Fatalf("expected hit_wall, got %v", world.DeathCause())
	}
	if world.SnakeLength() != 5 {
		t.Fatalf("a wall hit must not change the length, got %d", world.SnakeLength())
	}
	if world.Head() != wall {
		t.Fatalf("head should rest on the wall cell, got %d", world.Head())
	}
}

func TestSelfIntersection(t *testing.T) {
	for _, enabled := range []bool{false, true} {
		world := newTestWorld(t, 10, 10)
		g := world.Size()
		world.SetSelfIntersection(enabled)
		// After moving up the head lands on what becomes segment 2.
		world.body = []int{g.Index(5, 5), g.Index(5, 4), g.Index(4, 4), g.Index(4, 5), g.Index(4, 6)}

		world.Step()
		if world.Alive() == enabled {
			t.Fatalf("self intersection %v: alive=%v", enabled, world.Alive())
		}
		if enabled && world.DeathCause() != OutcomeBitSelf {
			t.Fatalf("expected bit_self, got %v", world.DeathCause())
		}
	}
}

func TestStarvationShrinksThenKills(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 10
	cfg.Height = 10
	cfg.Params.Speed = MaxSpeed
	cfg.Params.Stamina = 2
	cfg.Params.Apples = 0
	cfg.Params.StartLength = 3
	world, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}

	want := []int{3, 3, 2, 2, 2, 1, 1, 1, 0}
	for i, length := range want {
		world.Step()
		if world.SnakeLength() != length {
			t.Fatalf("step %d: expected length %d, got %d", i+1, length, world.SnakeLength())
		}
	}
	if world.Alive() {
		t.Fatal("expected starvation to kill the snake")
	}
	if world.DeathCause() != OutcomeStarved {
		t.Fatalf("expected starved, got %v", world.DeathCause())
	}
	if world.Head() != -1 {
		t.Fatalf("expected no head once starved, got %d", world.Head())
	}
}

func TestUnlimitedStaminaNeverStarves(t *testing.T) {
	world := newTestWorld(t, 10, 10)
	for i := 0; i < 5000; i++ {
		world.Step()
	}
	if !world.Alive() || world.SnakeLength() != 5 {
		t.Fatalf("unlimited stamina must not shrink, alive=%v length=%d", world.Alive(), world.SnakeLength())
	}
}

func TestPositionsStayInRange(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		cfg := DefaultConfig()
		cfg.Width = 9
		cfg.Height = 7
		cfg.Seed = seed
		cfg.Params.Speed = MaxSpeed - uint8(seed%3)
		cfg.Params.Stamina = 12
		cfg.Params.Apples = 4
		cfg.Params.SelfIntersection = seed%2 == 0
		world, err := NewWithConfig(cfg)
		if err != nil {
			t.Fatalf("NewWithConfig: %v", err)
		}
		g := world.Size()
		if err := world.AddWalls([]int{g.Index(0, 0), g.Index(8, 6), g.Index(3, 1)}); err != nil {
			t.Fatalf("AddWalls: %v", err)
		}

		rng := core.NewRNG(seed)
		for step := 0; step < 400 && world.Alive(); step++ {
			switch rng.IntN(4) {
			case 0:
				world.TurnLeft()
			case 1:
				world.TurnRight()
			}
			if err := world.Step(); err != nil {
				t.Fatalf("seed %d step %d: %v", seed, step, err)
			}
			for _, cells := range [][]int{world.Body(), world.Apples(), world.Walls()} {
				for _, c := range cells {
					if !g.Contains(c) {
						t.Fatalf("seed %d step %d: index %d out of range", seed, step, c)
					}
				}
			}
			for _, a := range world.Apples() {
				if world.IsWall(a) {
					t.Fatalf("seed %d step %d: apple %d overlaps a wall", seed, step, a)
				}
			}
			if world.SnakeLength() != 0 && !world.Alive() && world.DeathCause() == OutcomeStarved {
				t.Fatalf("seed %d: starved with segments left", seed)
			}
		}
	}
}

func TestScenarioTenByTen(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 10
	cfg.Height = 10
	cfg.Params.Speed = MaxSpeed
	cfg.Params.Stamina = UnlimitedStamina
	cfg.Params.Apples = 1
	world, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	g := world.Size()

	for i := 0; i < 3; i++ {
		world.Step()
	}
	if x, y := world.HeadXY(); x != 5 || y != 2 {
		t.Fatalf("expected head at (5,2), got (%d,%d)", x, y)
	}
	body := world.Body()
	for i, want := range []int{g.Index(5, 2), g.Index(5, 3), g.Index(5, 4), g.Index(5, 5)} {
		if body[i] != want {
			t.Fatalf("segment %d: expected %d, got %d", i, want, body[i])
		}
	}
	if !world.Alive() {
		t.Fatal("expected the snake to be alive")
	}
	if world.SnakeLength() != 5+world.ApplesEaten() {
		t.Fatalf("length %d does not match 5 + %d apples", world.SnakeLength(), world.ApplesEaten())
	}
}

func TestSameSeedSameRun(t *testing.T) {
	run := func() ([]int, []int) {
		cfg := DefaultConfig()
		cfg.Width = 12
		cfg.Height = 12
		cfg.Seed = 4242
		cfg.Params.Speed = MaxSpeed
		cfg.Params.Apples = 5
		world, err := NewWithConfig(cfg)
		if err != nil {
			t.Fatalf("NewWithConfig: %v", err)
		}
		for i := 0; i < 200 && world.Alive(); i++ {
			if i%7 == 0 {
				world.TurnLeft()
			}
			world.Step()
		}
		return world.Body(), world.Apples()
	}
	b1, a1 := run()
	b2, a2 := run()
	if !slices.Equal(b1, b2) || !slices.Equal(a1, a2) {
		t.Fatal("identical seeds and inputs must produce identical runs")
	}
}
