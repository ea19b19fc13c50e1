package agent

import (
	"testing"

	"snaken/pkg/snaken"
)

// view builds a radius-1 view from three rows of glyphs.
func view(rows ...string) snaken.View {
	glyphs := map[byte]snaken.Cell{'.': snaken.CellEmpty, '#': snaken.CellWall, '*': snaken.CellApple, 'o': snaken.CellBody, '@': snaken.CellHead}
	v := snaken.View{Radius: len(rows) / 2}
	for _, row := range rows {
		for i := 0; i < len(row); i++ {
			v.Cells = append(v.Cells, glyphs[row[i]])
		}
	}
	return v
}

func TestRandomEscapesTowardsFreeSide(t *testing.T) {
	ctrl, err := New("random", 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := ctrl.Decide(view(".#.", "#@.", "...")); got != TurnRight {
		t.Fatalf("expected right, got %v", got)
	}
	if got := ctrl.Decide(view(".o.", ".@#", "...")); got != TurnLeft {
		t.Fatalf("expected left, got %v", got)
	}
	for i := 0; i < 20; i++ {
		if got := ctrl.Decide(view(".#.", ".@.", "...")); got == Straight {
			t.Fatal("must not run into a wall")
		}
	}
}

func TestGreedyChasesApples(t *testing.T) {
	ctrl, err := New("greedy", 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	cases := []struct {
		view snaken.View
		want Turn
	}{
		{view("*..", ".@.", "..."), TurnLeft},
		{view("...", ".@*", "..."), TurnRight},
		{view(".*.", ".@.", "..."), Straight},
		{view("...", ".@.", "..."), Straight},
		{view("*..", "#@.", "..."), Straight},
	}
	for i, tc := range cases {
		if got := ctrl.Decide(tc.view); got != tc.want {
			t.Fatalf("case %d: expected %v, got %v", i, tc.want, got)
		}
	}
}

func TestUnknownPolicy(t *testing.T) {
	if _, err := New("psychic", 1); err == nil {
		t.Fatal("expected an error")
	}
}

func TestControllerSurvivesOnOpenWorld(t *testing.T) {
	cfg := snaken.DefaultConfig()
	cfg.Width = 16
	cfg.Height = 16
	cfg.Params.Speed = snaken.MaxSpeed
	cfg.Params.Stamina = snaken.UnlimitedStamina
	cfg.Params.SelfIntersection = true
	world, err := snaken.NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	if err := world.SetWalls([]int{world.Size().Index(8, 2)}); err != nil {
		t.Fatalf("SetWalls: %v", err)
	}
	ctrl, _ := New("greedy", 3)
	for i := 0; i < 100 && world.Alive(); i++ {
		ctrl.Decide(world.View()).Apply(world)
		world.Step()
	}
	if world.DeathCause() == snaken.OutcomeHitWall {
		t.Fatal("a single wall must always be avoided")
	}
}
