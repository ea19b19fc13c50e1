// Package agent holds simple controllers that steer a snake from its oriented
// view alone.
package agent

import (
	"fmt"

	"snaken/pkg/core"
	"snaken/pkg/snaken"
)

// Turn is a relative steering decision.
type Turn int8

const (
	Straight Turn = iota
	TurnLeft
	TurnRight
)

func (t Turn) String() string {
	switch t {
	case TurnLeft:
		return "left"
	case TurnRight:
		return "right"
	}
	return "straight"
}

// Apply issues the turn on w.
func (t Turn) Apply(w *snaken.World) error {
	switch t {
	case TurnLeft:
		return w.TurnLeft()
	case TurnRight:
		return w.TurnRight()
	}
	return nil
}

// Controller decides a turn from the oriented view.
type Controller interface {
	Decide(view snaken.View) Turn
}

// New builds the named controller seeded with seed.
func New(policy string, seed int64) (Controller, error) {
	switch policy {
	case "random":
		return &Random{rng: core.NewRNG(seed), WanderChance: 10}, nil
	case "greedy":
		return &Greedy{fallback: Random{rng: core.NewRNG(seed), WanderChance: 0}}, nil
	}
	return nil, fmt.Errorf("unknown policy %q", policy)
}

// Random keeps going straight unless the cell ahead is blocked, and otherwise
// wanders with a WanderChance percent probability per decision.
type Random struct {
	rng          *core.RNG
	WanderChance int
}

func (r *Random) Decide(view snaken.View) Turn {
	if blocked(view.Ahead()) {
		return r.escape(view)
	}
	if r.WanderChance > 0 && r.rng.IntN(100) < r.WanderChance {
		return r.pick()
	}
	return Straight
}

// escape turns towards the safer side, picking randomly on a tie. Walls are
// worse than body segments, which only kill with self-intersection enabled.
func (r *Random) escape(view snaken.View) Turn {
	left := danger(view.At(view.Radius-1, view.Radius))
	right := danger(view.At(view.Radius+1, view.Radius))
	switch {
	case left < right:
		return TurnLeft
	case right < left:
		return TurnRight
	}
	return r.pick()
}

func (r *Random) pick() Turn {
	if r.rng.Bool() {
		return TurnLeft
	}
	return TurnRight
}

// Greedy heads for the nearest visible apple and falls back to Random's
// obstacle avoidance.
type Greedy struct {
	fallback Random
}

func (g *Greedy) Decide(view snaken.View) Turn {
	if blocked(view.Ahead()) {
		return g.fallback.escape(view)
	}
	x, y, ok := nearestApple(view)
	if !ok {
		return Straight
	}
	r := view.Radius
	var want Turn
	switch {
	case x < r:
		want = TurnLeft
	case x > r:
		want = TurnRight
	case y > r:
		// Directly behind: either side works.
		want = g.fallback.pick()
	default:
		return Straight
	}
	if want == TurnLeft && blocked(view.At(r-1, r)) || want == TurnRight && blocked(view.At(r+1, r)) {
		return Straight
	}
	return want
}

func nearestApple(view snaken.View) (int, int, bool) {
	d := view.Diameter()
	r := view.Radius
	best := -1
	bx, by := 0, 0
	for y := 0; y < d; y++ {
		for x := 0; x < d; x++ {
			if view.At(x, y) != snaken.CellApple {
				continue
			}
			dist := abs(x-r) + abs(y-r)
			if best < 0 || dist < best {
				best, bx, by = dist, x, y
			}
		}
	}
	return bx, by, best >= 0
}

func danger(c snaken.Cell) int {
	switch c {
	case snaken.CellWall:
		return 2
	case snaken.CellBody:
		return 1
	}
	return 0
}

func blocked(c snaken.Cell) bool {
	return c == snaken.CellWall || c == snaken.CellBody
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
