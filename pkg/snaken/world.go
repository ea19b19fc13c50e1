// Package snaken implements a deterministic toroidal snake environment that an
// external controller steers one direction change at a time.
//
// A World is single-threaded: callers alternate between issuing turns,
// reading the oriented View and calling Step. Independent simulations must
// each own their own World.
package snaken

import (
	"fmt"
	"slices"

	"snaken/pkg/core"
)

// World stores the complete mutable state of one simulation.
type World struct {
	cfg  Config
	grid core.Grid

	walls   []int
	wallSet map[int]struct{}
	apples  []int
	body    []int

	dir         Direction
	speedStep   int
	staminaStep int
	alive       bool

	ticks   int
	eaten   int
	outcome Outcome
	cause   Outcome

	rng *core.RNG
}

// New returns a world with the provided dimensions using defaults.
func New(w, h int) (*World, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	if checkViewRadius(cfg.Params.ViewRadius, w, h) != nil && w > 0 && h > 0 {
		cfg.Params.ViewRadius = maxViewRadius(w, h)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig returns a world configured from the provided options.
func NewWithConfig(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w := &World{
		cfg:     cfg,
		grid:    core.NewGrid(cfg.Width, cfg.Height),
		wallSet: make(map[int]struct{}),
	}
	if err := w.restart(0); err != nil {
		return nil, err
	}
	return w, nil
}

// Reset restores the starting snake, counters and apples while keeping the
// walls and current parameters. A zero seed reuses the configured seed.
// A dead world is terminal and must be replaced instead.
func (w *World) Reset(seed int64) error {
	if !w.alive {
		return ErrSnakeDead
	}
	return w.restart(seed)
}

func (w *World) restart(seed int64) error {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	w.rng = core.NewRNG(seed)

	start := w.cfg.Params.StartLength
	head := w.grid.Index(w.grid.W/2, w.grid.H/2)
	w.body = slices.Grow(w.body[:0], start)[:start]
	for i := range w.body {
		w.body[i] = head
	}

	w.dir = Up
	w.speedStep = 0
	w.staminaStep = 0
	w.alive = true
	w.ticks = 0
	w.eaten = 0
	w.outcome = OutcomeIdle
	w.cause = OutcomeIdle

	w.apples = w.apples[:0]
	return w.growApples(w.cfg.Params.Apples)
}

// Config returns the current configuration, including parameter changes.
func (w *World) Config() Config { return w.cfg }

// Size reports the grid dimensions.
func (w *World) Size() core.Grid { return w.grid }

// Alive reports whether the snake is still alive.
func (w *World) Alive() bool { return w.alive }

// SnakeLength returns the number of body segments, head included.
func (w *World) SnakeLength() int { return len(w.body) }

// Head returns the linear index of the head, or -1 once the body is gone.
func (w *World) Head() int {
	if len(w.body) == 0 {
		return -1
	}
	return w.body[0]
}

// HeadXY returns the head coordinates.
func (w *World) HeadXY() (int, int) {
	if len(w.body) == 0 {
		return -1, -1
	}
	return w.grid.Coords(w.body[0])
}

// Body returns a copy of the body, head first.
func (w *World) Body() []int { return slices.Clone(w.body) }

// Apples returns a copy of the apple positions.
func (w *World) Apples() []int { return slices.Clone(w.apples) }

// ApplesCount returns the configured number of apples.
func (w *World) ApplesCount() int { return len(w.apples) }

// Walls returns a copy of the wall positions in insertion order.
func (w *World) Walls() []int { return slices.Clone(w.walls) }

// Direction returns the current facing.
func (w *World) Direction() Direction { return w.dir }

// Speed returns the movement cadence parameter.
func (w *World) Speed() uint8 { return w.cfg.Params.Speed }

// SpeedStep returns the steps accumulated since the last move.
func (w *World) SpeedStep() int { return w.speedStep }

// Stamina returns the starvation cadence parameter.
func (w *World) Stamina() int { return w.cfg.Params.Stamina }

// StaminaStep returns the steps accumulated since the last apple or shrink.
func (w *World) StaminaStep() int { return w.staminaStep }

// ViewRadius returns the half-width of the oriented view.
func (w *World) ViewRadius() int { return w.cfg.Params.ViewRadius }

// SelfIntersection reports whether biting the body is lethal.
func (w *World) SelfIntersection() bool { return w.cfg.Params.SelfIntersection }

// Ticks counts Step calls made while alive.
func (w *World) Ticks() int { return w.ticks }

// ApplesEaten counts apples consumed since the last Reset.
func (w *World) ApplesEaten() int { return w.eaten }

// SetSpeed sets the movement cadence: 0 never moves, MaxSpeed moves every step.
func (w *World) SetSpeed(speed uint8) error {
	if !w.alive {
		return ErrSnakeDead
	}
	w.cfg.Params.Speed = speed
	return nil
}

// SetStamina sets how many non-eating steps are tolerated before the snake
// loses a segment. UnlimitedStamina disables starvation.
func (w *World) SetStamina(stamina int) error {
	if !w.alive {
		return ErrSnakeDead
	}
	if stamina < UnlimitedStamina {
		return fmt.Errorf("stamina %d: %w", stamina, ErrInvalidParameter)
	}
	w.cfg.Params.Stamina = stamina
	return nil
}

// SetViewRadius sets the radius of the oriented view. The resulting diameter
// must fit inside both world dimensions.
func (w *World) SetViewRadius(radius int) error {
	if !w.alive {
		return ErrSnakeDead
	}
	if err := checkViewRadius(radius, w.grid.W, w.grid.H); err != nil {
		return err
	}
	w.cfg.Params.ViewRadius = radius
	return nil
}

// SetSelfIntersection toggles whether biting the own body is lethal.
func (w *World) SetSelfIntersection(enabled bool) error {
	if !w.alive {
		return ErrSnakeDead
	}
	w.cfg.Params.SelfIntersection = enabled
	return nil
}

// SetSnakeLength resizes the body. New segments duplicate the current tail.
func (w *World) SetSnakeLength(length int) error {
	if !w.alive {
		return ErrSnakeDead
	}
	if length < 1 {
		return fmt.Errorf("snake length %d: %w", length, ErrInvalidParameter)
	}
	for len(w.body) < length {
		w.body = append(w.body, w.body[len(w.body)-1])
	}
	w.body = w.body[:length]
	return nil
}

// SetDirection sets the absolute facing.
func (w *World) SetDirection(d Direction) error {
	if !w.alive {
		return ErrSnakeDead
	}
	if !d.Valid() {
		return fmt.Errorf("set %v: %w", d, ErrInvalidDirection)
	}
	w.dir = d
	return nil
}

// TurnLeft rotates the facing 90° counter-clockwise.
func (w *World) TurnLeft() error {
	if !w.alive {
		return ErrSnakeDead
	}
	d, err := w.dir.Left()
	if err != nil {
		return err
	}
	w.dir = d
	return nil
}

// TurnRight rotates the facing 90° clockwise.
func (w *World) TurnRight() error {
	if !w.alive {
		return ErrSnakeDead
	}
	d, err := w.dir.Right()
	if err != nil {
		return err
	}
	w.dir = d
	return nil
}
