// Package snake adapts a snaken.World to the core.Sim contract used by the
// viewer and registers it under the name "snaken".
package snake

import (
	"fmt"
	"log"

	"snaken/internal/core"
	"snaken/pkg/snaken"
)

// Name is the registry key of the snake simulation.
const Name = "snaken"

// Sim drives one snaken.World on behalf of an interactive controller.
type Sim struct {
	world *snaken.World
	seed  int64

	cells   []snaken.Cell
	display []uint8
	view    []snaken.Cell
}

// New constructs a Sim from the provided configuration.
func New(cfg snaken.Config) (*Sim, error) {
	world, err := snaken.NewWithConfig(cfg)
	if err != nil {
		return nil, err
	}
	return &Sim{world: world, seed: cfg.Seed}, nil
}

// NewFromMap constructs a Sim from flag-style key/value pairs.
func NewFromMap(cfg map[string]string) (*Sim, error) {
	return New(snaken.FromMap(cfg))
}

func init() {
	core.Register(Name, func(cfg map[string]string) (core.Sim, error) {
		return NewFromMap(cfg)
	})
}

func (s *Sim) Name() string { return Name }

func (s *Sim) Size() core.Size {
	g := s.world.Size()
	return core.Size{W: g.W, H: g.H}
}

// Seed returns the seed of the current run.
func (s *Sim) Seed() int64 { return s.seed }

// World exposes the underlying world.
func (s *Sim) World() *snaken.World { return s.world }

// Reset restarts the run on a fresh world that keeps the current parameters
// and walls. A zero seed reuses the last seed.
func (s *Sim) Reset(seed int64) error {
	if seed != 0 {
		s.seed = seed
	}
	cfg := s.world.Config()
	cfg.Seed = s.seed
	world, err := snaken.NewWithConfig(cfg)
	if err != nil {
		return err
	}
	if walls := s.world.Walls(); len(walls) > 0 {
		if err := world.SetWalls(walls); err != nil {
			return err
		}
	}
	s.world = world
	return nil
}

// Step advances the world by one tick. Finished runs stay frozen until Reset.
func (s *Sim) Step() {
	if !s.world.Alive() {
		return
	}
	if err := s.world.Step(); err != nil {
		log.Printf("snaken: step: %v", err)
	}
}

// Done reports whether the run has ended.
func (s *Sim) Done() bool { return !s.world.Alive() }

// Cells returns the map-aligned classification used for display. The slice is
// reused between calls.
func (s *Sim) Cells() []uint8 {
	s.cells = s.world.Cells(s.cells)
	if cap(s.display) < len(s.cells) {
		s.display = make([]uint8, len(s.cells))
	}
	s.display = s.display[:len(s.cells)]
	for i, c := range s.cells {
		s.display[i] = uint8(c)
	}
	return s.display
}

// View returns the oriented view as display values together with its diameter.
func (s *Sim) View() ([]uint8, int) {
	s.view = s.world.ViewInto(s.view)
	out := make([]uint8, len(s.view))
	for i, c := range s.view {
		out[i] = uint8(c)
	}
	return out, 2*s.world.ViewRadius() + 1
}

// Steer applies a controller command.
func (s *Sim) Steer(cmd core.Command) error {
	switch cmd {
	case core.CommandNone:
		return nil
	case core.CommandTurnLeft:
		return s.world.TurnLeft()
	case core.CommandTurnRight:
		return s.world.TurnRight()
	}
	dir, ok := commandDirections[cmd]
	if !ok {
		return fmt.Errorf("command %d: %w", cmd, snaken.ErrInvalidDirection)
	}
	return s.world.SetDirection(dir)
}

var commandDirections = map[core.Command]snaken.Direction{
	core.CommandUp:    snaken.Up,
	core.CommandLeft:  snaken.Left,
	core.CommandDown:  snaken.Down,
	core.CommandRight: snaken.Right,
}

// Status summarises the run for the HUD.
func (s *Sim) Status() []string {
	w := s.world
	state := "alive"
	if !w.Alive() {
		state = "dead: " + w.DeathCause().String()
	}
	return []string{
		state,
		fmt.Sprintf("tick %d  last %s", w.Ticks(), w.LastOutcome()),
		fmt.Sprintf("length %d  eaten %d", w.SnakeLength(), w.ApplesEaten()),
		fmt.Sprintf("facing %s", w.Direction()),
		fmt.Sprintf("stamina %d/%s", w.StaminaStep(), staminaLabel(w.Stamina())),
	}
}

func staminaLabel(v int) string {
	if v == snaken.UnlimitedStamina {
		return "inf"
	}
	return fmt.Sprint(v)
}

// Focus reports the head cell, facing and view radius.
func (s *Sim) Focus() (core.Focus, bool) {
	if s.world.SnakeLength() == 0 {
		return core.Focus{}, false
	}
	x, y := s.world.HeadXY()
	dx, dy := s.world.Direction().Delta()
	return core.Focus{X: x, Y: y, DX: dx, DY: dy, Radius: s.world.ViewRadius()}, true
}
