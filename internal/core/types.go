package core

import (
	"fmt"
	"sort"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the contract the viewer and the headless drivers rely on.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64) error
	Step()
	Cells() []uint8
}

// Terminal is implemented by sims whose runs can end.
type Terminal interface {
	Done() bool
}

// Command is a steering input from a controller.
type Command uint8

const (
	CommandNone Command = iota
	CommandUp
	CommandLeft
	CommandDown
	CommandRight
	CommandTurnLeft
	CommandTurnRight
)

// Steerable is implemented by sims that accept controller input between steps.
type Steerable interface {
	Steer(cmd Command) error
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Lookup builds the named simulation.
func Lookup(name string, cfg map[string]string) (Sim, error) {
	f, ok := sims[name]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q (available: %v)", name, Names())
	}
	return f(cfg)
}

// Names lists the registered simulations in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Focus locates the controlled agent for overlays: its cell, facing step and
// sensing radius.
type Focus struct {
	X, Y   int
	DX, DY int
	Radius int
}

// FocusProvider is implemented by sims with a single controlled agent.
type FocusProvider interface {
	Focus() (Focus, bool)
}
