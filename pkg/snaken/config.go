package snaken

import (
	"fmt"
	"strconv"
)

const (
	// MaxSpeed moves the snake on every step.
	MaxSpeed uint8 = 0xFF
	// DefaultSpeed moves the snake roughly once every 129 steps.
	DefaultSpeed uint8 = 0x7F
	// UnlimitedStamina disables starvation entirely.
	UnlimitedStamina = -1
)

// Params holds the tunable snake and world parameters.
type Params struct {
	Speed            uint8
	Stamina          int
	Apples           int
	ViewRadius       int
	StartLength      int
	SelfIntersection bool
}

// Config controls the world dimensions, seed and starting parameters.
type Config struct {
	Width  int
	Height int

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  32,
		Height: 32,
		Seed:   1337,
		Params: Params{
			Speed:            DefaultSpeed,
			Stamina:          0xFF,
			Apples:           1,
			ViewRadius:       2,
			StartLength:      5,
			SelfIntersection: false,
		},
	}
}

// Validate reports the first configuration value outside its domain.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%dx%d: %w", c.Width, c.Height, ErrInvalidDimensions)
	}
	p := c.Params
	if p.Stamina < UnlimitedStamina {
		return fmt.Errorf("stamina %d: %w", p.Stamina, ErrInvalidParameter)
	}
	if p.Apples < 0 {
		return fmt.Errorf("apples %d: %w", p.Apples, ErrInvalidParameter)
	}
	if p.StartLength < 1 {
		return fmt.Errorf("start length %d: %w", p.StartLength, ErrInvalidParameter)
	}
	return checkViewRadius(p.ViewRadius, c.Width, c.Height)
}

func checkViewRadius(r, w, h int) error {
	d := 2*r + 1
	if r < 0 || d > w || d > h {
		return fmt.Errorf("view radius %d on %dx%d world: %w", r, w, h, ErrInvalidParameter)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["speed"]; ok {
		if parsed, err := strconv.ParseUint(v, 0, 8); err == nil {
			c.Params.Speed = uint8(parsed)
		}
	}
	if v, ok := cfg["stamina"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= UnlimitedStamina {
			c.Params.Stamina = parsed
		}
	}
	if v, ok := cfg["apples"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.Apples = parsed
		}
	}
	if v, ok := cfg["view_radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.ViewRadius = parsed
		}
	}
	if v, ok := cfg["start_length"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.StartLength = parsed
		}
	}
	if v, ok := cfg["self_intersection"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Params.SelfIntersection = parsed
		}
	}
	if checkViewRadius(c.Params.ViewRadius, c.Width, c.Height) != nil {
		c.Params.ViewRadius = maxViewRadius(c.Width, c.Height)
	}
	return c
}

func maxViewRadius(w, h int) int {
	m := w
	if h < m {
		m = h
	}
	return (m - 1) / 2
}
