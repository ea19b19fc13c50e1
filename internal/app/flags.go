package app

import (
	"flag"
	"strconv"

	"snaken/pkg/snaken"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	Seed  int64
	Panel int

	World snaken.Config
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	world := snaken.DefaultConfig()
	world.Params.Speed = 0xF0
	return &Config{Sim: "snaken", Scale: 16, TPS: 240, Seed: world.Seed, Panel: 260, World: world}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Panel, "panel", c.Panel, "HUD panel width in pixels, 0 hides it")

	p := &c.World.Params
	fs.IntVar(&c.World.Width, "w", c.World.Width, "world width")
	fs.IntVar(&c.World.Height, "h", c.World.Height, "world height")
	fs.Func("speed", "movement cadence 0-255 (default "+strconv.Itoa(int(p.Speed))+")", func(v string) error {
		parsed, err := strconv.ParseUint(v, 0, 8)
		if err != nil {
			return err
		}
		p.Speed = uint8(parsed)
		return nil
	})
	fs.IntVar(&p.Stamina, "stamina", p.Stamina, "steps without food before shrinking, -1 for unlimited")
	fs.IntVar(&p.Apples, "apples", p.Apples, "number of apples")
	fs.IntVar(&p.ViewRadius, "view", p.ViewRadius, "oriented view radius")
	fs.IntVar(&p.StartLength, "length", p.StartLength, "starting snake length")
	fs.BoolVar(&p.SelfIntersection, "self", p.SelfIntersection, "biting the own body is lethal")
}

// SimConfig renders the world settings as the key/value map sim factories
// accept.
func (c *Config) SimConfig() map[string]string {
	p := c.World.Params
	return map[string]string{
		"w":                 strconv.Itoa(c.World.Width),
		"h":                 strconv.Itoa(c.World.Height),
		"seed":              strconv.FormatInt(c.Seed, 10),
		"speed":             strconv.Itoa(int(p.Speed)),
		"stamina":           strconv.Itoa(p.Stamina),
		"apples":            strconv.Itoa(p.Apples),
		"view_radius":       strconv.Itoa(p.ViewRadius),
		"start_length":      strconv.Itoa(p.StartLength),
		"self_intersection": strconv.FormatBool(p.SelfIntersection),
	}
}
