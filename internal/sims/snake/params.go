package snake

import (
	"strconv"

	"snaken/internal/core"
	"snaken/pkg/snaken"
)

func (s *Sim) Parameters() core.ParameterSnapshot {
	cfg := s.world.Config()
	params := cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", cfg.Width),
				intParam("h", "Height", cfg.Height),
				int64Param("seed", "Seed", s.seed),
				intParam("apples", "Apples", s.world.ApplesCount()),
				intParam("walls", "Walls", len(s.world.Walls())),
			},
		},
		{
			Name: "Snake",
			Params: []core.Parameter{
				intParam("speed", "Speed", int(params.Speed)),
				intParam("stamina", "Stamina", params.Stamina),
				intParam("start_length", "Start length", params.StartLength),
				boolParam("self_intersection", "Self intersection", params.SelfIntersection),
			},
		},
		{
			Name: "Sensing",
			Params: []core.Parameter{
				intParam("view_radius", "View radius", params.ViewRadius),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the values adjustable from the HUD.
func (s *Sim) ParameterControls() []core.ParameterControl {
	g := s.world.Size()
	maxRadius := (min(g.W, g.H) - 1) / 2
	return []core.ParameterControl{
		{Key: "speed", Label: "Speed", Type: core.ParamTypeInt, Step: 16, Min: 0, Max: int(snaken.MaxSpeed), HasMin: true, HasMax: true},
		{Key: "stamina", Label: "Stamina", Type: core.ParamTypeInt, Step: 16, Min: snaken.UnlimitedStamina, HasMin: true},
		{Key: "apples", Label: "Apples", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: g.W * g.H, HasMin: true, HasMax: true},
		{Key: "view_radius", Label: "View radius", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: maxRadius, HasMin: true, HasMax: true},
		{Key: "self_intersection", Label: "Self intersection", Type: core.ParamTypeBool},
	}
}

// SetIntParameter updates an integer parameter by key. It reports false for
// unknown keys, rejected values and finished runs.
func (s *Sim) SetIntParameter(key string, value int) bool {
	var err error
	switch key {
	case "speed":
		if value < 0 || value > int(snaken.MaxSpeed) {
			return false
		}
		err = s.world.SetSpeed(uint8(value))
	case "stamina":
		err = s.world.SetStamina(value)
	case "apples":
		err = s.world.SetApplesCount(value)
	case "view_radius":
		err = s.world.SetViewRadius(value)
	case "length":
		err = s.world.SetSnakeLength(value)
	default:
		return false
	}
	return err == nil
}

// SetBoolParameter updates a boolean parameter by key.
func (s *Sim) SetBoolParameter(key string, value bool) bool {
	switch key {
	case "self_intersection":
		return s.world.SetSelfIntersection(value) == nil
	}
	return false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}
