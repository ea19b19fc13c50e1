package main

import (
	"fmt"
	"log"

	"snaken/internal/agent"
	"snaken/pkg/snaken"
)

type paramSet struct {
	stamina int
	apples  int
}

func (p paramSet) String() string {
	stamina := fmt.Sprint(p.stamina)
	if p.stamina == snaken.UnlimitedStamina {
		stamina = "inf"
	}
	return fmt.Sprintf("stamina=%s apples=%d", stamina, p.apples)
}

func grid(staminas, apples []int) []paramSet {
	var sets []paramSet
	for _, s := range staminas {
		for _, a := range apples {
			sets = append(sets, paramSet{stamina: s, apples: a})
		}
	}
	return sets
}

type episodeResult struct {
	ticks     int
	eaten     int
	maxLength int
	cause     snaken.Outcome
}

type setResult struct {
	params    paramSet
	episodes  int
	meanTicks float64
	meanEaten float64
	maxLength int
	survived  int
	deaths    map[snaken.Outcome]int
}

// better orders results by apples eaten, then survival time.
func (r setResult) better(o setResult) bool {
	if r.meanEaten != o.meanEaten {
		return r.meanEaten > o.meanEaten
	}
	return r.meanTicks > o.meanTicks
}

func (r setResult) String() string {
	return fmt.Sprintf("eaten=%.2f ticks=%.1f maxLen=%d survived=%d/%d wall=%d self=%d starved=%d %s",
		r.meanEaten, r.meanTicks, r.maxLength, r.survived, r.episodes,
		r.deaths[snaken.OutcomeHitWall], r.deaths[snaken.OutcomeBitSelf], r.deaths[snaken.OutcomeStarved], r.params)
}

func runSet(base snaken.Config, params paramSet, opts sweepOptions) setResult {
	res := setResult{params: params, episodes: opts.episodes, deaths: map[snaken.Outcome]int{}}
	if opts.episodes <= 0 {
		return res
	}
	var ticks, eaten int
	for i := 0; i < opts.episodes; i++ {
		cfg := base
		cfg.Seed = opts.seed + int64(i)
		cfg.Params.Stamina = params.stamina
		cfg.Params.Apples = params.apples
		ep, err := runEpisode(cfg, opts.policy, opts.steps)
		if err != nil {
			log.Printf("%s seed %d: %v", params, cfg.Seed, err)
		}
		ticks += ep.ticks
		eaten += ep.eaten
		res.maxLength = max(res.maxLength, ep.maxLength)
		if ep.cause.Lethal() {
			res.deaths[ep.cause]++
		} else {
			res.survived++
		}
	}
	res.meanTicks = float64(ticks) / float64(opts.episodes)
	res.meanEaten = float64(eaten) / float64(opts.episodes)
	return res
}

// runEpisode drives one world with the named controller until it dies or the
// tick limit is reached.
func runEpisode(cfg snaken.Config, policy string, steps int) (episodeResult, error) {
	var res episodeResult
	world, err := snaken.NewWithConfig(cfg)
	if err != nil {
		return res, err
	}
	ctrl, err := agent.New(policy, cfg.Seed)
	if err != nil {
		return res, err
	}
	view := make([]snaken.Cell, 0, 64)
	for world.Alive() && world.Ticks() < steps {
		view = world.ViewInto(view)
		turn := ctrl.Decide(snaken.View{Radius: world.ViewRadius(), Cells: view})
		if err := turn.Apply(world); err != nil {
			return res, err
		}
		if err := world.Step(); err != nil {
			return res, err
		}
		res.maxLength = max(res.maxLength, world.SnakeLength())
	}
	res.ticks = world.Ticks()
	res.eaten = world.ApplesEaten()
	res.cause = world.DeathCause()
	return res, nil
}
