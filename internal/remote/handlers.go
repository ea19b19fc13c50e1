package remote

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"snaken/internal/sims/snake"
	"snaken/pkg/snaken"
)

const episodeKey = "episode"

type createRequest struct {
	Width            *int   `json:"width"`
	Height           *int   `json:"height"`
	Seed             *int64 `json:"seed"`
	Speed            *int   `json:"speed"`
	Stamina          *int   `json:"stamina"`
	Apples           *int   `json:"apples"`
	ViewRadius       *int   `json:"view_radius"`
	StartLength      *int   `json:"start_length"`
	SelfIntersection *bool  `json:"self_intersection"`
	Walls            []int  `json:"walls"`
}

func (r createRequest) apply(e EpisodeConfig) EpisodeConfig {
	setInt(&e.Width, r.Width)
	setInt(&e.Height, r.Height)
	setInt(&e.Speed, r.Speed)
	setInt(&e.Stamina, r.Stamina)
	setInt(&e.Apples, r.Apples)
	setInt(&e.ViewRadius, r.ViewRadius)
	setInt(&e.StartLength, r.StartLength)
	if r.Seed != nil {
		e.Seed = *r.Seed
	}
	if r.SelfIntersection != nil {
		e.SelfIntersection = *r.SelfIntersection
	}
	return e
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

type turnRequest struct {
	Turn      string `json:"turn"`
	Direction string `json:"direction"`
}

type wallsRequest struct {
	Cells   []int `json:"cells"`
	Replace bool  `json:"replace"`
}

type episodeState struct {
	ID          string `json:"id"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Seed        int64  `json:"seed"`
	Alive       bool   `json:"alive"`
	Outcome     string `json:"outcome"`
	DeathCause  string `json:"death_cause,omitempty"`
	Ticks       int    `json:"ticks"`
	Length      int    `json:"length"`
	ApplesEaten int    `json:"apples_eaten"`
	Head        int    `json:"head"`
	Direction   string `json:"direction"`
	Body        []int  `json:"body"`
	Apples      []int  `json:"apples"`
	Walls       []int  `json:"walls"`
	Stepped     *int   `json:"stepped,omitempty"`
}

func stateOf(id uuid.UUID, sim *snake.Sim) episodeState {
	w := sim.World()
	g := w.Size()
	st := episodeState{
		ID:          id.String(),
		Width:       g.W,
		Height:      g.H,
		Seed:        sim.Seed(),
		Alive:       w.Alive(),
		Outcome:     w.LastOutcome().String(),
		Ticks:       w.Ticks(),
		Length:      w.SnakeLength(),
		ApplesEaten: w.ApplesEaten(),
		Head:        w.Head(),
		Direction:   w.Direction().String(),
		Body:        w.Body(),
		Apples:      w.Apples(),
		Walls:       w.Walls(),
	}
	if !w.Alive() {
		st.DeathCause = w.DeathCause().String()
	}
	return st
}

// abort maps core errors onto HTTP status codes.
func abort(c *gin.Context, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, snaken.ErrSnakeDead):
		status = http.StatusConflict
	case errors.Is(err, snaken.ErrNoFreeCell):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, ErrTooManyEpisodes):
		status = http.StatusTooManyRequests
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

func (s *Server) listEpisodes(c *gin.Context) {
	ids := make([]string, 0, s.store.Len())
	for _, ep := range s.store.List() {
		ids = append(ids, ep.ID.String())
	}
	c.JSON(http.StatusOK, gin.H{"episodes": ids})
}

func (s *Server) createEpisode(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	current := s.cfg.Current()
	worldCfg, err := req.apply(current.Episode).World()
	if err != nil {
		abort(c, err)
		return
	}
	ep, err := newEpisode(worldCfg)
	if err != nil {
		abort(c, err)
		return
	}
	if len(req.Walls) > 0 {
		if err := ep.sim.World().SetWalls(req.Walls); err != nil {
			abort(c, err)
			return
		}
	}
	if err := s.store.Add(ep, current.MaxEpisodes); err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, stateOf(ep.ID, ep.sim))
}

// loadEpisode resolves the :id parameter for every per-episode route.
func (s *Server) loadEpisode(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "malformed episode id"})
		return
	}
	ep, ok := s.store.Get(id)
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "episode not found"})
		return
	}
	c.Set(episodeKey, ep)
	c.Next()
}

func episodeFrom(c *gin.Context) *Episode {
	return c.MustGet(episodeKey).(*Episode)
}

// respond runs fn under the episode lock and replies with the resulting state.
func respond(c *gin.Context, fn func(sim *snake.Sim) error) {
	ep := episodeFrom(c)
	var st episodeState
	err := ep.Do(func(sim *snake.Sim) error {
		if err := fn(sim); err != nil {
			return err
		}
		st = stateOf(ep.ID, sim)
		return nil
	})
	if err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

func (s *Server) getEpisode(c *gin.Context) {
	respond(c, func(*snake.Sim) error { return nil })
}

func (s *Server) deleteEpisode(c *gin.Context) {
	s.store.Remove(episodeFrom(c).ID)
	c.Status(http.StatusNoContent)
}

func (s *Server) turn(c *gin.Context) {
	var req turnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if (req.Turn == "") == (req.Direction == "") {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": `exactly one of "turn" or "direction" is required`})
		return
	}
	respond(c, func(sim *snake.Sim) error {
		w := sim.World()
		if req.Direction != "" {
			d, err := snaken.ParseDirection(req.Direction)
			if err != nil {
				return err
			}
			return w.SetDirection(d)
		}
		switch strings.ToLower(req.Turn) {
		case "left":
			return w.TurnLeft()
		case "right":
			return w.TurnRight()
		}
		return fmt.Errorf("turn %q: %w", req.Turn, snaken.ErrInvalidDirection)
	})
}

func (s *Server) step(c *gin.Context) {
	limit := s.cfg.Current().MaxStepsPerCall
	n := 1
	if raw := c.Query("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > limit {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("n must be between 1 and %d", limit)})
			return
		}
		n = parsed
	}

	ep := episodeFrom(c)
	var st episodeState
	err := ep.Do(func(sim *snake.Sim) error {
		w := sim.World()
		stepped := 0
		for stepped < n {
			if err := w.Step(); err != nil {
				return err
			}
			stepped++
			if !w.Alive() {
				break
			}
		}
		st = stateOf(ep.ID, sim)
		st.Stepped = &stepped
		return nil
	})
	if err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

func (s *Server) reset(c *gin.Context) {
	var seed int64
	if raw := c.Query("seed"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "seed must be an integer"})
			return
		}
		seed = parsed
	}
	respond(c, func(sim *snake.Sim) error { return sim.Reset(seed) })
}

func (s *Server) view(c *gin.Context) {
	ep := episodeFrom(c)
	var body gin.H
	err := ep.Do(func(sim *snake.Sim) error {
		view := sim.World().View()
		cells := make([]int, len(view.Cells))
		for i, cell := range view.Cells {
			cells[i] = int(cell)
		}
		body = gin.H{
			"radius":    view.Radius,
			"diameter":  view.Diameter(),
			"direction": sim.World().Direction().String(),
			"cells":     cells,
			"rows":      strings.Split(strings.TrimSuffix(view.String(), "\n"), "\n"),
		}
		return nil
	})
	if err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusOK, body)
}

func (s *Server) getParams(c *gin.Context) {
	ep := episodeFrom(c)
	var body any
	err := ep.Do(func(sim *snake.Sim) error {
		body = sim.Parameters()
		return nil
	})
	if err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusOK, body)
}

// setParams applies a JSON object of parameter values. Numbers go through the
// integer setters and booleans through the boolean ones. Keys are applied in
// sorted order and the first rejected key aborts the request, leaving earlier
// keys applied.
func (s *Server) setParams(c *gin.Context) {
	var req map[string]any
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	respond(c, func(sim *snake.Sim) error {
		if !sim.World().Alive() {
			return snaken.ErrSnakeDead
		}
		keys := make([]string, 0, len(req))
		for key := range req {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			ok := false
			raw := req[key]
			switch v := raw.(type) {
			case float64:
				if v == float64(int(v)) {
					ok = sim.SetIntParameter(key, int(v))
				}
			case bool:
				ok = sim.SetBoolParameter(key, v)
			}
			if !ok {
				return fmt.Errorf("parameter %q: %w", key, snaken.ErrInvalidParameter)
			}
		}
		return nil
	})
}

func (s *Server) setWalls(c *gin.Context) {
	var req wallsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	respond(c, func(sim *snake.Sim) error {
		if req.Replace {
			return sim.World().SetWalls(req.Cells)
		}
		return sim.World().AddWalls(req.Cells)
	})
}
