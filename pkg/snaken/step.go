package snaken

// Outcome describes what the most recent Step did.
type Outcome uint8

const (
	// OutcomeIdle means the cadence gate held the snake in place.
	OutcomeIdle Outcome = iota
	// OutcomeMoved means the snake advanced without further events.
	OutcomeMoved
	// OutcomeAte means the head landed on an apple.
	OutcomeAte
	// OutcomeShrank means starvation removed a tail segment.
	OutcomeShrank
	// OutcomeHitWall means the head landed on a wall.
	OutcomeHitWall
	// OutcomeBitSelf means the head landed on its own body.
	OutcomeBitSelf
	// OutcomeStarved means starvation removed the last segment.
	OutcomeStarved
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIdle:
		return "idle"
	case OutcomeMoved:
		return "moved"
	case OutcomeAte:
		return "ate"
	case OutcomeShrank:
		return "shrank"
	case OutcomeHitWall:
		return "hit_wall"
	case OutcomeBitSelf:
		return "bit_self"
	case OutcomeStarved:
		return "starved"
	}
	return "unknown"
}

// Lethal reports whether the outcome ends the run.
func (o Outcome) Lethal() bool {
	return o == OutcomeHitWall || o == OutcomeBitSelf || o == OutcomeStarved
}

// LastOutcome returns the outcome of the most recent Step.
func (w *World) LastOutcome() Outcome { return w.outcome }

// DeathCause returns the lethal outcome that killed the snake, or OutcomeIdle
// while it is alive.
func (w *World) DeathCause() Outcome { return w.cause }

// moveThreshold returns how many steps must accumulate before one move, or 0
// when the snake never moves.
func moveThreshold(speed uint8) int {
	if speed == 0 {
		return 0
	}
	return 256 - int(speed)
}

// Step advances the simulation by one tick. Terminal transitions are reported
// through Alive and LastOutcome; the only error is ErrSnakeDead, returned when
// stepping a world that has already ended.
func (w *World) Step() error {
	if !w.alive {
		return ErrSnakeDead
	}
	w.ticks++
	w.outcome = OutcomeIdle

	w.speedStep++
	threshold := moveThreshold(w.cfg.Params.Speed)
	if threshold == 0 || w.speedStep < threshold {
		return nil
	}
	w.speedStep = 0

	w.advance()
	w.outcome = OutcomeMoved
	head := w.body[0]

	ate, err := w.eatApple(head)
	if err != nil {
		return err
	}
	if ate {
		return nil
	}

	if _, ok := w.wallSet[head]; ok {
		w.die(OutcomeHitWall)
		return nil
	}

	if w.cfg.Params.SelfIntersection {
		for _, seg := range w.body[1:] {
			if seg == head {
				w.die(OutcomeBitSelf)
				return nil
			}
		}
	}

	w.decayStamina()
	return nil
}

// advance moves the head one cell along the facing and shifts the body in place.
func (w *World) advance() {
	dx, dy := w.dir.Delta()
	for i := len(w.body) - 1; i > 0; i-- {
		w.body[i] = w.body[i-1]
	}
	w.body[0] = w.grid.Offset(w.body[0], dx, dy)
}

// eatApple consumes the first apple under the head, respawns it and grows the
// snake by duplicating its tail.
func (w *World) eatApple(head int) (bool, error) {
	for i, apple := range w.apples {
		if apple != head {
			continue
		}
		w.body = append(w.body, w.body[len(w.body)-1])
		w.staminaStep = 0
		w.eaten++
		w.outcome = OutcomeAte
		if err := w.spawnApple(i); err != nil {
			return true, err
		}
		return true, nil
	}
	return false, nil
}

func (w *World) decayStamina() {
	if w.cfg.Params.Stamina == UnlimitedStamina {
		return
	}
	w.staminaStep++
	if w.staminaStep <= w.cfg.Params.Stamina {
		return
	}
	w.staminaStep = 0
	w.body = w.body[:len(w.body)-1]
	if len(w.body) == 0 {
		w.die(OutcomeStarved)
		return
	}
	w.outcome = OutcomeShrank
}

func (w *World) die(cause Outcome) {
	w.alive = false
	w.outcome = cause
	w.cause = cause
}
