//go:build ebiten

package app

import (
	"image/color"
	"log"
	"time"

	"snaken/internal/core"
	"snaken/internal/render"
	"snaken/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// maxTicksPerFrame caps catch-up work after a stalled frame.
const maxTicksPerFrame = 64

type paletteProvider interface {
	Palette() []color.RGBA
}

// Game adapts a core simulation to the ebiten.Game interface and acts as the
// human controller: arrow keys set an absolute heading, A and D turn relative
// to the current one.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	pacer   *core.FixedStep

	scale    int
	panel    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(sim, cfg.Panel),
		overlay: ui.NewOverlay(sim, cfg.Scale),
		pacer:   core.NewFixedStep(cfg.TPS),
		scale:   cfg.Scale,
		panel:   cfg.Panel,
		seed:    cfg.Seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	if err := g.sim.Reset(seed); err != nil {
		log.Printf("reset: %v", err)
	}
	g.paused = false
	g.tickOnce = false
}

var steerKeys = map[ebiten.Key]core.Command{
	ebiten.KeyArrowUp:    core.CommandUp,
	ebiten.KeyArrowLeft:  core.CommandLeft,
	ebiten.KeyArrowDown:  core.CommandDown,
	ebiten.KeyArrowRight: core.CommandRight,
	ebiten.KeyA:          core.CommandTurnLeft,
	ebiten.KeyD:          core.CommandTurnRight,
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.pacer.SetTPS(g.pacer.TPS() * 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.pacer.SetTPS(max(1, g.pacer.TPS()/2))
	}
	g.steer()

	g.hud.Update(g.worldWidth())
	g.overlay.Update()

	ticks := g.pacer.Due(maxTicksPerFrame)
	if g.paused {
		ticks = 0
	}
	if g.tickOnce {
		ticks = 1
		g.tickOnce = false
	}
	for i := 0; i < ticks; i++ {
		g.sim.Step()
		if g.done() {
			g.paused = true
			break
		}
	}
	return nil
}

func (g *Game) steer() {
	steerable, ok := g.sim.(core.Steerable)
	if !ok {
		return
	}
	for key, cmd := range steerKeys {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		if err := steerable.Steer(cmd); err != nil {
			log.Printf("steer: %v", err)
		}
	}
}

func (g *Game) done() bool {
	t, ok := g.sim.(core.Terminal)
	return ok && t.Done()
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	var palette []color.RGBA
	if p, ok := g.sim.(paletteProvider); ok {
		palette = p.Palette()
	}
	g.painter.Blit(screen, g.sim.Cells(), palette, g.scale, 0, 0)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.worldWidth(), g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return g.worldWidth() + g.panel, max(s.H*g.scale, ui.MinPanelHeight(g.panel))
}

func (g *Game) worldWidth() int {
	return g.sim.Size().W * g.scale
}
