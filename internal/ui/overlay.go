//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"

	"snaken/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws optional guides on top of the world: the sensing window
// around the head (key 1) and the heading marker (key 2).
type Overlay struct {
	sim         core.Sim
	scale       int
	showWindow  bool
	showHeading bool

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale, showWindow: true, showHeading: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the guides.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showWindow = !o.showWindow
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showHeading = !o.showHeading
	}
}

// Draw paints the enabled guides clipped to the world area.
func (o *Overlay) Draw(screen *ebiten.Image) {
	provider, ok := o.sim.(core.FocusProvider)
	if !ok {
		return
	}
	focus, ok := provider.Focus()
	if !ok {
		return
	}
	size := o.sim.Size()
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	world := screen.SubImage(image.Rect(0, 0, size.W*scale, size.H*scale)).(*ebiten.Image)

	if o.showWindow {
		o.drawWindow(world, focus, size, float64(scale))
	}
	if o.showHeading {
		o.drawHeading(world, focus, float64(scale))
	}
}

// drawWindow outlines the sensing square. The square is repeated one world
// width and height away in every direction so the wrapped parts show up.
func (o *Overlay) drawWindow(dst *ebiten.Image, f core.Focus, size core.Size, scale float64) {
	col := color.RGBA{R: 240, G: 220, B: 90, A: 200}
	side := float64(2*f.Radius+1) * scale
	for _, oy := range []int{-size.H, 0, size.H} {
		for _, ox := range []int{-size.W, 0, size.W} {
			x := float64(f.X-f.Radius+ox) * scale
			y := float64(f.Y-f.Radius+oy) * scale
			o.drawLine(dst, x, y, x+side, y, 1, col)
			o.drawLine(dst, x, y+side, x+side, y+side, 1, col)
			o.drawLine(dst, x, y, x, y+side, 1, col)
			o.drawLine(dst, x+side, y, x+side, y+side, 1, col)
		}
	}
}

func (o *Overlay) drawHeading(dst *ebiten.Image, f core.Focus, scale float64) {
	cx := (float64(f.X) + 0.5) * scale
	cy := (float64(f.Y) + 0.5) * scale
	tx := cx + float64(f.DX)*scale
	ty := cy + float64(f.DY)*scale
	col := color.RGBA{R: 255, G: 255, B: 255, A: 230}
	o.drawLine(dst, cx, cy, tx, ty, math.Max(1, scale/4), col)
	o.drawPoint(dst, tx, ty, math.Max(2, scale/2), col)
}

func (o *Overlay) drawPoint(dst *ebiten.Image, x, y, size float64, col color.RGBA) {
	if o.pixel == nil || size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorScale.ScaleWithColor(col)
	dst.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(dst *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	dst.DrawImage(o.pixel, op)
}
