//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"snaken/internal/core"
	"snaken/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

type statusProvider interface {
	Status() []string
}

type viewProvider interface {
	View() ([]uint8, int)
	Palette() []color.RGBA
}

var (
	panelBG    = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleFG    = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	statusFG   = color.RGBA{R: 170, G: 200, B: 170, A: 255}
	deadFG     = color.RGBA{R: 230, G: 110, B: 100, A: 255}
	labelFG    = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	mutedFG    = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	buttonBG   = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	disabledBG = color.RGBA{R: 32, G: 34, B: 40, A: 255}
)

// HUD renders the run status, parameter rows and the snake's oriented view in
// a panel to the right of the world. Each row carries a pair of -/+ buttons;
// bool rows treat - as off and + as on.
type HUD struct {
	sim    core.Sim
	width  int
	panel  *ebiten.Image
	title  string
	status []string
	rows   []hudRow
	offset int

	view *render.GridPainter
}

type hudRow struct {
	control core.ParameterControl
	value   int
	known   bool
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	h := &HUD{sim: sim, width: max(width, 0), title: "Controls"}
	if name := sim.Name(); name != "" {
		h.title = strings.ToUpper(name[:1]) + name[1:]
	}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			h.rows = append(h.rows, hudRow{control: ctrl})
		}
	}
	return h
}

// Update refreshes the row values and status lines and handles clicks.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.offset = panelOffsetX
	if provider, ok := h.sim.(statusProvider); ok {
		h.status = provider.Status()
	}
	var snap core.ParameterSnapshot
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		snap = provider.Parameters()
	}
	for i := range h.rows {
		h.rows[i].value, h.rows[i].known = rowValue(snap, h.rows[i].control)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		h.click(ebiten.CursorPosition())
	}
}

func rowValue(snap core.ParameterSnapshot, ctrl core.ParameterControl) (int, bool) {
	param, ok := snap.Lookup(ctrl.Key)
	if !ok {
		return 0, false
	}
	if ctrl.Type == core.ParamTypeBool {
		b, err := strconv.ParseBool(param.Value)
		if err != nil {
			return 0, false
		}
		if b {
			return 1, true
		}
		return 0, true
	}
	v, err := strconv.Atoi(param.Value)
	return v, err == nil
}

func (h *HUD) click(mx, my int) {
	x := mx - h.offset
	row := (my - controlsTop) / lineHeight
	if x < 0 || my < controlsTop || row >= len(h.rows) {
		return
	}
	for _, dir := range []int{-1, 1} {
		if image.Pt(x, my).In(h.button(row, dir)) {
			h.adjust(&h.rows[row], dir)
			return
		}
	}
}

// target returns the value one step away in dir and whether it is a change
// the simulation could accept.
func (h *HUD) target(r *hudRow, dir int) (int, bool) {
	if !r.known {
		return 0, false
	}
	if r.control.Type == core.ParamTypeBool {
		_, ok := h.sim.(core.BoolParameterSetter)
		want := 0
		if dir > 0 {
			want = 1
		}
		return want, ok && want != r.value
	}
	_, ok := h.sim.(core.IntParameterSetter)
	step := max(r.control.Step, 1)
	next := r.control.Clamp(r.value + dir*step)
	return next, ok && next != r.value
}

func (h *HUD) adjust(r *hudRow, dir int) {
	next, ok := h.target(r, dir)
	if !ok {
		return
	}
	var applied bool
	if r.control.Type == core.ParamTypeBool {
		applied = h.sim.(core.BoolParameterSetter).SetBoolParameter(r.control.Key, next == 1)
	} else {
		applied = h.sim.(core.IntParameterSetter).SetIntParameter(r.control.Key, next)
	}
	if applied {
		r.value = next
	}
}

// button returns the -/+ hit box for row in panel coordinates.
func (h *HUD) button(row, dir int) image.Rectangle {
	y := controlsTop + row*lineHeight + (lineHeight-buttonSize)/2
	right := h.width - panelPadding
	if dir < 0 {
		right -= buttonSize + buttonGap
	}
	return image.Rect(right-buttonSize, y, right, y+buttonSize)
}

// Draw paints the HUD panel anchored to the right edge of the world view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := max(h.sim.Size().H*max(scale, 1), minPanelHeight)
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelBG)

	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, panelPadding, panelPadding+headerBaseline, titleFG)
	for i, line := range h.status[:min(len(h.status), statusLines)] {
		fg := statusFG
		if i == 0 && strings.HasPrefix(line, "dead") {
			fg = deadFG
		}
		text.Draw(h.panel, line, face, panelPadding, statusTop+i*statusSpacing, fg)
	}
	for i := range h.rows {
		h.drawRow(i)
	}
	h.drawView()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawRow(i int) {
	r := &h.rows[i]
	face := basicfont.Face7x13
	y := controlsTop + i*lineHeight + labelBaseline
	text.Draw(h.panel, r.control.Label, face, panelPadding, y, labelFG)

	value, fg := "--", mutedFG
	if r.known {
		value, fg = strconv.Itoa(r.value), labelFG
		if r.control.Type == core.ParamTypeBool {
			value = onOff(r.value == 1)
		}
	}
	minus := h.button(i, -1)
	text.Draw(h.panel, value, face, minus.Min.X-buttonGap-text.BoundString(face, value).Dx(), y, fg)

	for _, dir := range []int{-1, 1} {
		rect := h.button(i, dir)
		bg, label := buttonBG, "+"
		if _, ok := h.target(r, dir); !ok {
			bg = disabledBG
		}
		if dir < 0 {
			label = "-"
		}
		vector.DrawFilledRect(h.panel, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), bg, false)
		text.Draw(h.panel, label, face, rect.Min.X+8, rect.Max.Y-6, labelFG)
	}
}

// drawView paints the oriented view with the facing pointing up.
func (h *HUD) drawView() {
	provider, ok := h.sim.(viewProvider)
	if !ok {
		return
	}
	cells, d := provider.View()
	if d <= 0 {
		return
	}
	if h.view == nil {
		h.view = render.NewGridPainter(d, d)
	}
	h.view.Resize(d, d)

	top := controlsTop + len(h.rows)*lineHeight + viewGap
	text.Draw(h.panel, fmt.Sprintf("View %dx%d (facing up)", d, d), basicfont.Face7x13, panelPadding, top, titleFG)
	cell := max(1, min((h.width-2*panelPadding)/d, maxViewCell))
	h.view.Blit(h.panel, cells, provider.Palette(), cell, panelPadding, float64(top+viewLabelGap))
}

// MinPanelHeight returns the height a panel of the given width needs to show
// every row and the largest view.
func MinPanelHeight(width int) int {
	if width <= 0 {
		return 0
	}
	return minPanelHeight
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

const (
	panelPadding   = 12
	lineHeight     = 32
	buttonSize     = 22
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 20
	statusLines    = 6
	statusSpacing  = 16
	statusTop      = panelPadding + headerBaseline + 20
	controlsTop    = statusTop + statusLines*statusSpacing
	viewGap        = 20
	viewLabelGap   = 8
	maxViewCell    = 24
	minPanelHeight = controlsTop + 5*lineHeight + viewGap + viewLabelGap + 11*maxViewCell
)
