package snake

import (
	"image/color"

	"snaken/pkg/snaken"
)

var snakePalette = buildPalette()

// Palette exposes the colors used for rendering display values from Cells.
func (s *Sim) Palette() []color.RGBA {
	if !s.world.Alive() {
		return deadPalette
	}
	return snakePalette
}

var deadPalette = dim(snakePalette, 0.45)

func buildPalette() []color.RGBA {
	palette := make([]color.RGBA, int(snaken.CellHead)+1)
	palette[snaken.CellEmpty] = color.RGBA{R: 18, G: 20, B: 24, A: 255}
	palette[snaken.CellWall] = color.RGBA{R: 130, G: 130, B: 140, A: 255}
	palette[snaken.CellApple] = color.RGBA{R: 220, G: 50, B: 50, A: 255}
	palette[snaken.CellBody] = color.RGBA{R: 60, G: 170, B: 80, A: 255}
	palette[snaken.CellHead] = color.RGBA{R: 170, G: 240, B: 120, A: 255}
	return palette
}

func dim(palette []color.RGBA, factor float64) []color.RGBA {
	out := make([]color.RGBA, len(palette))
	for i, c := range palette {
		out[i] = color.RGBA{
			R: uint8(float64(c.R) * factor),
			G: uint8(float64(c.G) * factor),
			B: uint8(float64(c.B) * factor),
			A: c.A,
		}
	}
	return out
}
