package render

import (
	"image/color"
	"slices"
	"testing"
)

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{{R: 1, G: 2, B: 3, A: 255}, {R: 9, G: 8, B: 7, A: 128}}
	buf := make([]byte, 12)
	fillPaletteRGBA(buf, []uint8{1, 0, 5}, palette)

	want := []byte{9, 8, 7, 128, 1, 2, 3, 255, 9, 8, 7, 128}
	if !slices.Equal(buf, want) {
		t.Fatalf("expected %v, got %v", want, buf)
	}
}

func TestFillPaletteRGBAEmptyPalette(t *testing.T) {
	buf := []byte{1, 1, 1, 1, 1, 1, 1, 1}
	fillPaletteRGBA(buf, []uint8{3, 4}, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d not cleared", i)
		}
	}
}
