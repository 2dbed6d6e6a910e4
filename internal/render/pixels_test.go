package render

import (
	"image/color"
	"testing"

	"dla/internal/core"
)

func TestFrameScalesCells(t *testing.T) {
	palette := []color.RGBA{
		{R: 255, G: 255, B: 255, A: 255},
		{R: 10, G: 20, B: 30, A: 255},
	}
	cells := []uint8{
		0, 1,
		1, 7,
	}
	img := Frame(cells, core.Size{W: 2, H: 2}, palette, 3)
	if b := img.Bounds(); b.Dx() != 6 || b.Dy() != 6 {
		t.Fatalf("bounds = %v, want 6x6", b)
	}

	checks := []struct {
		x, y int
		want color.RGBA
	}{
		{0, 0, palette[0]},
		{2, 2, palette[0]},
		{3, 0, palette[1]},
		{5, 2, palette[1]},
		{0, 3, palette[1]},
		{5, 5, palette[1]}, // out-of-range value clamps to the last entry
	}
	for _, c := range checks {
		if got := img.RGBAAt(c.x, c.y); got != c.want {
			t.Fatalf("pixel (%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestFrameEmptyPalette(t *testing.T) {
	img := Frame([]uint8{1, 1}, core.Size{W: 2, H: 1}, nil, 1)
	for _, b := range img.Pix {
		if b != 0 {
			t.Fatal("empty palette should leave pixels transparent")
		}
	}
}
