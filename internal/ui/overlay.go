//go:build ebiten

package ui

import (
	"image/color"

	"dla/internal/analysis"
	"dla/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type extentProvider interface {
	Seed() core.Point
	StuckPositions() []core.Point
}

// Overlay draws the aggregate's bounding box and reach circle on top of the
// grid. Toggle with O.
type Overlay struct {
	src   extentProvider
	scale int
	show  bool
	ext   analysis.Extent
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{scale: max(scale, 1)}
	if src, ok := sim.(extentProvider); ok {
		o.src = src
	}
	return o
}

// Update handles the toggle key and refreshes the extent while visible.
func (o *Overlay) Update() {
	if o == nil || o.src == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		o.show = !o.show
	}
	if o.show {
		o.ext = analysis.ExtentOf(o.src.StuckPositions(), o.src.Seed())
	}
}

// Draw paints the overlay if enabled.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o == nil || o.src == nil || !o.show {
		return
	}
	s := float32(o.scale)
	box := color.RGBA{R: 40, G: 170, B: 90, A: 255}
	reach := color.RGBA{R: 200, G: 60, B: 60, A: 255}

	x := float32(o.ext.Min.X) * s
	y := float32(o.ext.Min.Y) * s
	w := float32(o.ext.Max.X-o.ext.Min.X+1) * s
	h := float32(o.ext.Max.Y-o.ext.Min.Y+1) * s
	vector.StrokeRect(screen, x, y, w, h, 1, box, false)

	seed := o.src.Seed()
	cx := (float32(seed.X) + 0.5) * s
	cy := (float32(seed.Y) + 0.5) * s
	vector.StrokeCircle(screen, cx, cy, float32(o.ext.Radius)*s, 1, reach, true)
}
