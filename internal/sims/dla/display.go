package dla

import (
	"image/color"

	"dla/internal/core"
)

// Display buffer values. Stuck cells use displayStuck plus their age band.
const (
	displayEmpty  = 0
	displayWalker = 1
	displayStuck  = 2
)

var (
	paperColor  = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	inkColor    = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	walkerColor = color.NRGBA{R: 230, G: 120, B: 110, A: 255}
	accentColor = color.NRGBA{R: 40, G: 110, B: 200, A: 255}
)

type paletteCache struct {
	bands int
	rgba  []color.RGBA
}

// Palette maps display values to colours: paper for empty cells, a muted red
// for walkers, and ink blending towards blue across the age bands.
func (a *Aggregate) Palette() []color.RGBA {
	if a.palette.rgba == nil || a.palette.bands != a.cfg.AgeBands {
		a.palette = paletteCache{bands: a.cfg.AgeBands, rgba: buildPalette(a.cfg.AgeBands)}
	}
	return a.palette.rgba
}

func buildPalette(bands int) []color.RGBA {
	palette := make([]color.RGBA, displayStuck+bands)
	palette[displayEmpty] = toRGBA(paperColor)
	palette[displayWalker] = toRGBA(walkerColor)
	for b := 0; b < bands; b++ {
		palette[displayStuck+b] = toRGBA(blendColors(inkColor, accentColor, float64(b)/float64(bands)))
	}
	return palette
}

func toRGBA(c color.NRGBA) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func blendColors(base, overlay color.NRGBA, overlayWeight float64) color.NRGBA {
	if overlayWeight <= 0 {
		return base
	}
	if overlayWeight >= 1 {
		return overlay
	}
	inv := 1 - overlayWeight
	mix := func(b, o uint8) uint8 {
		return uint8(float64(b)*inv + float64(o)*overlayWeight + 0.5)
	}
	return color.NRGBA{
		R: mix(base.R, overlay.R),
		G: mix(base.G, overlay.G),
		B: mix(base.B, overlay.B),
		A: mix(base.A, overlay.A),
	}
}

func (a *Aggregate) bandValue(tick int) uint8 {
	band := (tick / a.cfg.BandTicks) % a.cfg.AgeBands
	return uint8(displayStuck + band)
}

func (a *Aggregate) recordStuck(x, y int) {
	p := core.Point{X: x, Y: y}
	a.stuck = append(a.stuck, p)
	a.stuckTick = append(a.stuckTick, a.tick)
	a.display[p.Index(a.cfg.Width)] = a.bandValue(a.tick)
}

func (a *Aggregate) markWalkers() {
	w := a.cfg.Width
	for i := range a.walkers {
		p := &a.walkers[i]
		if p.Stuck {
			continue
		}
		idx := core.Point{X: p.X, Y: p.Y}.Index(w)
		if a.display[idx] == displayEmpty {
			a.display[idx] = displayWalker
		}
	}
}

func (a *Aggregate) clearWalkers() {
	w := a.cfg.Width
	for i := range a.walkers {
		p := &a.walkers[i]
		if p.Stuck {
			continue
		}
		idx := core.Point{X: p.X, Y: p.Y}.Index(w)
		if a.display[idx] == displayWalker {
			a.display[idx] = displayEmpty
		}
	}
}

// rebuildDisplay repaints the buffer after a display setting changed.
func (a *Aggregate) rebuildDisplay() {
	clear(a.display)
	w := a.cfg.Width
	for i, p := range a.stuck {
		a.display[p.Index(w)] = a.bandValue(a.stuckTick[i])
	}
	if a.cfg.ShowWalkers {
		a.markWalkers()
	}
}
