// Package dla implements diffusion-limited aggregation: walkers drift over a
// grid until they touch stuck matter, then freeze and become part of it.
package dla

import (
	"dla/internal/core"
)

// Aggregate owns the occupancy field and the walker population.
type Aggregate struct {
	cfg Config

	field   *Field
	walkers []Walker

	// stuck lists occupied cells in the order they were filled, seed first.
	stuck     []core.Point
	stuckTick []int

	display []uint8
	palette paletteCache

	rng  Rand
	tick int
}

// New returns an aggregate with the given dimensions and population using the
// remaining defaults.
func New(w, h, particles int, seed int64) (*Aggregate, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.ParticleCount = particles
	cfg.Seed = seed
	return NewWithConfig(cfg)
}

// NewWithConfig validates cfg, plants the seed, and places every walker.
func NewWithConfig(cfg Config) (*Aggregate, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	a := &Aggregate{cfg: cfg}
	a.Reset(0)
	return a, nil
}

// Name returns the simulation identifier.
func (a *Aggregate) Name() string { return "dla" }

// Size reports the grid dimensions.
func (a *Aggregate) Size() core.Size { return core.Size{W: a.cfg.Width, H: a.cfg.Height} }

// Cells exposes the display buffer. See Palette for the encoding.
func (a *Aggregate) Cells() []uint8 { return a.display }

// Config returns the active configuration.
func (a *Aggregate) Config() Config { return a.cfg }

// Field exposes the occupancy field. Callers must treat it as read-only.
func (a *Aggregate) Field() *Field { return a.field }

// Tick returns the number of Step calls since the last Reset.
func (a *Aggregate) Tick() int { return a.tick }

// ParticleCount returns the fixed number of walkers.
func (a *Aggregate) ParticleCount() int { return len(a.walkers) }

// StuckCount returns the number of occupied cells, seed included.
func (a *Aggregate) StuckCount() int { return len(a.stuck) }

// Wandering returns how many walkers have not frozen yet.
func (a *Aggregate) Wandering() int {
	n := 0
	for i := range a.walkers {
		if !a.walkers[i].Stuck {
			n++
		}
	}
	return n
}

// Walkers returns a copy of the walker states in construction order.
func (a *Aggregate) Walkers() []Walker {
	return append([]Walker(nil), a.walkers...)
}

// Occupied reports whether (x, y) holds stuck matter. Coordinates outside the
// grid report false.
func (a *Aggregate) Occupied(x, y int) bool {
	if !a.field.Contains(x, y) {
		return false
	}
	return a.field.Occupied(x, y)
}

// StuckPositions returns a snapshot of the occupied cells in fill order.
func (a *Aggregate) StuckPositions() []core.Point {
	return append([]core.Point(nil), a.stuck...)
}

// Seed returns the initial stuck cell.
func (a *Aggregate) Seed() core.Point { return a.cfg.SeedPoint() }

// Reset rebuilds the field and walkers. A zero seed reuses the configured one;
// any other seed becomes the configured seed.
func (a *Aggregate) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = a.cfg.Seed
	}
	a.cfg.Seed = effective
	w, h := a.cfg.Width, a.cfg.Height
	a.rng = core.NewRNG(effective)
	a.field = NewField(w, h)
	a.stuck = a.stuck[:0]
	a.stuckTick = a.stuckTick[:0]
	a.tick = 0
	if len(a.display) != w*h {
		a.display = make([]uint8, w*h)
	} else {
		clear(a.display)
	}

	s := a.cfg.SeedPoint()
	a.field.Seed(s.X, s.Y)
	a.recordStuck(s.X, s.Y)

	if cap(a.walkers) >= a.cfg.ParticleCount {
		a.walkers = a.walkers[:a.cfg.ParticleCount]
	} else {
		a.walkers = make([]Walker, a.cfg.ParticleCount)
	}
	for i := range a.walkers {
		a.walkers[i] = Walker{}
		a.walkers[i].Reset(a.field, a.rng)
	}
	if a.cfg.ShowWalkers {
		a.markWalkers()
	}
}

// Step advances every walker once in construction order. The field is
// updated in place, so a walker can stick to one that froze earlier in the
// same tick.
func (a *Aggregate) Step() {
	if a.cfg.ShowWalkers {
		a.clearWalkers()
	}
	a.tick++
	for i := range a.walkers {
		p := &a.walkers[i]
		before := a.field.Count()
		// A walker that drifted onto stuck matter freezes without filling a new cell.
		if p.Step(a.field, a.rng) && a.field.Count() > before {
			a.recordStuck(p.X, p.Y)
		}
	}
	if a.cfg.ShowWalkers {
		a.markWalkers()
	}
}

func init() {
	core.Register("dla", func(cfg map[string]string) (core.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		a, err := NewWithConfig(c)
		if err != nil {
			return nil, err
		}
		return a, nil
	})
}
