package dla

// Rand is the randomness a walker consumes. *math/rand/v2.Rand and
// *core.RNG both satisfy it.
type Rand interface {
	IntN(n int) int
}

// Walker is a single random-walking particle. It wanders until one of its
// eight neighbours is occupied, then freezes in place for good.
type Walker struct {
	X, Y  int
	Stuck bool
}

// Reset moves the walker to a uniformly chosen empty cell by rejection
// sampling. It panics on a full field, where no empty cell exists.
func (p *Walker) Reset(f *Field, rng Rand) {
	if f.Full() {
		panic("dla: walker reset on a full field")
	}
	for {
		x := rng.IntN(f.w)
		y := rng.IntN(f.h)
		if !f.Occupied(x, y) {
			p.X, p.Y = x, y
			return
		}
	}
}

// Step moves the walker by one cell in each axis drawn from {-1, 0, 1}.
// Leaving the grid respawns the walker at a random empty cell instead of
// clamping. It reports whether the walker froze during this step.
func (p *Walker) Step(f *Field, rng Rand) bool {
	if p.Stuck {
		return false
	}
	dx := rng.IntN(3) - 1
	dy := rng.IntN(3) - 1
	x, y := p.X+dx, p.Y+dy
	if !f.Contains(x, y) {
		p.Reset(f, rng)
		return false
	}
	p.X, p.Y = x, y
	if p.Alone(f) {
		return false
	}
	f.SetOccupied(p.X, p.Y)
	p.Stuck = true
	return true
}

// Alone reports whether none of the eight neighbouring cells is occupied.
//
// The neighbourhood test only runs when the walker and every neighbour
// coordinate lie strictly inside (0, width) and (0, height). Walkers in the
// outer band (x <= 1, x >= width-1, and likewise for y) are always alone, so
// the aggregate never grows into it.
func (p *Walker) Alone(f *Field) bool {
	cx, cy := p.X, p.Y
	lx, rx := cx-1, cx+1
	ty, by := cy-1, cy+1

	if cx <= 0 || cx >= f.w ||
		lx <= 0 || lx >= f.w ||
		rx <= 0 || rx >= f.w ||
		cy <= 0 || cy >= f.h ||
		ty <= 0 || ty >= f.h ||
		by <= 0 || by >= f.h {
		return true
	}

	w := f.w
	c := f.cells
	// N, W, E, S
	if c[ty*w+cx] || c[cy*w+lx] || c[cy*w+rx] || c[by*w+cx] {
		return false
	}
	// NW, NE, SW, SE
	if c[ty*w+lx] || c[ty*w+rx] || c[by*w+lx] || c[by*w+rx] {
		return false
	}
	return true
}
