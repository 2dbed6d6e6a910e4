package core

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// Index returns the row-major slice index of p in a grid of width w.
func (p Point) Index(w int) int { return p.Y*w + p.X }
