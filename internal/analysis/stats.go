// Package analysis measures the shape of a growing aggregate.
package analysis

import (
	"math"

	"dla/internal/core"

	"gonum.org/v1/gonum/stat"
)

// Source is the read-only view of an aggregate the metrics need.
type Source interface {
	Size() core.Size
	Seed() core.Point
	Tick() int
	Wandering() int
	StuckPositions() []core.Point
}

// Stats is one telemetry sample.
type Stats struct {
	Tick      int `csv:"tick" yaml:"tick"`
	Stuck     int `csv:"stuck" yaml:"stuck"`
	Wandering int `csv:"wandering" yaml:"wandering"`

	MinX int `csv:"min_x" yaml:"min_x"`
	MinY int `csv:"min_y" yaml:"min_y"`
	MaxX int `csv:"max_x" yaml:"max_x"`
	MaxY int `csv:"max_y" yaml:"max_y"`

	// MaxRadius is the farthest stuck cell from the seed, in cells.
	MaxRadius      float64 `csv:"max_radius" yaml:"max_radius"`
	RadiusGyration float64 `csv:"radius_gyration" yaml:"radius_gyration"`
	FractalDim     float64 `csv:"fractal_dim" yaml:"fractal_dim"`
}

// Measure samples the aggregate without mutating it.
func Measure(src Source) Stats {
	points := src.StuckPositions()
	s := Stats{
		Tick:      src.Tick(),
		Stuck:     len(points),
		Wandering: src.Wandering(),
	}
	if len(points) == 0 {
		return s
	}

	ext := ExtentOf(points, src.Seed())
	s.MinX, s.MinY = ext.Min.X, ext.Min.Y
	s.MaxX, s.MaxY = ext.Max.X, ext.Max.Y
	s.MaxRadius = ext.Radius
	s.RadiusGyration = RadiusOfGyration(points)
	s.FractalDim = BoxCountingDimension(points, src.Size())
	return s
}

// Extent is the bounding box of an aggregate and its reach from the seed.
type Extent struct {
	Min, Max core.Point
	Radius   float64
}

// ExtentOf computes the bounding box of points and the distance of the
// farthest one from seed. It is cheap enough to call every frame.
func ExtentOf(points []core.Point, seed core.Point) Extent {
	if len(points) == 0 {
		return Extent{Min: seed, Max: seed}
	}
	e := Extent{Min: points[0], Max: points[0]}
	var maxR2 int
	for _, p := range points {
		e.Min.X = min(e.Min.X, p.X)
		e.Min.Y = min(e.Min.Y, p.Y)
		e.Max.X = max(e.Max.X, p.X)
		e.Max.Y = max(e.Max.Y, p.Y)
		dx, dy := p.X-seed.X, p.Y-seed.Y
		maxR2 = max(maxR2, dx*dx+dy*dy)
	}
	e.Radius = math.Sqrt(float64(maxR2))
	return e
}

// RadiusOfGyration returns the root-mean-square distance of the points from
// their centroid.
func RadiusOfGyration(points []core.Point) float64 {
	if len(points) < 2 {
		return 0
	}
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = float64(p.X)
		ys[i] = float64(p.Y)
	}
	cx, cy := stat.Mean(xs, nil), stat.Mean(ys, nil)
	d2 := make([]float64, len(points))
	for i := range points {
		dx, dy := xs[i]-cx, ys[i]-cy
		d2[i] = dx*dx + dy*dy
	}
	return math.Sqrt(stat.Mean(d2, nil))
}

// BoxCountingDimension estimates the fractal dimension of the point set by
// covering the grid with boxes of side 1, 2, 4, ... and regressing log N(s)
// against log(1/s). Box sides stop at a quarter of the shorter grid edge. It
// returns 0 when fewer than two box sizes fit or the set is trivial.
func BoxCountingDimension(points []core.Point, size core.Size) float64 {
	if len(points) < 2 {
		return 0
	}
	limit := min(size.W, size.H) / 4
	var xs, ys []float64
	occupied := map[core.Point]struct{}{}
	for side := 1; side <= limit; side *= 2 {
		clear(occupied)
		for _, p := range points {
			occupied[core.Point{X: p.X / side, Y: p.Y / side}] = struct{}{}
		}
		xs = append(xs, -math.Log(float64(side)))
		ys = append(ys, math.Log(float64(len(occupied))))
	}
	if len(xs) < 2 {
		return 0
	}
	_, beta := stat.LinearRegression(xs, ys, nil, false)
	return beta
}
