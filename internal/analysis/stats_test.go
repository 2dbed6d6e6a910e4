package analysis

import (
	"testing"

	"dla/internal/core"
	"dla/internal/sims/dla"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoxCountingDimensionKnownShapes(t *testing.T) {
	size := core.Size{W: 64, H: 64}

	var square []core.Point
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			square = append(square, core.Point{X: x, Y: y})
		}
	}
	assert.InDelta(t, 2.0, BoxCountingDimension(square, size), 1e-9)

	var line []core.Point
	for x := 0; x < 64; x++ {
		line = append(line, core.Point{X: x, Y: 10})
	}
	assert.InDelta(t, 1.0, BoxCountingDimension(line, size), 1e-9)

	assert.Zero(t, BoxCountingDimension(line[:1], size))
	assert.Zero(t, BoxCountingDimension(line, core.Size{W: 7, H: 7}), "a single box size cannot be regressed")
}

func TestRadiusOfGyration(t *testing.T) {
	pts := []core.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 2}, {X: 2, Y: 2}}
	assert.InDelta(t, 1.41421356, RadiusOfGyration(pts), 1e-6)
	assert.Zero(t, RadiusOfGyration(pts[:1]))
}

func TestMeasureAggregate(t *testing.T) {
	a, err := dla.New(96, 96, 1500, 5)
	require.NoError(t, err)

	initial := Measure(a)
	require.Equal(t, 1, initial.Stuck)
	require.Equal(t, 1500, initial.Wandering)
	require.Zero(t, initial.MaxRadius)

	for i := 0; i < 1500; i++ {
		a.Step()
	}
	s := Measure(a)
	require.Equal(t, a.Tick(), s.Tick)
	require.Equal(t, a.StuckCount(), s.Stuck)
	require.LessOrEqual(t, s.Stuck-1, a.ParticleCount()-s.Wandering)
	require.Greater(t, s.MaxRadius, 3.0)
	require.LessOrEqual(t, s.MinX, a.Seed().X)
	require.GreaterOrEqual(t, s.MaxX, a.Seed().X)
	require.Greater(t, s.FractalDim, 0.5)
	require.Less(t, s.FractalDim, 2.0)
}

func TestExtentOf(t *testing.T) {
	seed := core.Point{X: 5, Y: 5}
	e := ExtentOf([]core.Point{{X: 5, Y: 5}, {X: 8, Y: 5}, {X: 5, Y: 1}, {X: 3, Y: 6}}, seed)
	assert.Equal(t, core.Point{X: 3, Y: 1}, e.Min)
	assert.Equal(t, core.Point{X: 8, Y: 6}, e.Max)
	assert.InDelta(t, 4.0, e.Radius, 1e-9)

	empty := ExtentOf(nil, seed)
	assert.Equal(t, seed, empty.Min)
	assert.Zero(t, empty.Radius)
}
