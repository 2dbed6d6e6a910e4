package telemetry

import (
	"errors"
	"fmt"
	"io"

	"dla/internal/analysis"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrNotEnoughSamples is returned when a chart would have fewer than two points.
var ErrNotEnoughSamples = errors.New("need at least two samples")

// RenderGrowthChart plots stuck cells (left axis) and maximum radius (right
// axis) against ticks as a PNG.
func RenderGrowthChart(w io.Writer, history []analysis.Stats) error {
	if len(history) < 2 {
		return fmt.Errorf("growth chart: %w", ErrNotEnoughSamples)
	}
	ticks := make([]float64, len(history))
	stuck := make([]float64, len(history))
	radius := make([]float64, len(history))
	for i, s := range history {
		ticks[i] = float64(s.Tick)
		stuck[i] = float64(s.Stuck)
		radius[i] = s.MaxRadius
	}

	graph := chart.Chart{
		Width:  800,
		Height: 400,
		XAxis: chart.XAxis{
			Name:  "tick",
			Style: chart.Style{FontSize: 10.0},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		YAxis: chart.YAxis{
			Name:  "stuck cells",
			Style: chart.Style{FontSize: 10.0},
		},
		YAxisSecondary: chart.YAxis{
			Name:  "max radius",
			Style: chart.Style{FontSize: 10.0},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Stuck cells",
				XValues: ticks,
				YValues: stuck,
				Style:   chart.Style{StrokeColor: drawing.Color{R: 20, G: 20, B: 20, A: 255}, StrokeWidth: 2.0},
			},
			chart.ContinuousSeries{
				Name:    "Max radius",
				YAxis:   chart.YAxisSecondary,
				XValues: ticks,
				YValues: radius,
				Style:   chart.Style{StrokeColor: drawing.Color{R: 40, G: 110, B: 200, A: 255}, StrokeWidth: 2.0},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("rendering growth chart: %w", err)
	}
	return nil
}
