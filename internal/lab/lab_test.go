package lab

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"dla/internal/logging"
	"dla/internal/sims/dla"
)

func smallConfig(w, h, particles int, seed int64) dla.Config {
	cfg := dla.DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.ParticleCount = particles
	cfg.Seed = seed
	return cfg
}

func TestRunWritesArtifacts(t *testing.T) {
	dir := t.TempDir()
	opts := DefaultRunOptions()
	opts.Config = smallConfig(32, 32, 200, 3)
	opts.Ticks = 300
	opts.SampleEvery = 10
	opts.OutputDir = dir
	opts.Snapshot = true
	opts.Chart = true
	opts.VideoEvery = 50

	res, err := Run(context.Background(), opts, logging.NewLogger("error", false, io.Discard))
	require.NoError(t, err)
	require.Greater(t, res.Samples, 1)
	require.Greater(t, res.Frames, 0)
	require.GreaterOrEqual(t, res.Final.Stuck, 1)

	for _, name := range []string{"config.yaml", "stats.csv", "aggregate.png", "growth.png", "growth.avi"} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		require.Greater(t, info.Size(), int64(0), name)
	}
}

func TestRunClosesStatsFile(t *testing.T) {
	dir := t.TempDir()
	opts := DefaultRunOptions()
	opts.Config = smallConfig(32, 32, 150, 4)
	opts.Ticks = 120
	opts.SampleEvery = 20
	opts.OutputDir = dir

	res, err := Run(context.Background(), opts, logging.NewLogger("error", false, io.Discard))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "stats.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, res.Samples+1)
	require.True(t, strings.HasPrefix(lines[0], "tick,"))
}

func TestRunStopsAtTarget(t *testing.T) {
	opts := DefaultRunOptions()
	opts.Config = smallConfig(64, 64, 2000, 9)
	opts.Ticks = 0
	opts.TargetStuck = 20

	res, err := Run(context.Background(), opts, logging.NewLogger("error", false, io.Discard))
	require.NoError(t, err)
	require.Equal(t, StopTarget, res.Reason)
	require.GreaterOrEqual(t, res.Final.Stuck, 20)
}

func TestRunHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	opts := DefaultRunOptions()
	opts.Config = smallConfig(32, 32, 100, 1)
	res, err := Run(ctx, opts, logging.NewLogger("error", false, io.Discard))
	require.NoError(t, err)
	require.Equal(t, StopCancelled, res.Reason)
	require.Equal(t, 0, res.Final.Tick)
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	opts := DefaultRunOptions()
	opts.Config = smallConfig(2, 2, 3, 1)
	_, err := Run(context.Background(), opts, logging.NewLogger("error", false, io.Discard))
	require.ErrorIs(t, err, dla.ErrInvalidConfig)
}

func TestSweepCoversGridAndSorts(t *testing.T) {
	results, err := Sweep(context.Background(), SweepOptions{
		Base:      smallConfig(48, 48, 100, 0),
		Seeds:     []int64{1, 2},
		Particles: []int{300, 600, 48 * 48},
		Ticks:     100,
		Workers:   2,
	})
	require.NoError(t, err)
	require.Len(t, results, 6)

	// The full-grid particle count is rejected and sorts last.
	require.Error(t, results[4].Err)
	require.Error(t, results[5].Err)
	for i := 0; i < 4; i++ {
		require.NoError(t, results[i].Err)
		require.Equal(t, 100, results[i].Stats.Tick)
		if i > 0 {
			require.GreaterOrEqual(t, results[i-1].Stats.FractalDim, results[i].Stats.FractalDim)
		}
	}
}

func TestSweepMatchesDirectRun(t *testing.T) {
	base := smallConfig(40, 40, 250, 0)
	results, err := Sweep(context.Background(), SweepOptions{
		Base:      base,
		Seeds:     []int64{77},
		Particles: []int{250},
		Ticks:     60,
		Workers:   1,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)

	agg, err := dla.New(40, 40, 250, 77)
	require.NoError(t, err)
	for i := 0; i < 60; i++ {
		agg.Step()
	}
	require.Equal(t, agg.StuckCount(), results[0].Stats.Stuck)
	require.Equal(t, agg.Wandering(), results[0].Stats.Wandering)
}
