// Package lab drives aggregates headlessly: single recorded runs and
// parameter sweeps across a worker pool.
package lab

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dla/internal/analysis"
	"dla/internal/core"
	"dla/internal/render"
	"dla/internal/sims/dla"
	"dla/internal/telemetry"
)

// RunOptions configures a single headless run.
type RunOptions struct {
	Config dla.Config

	// Ticks bounds the run; zero means no tick limit.
	Ticks int
	// TargetStuck stops the run once this many cells are occupied; zero
	// disables the target.
	TargetStuck int
	// SampleEvery controls how often a telemetry sample is taken.
	SampleEvery int

	OutputDir  string
	Snapshot   bool
	Chart      bool
	VideoEvery int
	VideoScale int
	VideoFPS   int

	Progress time.Duration
}

// DefaultRunOptions returns options for a 5000 tick run sampled every 100.
func DefaultRunOptions() RunOptions {
	return RunOptions{
		Config:      dla.DefaultConfig(),
		Ticks:       5000,
		SampleEvery: 100,
		VideoScale:  1,
		VideoFPS:    30,
		Progress:    2 * time.Second,
	}
}

// StopReason explains why a run ended.
type StopReason string

const (
	StopTicks     StopReason = "ticks"
	StopTarget    StopReason = "target"
	StopExhausted StopReason = "exhausted"
	StopCancelled StopReason = "cancelled"
)

// RunResult summarises a finished run.
type RunResult struct {
	Final   analysis.Stats
	Reason  StopReason
	Samples int
	Frames  int
}

// Run advances an aggregate until a limit is reached or ctx is cancelled,
// writing artefacts to OutputDir when set. Cancellation is checked between
// ticks and is not an error.
func Run(ctx context.Context, opts RunOptions, log *slog.Logger) (res RunResult, err error) {
	if opts.SampleEvery <= 0 {
		opts.SampleEvery = 100
	}
	if opts.VideoScale <= 0 {
		opts.VideoScale = 1
	}

	agg, err := dla.NewWithConfig(opts.Config)
	if err != nil {
		return res, err
	}

	out, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return res, err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing stats: %w", cerr)
		}
	}()

	if out != nil {
		data, err := agg.Config().YAML()
		if err != nil {
			return res, fmt.Errorf("encoding config: %w", err)
		}
		if err := out.WriteConfig(data); err != nil {
			return res, err
		}
	}

	var rec *telemetry.Recorder
	if out != nil && opts.VideoEvery > 0 {
		size := agg.Size()
		rec, err = telemetry.NewRecorder(out.Path("growth.avi"), size.W*opts.VideoScale, size.H*opts.VideoScale, opts.VideoFPS)
		if err != nil {
			return res, err
		}
		defer func() {
			if cerr := rec.Close(); cerr != nil {
				log.Warn("closing video", "error", cerr)
			}
		}()
	}

	sample := func() error {
		s := analysis.Measure(agg)
		res.Final = s
		res.Samples++
		log.Debug("sample", "tick", s.Tick, "stuck", s.Stuck, "radius", s.MaxRadius, "dimension", s.FractalDim)
		return out.WriteStats(s)
	}
	frame := func() error {
		if rec == nil {
			return nil
		}
		return rec.AddFrame(render.Frame(agg.Cells(), agg.Size(), agg.Palette(), opts.VideoScale))
	}

	log.Info("run starting",
		"w", opts.Config.Width,
		"h", opts.Config.Height,
		"particles", opts.Config.ParticleCount,
		"seed", opts.Config.Seed,
		"ticks", opts.Ticks,
		"target_stuck", opts.TargetStuck,
	)
	if err := sample(); err != nil {
		return res, err
	}
	if err := frame(); err != nil {
		return res, err
	}

	progress := core.NewInterval(opts.Progress)
	for {
		if err := ctx.Err(); err != nil {
			res.Reason = StopCancelled
			break
		}
		if opts.Ticks > 0 && agg.Tick() >= opts.Ticks {
			res.Reason = StopTicks
			break
		}
		if opts.TargetStuck > 0 && agg.StuckCount() >= opts.TargetStuck {
			res.Reason = StopTarget
			break
		}
		if agg.Wandering() == 0 {
			res.Reason = StopExhausted
			break
		}

		agg.Step()
		tick := agg.Tick()
		if tick%opts.SampleEvery == 0 {
			if err := sample(); err != nil {
				return res, err
			}
		}
		if opts.VideoEvery > 0 && tick%opts.VideoEvery == 0 {
			if err := frame(); err != nil {
				return res, err
			}
		}
		if progress.Due() {
			log.Info("progress", "tick", tick, "stuck", agg.StuckCount(), "wandering", agg.Wandering())
		}
	}

	if res.Final.Tick != agg.Tick() {
		if err := sample(); err != nil {
			return res, err
		}
	}
	if rec != nil {
		res.Frames = rec.Frames()
	}
	if out != nil {
		if opts.Snapshot {
			img := render.Frame(agg.Cells(), agg.Size(), agg.Palette(), 1)
			if err := out.WriteSnapshot("aggregate.png", img); err != nil {
				return res, err
			}
		}
		if opts.Chart && len(out.History()) >= 2 {
			if err := out.WriteGrowthChart(); err != nil {
				return res, err
			}
		}
	}

	log.Info("run finished",
		"reason", res.Reason,
		"tick", res.Final.Tick,
		"stuck", res.Final.Stuck,
		"max_radius", res.Final.MaxRadius,
		"fractal_dim", res.Final.FractalDim,
		"output", out.Dir(),
	)
	return res, nil
}
