package lab

import (
	"context"
	"runtime"
	"sort"
	"sync"

	"dla/internal/analysis"
	"dla/internal/sims/dla"
)

// SweepOptions enumerates the seed and particle-count grid to explore.
type SweepOptions struct {
	Base      dla.Config
	Seeds     []int64
	Particles []int
	Ticks     int
	Workers   int
}

// SweepResult is the outcome of one sweep cell.
type SweepResult struct {
	Seed      int64
	Particles int
	Stats     analysis.Stats
	Err       error
}

// Sweep runs every (seed, particles) combination for Ticks ticks on a pool of
// workers. Each aggregate stays single-threaded; only independent runs
// execute in parallel. Results are ordered by descending fractal dimension,
// failed cells last. Cancelling ctx stops unstarted work and returns ctx.Err.
func Sweep(ctx context.Context, opts SweepOptions) ([]SweepResult, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	particles := opts.Particles
	if len(particles) == 0 {
		particles = []int{opts.Base.ParticleCount}
	}
	seeds := opts.Seeds
	if len(seeds) == 0 {
		seeds = []int64{opts.Base.Seed}
	}

	type job struct {
		seed      int64
		particles int
	}
	jobs := make(chan job)
	results := make(chan SweepResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results <- runCell(ctx, opts.Base, j.seed, j.particles, opts.Ticks)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		defer close(jobs)
		for _, n := range particles {
			for _, seed := range seeds {
				select {
				case jobs <- job{seed: seed, particles: n}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	var all []SweepResult
	for r := range results {
		all = append(all, r)
	}
	if err := ctx.Err(); err != nil {
		return all, err
	}

	sort.SliceStable(all, func(i, j int) bool {
		if (all[i].Err == nil) != (all[j].Err == nil) {
			return all[i].Err == nil
		}
		if all[i].Stats.FractalDim != all[j].Stats.FractalDim {
			return all[i].Stats.FractalDim > all[j].Stats.FractalDim
		}
		if all[i].Particles != all[j].Particles {
			return all[i].Particles < all[j].Particles
		}
		return all[i].Seed < all[j].Seed
	})
	return all, nil
}

func runCell(ctx context.Context, base dla.Config, seed int64, particles, ticks int) SweepResult {
	res := SweepResult{Seed: seed, Particles: particles}
	cfg := base
	cfg.Seed = seed
	cfg.ParticleCount = particles
	agg, err := dla.NewWithConfig(cfg)
	if err != nil {
		res.Err = err
		return res
	}
	for agg.Tick() < ticks && agg.Wandering() > 0 {
		if agg.Tick()%256 == 0 && ctx.Err() != nil {
			break
		}
		agg.Step()
	}
	res.Stats = analysis.Measure(agg)
	return res
}
