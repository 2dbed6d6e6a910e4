package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"dla/internal/lab"
)

func newSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Compare seeds and particle counts across a worker pool",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			seeds, _ := cmd.Flags().GetInt64Slice("seeds")
			particles, _ := cmd.Flags().GetIntSlice("particles")
			ticks, _ := cmd.Flags().GetInt("ticks")
			workers, _ := cmd.Flags().GetInt("workers")
			top, _ := cmd.Flags().GetInt("top")
			log := newLogger(cmd)

			log.Info("sweep starting",
				"runs", len(seeds)*max(len(particles), 1),
				"workers", workers,
				"ticks", ticks,
			)
			start := time.Now()
			results, err := lab.Sweep(cmd.Context(), lab.SweepOptions{
				Base:      cfg,
				Seeds:     seeds,
				Particles: particles,
				Ticks:     ticks,
				Workers:   workers,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Top %d results (elapsed %s):\n", min(top, len(results)), time.Since(start).Round(time.Millisecond))
			for i, r := range results {
				if i >= top {
					break
				}
				if r.Err != nil {
					fmt.Printf("%2d) seed=%d particles=%d error: %v\n", i+1, r.Seed, r.Particles, r.Err)
					continue
				}
				s := r.Stats
				fmt.Printf("%2d) dim=%.3f seed=%d particles=%d stuck=%d wandering=%d radius=%.1f rg=%.2f\n",
					i+1, s.FractalDim, r.Seed, r.Particles, s.Stuck, s.Wandering, s.MaxRadius, s.RadiusGyration)
			}
			return nil
		},
	}

	cmd.Flags().Int64Slice("seeds", []int64{1, 2, 3, 4}, "Seeds to run")
	cmd.Flags().IntSlice("particles", nil, "Particle counts to run (default: configured count)")
	cmd.Flags().Int("ticks", 2000, "Ticks per run")
	cmd.Flags().Int("workers", runtime.NumCPU(), "Concurrent runs")
	cmd.Flags().Int("top", 10, "Number of results to print")

	return cmd
}
