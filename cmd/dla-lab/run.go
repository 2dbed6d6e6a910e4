package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"dla/internal/lab"
)

func newRunCmd() *cobra.Command {
	defaults := lab.DefaultRunOptions()
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Grow one aggregate and record its telemetry",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			opts := defaults
			opts.Config = cfg
			opts.Ticks, _ = cmd.Flags().GetInt("ticks")
			opts.TargetStuck, _ = cmd.Flags().GetInt("target")
			opts.SampleEvery, _ = cmd.Flags().GetInt("every")
			opts.OutputDir, _ = cmd.Flags().GetString("out")
			opts.Snapshot, _ = cmd.Flags().GetBool("snapshot")
			opts.Chart, _ = cmd.Flags().GetBool("chart")
			opts.VideoEvery, _ = cmd.Flags().GetInt("video-every")
			opts.VideoScale, _ = cmd.Flags().GetInt("video-scale")
			opts.VideoFPS, _ = cmd.Flags().GetInt("video-fps")
			opts.Progress, _ = cmd.Flags().GetDuration("progress")

			if opts.OutputDir == "" && (opts.Snapshot || opts.Chart || opts.VideoEvery > 0) {
				return fmt.Errorf("--snapshot, --chart and --video-every require --out")
			}

			res, err := lab.Run(cmd.Context(), opts, newLogger(cmd))
			if err != nil {
				return err
			}
			s := res.Final
			fmt.Printf("stopped (%s) at tick %d: stuck=%d wandering=%d radius=%.1f rg=%.2f dim=%.3f\n",
				res.Reason, s.Tick, s.Stuck, s.Wandering, s.MaxRadius, s.RadiusGyration, s.FractalDim)
			return nil
		},
	}

	cmd.Flags().Int("ticks", defaults.Ticks, "Stop after this many ticks (0 = no limit)")
	cmd.Flags().Int("target", 0, "Stop once this many cells are stuck (0 = disabled)")
	cmd.Flags().Int("every", defaults.SampleEvery, "Telemetry sample interval in ticks")
	cmd.Flags().String("out", "", "Output directory for config, stats.csv and artefacts")
	cmd.Flags().Bool("snapshot", false, "Write a PNG of the final aggregate")
	cmd.Flags().Bool("chart", false, "Write a growth chart PNG")
	cmd.Flags().Int("video-every", 0, "Capture an MJPEG frame every N ticks (0 = off)")
	cmd.Flags().Int("video-scale", defaults.VideoScale, "Pixel scale of video frames")
	cmd.Flags().Int("video-fps", defaults.VideoFPS, "Playback frame rate of the video")
	cmd.Flags().Duration("progress", defaults.Progress, "Progress log interval")

	return cmd
}
