// Command dla-lab runs diffusion-limited aggregation headlessly: recorded
// single runs, parameter sweeps, and configuration dumps.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"dla/internal/logging"
	"dla/internal/sims/dla"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dla-lab",
		Short: "Headless diffusion-limited aggregation runs",
		Long: `dla-lab grows DLA clusters without a window.

It writes telemetry CSV, PNG snapshots, growth charts and MJPEG video for
single runs, and compares seeds and particle counts across a worker pool.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", "", "YAML config merged over the built-in defaults")
	rootCmd.PersistentFlags().StringArray("set", nil, "Override a config key (key=value, repeatable)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().Bool("log-json", false, "Emit logs as JSON lines")

	rootCmd.AddCommand(
		newRunCmd(),
		newSweepCmd(),
		newConfigCmd(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	level, _ := cmd.Flags().GetString("log-level")
	jsonOut, _ := cmd.Flags().GetBool("log-json")
	return logging.NewLogger(level, jsonOut, os.Stderr)
}

// loadConfig resolves --config and then applies every --set override.
func loadConfig(cmd *cobra.Command) (dla.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	sets, _ := cmd.Flags().GetStringArray("set")

	cfg, err := dla.LoadConfig(path)
	if err != nil {
		return cfg, err
	}
	overrides, err := parseSets(sets)
	if err != nil {
		return cfg, err
	}
	cfg = dla.ApplyMap(cfg, overrides)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func parseSets(sets []string) (map[string]string, error) {
	out := make(map[string]string, len(sets))
	for _, kv := range sets {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --set %q: expected key=value", kv)
		}
		out[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return out, nil
}
