//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"dla/internal/app"
	"dla/internal/core"
	"dla/internal/logging"
	_ "dla/internal/sims/dla"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	log := logging.NewLogger(cfg.LogLevel, false, os.Stderr)
	slog.SetDefault(log)

	sim, err := core.New(cfg.Sim, cfg.SimOptions())
	if err != nil {
		log.Error("failed to build simulation", "sim", cfg.Sim, "error", err, "available", core.Names())
		os.Exit(1)
	}
	if cfg.Seed != 0 {
		sim.Reset(cfg.Seed)
	}

	game := app.New(sim, cfg.Scale, cfg.HUDWidth, cfg.Seed, log)
	size := sim.Size()

	ebiten.SetWindowTitle("dla - " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	log.Info("starting", "sim", sim.Name(), "w", size.W, "h", size.H, "tps", cfg.TPS)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("game loop failed", "error", err)
		os.Exit(1)
	}
}
