package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"evolution-sim/internal/config"
	"evolution-sim/internal/simulation"
	"evolution-sim/internal/visualization"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the configuration file")
	verbose := flag.Bool("verbose", false, "log consumption events")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
	})
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("invalid configuration", "err", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("starting", "config", *configPath, "seed", seed)

	world, err := simulation.NewWorld(cfg, rand.New(rand.NewSource(seed)), logger)
	if err != nil {
		logger.Fatal("failed to create world", "err", err)
	}

	ebiten.SetWindowTitle("Evolution!")
	ebiten.SetWindowSize(int(cfg.WindowSize[0]), int(cfg.WindowSize[1]))
	ebiten.SetFullscreen(cfg.Fullscreen)
	ebiten.SetTPS(cfg.DesiredFPS)

	if err := ebiten.RunGame(visualization.NewRenderer(world, cfg.ShowFPS)); err != nil {
		logger.Fatal("renderer stopped", "err", err)
	}
}
