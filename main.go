package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"cardfold/script"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to cardfold.toml (optional)")
		scriptPath = flag.String("script", "", "run a Starlark deck script headless and save the result")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	logger := newLogger(os.Stderr, *verbose)

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		logger.Fatal("Config load failed", "err", err)
	}

	// Headless mode: build a deck from a script, write the snapshot, exit.
	if *scriptPath != "" {
		deck, err := script.Run(*scriptPath)
		if err != nil {
			logger.Fatal("Script failed", "path", *scriptPath, "err", err)
		}
		if err := SaveDeck(deck, cfg.StatePath); err != nil {
			logger.Fatal("Save failed", "path", cfg.StatePath, "err", err)
		}
		logger.Info("Deck written", "path", cfg.StatePath)
		return
	}

	g := NewGame(cfg, logger)

	if _, err := os.Stat(cfg.StatePath); err == nil {
		deck, err := LoadDeck(cfg.StatePath)
		if err != nil {
			logger.Warn("State load failed, starting fresh", "path", cfg.StatePath, "err", err)
		} else {
			g.SetDeck(deck)
			logger.Info("Loaded card", "path", cfg.StatePath)
		}
	}

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle("cardfold")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("Game exited", "err", err)
	}
}
