package main

import (
	"flag"
	"log"
	"os"

	"github.com/Garsondee/Budget-Table/internal/config"
	"github.com/Garsondee/Budget-Table/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	var path string
	var overrides config.Config

	flag.StringVar(&path, "config", os.Getenv(config.EnvPrefix+"CONFIG"), "optional yaml config file")
	flag.IntVar(&overrides.WindowWidth, "width", 0, "window width in pixels")
	flag.IntVar(&overrides.WindowHeight, "height", 0, "window height in pixels")
	flag.IntVar(&overrides.HUDScale, "hud-scale", 0, "integer upscale for HUD text")
	flag.DurationVar(&overrides.FeedbackDuration, "feedback", 0, "how long allocation feedback stays visible")
	flag.Int64Var(&overrides.Seed, "seed", 0, "particle RNG seed (0 = time-based)")
	flag.Parse()

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatal(err)
	}
	cfg = cfg.Merge(overrides)
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	log.Printf("budget table: %dx%d hud=%dx feedback=%s", cfg.WindowWidth, cfg.WindowHeight, cfg.HUDScale, cfg.FeedbackDuration)

	g := game.New(cfg)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
	log.Printf("exit: %s", g)
}
