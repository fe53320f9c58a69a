//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"life-slots/internal/app"
	"life-slots/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	cfg.Normalize()

	rt, err := app.Open(cfg)
	if err != nil {
		log.Fatalf("startup: %v", err)
	}
	defer func() {
		if err := rt.Close(); err != nil {
			log.Printf("warn: close: %v", err)
		}
	}()

	game := app.New(context.Background(), rt.Engine, rt.Slots, cfg.UI.Scale, cfg.UI.Seed)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("Game of Life")
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
