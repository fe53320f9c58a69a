package main

import (
	"context"
	"flag"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"life-slots/internal/app"
	"life-slots/internal/config"
	"life-slots/internal/tui"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := tea.NewProgram(tui.New(ctx, rt.Engine, rt.Slots, cfg.UI.Seed), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("tui: %v", err)
	}
}
