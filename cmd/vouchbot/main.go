package main

import (
	"context"
	"log"

	"github.com/grandx/vouchbot/internal/bot"
	"github.com/grandx/vouchbot/internal/bot/config"
)

func main() {
	ctx := context.Background()

	// configuration errors are fatal before any connection is attempted
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	app, err := bot.NewApp(cfg)
	if err != nil {
		log.Fatalf("init: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("run: %v", err)
	}
}
