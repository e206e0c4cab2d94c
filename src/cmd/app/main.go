package main

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/Theepak90/torrobankdiscovvery-sub000/src/internal/domain"
	"github.com/Theepak90/torrobankdiscovvery-sub000/src/internal/service"
)

var Version = "1.0.0"

func main() {
	if err := run(); err != nil {
		log.Error("Bootstrap failed", "err", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; only complain when one exists but cannot load.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn("Could not load .env file", "err", err)
	}

	ctx := &domain.Context{
		Config: domain.DefaultConfig(),
	}
	ctx.Config.Version = Version

	orchestrator := service.CreateOrchestrator(ctx)
	return orchestrator.Run(context.Background())
}
