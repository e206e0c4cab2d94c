package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/Theepak90/torrobankdiscovvery-sub000/src/internal/api"
	"github.com/Theepak90/torrobankdiscovvery-sub000/src/internal/domain"
	"github.com/Theepak90/torrobankdiscovvery-sub000/src/internal/service/deps"
	"github.com/Theepak90/torrobankdiscovvery-sub000/src/internal/service/setup"
	"github.com/Theepak90/torrobankdiscovvery-sub000/src/internal/web"
)

type dependencyEnsurer interface {
	Ensure()
}

// Orchestrator runs the startup sequence: dependency check, directory
// tree, config gate, server launch. The config gate is the only branch.
type Orchestrator struct {
	ctx     *domain.Context
	logger  *log.Logger
	checker dependencyEnsurer

	// launch is a seam for tests; the default starts the real server.
	launch func(ctx context.Context, cfg domain.Config) error
}

func CreateOrchestrator(ctx *domain.Context) *Orchestrator {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "bootstrap",
	})

	o := &Orchestrator{
		ctx:     ctx,
		logger:  logger,
		checker: deps.New(logger),
	}
	o.launch = o.launchServer
	return o
}

// Run executes the sequence. It returns nil on both normal terminal
// states (aborted before launch on missing config, launcher returned
// after shutdown); only a real failure comes back as an error.
func (o *Orchestrator) Run(ctx context.Context) error {
	o.logger.Info("Starting Torrobank Discovery bootstrap", "version", o.ctx.Config.Version)

	o.checker.Ensure()

	if err := setup.EnsureDirs(domain.RuntimeDirs); err != nil {
		return fmt.Errorf("prepare runtime directories: %w", err)
	}
	closeLog := o.attachFileLog()
	defer closeLog()

	if !setup.ConfigPresent(domain.ConfigPath) {
		fmt.Println("config.yaml not found in the working directory.")
		fmt.Println("Create config.yaml next to the binary, then start the server again.")
		o.logger.Warn("Startup aborted before launch", "missing", domain.ConfigPath)
		return nil
	}

	cfg := setup.LoadConfig(domain.ConfigPath, o.logger)
	cfg.Version = o.ctx.Config.Version
	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		o.logger.SetLevel(lvl)
	}

	return o.launch(ctx, cfg)
}

func (o *Orchestrator) launchServer(ctx context.Context, cfg domain.Config) error {
	app := web.NewApp(cfg)
	server := api.Create(&domain.Context{Config: cfg}, app, o.logger)
	return server.Run(ctx)
}

// attachFileLog tees the bootstrap log into logs/ once the directory
// exists, so the very first run already leaves a trace on disk.
func (o *Orchestrator) attachFileLog() func() {
	path := filepath.Join(domain.LogDir, "bootstrap.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		o.logger.Warn("Could not open log file", "path", path, "err", err)
		return func() {}
	}
	o.logger.SetOutput(io.MultiWriter(os.Stderr, f))
	return func() {
		o.logger.SetOutput(os.Stderr)
		f.Close()
	}
}
