package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Theepak90/torrobankdiscovvery-sub000/src/internal/domain"
)

// The closed set of launch failures. Callers can react differently to
// each via errors.Is; anything else comes back as an opaque serve error.
var (
	ErrAddrInUse  = errors.New("address already in use")
	ErrPermission = errors.New("permission denied binding address")
	ErrAppStartup = errors.New("application startup failed")
)

// App is the delegated application object. The launcher owns binding,
// shutdown and reload plumbing; the app owns every route.
type App interface {
	Name() string
	Handler() http.Handler
	Startup(ctx context.Context) error
}

type Server struct {
	ctx    *domain.Context
	app    App
	hub    *Hub
	logger *log.Logger

	// Paths the hot-reload watcher observes. Relative to the working
	// directory, same as the rest of the runtime layout.
	watchPaths      []string
	shutdownTimeout time.Duration
}

func Create(ctx *domain.Context, app App, logger *log.Logger) *Server {
	return &Server{
		ctx:             ctx,
		app:             app,
		hub:             NewHub(logger),
		logger:          logger,
		watchPaths:      []string{domain.ConfigPath, domain.UIDir},
		shutdownTimeout: 10 * time.Second,
	}
}

// Run prints the informational URLs, binds the listen address and blocks
// until the context is cancelled, an interrupt arrives, or the server
// fails. Interrupts are a normal shutdown path and return nil.
func (s *Server) Run(ctx context.Context) error {
	addr := net.JoinHostPort(s.ctx.Config.Host, s.ctx.Config.Port)

	fmt.Printf("Data Discovery System starting on http://localhost:%s\n", s.ctx.Config.Port)
	fmt.Printf("API docs: http://localhost:%s/docs\n", s.ctx.Config.Port)
	fmt.Printf("ReDoc:    http://localhost:%s/redoc\n", s.ctx.Config.Port)

	if err := s.app.Startup(ctx); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrAppStartup, s.app.Name(), err)
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return classifyBindError(addr, err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws/reload", s.hub.HandleWS)
	mux.Handle("/", s.app.Handler())

	watchCtx, stopWatch := context.WithCancel(ctx)
	defer stopWatch()
	go s.hub.Watch(watchCtx, s.watchPaths...)

	srv := &http.Server{Handler: mux}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	s.logger.Info("Listening", "addr", addr, "app", s.app.Name())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case <-ctx.Done():
		s.logger.Info("Shutdown requested")
	case sig := <-sigCh:
		s.logger.Info("Received signal, shutting down", "signal", sig)
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		s.logger.Warn("Forcing close after drain timeout", "err", err)
		srv.Close()
	}
	<-errCh

	fmt.Println("Server stopped.")
	return nil
}

func classifyBindError(addr string, err error) error {
	switch {
	case errors.Is(err, syscall.EADDRINUSE):
		return fmt.Errorf("%w: %s", ErrAddrInUse, addr)
	case errors.Is(err, syscall.EACCES):
		return fmt.Errorf("%w: %s", ErrPermission, addr)
	default:
		return fmt.Errorf("bind %s: %w", addr, err)
	}
}
