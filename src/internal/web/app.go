// Package web holds the delegated application object the launcher hands
// request routing to. The discovery API proper mounts its routes here;
// this slice carries the health endpoint, the documentation landing
// pages and static UI serving.
package web

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Theepak90/torrobankdiscovvery-sub000/src/internal/domain"
)

type App struct {
	cfg       domain.Config
	staticDir string
}

func NewApp(cfg domain.Config) *App {
	return &App{
		cfg:       cfg,
		staticDir: domain.UIStaticDir,
	}
}

func (a *App) Name() string {
	return "torrobank-discovery"
}

// Startup runs before the listener binds. Nothing to warm up in this
// slice, but the hook is where the discovery engine attaches.
func (a *App) Startup(ctx context.Context) error {
	return nil
}

func (a *App) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", a.handleHealth)
	mux.HandleFunc("/docs", a.handleDocs)
	mux.HandleFunc("/redoc", a.handleRedoc)

	fileServer := http.FileServer(http.Dir(a.staticDir))
	mux.Handle("/static/", http.StripPrefix("/static/", fileServer))

	mux.HandleFunc("/", a.handleIndex)

	return mux
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(domain.HealthStatus{
		Status:  "ok",
		Service: a.Name(),
		Version: a.cfg.Version,
	})
}

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprintf(w, indexPage, a.cfg.Version)
}

func (a *App) handleDocs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, docsPage)
}

func (a *App) handleRedoc(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, redocPage)
}

const indexPage = `<!DOCTYPE html>
<html>
<head><title>Torrobank Data Discovery</title></head>
<body>
<h1>Torrobank Data Discovery</h1>
<p>Version %s</p>
<ul>
<li><a href="/docs">API documentation</a></li>
<li><a href="/redoc">ReDoc</a></li>
<li><a href="/health">Health</a></li>
</ul>
</body>
</html>
`

const docsPage = `<!DOCTYPE html>
<html>
<head><title>API Docs - Torrobank Data Discovery</title></head>
<body>
<h1>API Documentation</h1>
<p>Interactive documentation for the discovery API.</p>
</body>
</html>
`

const redocPage = `<!DOCTYPE html>
<html>
<head><title>ReDoc - Torrobank Data Discovery</title></head>
<body>
<h1>ReDoc</h1>
<p>Reference documentation for the discovery API.</p>
</body>
</html>
`
