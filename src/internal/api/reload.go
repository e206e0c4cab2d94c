package api

import (
	"context"
	"net/http"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	"github.com/gorilla/websocket"

	"github.com/Theepak90/torrobankdiscovvery-sub000/src/internal/domain"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // same-host dev tooling, no cross-origin concern
	},
}

// Hub fans hot-reload events out to connected UI clients.
type Hub struct {
	mu      sync.RWMutex
	clients map[*websocket.Conn]bool
	logger  *log.Logger
}

func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]bool),
		logger:  logger,
	}
}

// HandleWS upgrades the connection and parks it until the client hangs
// up. Clients never send anything meaningful; the read loop only exists
// to notice the close.
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	c, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("Reload socket upgrade failed", "err", err)
		return
	}

	h.mu.Lock()
	h.clients[c] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, c)
		h.mu.Unlock()
		c.Close()
	}()

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}

// Broadcast sends event to every connected client. Dead connections are
// dropped on the spot.
func (h *Hub) Broadcast(event string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		if err := c.WriteMessage(websocket.TextMessage, []byte(event)); err != nil {
			c.Close()
			delete(h.clients, c)
		}
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Watch observes the given paths until ctx is cancelled. UI changes turn
// into reload broadcasts; a config change only gets a notice, since the
// running server cannot re-read it.
func (h *Hub) Watch(ctx context.Context, paths ...string) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		h.logger.Warn("Hot reload disabled", "err", err)
		return
	}
	defer watcher.Close()

	watched := 0
	for _, p := range paths {
		if err := watcher.Add(p); err != nil {
			h.logger.Debug("Not watching path", "path", p, "err", err)
			continue
		}
		watched++
	}
	if watched == 0 {
		h.logger.Warn("Hot reload disabled, nothing to watch")
		return
	}
	h.logger.Info("Hot reload watching", "paths", paths)

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) {
				continue
			}
			if filepath.Base(ev.Name) == filepath.Base(domain.ConfigPath) {
				h.logger.Warn("config.yaml changed, restart to apply")
				continue
			}
			h.logger.Info("UI changed, notifying clients", "path", ev.Name)
			h.Broadcast("reload")
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			h.logger.Warn("Watcher error", "err", err)
		}
	}
}
