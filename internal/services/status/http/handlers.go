// Package http provides the status endpoints
package http

import (
	"net/http"
	"time"

	"screenwatch/internal/core/version"
	"screenwatch/internal/modkit/httpkit"
	"screenwatch/internal/services/status/domain"
)

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Board       domain.BoardPort
	Now         func() time.Time
}

type handlers struct {
	deps Deps
}

// RegisterMeta mounts /health and /version
func RegisterMeta(r httpkit.Router, d Deps) {
	h := newHandlers(d)
	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/version", h.version)
}

// RegisterMonitor mounts /latest and /stats
func RegisterMonitor(r httpkit.Router, d Deps) {
	h := newHandlers(d)
	httpkit.Get(r, "/latest", h.latest)
	httpkit.Get(r, "/stats", h.stats)
}

func newHandlers(d Deps) *handlers {
	if d.Now == nil {
		d.Now = time.Now
	}
	return &handlers{deps: d}
}

// GET /meta/health
func (h *handlers) health(_ *http.Request) (any, error) {
	st := h.deps.Board.Stats()
	return domain.Health{
		OK:      true,
		Service: h.deps.ServiceName,
		RunID:   st.RunID,
		State:   st.State,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     h.deps.Now().UTC().Format(time.RFC3339),
	}, nil
}

// GET /meta/version
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

// GET /monitor/latest, 404 until the first tick completes
func (h *handlers) latest(_ *http.Request) (any, error) {
	return h.deps.Board.Latest()
}

// GET /monitor/stats
func (h *handlers) stats(_ *http.Request) (any, error) {
	return h.deps.Board.Stats(), nil
}
