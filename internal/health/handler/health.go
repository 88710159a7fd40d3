package handler

import (
	"net/http"

	httputil "arenaku/pkg/http"
	"arenaku/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

// Probe reports whether a backing dependency is reachable. A nil probe
// means the gateway has no external state to check.
type Probe func() error

type HealthHandler struct {
	probe Probe
	log   *logger.Logger
}

func NewHealthHandler(probe Probe, log *logger.Logger) *HealthHandler {
	return &HealthHandler{probe: probe, log: log}
}

func (h *HealthHandler) Health(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HealthHandler) Ready(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	if h.probe != nil {
		if err := h.probe(); err != nil {
			h.log.Error("readiness probe failed", "error", err)
			httputil.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (h *HealthHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
}
