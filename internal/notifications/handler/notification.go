package handler

import (
	"net/http"

	"arenaku/internal/notifications/service"
	httputil "arenaku/pkg/http"
	"arenaku/pkg/logger"
	"arenaku/pkg/middleware"
	"arenaku/pkg/ws"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The session check already gates the upgrade; the gateway fronts
	// browsers from configured origins only.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type NotificationHandler struct {
	service service.NotificationService
	hub     *ws.Hub
	auth    *middleware.SessionAuth
	log     *logger.Logger
}

func NewNotificationHandler(service service.NotificationService, hub *ws.Hub, auth *middleware.SessionAuth, log *logger.Logger) *NotificationHandler {
	return &NotificationHandler{
		service: service,
		hub:     hub,
		auth:    auth,
		log:     log,
	}
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sess := middleware.SessionFrom(r.Context())

	notifications, err := h.service.List(r.Context(), sess.User.ID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, notifications)
}

func (h *NotificationHandler) UnreadCount(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sess := middleware.SessionFrom(r.Context())

	count, err := h.service.UnreadCount(r.Context(), sess.User.ID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, map[string]int{"count": count})
}

func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sess := middleware.SessionFrom(r.Context())

	if err := h.service.MarkRead(r.Context(), sess.User.ID, ps.ByName("id")); err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteNoContent(w)
}

func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sess := middleware.SessionFrom(r.Context())

	if err := h.service.MarkAllRead(r.Context(), sess.User.ID); err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteNoContent(w)
}

// Stream upgrades to a WebSocket and keeps the connection registered on the
// hub until the browser goes away. Missed pushes are not replayed; the REST
// list is the source of truth on reconnect.
func (h *NotificationHandler) Stream(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sess := middleware.SessionFrom(r.Context())

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Error("websocket upgrade failed", "user_id", sess.User.ID, "error", err)
		return
	}

	h.hub.Add(sess.User.ID, conn)
	defer func() {
		h.hub.Remove(sess.User.ID, conn)
		_ = conn.Close()
	}()

	// Drain control frames; the stream is push-only.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *NotificationHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/notifications", h.auth.Require(h.List))
	router.GET("/api/v1/notifications/unread-count", h.auth.Require(h.UnreadCount))
	router.GET("/api/v1/notifications/stream", h.auth.Require(h.Stream))
	router.PATCH("/api/v1/notifications/id/:id/read", h.auth.Require(h.MarkRead))
	router.PATCH("/api/v1/notifications/read-all", h.auth.Require(h.MarkAllRead))
}
