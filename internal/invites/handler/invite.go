package handler

import (
	"net/http"
	"strconv"

	"arenaku/internal/invites/service"
	httputil "arenaku/pkg/http"
	"arenaku/pkg/logger"
	"arenaku/pkg/middleware"

	"github.com/julienschmidt/httprouter"
)

type InviteHandler struct {
	service service.InviteService
	auth    *middleware.SessionAuth
	log     *logger.Logger
}

func NewInviteHandler(service service.InviteService, auth *middleware.SessionAuth, log *logger.Logger) *InviteHandler {
	return &InviteHandler{
		service: service,
		auth:    auth,
		log:     log,
	}
}

func (h *InviteHandler) ListPublic(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()

	invites, err := h.service.ListPublic(r.Context(), service.ListQuery{
		Query: query.Get("q"),
		City:  query.Get("city"),
	})
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, invites)
}

func (h *InviteHandler) GetByCode(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	invite, err := h.service.GetByCode(r.Context(), ps.ByName("code"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteSuccess(w, invite)
}

func (h *InviteHandler) Join(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sess := middleware.SessionFrom(r.Context())

	invite, err := h.service.Join(r.Context(), sess.User.ID, ps.ByName("code"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, invite)
}

func (h *InviteHandler) ShareQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	png, err := h.service.ShareQR(r.Context(), ps.ByName("code"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	if _, err := w.Write(png); err != nil {
		h.log.Error("failed to write QR image", "error", err)
	}
}

func (h *InviteHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/invites", h.ListPublic)
	router.GET("/api/v1/invites/:code", h.GetByCode)
	router.GET("/api/v1/invites/:code/qr", h.ShareQR)
	router.POST("/api/v1/invites/:code/join", h.auth.Require(h.Join))
}
