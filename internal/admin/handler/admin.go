package handler

import (
	"net/http"

	"arenaku/internal/admin/service"
	httputil "arenaku/pkg/http"
	"arenaku/pkg/logger"
	"arenaku/pkg/middleware"
	"arenaku/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type AdminHandler struct {
	service service.AdminService
	auth    *middleware.SessionAuth
	log     *logger.Logger
}

func NewAdminHandler(service service.AdminService, auth *middleware.SessionAuth, log *logger.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		auth:    auth,
		log:     log,
	}
}

func (h *AdminHandler) Summary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	summary, err := h.service.Summary(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteSuccess(w, summary)
}

func (h *AdminHandler) Users(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()

	users, err := h.service.Users(r.Context(), service.UserListQuery{
		Query: query.Get("q"),
		Role:  query.Get("role"),
	})
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, users)
}

func (h *AdminHandler) RegisterRoutes(router *httprouter.Router) {
	admin := func(next httprouter.Handle) httprouter.Handle {
		return h.auth.RequireRole(model.RoleAdmin, next)
	}

	router.GET("/api/v1/admin/summary", admin(h.Summary))
	router.GET("/api/v1/admin/users", admin(h.Users))
}
