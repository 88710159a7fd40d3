package handler

import (
	"encoding/json"
	"net/http"

	"arenaku/internal/auth/service"
	httputil "arenaku/pkg/http"
	"arenaku/pkg/logger"
	"arenaku/pkg/middleware"
	"arenaku/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type AuthHandler struct {
	service service.AuthService
	auth    *middleware.SessionAuth
	log     *logger.Logger
}

func NewAuthHandler(service service.AuthService, auth *middleware.SessionAuth, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		auth:    auth,
		log:     log,
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var creds model.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	result, err := h.service.Login(r.Context(), &creds)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, result)
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var reg model.Registration
	if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	result, err := h.service.Register(r.Context(), &reg)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteCreated(w, result)
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sess := middleware.SessionFrom(r.Context())

	user, err := h.service.Me(r.Context(), sess)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, user)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sess := middleware.SessionFrom(r.Context())

	if err := h.service.Logout(r.Context(), sess.ID); err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteNoContent(w)
}

func (h *AuthHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/auth/login", h.Login)
	router.POST("/api/v1/auth/register", h.Register)
	router.GET("/api/v1/auth/me", h.auth.Require(h.Me))
	router.POST("/api/v1/auth/logout", h.auth.Require(h.Logout))
}
