package handler

import (
	"encoding/json"
	"net/http"

	"arenaku/internal/bookings/service"
	httputil "arenaku/pkg/http"
	"arenaku/pkg/logger"
	"arenaku/pkg/middleware"
	"arenaku/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type BookingHandler struct {
	service service.BookingService
	auth    *middleware.SessionAuth
	log     *logger.Logger
}

func NewBookingHandler(service service.BookingService, auth *middleware.SessionAuth, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		auth:    auth,
		log:     log,
	}
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	sess := middleware.SessionFrom(r.Context())
	booking, err := h.service.Create(r.Context(), sess.User.ID, &req)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteCreated(w, booking)
}

func (h *BookingHandler) ListMine(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()
	sess := middleware.SessionFrom(r.Context())

	bookings, err := h.service.ListMine(r.Context(), sess.User.ID, service.ListQuery{
		Query:  query.Get("q"),
		Status: query.Get("status"),
	})
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, bookings)
}

func (h *BookingHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sess := middleware.SessionFrom(r.Context())

	booking, err := h.service.GetByID(r.Context(), sess.User.ID, ps.ByName("id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, booking)
}

func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sess := middleware.SessionFrom(r.Context())

	booking, err := h.service.Cancel(r.Context(), sess.User.ID, ps.ByName("id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, booking)
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/bookings", h.auth.Require(h.Create))
	router.GET("/api/v1/bookings", h.auth.Require(h.ListMine))
	router.GET("/api/v1/bookings/id/:id", h.auth.Require(h.GetByID))
	router.POST("/api/v1/bookings/id/:id/cancel", h.auth.Require(h.Cancel))
}
