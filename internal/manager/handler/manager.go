package handler

import (
	"encoding/json"
	"net/http"

	"arenaku/internal/manager/service"
	httputil "arenaku/pkg/http"
	"arenaku/pkg/logger"
	"arenaku/pkg/middleware"
	"arenaku/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type ManagerHandler struct {
	service service.ManagerService
	auth    *middleware.SessionAuth
	log     *logger.Logger
}

func NewManagerHandler(service service.ManagerService, auth *middleware.SessionAuth, log *logger.Logger) *ManagerHandler {
	return &ManagerHandler{
		service: service,
		auth:    auth,
		log:     log,
	}
}

func (h *ManagerHandler) Dashboard(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sess := middleware.SessionFrom(r.Context())

	dashboard, err := h.service.Dashboard(r.Context(), sess.User.ID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, dashboard)
}

func (h *ManagerHandler) Venues(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sess := middleware.SessionFrom(r.Context())

	venues, err := h.service.Venues(r.Context(), sess.User.ID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, venues)
}

func (h *ManagerHandler) CreateVenue(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var venue model.Venue
	if err := json.NewDecoder(r.Body).Decode(&venue); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	sess := middleware.SessionFrom(r.Context())
	created, err := h.service.CreateVenue(r.Context(), sess.User.ID, &venue)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteCreated(w, created)
}

func (h *ManagerHandler) UpdateVenue(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var updates model.VenueUpdate
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	sess := middleware.SessionFrom(r.Context())
	venue, err := h.service.UpdateVenue(r.Context(), sess.User.ID, ps.ByName("id"), &updates)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, venue)
}

func (h *ManagerHandler) DeleteVenue(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sess := middleware.SessionFrom(r.Context())

	if err := h.service.DeleteVenue(r.Context(), sess.User.ID, ps.ByName("id")); err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteNoContent(w)
}

func (h *ManagerHandler) Bookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()
	sess := middleware.SessionFrom(r.Context())

	bookings, err := h.service.Bookings(r.Context(), sess.User.ID, service.BookingListQuery{
		Query:  query.Get("q"),
		Status: query.Get("status"),
	})
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, bookings)
}

func (h *ManagerHandler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var body struct {
		Status model.BookingStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	sess := middleware.SessionFrom(r.Context())
	booking, err := h.service.UpdateBookingStatus(r.Context(), sess.User.ID, ps.ByName("id"), body.Status)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, booking)
}

func (h *ManagerHandler) RegisterRoutes(router *httprouter.Router) {
	pengelola := func(next httprouter.Handle) httprouter.Handle {
		return h.auth.RequireRole(model.RolePengelola, next)
	}

	router.GET("/api/v1/manager/dashboard", pengelola(h.Dashboard))
	router.GET("/api/v1/manager/venues", pengelola(h.Venues))
	router.POST("/api/v1/manager/venues", pengelola(h.CreateVenue))
	router.PUT("/api/v1/manager/venues/id/:id", pengelola(h.UpdateVenue))
	router.DELETE("/api/v1/manager/venues/id/:id", pengelola(h.DeleteVenue))
	router.GET("/api/v1/manager/bookings", pengelola(h.Bookings))
	router.PATCH("/api/v1/manager/bookings/id/:id/status", pengelola(h.UpdateBookingStatus))
}
