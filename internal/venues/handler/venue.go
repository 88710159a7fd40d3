package handler

import (
	"net/http"

	"arenaku/internal/venues/service"
	httputil "arenaku/pkg/http"
	"arenaku/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

type VenueHandler struct {
	service service.VenueService
	log     *logger.Logger
}

func NewVenueHandler(service service.VenueService, log *logger.Logger) *VenueHandler {
	return &VenueHandler{
		service: service,
		log:     log,
	}
}

func (h *VenueHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit, offset, err := httputil.ExtractLimitOffset(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	query := r.URL.Query()
	venues, total, err := h.service.List(r.Context(), service.ListQuery{
		Query:  query.Get("q"),
		City:   query.Get("city"),
		Type:   query.Get("type"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WritePaginated(w, venues, total, limit, offset)
}

func (h *VenueHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	venue, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteSuccess(w, venue)
}

func (h *VenueHandler) GetBySlug(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	venue, err := h.service.GetBySlug(r.Context(), ps.ByName("slug"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteSuccess(w, venue)
}

func (h *VenueHandler) Availability(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	slots, err := h.service.Availability(r.Context(), ps.ByName("id"), r.URL.Query().Get("date"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteSuccess(w, slots)
}

func (h *VenueHandler) Facets(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	facets, err := h.service.Facets(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteSuccess(w, facets)
}

func (h *VenueHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/venues", h.List)
	router.GET("/api/v1/venues/facets", h.Facets)
	router.GET("/api/v1/venues/slug/:slug", h.GetBySlug)
	router.GET("/api/v1/venues/id/:id", h.GetByID)
	router.GET("/api/v1/venues/id/:id/availability", h.Availability)
}
