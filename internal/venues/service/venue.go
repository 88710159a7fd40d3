package service

import (
	"context"

	"arenaku/internal/provider"
	apperrors "arenaku/pkg/errors"
	"arenaku/pkg/filter"
	"arenaku/pkg/format"
	"arenaku/pkg/logger"
	"arenaku/pkg/model"
	"arenaku/pkg/sanitizer"
	"arenaku/pkg/slug"
)

// VenueView is a venue plus the display strings the browser renders
// directly.
type VenueView struct {
	model.Venue
	PriceDisplay string `json:"price_display"`
}

// ListQuery narrows the venue catalog. Matching happens here, not
// upstream: the provider hands back the full active list.
type ListQuery struct {
	Query  string
	City   string
	Type   string
	Limit  int
	Offset int
}

type VenueService interface {
	List(ctx context.Context, q ListQuery) ([]VenueView, int64, error)
	GetByID(ctx context.Context, id string) (*VenueView, error)
	GetBySlug(ctx context.Context, venueSlug string) (*VenueView, error)
	Availability(ctx context.Context, id, date string) ([]model.TimeSlot, error)
	Facets(ctx context.Context) (*model.VenueFacets, error)
}

type venueService struct {
	venues provider.Venues
	log    *logger.Logger
}

func NewVenueService(venues provider.Venues, log *logger.Logger) VenueService {
	return &venueService{venues: venues, log: log}
}

func (s *venueService) List(ctx context.Context, q ListQuery) ([]VenueView, int64, error) {
	venues, err := s.venues.List(ctx)
	if err != nil {
		return nil, 0, err
	}

	matched := filter.Apply(venues,
		filter.Text(sanitizer.NormalizeQuery(q.Query), func(v model.Venue) []string {
			return []string{v.Name, v.City}
		}),
		filter.Status(q.City, func(v model.Venue) string { return v.City }),
		filter.Status(q.Type, func(v model.Venue) string { return v.VenueType }),
	)

	total := int64(len(matched))
	if q.Offset >= len(matched) {
		return []VenueView{}, total, nil
	}
	end := q.Offset + q.Limit
	if q.Limit <= 0 || end > len(matched) {
		end = len(matched)
	}

	page := make([]VenueView, 0, end-q.Offset)
	for _, v := range matched[q.Offset:end] {
		page = append(page, newVenueView(v))
	}
	return page, total, nil
}

func (s *venueService) GetByID(ctx context.Context, id string) (*VenueView, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("venue ID cannot be empty")
	}
	venue, err := s.venues.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := newVenueView(*venue)
	return &view, nil
}

// GetBySlug resolves share URLs. Venues without a stored slug are matched
// on the slug derived from name and city, so links survive data sources
// that never persisted one.
func (s *venueService) GetBySlug(ctx context.Context, venueSlug string) (*VenueView, error) {
	if venueSlug == "" {
		return nil, apperrors.InvalidInput("venue slug cannot be empty")
	}
	venues, err := s.venues.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, v := range venues {
		stored := v.Slug
		if stored == "" {
			stored = slug.Make(v.Name, v.City)
		}
		if stored == venueSlug {
			view := newVenueView(v)
			return &view, nil
		}
	}
	return nil, apperrors.NotFound("Venue")
}

func (s *venueService) Availability(ctx context.Context, id, date string) ([]model.TimeSlot, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("venue ID cannot be empty")
	}
	if date == "" {
		return nil, apperrors.InvalidInput("date query parameter is required")
	}
	return s.venues.Availability(ctx, id, date)
}

func (s *venueService) Facets(ctx context.Context) (*model.VenueFacets, error) {
	return s.venues.Facets(ctx)
}

func newVenueView(v model.Venue) VenueView {
	return VenueView{
		Venue:        v,
		PriceDisplay: format.Rupiah(v.PricePerHour),
	}
}
