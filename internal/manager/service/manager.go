package service

import (
	"context"

	managervalidator "arenaku/internal/manager/validator"
	"arenaku/internal/provider"
	apperrors "arenaku/pkg/errors"
	"arenaku/pkg/filter"
	"arenaku/pkg/format"
	"arenaku/pkg/logger"
	"arenaku/pkg/model"
	"arenaku/pkg/sanitizer"
)

// DashboardView is the summary plus its display strings.
type DashboardView struct {
	model.ManagerSummary
	MonthRevenueDisplay string `json:"month_revenue_display"`
}

// BookingListQuery narrows the manager's booking table.
type BookingListQuery struct {
	Query  string
	Status string
}

type ManagerService interface {
	Dashboard(ctx context.Context, managerID string) (*DashboardView, error)
	Venues(ctx context.Context, managerID string) ([]model.Venue, error)
	CreateVenue(ctx context.Context, managerID string, venue *model.Venue) (*model.Venue, error)
	UpdateVenue(ctx context.Context, managerID, id string, updates *model.VenueUpdate) (*model.Venue, error)
	DeleteVenue(ctx context.Context, managerID, id string) error
	Bookings(ctx context.Context, managerID string, q BookingListQuery) ([]model.Booking, error)
	UpdateBookingStatus(ctx context.Context, managerID, id string, status model.BookingStatus) (*model.Booking, error)
}

type managerService struct {
	manager   provider.Manager
	validator *managervalidator.VenueValidator
	log       *logger.Logger
}

func NewManagerService(manager provider.Manager, validator *managervalidator.VenueValidator, log *logger.Logger) ManagerService {
	return &managerService{
		manager:   manager,
		validator: validator,
		log:       log,
	}
}

func (s *managerService) Dashboard(ctx context.Context, managerID string) (*DashboardView, error) {
	summary, err := s.manager.Summary(ctx, managerID)
	if err != nil {
		return nil, err
	}
	return &DashboardView{
		ManagerSummary:      *summary,
		MonthRevenueDisplay: format.Rupiah(summary.MonthRevenue),
	}, nil
}

func (s *managerService) Venues(ctx context.Context, managerID string) ([]model.Venue, error) {
	return s.manager.Venues(ctx, managerID)
}

func (s *managerService) CreateVenue(ctx context.Context, managerID string, venue *model.Venue) (*model.Venue, error) {
	venue.Name = sanitizer.NormalizeName(venue.Name)
	venue.City = sanitizer.NormalizeCity(venue.City)
	venue.Address = sanitizer.TrimAndNormalize(venue.Address)

	if err := s.validator.Validate(venue); err != nil {
		return nil, err
	}

	created, err := s.manager.CreateVenue(ctx, managerID, *venue)
	if err != nil {
		s.log.Error("failed to create venue", "name", venue.Name, "error", err)
		return nil, err
	}

	s.log.Info("venue created", "id", created.ID, "slug", created.Slug)
	return created, nil
}

func (s *managerService) UpdateVenue(ctx context.Context, managerID, id string, updates *model.VenueUpdate) (*model.Venue, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("venue ID cannot be empty")
	}
	updates.Name = sanitizer.NormalizeName(updates.Name)
	updates.City = sanitizer.NormalizeCity(updates.City)

	if err := s.validator.ValidateUpdate(updates); err != nil {
		return nil, err
	}

	venue, err := s.manager.UpdateVenue(ctx, managerID, id, *updates)
	if err != nil {
		s.log.Error("failed to update venue", "id", id, "error", err)
		return nil, err
	}

	s.log.Info("venue updated", "id", id)
	return venue, nil
}

func (s *managerService) DeleteVenue(ctx context.Context, managerID, id string) error {
	if id == "" {
		return apperrors.InvalidInput("venue ID cannot be empty")
	}
	if err := s.manager.DeleteVenue(ctx, managerID, id); err != nil {
		s.log.Error("failed to delete venue", "id", id, "error", err)
		return err
	}
	s.log.Info("venue deactivated", "id", id)
	return nil
}

func (s *managerService) Bookings(ctx context.Context, managerID string, q BookingListQuery) ([]model.Booking, error) {
	bookings, err := s.manager.Bookings(ctx, managerID)
	if err != nil {
		return nil, err
	}

	return filter.Apply(bookings,
		filter.Text(sanitizer.NormalizeQuery(q.Query), func(b model.Booking) []string {
			fields := []string{b.Title}
			if b.Owner != nil {
				fields = append(fields, b.Owner.Name)
			}
			if b.Venue != nil {
				fields = append(fields, b.Venue.Name)
			}
			return fields
		}),
		filter.Status(q.Status, func(b model.Booking) string { return string(b.Status) }),
	), nil
}

// UpdateBookingStatus rechecks the transition locally so an impossible move
// fails fast with a clear message instead of an opaque upstream error.
func (s *managerService) UpdateBookingStatus(ctx context.Context, managerID, id string, status model.BookingStatus) (*model.Booking, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("booking ID cannot be empty")
	}
	if !status.Valid() {
		return nil, apperrors.InvalidInput("unknown booking status: " + string(status))
	}

	bookings, err := s.manager.Bookings(ctx, managerID)
	if err != nil {
		return nil, err
	}
	for i := range bookings {
		if bookings[i].ID != id {
			continue
		}
		if !model.CanTransition(bookings[i].Status, status) {
			return nil, apperrors.Conflict(
				"cannot move booking from " + string(bookings[i].Status) + " to " + string(status))
		}
		break
	}

	booking, err := s.manager.UpdateBookingStatus(ctx, managerID, id, status)
	if err != nil {
		s.log.Error("failed to update booking status", "id", id, "status", status, "error", err)
		return nil, err
	}

	s.log.Info("booking status updated", "id", id, "status", status)
	return booking, nil
}
