package service

import (
	"context"
	"errors"

	bookingvalidator "arenaku/internal/bookings/validator"
	"arenaku/internal/provider"
	apperrors "arenaku/pkg/errors"
	"arenaku/pkg/filter"
	"arenaku/pkg/format"
	"arenaku/pkg/logger"
	"arenaku/pkg/model"
	"arenaku/pkg/sanitizer"
)

// BookingView decorates a booking with the derived slot fields and display
// strings the browser renders.
type BookingView struct {
	model.Booking
	FilledSlots    int               `json:"filled_slots"`
	AvailableSlots int               `json:"available_slots"`
	CanJoin        bool              `json:"can_join"`
	TotalDisplay   string            `json:"total_display"`
	ShareDisplay   string            `json:"share_display,omitempty"`
	Shares         []ParticipantView `json:"shares,omitempty"`
}

// ParticipantView is one row of the share breakdown.
type ParticipantView struct {
	model.BookingParticipant
	ShareDisplay string `json:"share_display"`
}

// ListQuery narrows "my bookings" the way the list page does.
type ListQuery struct {
	Query  string
	Status string
}

type BookingService interface {
	Create(ctx context.Context, userID string, req *model.BookingRequest) (*BookingView, error)
	ListMine(ctx context.Context, userID string, q ListQuery) ([]BookingView, error)
	GetByID(ctx context.Context, userID, id string) (*BookingView, error)
	Cancel(ctx context.Context, userID, id string) (*BookingView, error)
}

type bookingService struct {
	bookings  provider.Bookings
	validator *bookingvalidator.BookingValidator
	log       *logger.Logger
}

func NewBookingService(bookings provider.Bookings, validator *bookingvalidator.BookingValidator, log *logger.Logger) BookingService {
	return &bookingService{
		bookings:  bookings,
		validator: validator,
		log:       log,
	}
}

func (s *bookingService) Create(ctx context.Context, userID string, req *model.BookingRequest) (*BookingView, error) {
	req.Title = sanitizer.TrimAndNormalize(req.Title)
	req.Notes = sanitizer.TrimAndNormalize(req.Notes)

	if err := s.validate(req); err != nil {
		return nil, err
	}

	booking, err := s.bookings.Create(ctx, userID, *req)
	if err != nil {
		s.log.Error("failed to create booking", "venue_id", req.VenueID, "error", err)
		return nil, err
	}

	s.log.Info("booking created",
		"id", booking.ID,
		"venue_id", booking.VenueID,
		"joinable", booking.IsJoinable,
	)
	view := newBookingView(*booking)
	return &view, nil
}

func (s *bookingService) ListMine(ctx context.Context, userID string, q ListQuery) ([]BookingView, error) {
	bookings, err := s.bookings.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	matched := filter.Apply(bookings,
		filter.Text(sanitizer.NormalizeQuery(q.Query), func(b model.Booking) []string {
			fields := []string{b.Title}
			if b.Venue != nil {
				fields = append(fields, b.Venue.Name, b.Venue.City)
			}
			return fields
		}),
		filter.Status(q.Status, func(b model.Booking) string { return string(b.Status) }),
	)

	views := make([]BookingView, 0, len(matched))
	for _, b := range matched {
		views = append(views, newBookingView(b))
	}
	return views, nil
}

func (s *bookingService) GetByID(ctx context.Context, userID, id string) (*BookingView, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("booking ID cannot be empty")
	}
	booking, err := s.bookings.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	view := newBookingView(*booking)
	return &view, nil
}

func (s *bookingService) Cancel(ctx context.Context, userID, id string) (*BookingView, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("booking ID cannot be empty")
	}
	booking, err := s.bookings.Cancel(ctx, userID, id)
	if err != nil {
		s.log.Error("failed to cancel booking", "id", id, "error", err)
		return nil, err
	}
	s.log.Info("booking cancelled", "id", id)
	view := newBookingView(*booking)
	return &view, nil
}

func (s *bookingService) validate(req *model.BookingRequest) error {
	err := s.validator.Validate(req)
	if err == nil {
		return nil
	}
	var verrs bookingvalidator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make(map[string]any, len(verrs))
		for _, ve := range verrs {
			details[ve.Field] = ve.Message
		}
		return apperrors.Validation("booking request is invalid", details)
	}
	return apperrors.InvalidInput(err.Error())
}

func newBookingView(b model.Booking) BookingView {
	view := BookingView{
		Booking:        b,
		FilledSlots:    b.FilledSlots(),
		AvailableSlots: b.AvailableSlots(),
		CanJoin:        b.CanJoin(),
		TotalDisplay:   format.Rupiah(b.TotalPrice),
	}
	if b.IsJoinable {
		view.ShareDisplay = format.Rupiah(b.PricePerSlot)
	}
	if len(b.Participants) > 0 {
		view.Shares = make([]ParticipantView, 0, len(b.Participants))
		for _, p := range b.Participants {
			view.Shares = append(view.Shares, ParticipantView{
				BookingParticipant: p,
				ShareDisplay:       format.Rupiah(p.ShareAmount),
			})
		}
	}
	return view
}
