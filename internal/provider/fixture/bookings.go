package fixture

import (
	"context"
	"fmt"
	"time"

	apperrors "arenaku/pkg/errors"
	"arenaku/pkg/model"
)

// Bookings is the fixture-backed booking view scoped to the acting user.
type Bookings struct {
	s *Store
}

func (b *Bookings) Create(_ context.Context, ownerID string, req model.BookingRequest) (*model.Booking, error) {
	b.s.mu.Lock()
	defer b.s.mu.Unlock()

	venue := b.s.findVenue(req.VenueID)
	if venue == nil || !venue.IsActive {
		return nil, apperrors.NotFoundWithID("Venue", req.VenueID)
	}

	startHour, err := parseHour(req.StartTime)
	if err != nil {
		return nil, apperrors.InvalidInput("start_time must be in HH:MM format")
	}
	endHour, err := parseHour(req.EndTime)
	if err != nil {
		return nil, apperrors.InvalidInput("end_time must be in HH:MM format")
	}
	if endHour <= startHour {
		return nil, apperrors.InvalidInput("end_time must be after start_time")
	}

	for h := startHour; h < endHour; h++ {
		if b.s.hourTaken(req.VenueID, req.Date, fmt.Sprintf("%02d:00", h)) {
			return nil, apperrors.Conflict("the venue is already booked for that time")
		}
	}

	total := venue.PricePerHour * int64(endHour-startHour)
	now := time.Now().UTC()

	booking := model.Booking{
		ID:         b.s.genID("bkg"),
		VenueID:    req.VenueID,
		OwnerID:    ownerID,
		Date:       req.Date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		TotalPrice: total,
		Title:      req.Title,
		Notes:      req.Notes,
		Status:     model.BookingPending,
		CreatedAt:  now,
	}

	ownerShare := total
	if req.IsJoinable && req.MaxSlots > 0 {
		booking.IsJoinable = true
		booking.MaxSlots = req.MaxSlots
		booking.PricePerSlot = total / int64(req.MaxSlots)
		booking.Visibility = req.Visibility
		if booking.Visibility == "" {
			booking.Visibility = model.InvitePrivate
		}
		booking.InviteCode = genInviteCode()
		booking.Status = model.BookingOpen
		// The owner absorbs the division remainder so a fully filled
		// booking's shares still sum to the total price.
		ownerShare = booking.PricePerSlot + total%int64(req.MaxSlots)
	}

	booking.Participants = []model.BookingParticipant{{
		BookingID:     booking.ID,
		UserID:        ownerID,
		ShareAmount:   ownerShare,
		PaymentStatus: model.PaymentUnpaid,
		IsOwner:       true,
		JoinedAt:      now,
	}}

	b.s.bookings = append(b.s.bookings, booking)
	return b.s.bookingView(&booking), nil
}

func (b *Bookings) ListByUser(_ context.Context, userID string) ([]model.Booking, error) {
	b.s.mu.RLock()
	defer b.s.mu.RUnlock()

	out := make([]model.Booking, 0)
	for i := range b.s.bookings {
		booking := &b.s.bookings[i]
		if booking.OwnerID == userID || booking.HasParticipant(userID) {
			out = append(out, *b.s.bookingView(booking))
		}
	}
	return out, nil
}

func (b *Bookings) GetByID(_ context.Context, userID, id string) (*model.Booking, error) {
	b.s.mu.RLock()
	defer b.s.mu.RUnlock()

	booking := b.s.findBooking(id)
	if booking == nil {
		return nil, apperrors.NotFoundWithID("Booking", id)
	}
	// Participants see the booking; everyone else gets not-found rather
	// than a confirmation the ID exists.
	if booking.OwnerID != userID && !booking.HasParticipant(userID) {
		return nil, apperrors.NotFoundWithID("Booking", id)
	}
	return b.s.bookingView(booking), nil
}

func (b *Bookings) Cancel(_ context.Context, userID, id string) (*model.Booking, error) {
	b.s.mu.Lock()
	defer b.s.mu.Unlock()

	booking := b.s.findBooking(id)
	if booking == nil {
		return nil, apperrors.NotFoundWithID("Booking", id)
	}
	if booking.OwnerID != userID {
		return nil, apperrors.Forbidden("only the booking owner can cancel")
	}
	if booking.Status.Terminal() {
		return nil, apperrors.Conflict("the booking is already " + string(booking.Status))
	}

	booking.Status = model.BookingCancelled
	for i := range booking.Participants {
		if booking.Participants[i].PaymentStatus == model.PaymentPaid {
			booking.Participants[i].PaymentStatus = model.PaymentRefunded
		}
	}
	return b.s.bookingView(booking), nil
}
