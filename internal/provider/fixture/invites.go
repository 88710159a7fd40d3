package fixture

import (
	"context"
	"fmt"
	"time"

	apperrors "arenaku/pkg/errors"
	"arenaku/pkg/model"
)

// Invites is the fixture-backed invite resolution and join view.
type Invites struct {
	s *Store
}

func (iv *Invites) ListPublic(_ context.Context) ([]model.Booking, error) {
	iv.s.mu.RLock()
	defer iv.s.mu.RUnlock()

	out := make([]model.Booking, 0)
	for i := range iv.s.bookings {
		b := &iv.s.bookings[i]
		if b.Visibility == model.InvitePublic && b.CanJoin() {
			out = append(out, *iv.s.bookingView(b))
		}
	}
	return out, nil
}

func (iv *Invites) GetByCode(_ context.Context, code string) (*model.Booking, error) {
	iv.s.mu.RLock()
	defer iv.s.mu.RUnlock()

	b := iv.s.findByInviteCode(code)
	if b == nil {
		return nil, apperrors.InvalidInvite(code)
	}
	return iv.s.bookingView(b), nil
}

// Join admits the user into the booking behind the invite code. The checks
// run under the write lock so two concurrent joins can never both take the
// last slot. Failure order: unknown code, closed booking, duplicate join,
// full slots.
func (iv *Invites) Join(_ context.Context, userID, code string) (*model.Booking, error) {
	iv.s.mu.Lock()
	defer iv.s.mu.Unlock()

	b := iv.s.findByInviteCode(code)
	if b == nil {
		return nil, apperrors.InvalidInvite(code)
	}
	if !b.IsJoinable || (b.Status != model.BookingOpen && b.Status != model.BookingConfirmed) {
		return nil, apperrors.BookingClosed()
	}
	if b.HasParticipant(userID) {
		return nil, apperrors.AlreadyJoined()
	}
	if b.AvailableSlots() == 0 {
		return nil, apperrors.SlotsFull()
	}

	now := time.Now().UTC()
	b.Participants = append(b.Participants, model.BookingParticipant{
		BookingID:     b.ID,
		UserID:        userID,
		ShareAmount:   b.PricePerSlot,
		PaymentStatus: model.PaymentUnpaid,
		JoinedAt:      now,
	})

	if joiner := iv.s.findUser(userID); joiner != nil {
		iv.s.notifications = append(iv.s.notifications, model.Notification{
			ID:        iv.s.genID("ntf"),
			UserID:    b.OwnerID,
			Type:      model.NotificationParticipantJoined,
			Title:     "Peserta baru",
			Message:   fmt.Sprintf("%s bergabung ke booking kamu.", joiner.Name),
			CreatedAt: now,
		})
	}

	return iv.s.bookingView(b), nil
}

// findByInviteCode matches codes case-sensitively. Caller holds the lock.
func (s *Store) findByInviteCode(code string) *model.Booking {
	if code == "" {
		return nil
	}
	for i := range s.bookings {
		if s.bookings[i].InviteCode == code {
			return &s.bookings[i]
		}
	}
	return nil
}
