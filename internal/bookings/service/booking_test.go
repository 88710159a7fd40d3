package service

import (
	"context"
	"io"
	"testing"
	"time"

	bookingvalidator "arenaku/internal/bookings/validator"
	"arenaku/internal/provider/fixture"
	apperrors "arenaku/pkg/errors"
	"arenaku/pkg/logger"
	"arenaku/pkg/model"
)

func newTestService(t *testing.T) BookingService {
	t.Helper()
	log := logger.New(logger.Config{Level: logger.LevelError, Output: io.Discard})
	return NewBookingService(
		fixture.New().Provider().Bookings,
		bookingvalidator.NewBookingValidator(log),
		log,
	)
}

func validRequest() model.BookingRequest {
	return model.BookingRequest{
		VenueID:   "ven-0001",
		Date:      "2026-09-07",
		StartTime: "10:00",
		EndTime:   "12:00",
		Title:     "Latihan rutin",
	}
}

func TestCreateComputesTotalFromVenueRate(t *testing.T) {
	svc := newTestService(t)

	booking, err := svc.Create(context.Background(), "usr-budi", ptr(validRequest()))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	// ven-0001 charges 150_000/hour; the request spans two hours.
	if booking.TotalPrice != 300_000 {
		t.Errorf("TotalPrice = %d, want 300000", booking.TotalPrice)
	}
	if booking.Status != model.BookingPending {
		t.Errorf("Status = %s, want PENDING", booking.Status)
	}
	if booking.TotalDisplay != "Rp300.000" {
		t.Errorf("TotalDisplay = %q, want %q", booking.TotalDisplay, "Rp300.000")
	}
	if len(booking.Shares) != 1 || !booking.Shares[0].IsOwner {
		t.Fatalf("expected a single owner share, got %+v", booking.Shares)
	}
}

func TestCreateJoinableGetsInviteCodeAndOpenStatus(t *testing.T) {
	svc := newTestService(t)

	req := validRequest()
	req.IsJoinable = true
	req.MaxSlots = 10
	req.Visibility = model.InvitePublic

	booking, err := svc.Create(context.Background(), "usr-budi", &req)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if booking.Status != model.BookingOpen {
		t.Errorf("Status = %s, want OPEN", booking.Status)
	}
	if booking.InviteCode == "" {
		t.Error("joinable booking has no invite code")
	}
	if booking.PricePerSlot != 30_000 {
		t.Errorf("PricePerSlot = %d, want 30000", booking.PricePerSlot)
	}
	if booking.AvailableSlots != 9 {
		t.Errorf("AvailableSlots = %d, want 9", booking.AvailableSlots)
	}
}

func TestCreateValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*model.BookingRequest)
	}{
		{"missing venue", func(r *model.BookingRequest) { r.VenueID = "" }},
		{"bad date", func(r *model.BookingRequest) { r.Date = "07-09-2026" }},
		{"bad time", func(r *model.BookingRequest) { r.StartTime = "9am" }},
		{"end before start", func(r *model.BookingRequest) { r.StartTime = "12:00"; r.EndTime = "10:00" }},
		{"joinable with one slot", func(r *model.BookingRequest) { r.IsJoinable = true; r.MaxSlots = 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			_, err := svc.Create(ctx, "usr-budi", &req)
			if !apperrors.HasCode(err, apperrors.CodeValidation) {
				t.Fatalf("got %v, want code %s", err, apperrors.CodeValidation)
			}
		})
	}
}

func TestCreateRejectsTakenSlot(t *testing.T) {
	svc := newTestService(t)

	// bkg-0001 occupies ven-0001 tomorrow 19:00-21:00.
	req := validRequest()
	req.Date = time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")
	req.StartTime = "20:00"
	req.EndTime = "22:00"

	_, err := svc.Create(context.Background(), "usr-citra", &req)
	if !apperrors.HasCode(err, apperrors.CodeConflict) {
		t.Fatalf("got %v, want code %s", err, apperrors.CodeConflict)
	}
}

func TestListMineNarrowsByStatus(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	all, err := svc.ListMine(ctx, "usr-budi", ListQuery{})
	if err != nil {
		t.Fatalf("ListMine returned error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d bookings, want 2 seeded for usr-budi", len(all))
	}

	open, err := svc.ListMine(ctx, "usr-budi", ListQuery{Status: "OPEN"})
	if err != nil {
		t.Fatalf("ListMine returned error: %v", err)
	}
	for _, b := range open {
		if b.Status != model.BookingOpen {
			t.Errorf("booking %s has status %s, want OPEN", b.ID, b.Status)
		}
	}

	sentinel, err := svc.ListMine(ctx, "usr-budi", ListQuery{Status: "all"})
	if err != nil {
		t.Fatalf("ListMine returned error: %v", err)
	}
	if len(sentinel) != len(all) {
		t.Errorf("sentinel status narrowed the list: %d != %d", len(sentinel), len(all))
	}
}

func TestGetByIDHiddenFromStrangers(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetByID(context.Background(), "usr-sari", "bkg-0002")
	if !apperrors.HasCode(err, apperrors.CodeNotFound) {
		t.Fatalf("got %v, want code %s", err, apperrors.CodeNotFound)
	}
}

func TestCancelOwnerOnly(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Cancel(ctx, "usr-citra", "bkg-0001")
	if !apperrors.HasCode(err, apperrors.CodeForbidden) {
		t.Fatalf("non-owner cancel: got %v, want code %s", err, apperrors.CodeForbidden)
	}

	booking, err := svc.Cancel(ctx, "usr-budi", "bkg-0001")
	if err != nil {
		t.Fatalf("owner cancel returned error: %v", err)
	}
	if booking.Status != model.BookingCancelled {
		t.Errorf("Status = %s, want CANCELLED", booking.Status)
	}

	_, err = svc.Cancel(ctx, "usr-budi", "bkg-0001")
	if !apperrors.HasCode(err, apperrors.CodeConflict) {
		t.Fatalf("double cancel: got %v, want code %s", err, apperrors.CodeConflict)
	}
}

func ptr(r model.BookingRequest) *model.BookingRequest {
	return &r
}
