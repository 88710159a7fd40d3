package service

import (
	"context"
	"io"
	"testing"

	managervalidator "arenaku/internal/manager/validator"
	"arenaku/internal/provider/fixture"
	apperrors "arenaku/pkg/errors"
	"arenaku/pkg/logger"
	"arenaku/pkg/model"
)

func newTestService(t *testing.T) ManagerService {
	t.Helper()
	log := logger.New(logger.Config{Level: logger.LevelError, Output: io.Discard})
	return NewManagerService(
		fixture.New().Provider().Manager,
		managervalidator.NewVenueValidator(),
		log,
	)
}

func TestDashboardCountsOwnVenues(t *testing.T) {
	svc := newTestService(t)

	dashboard, err := svc.Dashboard(context.Background(), "usr-sari")
	if err != nil {
		t.Fatalf("Dashboard returned error: %v", err)
	}

	if dashboard.VenueCount != 4 {
		t.Errorf("VenueCount = %d, want 4", dashboard.VenueCount)
	}
	if dashboard.MonthRevenueDisplay == "" {
		t.Error("MonthRevenueDisplay is empty")
	}
}

func TestCreateVenueValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		venue model.Venue
	}{
		{"zero price", model.Venue{Name: "Arena", Address: "Jl. Test 1", City: "Jakarta", PricePerHour: 0, Capacity: 10}},
		{"zero capacity", model.Venue{Name: "Arena", Address: "Jl. Test 1", City: "Jakarta", PricePerHour: 100_000, Capacity: 0}},
		{"schedule closes before it opens", model.Venue{
			Name: "Arena", Address: "Jl. Test 1", City: "Jakarta", PricePerHour: 100_000, Capacity: 10,
			Schedules: []model.VenueSchedule{{DayOfWeek: 1, OpenTime: "20:00", CloseTime: "08:00", IsAvailable: true}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			venue := tt.venue
			_, err := svc.CreateVenue(ctx, "usr-sari", &venue)
			if !apperrors.HasCode(err, apperrors.CodeValidation) {
				t.Fatalf("got %v, want code %s", err, apperrors.CodeValidation)
			}
		})
	}
}

func TestCreateVenueSkipsScheduleOrderOnClosedDays(t *testing.T) {
	svc := newTestService(t)

	// Ordering only matters on days the venue actually opens.
	_, err := svc.CreateVenue(context.Background(), "usr-sari", &model.Venue{
		Name:         "Arena Libur Senin",
		Address:      "Jl. Test 2",
		City:         "Jakarta",
		PricePerHour: 100_000,
		Capacity:     10,
		Schedules: []model.VenueSchedule{
			{DayOfWeek: 1, OpenTime: "00:00", CloseTime: "00:00", IsAvailable: false},
			{DayOfWeek: 2, OpenTime: "08:00", CloseTime: "22:00", IsAvailable: true},
		},
	})
	if err != nil {
		t.Fatalf("CreateVenue returned error: %v", err)
	}
}

func TestCreateVenueDerivesSlug(t *testing.T) {
	svc := newTestService(t)

	venue, err := svc.CreateVenue(context.Background(), "usr-sari", &model.Venue{
		Name:         "Lapangan Tenis Menteng",
		Address:      "Jl. HOS Cokroaminoto 87",
		City:         "Jakarta",
		PricePerHour: 110_000,
		Capacity:     4,
		VenueType:    "tenis",
	})
	if err != nil {
		t.Fatalf("CreateVenue returned error: %v", err)
	}

	if venue.Slug != "lapangan-tenis-menteng-jakarta" {
		t.Errorf("Slug = %q, want %q", venue.Slug, "lapangan-tenis-menteng-jakarta")
	}
	if !venue.IsActive {
		t.Error("new venue is not active")
	}
}

func TestUpdateVenueOwnership(t *testing.T) {
	svc := newTestService(t)
	price := int64(175_000)

	_, err := svc.UpdateVenue(context.Background(), "usr-lain", "ven-0001", &model.VenueUpdate{
		PricePerHour: &price,
	})
	if !apperrors.HasCode(err, apperrors.CodeForbidden) {
		t.Fatalf("got %v, want code %s", err, apperrors.CodeForbidden)
	}
}

func TestUpdateBookingStatusTransitions(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// bkg-0002 is CONFIRMED; completing it is a legal forward move.
	booking, err := svc.UpdateBookingStatus(ctx, "usr-sari", "bkg-0002", model.BookingCompleted)
	if err != nil {
		t.Fatalf("UpdateBookingStatus returned error: %v", err)
	}
	if booking.Status != model.BookingCompleted {
		t.Errorf("Status = %s, want COMPLETED", booking.Status)
	}

	// Completed is terminal.
	_, err = svc.UpdateBookingStatus(ctx, "usr-sari", "bkg-0002", model.BookingCancelled)
	if !apperrors.HasCode(err, apperrors.CodeConflict) {
		t.Fatalf("terminal transition: got %v, want code %s", err, apperrors.CodeConflict)
	}

	_, err = svc.UpdateBookingStatus(ctx, "usr-sari", "bkg-0003", "UNKNOWN")
	if !apperrors.HasCode(err, apperrors.CodeInvalidInput) {
		t.Fatalf("unknown status: got %v, want code %s", err, apperrors.CodeInvalidInput)
	}
}
