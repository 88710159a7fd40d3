package service

import (
	"context"
	"io"
	"testing"

	"arenaku/internal/provider/fixture"
	apperrors "arenaku/pkg/errors"
	"arenaku/pkg/logger"
)

func newTestService(t *testing.T) VenueService {
	t.Helper()
	log := logger.New(logger.Config{Level: logger.LevelError, Output: io.Discard})
	return NewVenueService(fixture.New().Provider().Venues, log)
}

func TestListExcludesInactive(t *testing.T) {
	svc := newTestService(t)

	venues, _, err := svc.List(context.Background(), ListQuery{})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	for _, v := range venues {
		if !v.IsActive {
			t.Errorf("venue %s is inactive but was listed", v.ID)
		}
	}
	if len(venues) != 3 {
		t.Fatalf("got %d venues, want 3 active seed venues", len(venues))
	}
}

func TestListFreeTextMatchesNameAndCity(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		query ListQuery
		want  int
	}{
		{"name substring", ListQuery{Query: "futsal"}, 1},
		{"city substring", ListQuery{Query: "bandung"}, 1},
		{"city selector", ListQuery{City: "Jakarta"}, 2},
		{"type selector", ListQuery{Type: "badminton"}, 1},
		{"sentinel city", ListQuery{City: "all"}, 3},
		{"anded", ListQuery{Query: "futsal", City: "Bandung"}, 0},
		{"no match", ListQuery{Query: "zzz"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			venues, total, err := svc.List(ctx, tt.query)
			if err != nil {
				t.Fatalf("List returned error: %v", err)
			}
			if len(venues) != tt.want || total != int64(tt.want) {
				t.Errorf("got %d venues (total %d), want %d", len(venues), total, tt.want)
			}
		})
	}
}

func TestListPagination(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	page, total, err := svc.List(ctx, ListQuery{Limit: 2, Offset: 0})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(page) != 2 || total != 3 {
		t.Fatalf("first page: got %d venues (total %d), want 2 of 3", len(page), total)
	}

	rest, total, err := svc.List(ctx, ListQuery{Limit: 2, Offset: 2})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(rest) != 1 || total != 3 {
		t.Fatalf("second page: got %d venues (total %d), want 1 of 3", len(rest), total)
	}

	empty, _, err := svc.List(ctx, ListQuery{Limit: 2, Offset: 10})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("past-the-end page: got %d venues, want 0", len(empty))
	}
}

func TestListCarriesPriceDisplay(t *testing.T) {
	svc := newTestService(t)

	venues, _, err := svc.List(context.Background(), ListQuery{Query: "futsal"})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(venues) != 1 {
		t.Fatalf("got %d venues, want 1", len(venues))
	}
	if venues[0].PriceDisplay != "Rp150.000" {
		t.Errorf("PriceDisplay = %q, want %q", venues[0].PriceDisplay, "Rp150.000")
	}
}

func TestGetBySlug(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	venue, err := svc.GetBySlug(ctx, "futsal-arena-jakarta-jakarta")
	if err != nil {
		t.Fatalf("GetBySlug returned error: %v", err)
	}
	if venue.ID != "ven-0001" {
		t.Errorf("got venue %s, want ven-0001", venue.ID)
	}

	_, err = svc.GetBySlug(ctx, "no-such-venue")
	if !apperrors.HasCode(err, apperrors.CodeNotFound) {
		t.Fatalf("unknown slug: got %v, want code %s", err, apperrors.CodeNotFound)
	}
}

func TestAvailabilityRequiresDate(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Availability(context.Background(), "ven-0001", "")
	if !apperrors.HasCode(err, apperrors.CodeInvalidInput) {
		t.Fatalf("got %v, want code %s", err, apperrors.CodeInvalidInput)
	}
}
