package fixture

import (
	"context"
	"testing"

	"arenaku/pkg/model"
)

func TestJoinableSharesSumToTotalWhenFull(t *testing.T) {
	p := New().Provider()
	ctx := context.Background()

	// 2 hours at Rp150.000 across 7 slots does not divide evenly.
	created, err := p.Bookings.Create(ctx, "usr-budi", model.BookingRequest{
		VenueID:    "ven-0001",
		Date:       "2026-10-05",
		StartTime:  "10:00",
		EndTime:    "12:00",
		Title:      "Futsal bareng",
		IsJoinable: true,
		MaxSlots:   7,
		Visibility: model.InvitePublic,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.TotalPrice != 300_000 {
		t.Fatalf("got total %d, want 300000", created.TotalPrice)
	}
	if created.PricePerSlot != 42_857 {
		t.Errorf("got price per slot %d, want 42857", created.PricePerSlot)
	}

	booking := created
	for _, u := range []string{"usr-citra", "usr-sari", "usr-admin", "usr-dina", "usr-eko", "usr-fajar"} {
		booking, err = p.Invites.Join(ctx, u, created.InviteCode)
		if err != nil {
			t.Fatalf("Join(%s) returned error: %v", u, err)
		}
	}

	if booking.AvailableSlots() != 0 {
		t.Fatalf("got %d available slots, want 0", booking.AvailableSlots())
	}
	if !booking.ValidateShares() {
		var sum int64
		for _, part := range booking.Participants {
			sum += part.ShareAmount
		}
		t.Errorf("shares sum to %d, want total %d", sum, booking.TotalPrice)
	}
}
