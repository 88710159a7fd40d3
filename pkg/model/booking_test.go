package model

import "testing"

func participants(statuses ...PaymentStatus) []BookingParticipant {
	out := make([]BookingParticipant, 0, len(statuses))
	for i, s := range statuses {
		p := BookingParticipant{
			UserID:        string(rune('a' + i)),
			PaymentStatus: s,
		}
		if i == 0 {
			p.IsOwner = true
		}
		out = append(out, p)
	}
	return out
}

func TestFilledSlots(t *testing.T) {
	tests := []struct {
		name     string
		statuses []PaymentStatus
		expected int
	}{
		{"empty", nil, 0},
		{"all active", []PaymentStatus{PaymentPaid, PaymentUnpaid, PaymentPending}, 3},
		{"refunded excluded", []PaymentStatus{PaymentPaid, PaymentRefunded, PaymentUnpaid}, 2},
		{"all refunded", []PaymentStatus{PaymentRefunded, PaymentRefunded}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{MaxSlots: 10, IsJoinable: true, Participants: participants(tt.statuses...)}
			if got := b.FilledSlots(); got != tt.expected {
				t.Errorf("expected %d filled slots, got %d", tt.expected, got)
			}
		})
	}
}

func TestAvailableSlots(t *testing.T) {
	tests := []struct {
		name       string
		maxSlots   int
		isJoinable bool
		statuses   []PaymentStatus
		expected   int
	}{
		{"open slots remain", 4, true, []PaymentStatus{PaymentPaid}, 3},
		{"fully filled", 2, true, []PaymentStatus{PaymentPaid, PaymentUnpaid}, 0},
		{"overfilled floors at zero", 1, true, []PaymentStatus{PaymentPaid, PaymentPaid}, 0},
		{"refund frees a slot", 2, true, []PaymentStatus{PaymentPaid, PaymentRefunded}, 1},
		{"zero max slots", 0, true, nil, 0},
		{"not joinable", 5, false, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{
				MaxSlots:     tt.maxSlots,
				IsJoinable:   tt.isJoinable,
				Participants: participants(tt.statuses...),
			}
			if got := b.AvailableSlots(); got != tt.expected {
				t.Errorf("expected %d available slots, got %d", tt.expected, got)
			}
		})
	}
}

func TestCanJoin(t *testing.T) {
	tests := []struct {
		name       string
		booking    Booking
		expected   bool
	}{
		{
			name:     "open with free slots",
			booking:  Booking{MaxSlots: 4, IsJoinable: true, Status: BookingOpen},
			expected: true,
		},
		{
			name:     "confirmed with free slots",
			booking:  Booking{MaxSlots: 4, IsJoinable: true, Status: BookingConfirmed},
			expected: true,
		},
		{
			name:     "pending never joinable",
			booking:  Booking{MaxSlots: 4, IsJoinable: true, Status: BookingPending},
			expected: false,
		},
		{
			name:     "cancelled never joinable",
			booking:  Booking{MaxSlots: 4, IsJoinable: true, Status: BookingCancelled},
			expected: false,
		},
		{
			name:     "not joinable regardless of slots",
			booking:  Booking{MaxSlots: 4, IsJoinable: false, Status: BookingOpen},
			expected: false,
		},
		{
			name: "no slots remaining",
			booking: Booking{
				MaxSlots:   1,
				IsJoinable: true,
				Status:     BookingOpen,
				Participants: participants(PaymentPaid),
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.booking.CanJoin(); got != tt.expected {
				t.Errorf("expected CanJoin=%v, got %v", tt.expected, got)
			}
		})
	}
}

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to BookingStatus }{
		{BookingPending, BookingOpen},
		{BookingPending, BookingConfirmed},
		{BookingPending, BookingCancelled},
		{BookingOpen, BookingConfirmed},
		{BookingOpen, BookingCancelled},
		{BookingConfirmed, BookingCompleted},
		{BookingConfirmed, BookingCancelled},
	}
	for _, tr := range allowed {
		if !CanTransition(tr.from, tr.to) {
			t.Errorf("expected %s → %s to be allowed", tr.from, tr.to)
		}
	}

	denied := []struct{ from, to BookingStatus }{
		{BookingCompleted, BookingCancelled},
		{BookingCancelled, BookingOpen},
		{BookingConfirmed, BookingOpen},
		{BookingOpen, BookingOpen},
		{BookingCompleted, BookingPending},
	}
	for _, tr := range denied {
		if CanTransition(tr.from, tr.to) {
			t.Errorf("expected %s → %s to be denied", tr.from, tr.to)
		}
	}
}

func TestValidateShares(t *testing.T) {
	t.Run("non-joinable owner carries total", func(t *testing.T) {
		b := &Booking{
			TotalPrice: 200_000,
			IsJoinable: false,
			Participants: []BookingParticipant{
				{UserID: "u1", IsOwner: true, ShareAmount: 200_000, PaymentStatus: PaymentPaid},
			},
		}
		if !b.ValidateShares() {
			t.Error("expected shares to validate")
		}

		b.Participants[0].ShareAmount = 150_000
		if b.ValidateShares() {
			t.Error("expected mismatched owner share to fail")
		}
	})

	t.Run("filled joinable shares sum to total", func(t *testing.T) {
		b := &Booking{
			TotalPrice: 300_000,
			MaxSlots:   3,
			IsJoinable: true,
			Participants: []BookingParticipant{
				{UserID: "u1", IsOwner: true, ShareAmount: 100_000, PaymentStatus: PaymentPaid},
				{UserID: "u2", ShareAmount: 100_000, PaymentStatus: PaymentPaid},
				{UserID: "u3", ShareAmount: 100_000, PaymentStatus: PaymentUnpaid},
			},
		}
		if !b.ValidateShares() {
			t.Error("expected filled booking shares to validate")
		}
	})

	t.Run("partially filled joinable is not checked", func(t *testing.T) {
		b := &Booking{
			TotalPrice: 300_000,
			MaxSlots:   3,
			IsJoinable: true,
			Participants: []BookingParticipant{
				{UserID: "u1", IsOwner: true, ShareAmount: 100_000, PaymentStatus: PaymentPaid},
			},
		}
		if !b.ValidateShares() {
			t.Error("expected partially filled booking to pass")
		}
	})
}

func TestHasParticipant(t *testing.T) {
	b := &Booking{
		Participants: []BookingParticipant{
			{UserID: "u1", PaymentStatus: PaymentPaid},
			{UserID: "u2", PaymentStatus: PaymentRefunded},
		},
	}
	if !b.HasParticipant("u1") {
		t.Error("expected active participant to be found")
	}
	if b.HasParticipant("u2") {
		t.Error("expected refunded participant to count as left")
	}
	if b.HasParticipant("u3") {
		t.Error("expected unknown user not to be found")
	}
}
