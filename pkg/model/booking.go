package model

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingOpen      BookingStatus = "OPEN"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCompleted BookingStatus = "COMPLETED"
	BookingCancelled BookingStatus = "CANCELLED"
)

// CanTransition reports whether a booking may move from one lifecycle status
// to another. The forward chain is PENDING → OPEN → CONFIRMED → COMPLETED;
// CANCELLED is reachable from any non-terminal status. OPEN only applies to
// joinable bookings, which the caller checks separately.
func CanTransition(from, to BookingStatus) bool {
	if from == to {
		return false
	}
	switch from {
	case BookingPending:
		return to == BookingOpen || to == BookingConfirmed || to == BookingCancelled
	case BookingOpen:
		return to == BookingConfirmed || to == BookingCancelled
	case BookingConfirmed:
		return to == BookingCompleted || to == BookingCancelled
	}
	return false
}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingOpen, BookingConfirmed, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

func (s BookingStatus) Terminal() bool {
	return s == BookingCompleted || s == BookingCancelled
}

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "UNPAID"
	PaymentPending  PaymentStatus = "PENDING"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

type InviteVisibility string

const (
	InvitePublic  InviteVisibility = "PUBLIC"
	InvitePrivate InviteVisibility = "PRIVATE"
)

// Booking reserves one venue for one contiguous interval, optionally open to
// additional paying participants ("joinan").
type Booking struct {
	ID           string               `json:"id"`
	VenueID      string               `json:"venue_id" validate:"required"`
	Venue        *Venue               `json:"venue,omitempty"`
	OwnerID      string               `json:"owner_id"`
	Owner        *User                `json:"owner,omitempty"`
	Date         string               `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime    string               `json:"start_time" validate:"required"`
	EndTime      string               `json:"end_time" validate:"required"`
	TotalPrice   int64                `json:"total_price" validate:"min=0"`
	PricePerSlot int64                `json:"price_per_slot" validate:"min=0"`
	MaxSlots     int                  `json:"max_slots" validate:"min=0,max=200"`
	IsJoinable   bool                 `json:"is_joinable"`
	Visibility   InviteVisibility     `json:"visibility,omitempty" validate:"omitempty,oneof=PUBLIC PRIVATE"`
	InviteCode   string               `json:"invite_code,omitempty"`
	Title        string               `json:"title,omitempty" validate:"omitempty,max=100"`
	Notes        string               `json:"notes,omitempty" validate:"omitempty,max=500"`
	Status       BookingStatus        `json:"status"`
	Participants []BookingParticipant `json:"participants,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`
}

// BookingParticipant is one user's financial stake in a booking. Exactly one
// participant per booking carries IsOwner=true, and that participant's
// UserID equals the booking's OwnerID.
type BookingParticipant struct {
	BookingID     string        `json:"booking_id"`
	UserID        string        `json:"user_id"`
	User          *User         `json:"user,omitempty"`
	ShareAmount   int64         `json:"share_amount"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	IsOwner       bool          `json:"is_owner"`
	JoinedAt      time.Time     `json:"joined_at"`
}

// FilledSlots counts participants still occupying a slot. Refunded
// participants have left the booking and free their slot.
func (b *Booking) FilledSlots() int {
	n := 0
	for _, p := range b.Participants {
		if p.PaymentStatus != PaymentRefunded {
			n++
		}
	}
	return n
}

// AvailableSlots is MaxSlots minus filled slots, floored at zero. A booking
// that is not joinable has no slots to offer regardless of MaxSlots.
func (b *Booking) AvailableSlots() int {
	if !b.IsJoinable || b.MaxSlots <= 0 {
		return 0
	}
	remaining := b.MaxSlots - b.FilledSlots()
	if remaining < 0 {
		return 0
	}
	return remaining
}

// CanJoin reports whether the booking should present a join affordance.
func (b *Booking) CanJoin() bool {
	if !b.IsJoinable {
		return false
	}
	if b.Status != BookingOpen && b.Status != BookingConfirmed {
		return false
	}
	return b.AvailableSlots() > 0
}

// HasParticipant reports whether the user already occupies a slot.
func (b *Booking) HasParticipant(userID string) bool {
	for _, p := range b.Participants {
		if p.UserID == userID && p.PaymentStatus != PaymentRefunded {
			return true
		}
	}
	return false
}

// ValidateShares checks the share invariants: a non-joinable booking's owner
// share equals the total price, and a fully filled joinable booking's shares
// sum to the total price.
func (b *Booking) ValidateShares() bool {
	if !b.IsJoinable {
		for _, p := range b.Participants {
			if p.IsOwner {
				return p.ShareAmount == b.TotalPrice
			}
		}
		return len(b.Participants) == 0
	}

	if b.AvailableSlots() > 0 {
		return true
	}

	var sum int64
	for _, p := range b.Participants {
		if p.PaymentStatus != PaymentRefunded {
			sum += p.ShareAmount
		}
	}
	return sum == b.TotalPrice
}
