package model

import (
	"encoding/json"
	"time"
)

const (
	NotificationBookingConfirmed  = "BOOKING_CONFIRMED"
	NotificationBookingCancelled  = "BOOKING_CANCELLED"
	NotificationParticipantJoined = "PARTICIPANT_JOINED"
	NotificationPaymentReceived   = "PAYMENT_RECEIVED"
	NotificationSystem            = "SYSTEM"
)

// Notification is an asynchronous event record produced by the platform.
// The gateway only flips IsRead; it never deletes.
type Notification struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Type      string          `json:"type"`
	Title     string          `json:"title"`
	Message   string          `json:"message"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	IsRead    bool            `json:"is_read"`
	CreatedAt time.Time       `json:"created_at"`
}
