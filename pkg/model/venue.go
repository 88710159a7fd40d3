package model

import "time"

// Venue is a bookable physical location owned by exactly one pengelola.
type Venue struct {
	ID           string          `json:"id"`
	ManagerID    string          `json:"manager_id" validate:"required"`
	Name         string          `json:"name" validate:"required,min=2,max=100"`
	Slug         string          `json:"slug,omitempty"`
	Address      string          `json:"address" validate:"required,min=5,max=255"`
	City         string          `json:"city,omitempty" validate:"omitempty,max=100"`
	PricePerHour int64           `json:"price_per_hour" validate:"required,min=1"`
	Capacity     int             `json:"capacity" validate:"required,min=1,max=1000"`
	Images       []string        `json:"images,omitempty" validate:"omitempty,dive,url"`
	Facilities   []string        `json:"facilities,omitempty"`
	VenueType    string          `json:"venue_type,omitempty"`
	IsActive     bool            `json:"is_active"`
	Schedules    []VenueSchedule `json:"schedules,omitempty" validate:"omitempty,dive"`
	CreatedAt    time.Time       `json:"created_at"`
}

// VenueSchedule is a recurring weekly availability window.
// OpenTime must precede CloseTime when the day is available.
type VenueSchedule struct {
	DayOfWeek   int    `json:"day_of_week" validate:"min=0,max=6"`
	OpenTime    string `json:"open_time" validate:"required"`
	CloseTime   string `json:"close_time" validate:"required"`
	IsAvailable bool   `json:"is_available"`
}

// TimeSlot is one bookable hour of a venue on a concrete date, derived from
// the venue's weekly schedule and existing bookings.
type TimeSlot struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Available bool   `json:"available"`
}
