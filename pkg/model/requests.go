package model

// Request and view shapes shared by the client facade, the providers, and
// the handlers.

type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type Registration struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone,omitempty" validate:"omitempty,e164"`
	Password string `json:"password" validate:"required,min=8"`
}

// BookingRequest creates a reservation. Slot-conflict resolution happens
// upstream; the gateway only validates shape.
type BookingRequest struct {
	VenueID      string           `json:"venue_id" validate:"required"`
	Date         string           `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime    string           `json:"start_time" validate:"required,hhmm"`
	EndTime      string           `json:"end_time" validate:"required,hhmm"`
	IsJoinable   bool             `json:"is_joinable"`
	MaxSlots     int              `json:"max_slots" validate:"min=0,max=200"`
	PricePerSlot int64            `json:"price_per_slot" validate:"min=0"`
	Visibility   InviteVisibility `json:"visibility,omitempty" validate:"omitempty,oneof=PUBLIC PRIVATE"`
	Title        string           `json:"title,omitempty" validate:"omitempty,max=100"`
	Notes        string           `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// VenueUpdate carries partial venue edits from the pengelola surface.
type VenueUpdate struct {
	Name         string          `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Address      string          `json:"address,omitempty" validate:"omitempty,min=5,max=255"`
	City         string          `json:"city,omitempty" validate:"omitempty,max=100"`
	PricePerHour *int64          `json:"price_per_hour,omitempty" validate:"omitempty,min=1"`
	Capacity     *int            `json:"capacity,omitempty" validate:"omitempty,min=1,max=1000"`
	Images       []string        `json:"images,omitempty" validate:"omitempty,dive,url"`
	Facilities   []string        `json:"facilities,omitempty"`
	VenueType    string          `json:"venue_type,omitempty"`
	IsActive     *bool           `json:"is_active,omitempty"`
	Schedules    []VenueSchedule `json:"schedules,omitempty" validate:"omitempty,dive"`
}

type VenueFacets struct {
	Cities []string `json:"cities"`
	Types  []string `json:"types"`
}

// ManagerSummary is the pengelola dashboard card row.
type ManagerSummary struct {
	VenueCount      int   `json:"venue_count"`
	TodayBookings   int   `json:"today_bookings"`
	PendingBookings int   `json:"pending_bookings"`
	MonthRevenue    int64 `json:"month_revenue"`
}

// AdminSummary is the admin dashboard card row.
type AdminSummary struct {
	UserCount    int `json:"user_count"`
	VenueCount   int `json:"venue_count"`
	BookingCount int `json:"booking_count"`
}
