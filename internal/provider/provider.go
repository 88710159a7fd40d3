// Package provider abstracts where view data comes from. The gateway runs
// against either the seeded fixture set or the live business API; the
// feature services never know which. Acting-user arguments are explicit so
// the fixture can scope data; the API implementation relies on the bearer
// token instead and ignores them.
package provider

import (
	"context"

	"arenaku/pkg/model"
)

type Auth interface {
	Login(ctx context.Context, creds model.Credentials) (string, model.User, error)
	Register(ctx context.Context, reg model.Registration) (string, model.User, error)
	Profile(ctx context.Context, token string) (*model.User, error)
}

type Venues interface {
	// List returns publicly listable venues (isActive=true only).
	List(ctx context.Context) ([]model.Venue, error)
	GetByID(ctx context.Context, id string) (*model.Venue, error)
	Availability(ctx context.Context, id, date string) ([]model.TimeSlot, error)
	Facets(ctx context.Context) (*model.VenueFacets, error)
}

type Bookings interface {
	Create(ctx context.Context, ownerID string, req model.BookingRequest) (*model.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]model.Booking, error)
	GetByID(ctx context.Context, userID, id string) (*model.Booking, error)
	Cancel(ctx context.Context, userID, id string) (*model.Booking, error)
}

type Invites interface {
	ListPublic(ctx context.Context) ([]model.Booking, error)
	GetByCode(ctx context.Context, code string) (*model.Booking, error)
	Join(ctx context.Context, userID, code string) (*model.Booking, error)
}

type Notifications interface {
	List(ctx context.Context, userID string) ([]model.Notification, error)
	UnreadCount(ctx context.Context, userID string) (int, error)
	MarkRead(ctx context.Context, userID, id string) error
	MarkAllRead(ctx context.Context, userID string) error
}

type Manager interface {
	Summary(ctx context.Context, managerID string) (*model.ManagerSummary, error)
	Venues(ctx context.Context, managerID string) ([]model.Venue, error)
	CreateVenue(ctx context.Context, managerID string, venue model.Venue) (*model.Venue, error)
	UpdateVenue(ctx context.Context, managerID, id string, updates model.VenueUpdate) (*model.Venue, error)
	DeleteVenue(ctx context.Context, managerID, id string) error
	Bookings(ctx context.Context, managerID string) ([]model.Booking, error)
	UpdateBookingStatus(ctx context.Context, managerID, id string, status model.BookingStatus) (*model.Booking, error)
}

type Admin interface {
	Summary(ctx context.Context) (*model.AdminSummary, error)
	Users(ctx context.Context) ([]model.User, error)
}

// Provider bundles every resource interface; composition picks one concrete
// set at startup.
type Provider struct {
	Auth          Auth
	Venues        Venues
	Bookings      Bookings
	Invites       Invites
	Notifications Notifications
	Manager       Manager
	Admin         Admin
}
