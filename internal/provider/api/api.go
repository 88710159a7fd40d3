// Package api adapts the upstream business API client to the provider
// interfaces. The upstream scopes every call by the bearer token the
// transport injects from the request context, so the explicit user
// arguments that the fixture needs are ignored here.
package api

import (
	"context"

	"arenaku/internal/provider"
	"arenaku/pkg/client"
	"arenaku/pkg/model"
)

// New wires every resource view onto a shared client.
func New(c *client.Client) provider.Provider {
	return provider.Provider{
		Auth:          &authView{api: client.NewAuthAPI(c)},
		Venues:        &venueView{api: client.NewVenueAPI(c)},
		Bookings:      &bookingView{api: client.NewBookingAPI(c)},
		Invites:       &inviteView{api: client.NewInviteAPI(c)},
		Notifications: &notificationView{api: client.NewNotificationAPI(c)},
		Manager:       &managerView{api: client.NewManagerAPI(c)},
		Admin:         &adminView{api: client.NewAdminAPI(c)},
	}
}

type authView struct {
	api *client.AuthAPI
}

func (a *authView) Login(ctx context.Context, creds model.Credentials) (string, model.User, error) {
	res, err := a.api.Login(ctx, creds)
	if err != nil {
		return "", model.User{}, err
	}
	return res.Token, res.User, nil
}

func (a *authView) Register(ctx context.Context, reg model.Registration) (string, model.User, error) {
	res, err := a.api.Register(ctx, reg)
	if err != nil {
		return "", model.User{}, err
	}
	return res.Token, res.User, nil
}

// Profile ignores the token argument: the transport injects the bearer
// carried by ctx.
func (a *authView) Profile(ctx context.Context, _ string) (*model.User, error) {
	return a.api.Profile(ctx)
}

type venueView struct {
	api *client.VenueAPI
}

func (v *venueView) List(ctx context.Context) ([]model.Venue, error) {
	venues, _, err := v.api.List(ctx, client.VenueQuery{})
	return venues, err
}

func (v *venueView) GetByID(ctx context.Context, id string) (*model.Venue, error) {
	return v.api.GetByID(ctx, id)
}

func (v *venueView) Availability(ctx context.Context, id, date string) ([]model.TimeSlot, error) {
	return v.api.Availability(ctx, id, date)
}

func (v *venueView) Facets(ctx context.Context) (*model.VenueFacets, error) {
	return v.api.Facets(ctx)
}

type bookingView struct {
	api *client.BookingAPI
}

func (b *bookingView) Create(ctx context.Context, _ string, req model.BookingRequest) (*model.Booking, error) {
	return b.api.Create(ctx, req)
}

func (b *bookingView) ListByUser(ctx context.Context, _ string) ([]model.Booking, error) {
	return b.api.ListMine(ctx)
}

func (b *bookingView) GetByID(ctx context.Context, _, id string) (*model.Booking, error) {
	return b.api.GetByID(ctx, id)
}

func (b *bookingView) Cancel(ctx context.Context, _, id string) (*model.Booking, error) {
	return b.api.Cancel(ctx, id)
}

type inviteView struct {
	api *client.InviteAPI
}

func (i *inviteView) ListPublic(ctx context.Context) ([]model.Booking, error) {
	return i.api.ListPublic(ctx)
}

func (i *inviteView) GetByCode(ctx context.Context, code string) (*model.Booking, error) {
	return i.api.GetByCode(ctx, code)
}

func (i *inviteView) Join(ctx context.Context, _, code string) (*model.Booking, error) {
	return i.api.Join(ctx, code)
}

type notificationView struct {
	api *client.NotificationAPI
}

func (n *notificationView) List(ctx context.Context, _ string) ([]model.Notification, error) {
	return n.api.List(ctx)
}

func (n *notificationView) UnreadCount(ctx context.Context, _ string) (int, error) {
	return n.api.UnreadCount(ctx)
}

func (n *notificationView) MarkRead(ctx context.Context, _, id string) error {
	return n.api.MarkRead(ctx, id)
}

func (n *notificationView) MarkAllRead(ctx context.Context, _ string) error {
	return n.api.MarkAllRead(ctx)
}

type managerView struct {
	api *client.ManagerAPI
}

func (m *managerView) Summary(ctx context.Context, _ string) (*model.ManagerSummary, error) {
	return m.api.Dashboard(ctx)
}

func (m *managerView) Venues(ctx context.Context, _ string) ([]model.Venue, error) {
	return m.api.Venues(ctx)
}

func (m *managerView) CreateVenue(ctx context.Context, _ string, venue model.Venue) (*model.Venue, error) {
	return m.api.CreateVenue(ctx, venue)
}

func (m *managerView) UpdateVenue(ctx context.Context, _, id string, updates model.VenueUpdate) (*model.Venue, error) {
	return m.api.UpdateVenue(ctx, id, updates)
}

func (m *managerView) DeleteVenue(ctx context.Context, _, id string) error {
	return m.api.DeleteVenue(ctx, id)
}

func (m *managerView) Bookings(ctx context.Context, _ string) ([]model.Booking, error) {
	return m.api.Bookings(ctx)
}

func (m *managerView) UpdateBookingStatus(ctx context.Context, _, id string, status model.BookingStatus) (*model.Booking, error) {
	return m.api.UpdateBookingStatus(ctx, id, status)
}

type adminView struct {
	api *client.AdminAPI
}

func (a *adminView) Summary(ctx context.Context) (*model.AdminSummary, error) {
	return a.api.Summary(ctx)
}

func (a *adminView) Users(ctx context.Context) ([]model.User, error) {
	return a.api.Users(ctx)
}
