package client

import (
	"context"
	"net/url"

	"arenaku/pkg/model"
)

// ManagerAPI covers the pengelola operations, all scoped upstream to the
// manager's own venues.
type ManagerAPI struct {
	c *Client
}

func NewManagerAPI(c *Client) *ManagerAPI {
	return &ManagerAPI{c: c}
}

func (m *ManagerAPI) Dashboard(ctx context.Context) (*model.ManagerSummary, error) {
	var out model.ManagerSummary
	if err := m.c.Get(ctx, "/api/v1/manager/dashboard", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (m *ManagerAPI) Venues(ctx context.Context) ([]model.Venue, error) {
	var out struct {
		Data []model.Venue `json:"data"`
	}
	if err := m.c.Get(ctx, "/api/v1/manager/venues", &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (m *ManagerAPI) CreateVenue(ctx context.Context, venue model.Venue) (*model.Venue, error) {
	var out model.Venue
	if err := m.c.Post(ctx, "/api/v1/manager/venues", venue, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (m *ManagerAPI) UpdateVenue(ctx context.Context, id string, updates model.VenueUpdate) (*model.Venue, error) {
	var out model.Venue
	if err := m.c.Put(ctx, "/api/v1/manager/venues/"+url.PathEscape(id), updates, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (m *ManagerAPI) DeleteVenue(ctx context.Context, id string) error {
	return m.c.Delete(ctx, "/api/v1/manager/venues/"+url.PathEscape(id))
}

func (m *ManagerAPI) Bookings(ctx context.Context) ([]model.Booking, error) {
	var out struct {
		Data []model.Booking `json:"data"`
	}
	if err := m.c.Get(ctx, "/api/v1/manager/bookings", &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (m *ManagerAPI) UpdateBookingStatus(ctx context.Context, id string, status model.BookingStatus) (*model.Booking, error) {
	body := map[string]string{"status": string(status)}

	var out model.Booking
	if err := m.c.Patch(ctx, "/api/v1/manager/bookings/"+url.PathEscape(id)+"/status", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
