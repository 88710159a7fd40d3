package client

import (
	"context"
	"net/url"

	"arenaku/pkg/model"
)

type BookingAPI struct {
	c *Client
}

func NewBookingAPI(c *Client) *BookingAPI {
	return &BookingAPI{c: c}
}

func (b *BookingAPI) Create(ctx context.Context, req model.BookingRequest) (*model.Booking, error) {
	var out model.Booking
	if err := b.c.Post(ctx, "/api/v1/bookings", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListMine returns the acting user's bookings, owned and joined.
func (b *BookingAPI) ListMine(ctx context.Context) ([]model.Booking, error) {
	var out struct {
		Data []model.Booking `json:"data"`
	}
	if err := b.c.Get(ctx, "/api/v1/bookings", &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (b *BookingAPI) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	var out model.Booking
	if err := b.c.Get(ctx, "/api/v1/bookings/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (b *BookingAPI) Cancel(ctx context.Context, id string) (*model.Booking, error) {
	var out model.Booking
	if err := b.c.Post(ctx, "/api/v1/bookings/"+url.PathEscape(id)+"/cancel", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
