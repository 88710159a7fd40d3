package client

import (
	"context"
	"net/url"

	"arenaku/pkg/model"
)

type InviteAPI struct {
	c *Client
}

func NewInviteAPI(c *Client) *InviteAPI {
	return &InviteAPI{c: c}
}

// ListPublic returns open joinable bookings with PUBLIC visibility.
func (i *InviteAPI) ListPublic(ctx context.Context) ([]model.Booking, error) {
	var out struct {
		Data []model.Booking `json:"data"`
	}
	if err := i.c.Get(ctx, "/api/v1/invites", &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// GetByCode resolves an invite code. Codes are case-sensitive opaque
// tokens; the path escape keeps them intact on the wire.
func (i *InviteAPI) GetByCode(ctx context.Context, code string) (*model.Booking, error) {
	var out model.Booking
	if err := i.c.Get(ctx, "/api/v1/invites/"+url.PathEscape(code), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Join submits (code, acting user) upstream. Failure codes pass through
// untouched so "no slots remaining", "already joined", "booking closed" and
// "invalid code" each surface distinctly.
func (i *InviteAPI) Join(ctx context.Context, code string) (*model.Booking, error) {
	var out model.Booking
	if err := i.c.Post(ctx, "/api/v1/invites/"+url.PathEscape(code)+"/join", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
