package client

import (
	"context"
	"fmt"
	"net/url"

	"arenaku/pkg/model"
)

type VenueAPI struct {
	c *Client
}

func NewVenueAPI(c *Client) *VenueAPI {
	return &VenueAPI{c: c}
}

type VenueQuery struct {
	Query  string
	City   string
	Type   string
	Limit  int
	Offset int
}

type venueListEnvelope struct {
	Data       []model.Venue `json:"data"`
	TotalCount int64         `json:"total_count"`
}

func (v *VenueAPI) List(ctx context.Context, q VenueQuery) ([]model.Venue, int64, error) {
	params := url.Values{}
	if q.Query != "" {
		params.Set("q", q.Query)
	}
	if q.City != "" {
		params.Set("city", q.City)
	}
	if q.Type != "" {
		params.Set("type", q.Type)
	}
	params.Set("limit", fmt.Sprintf("%d", q.Limit))
	params.Set("offset", fmt.Sprintf("%d", q.Offset))

	var out venueListEnvelope
	if err := v.c.Get(ctx, "/api/v1/venues?"+params.Encode(), &out); err != nil {
		return nil, 0, err
	}
	return out.Data, out.TotalCount, nil
}

func (v *VenueAPI) GetByID(ctx context.Context, id string) (*model.Venue, error) {
	var out model.Venue
	if err := v.c.Get(ctx, "/api/v1/venues/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (v *VenueAPI) Availability(ctx context.Context, id, date string) ([]model.TimeSlot, error) {
	path := fmt.Sprintf("/api/v1/venues/%s/availability?date=%s",
		url.PathEscape(id), url.QueryEscape(date))

	var out struct {
		Slots []model.TimeSlot `json:"slots"`
	}
	if err := v.c.Get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out.Slots, nil
}

func (v *VenueAPI) Facets(ctx context.Context) (*model.VenueFacets, error) {
	var out model.VenueFacets
	if err := v.c.Get(ctx, "/api/v1/venues/facets", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
