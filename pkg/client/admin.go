package client

import (
	"context"

	"arenaku/pkg/model"
)

type AdminAPI struct {
	client *Client
}

func NewAdminAPI(c *Client) *AdminAPI {
	return &AdminAPI{client: c}
}

func (a *AdminAPI) Summary(ctx context.Context) (*model.AdminSummary, error) {
	var summary model.AdminSummary
	if err := a.client.Get(ctx, "/api/v1/admin/summary", &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (a *AdminAPI) Users(ctx context.Context) ([]model.User, error) {
	var envelope struct {
		Data []model.User `json:"data"`
	}
	if err := a.client.Get(ctx, "/api/v1/admin/users", &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}
