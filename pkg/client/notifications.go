package client

import (
	"context"
	"net/url"

	"arenaku/pkg/model"
)

type NotificationAPI struct {
	c *Client
}

func NewNotificationAPI(c *Client) *NotificationAPI {
	return &NotificationAPI{c: c}
}

func (n *NotificationAPI) List(ctx context.Context) ([]model.Notification, error) {
	var out struct {
		Data []model.Notification `json:"data"`
	}
	if err := n.c.Get(ctx, "/api/v1/notifications", &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (n *NotificationAPI) UnreadCount(ctx context.Context) (int, error) {
	var out struct {
		Count int `json:"count"`
	}
	if err := n.c.Get(ctx, "/api/v1/notifications/unread-count", &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

func (n *NotificationAPI) MarkRead(ctx context.Context, id string) error {
	return n.c.Patch(ctx, "/api/v1/notifications/"+url.PathEscape(id)+"/read", nil, nil)
}

func (n *NotificationAPI) MarkAllRead(ctx context.Context) error {
	return n.c.Patch(ctx, "/api/v1/notifications/read-all", nil, nil)
}
