package client

import (
	"context"

	"arenaku/pkg/model"
)

type AuthAPI struct {
	c *Client
}

func NewAuthAPI(c *Client) *AuthAPI {
	return &AuthAPI{c: c}
}

// AuthResult is the upstream login/register response: the bearer token the
// gateway will hold for the session plus the user profile.
type AuthResult struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

func (a *AuthAPI) Login(ctx context.Context, creds model.Credentials) (*AuthResult, error) {
	var out AuthResult
	if err := a.c.Post(ctx, "/api/v1/auth/login", creds, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AuthAPI) Register(ctx context.Context, reg model.Registration) (*AuthResult, error) {
	var out AuthResult
	if err := a.c.Post(ctx, "/api/v1/auth/register", reg, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AuthAPI) Profile(ctx context.Context) (*model.User, error) {
	var out model.User
	if err := a.c.Get(ctx, "/api/v1/auth/profile", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
