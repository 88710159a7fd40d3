// Package client is the thin REST facade over the external business API.
// All booking conflict resolution, payment settlement, and invite redemption
// happen upstream; this package only shapes requests, decodes responses, and
// maps upstream failures onto the application error taxonomy.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	apperrors "arenaku/pkg/errors"
)

type Client struct {
	baseURL        string
	doer           Doer
	token          TokenSource
	onUnauthorized func(ctx context.Context)
}

type Option func(*Client)

// WithTokenSource supplies the session token lookup for InjectAuth.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.token = ts }
}

// WithUnauthorizedHook supplies the Handle401 callback.
func WithUnauthorizedHook(fn func(ctx context.Context)) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// WithDoer replaces the base transport. Tests use this to stub upstream.
func WithDoer(d Doer) Option {
	return func(c *Client) { c.doer = d }
}

func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		doer:    &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}

	// Assemble the stage chain around the base transport: auth injection
	// runs on the way out, 401 handling on the way back.
	c.doer = Handle401(InjectAuth(c.doer, c.token), c.onUnauthorized)
	return c
}

type Response struct {
	StatusCode int
	Body       []byte
}

func (r *Response) DecodeJSON(target any) error {
	return json.Unmarshal(r.Body, target)
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.call(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.call(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.call(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.call(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.call(ctx, http.MethodDelete, path, nil, nil)
}

// GetRaw fetches a response without JSON decoding. Used for binary payloads.
func (c *Client) GetRaw(ctx context.Context, path string) (*Response, error) {
	resp, err := c.send(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, c.upstreamError(ctx, resp)
	}
	return resp, nil
}

func (c *Client) call(ctx context.Context, method, path string, body, out any) error {
	resp, err := c.send(ctx, method, path, body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return c.upstreamError(ctx, resp)
	}
	if out == nil {
		return nil
	}
	if err := resp.DecodeJSON(out); err != nil {
		return apperrors.Upstream("unexpected response from server", err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, body any) (*Response, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return nil, apperrors.Upstream("could not reach the server", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.Upstream("failed to read server response", err)
	}

	return &Response{StatusCode: resp.StatusCode, Body: respBody}, nil
}

// upstreamError decodes an upstream failure. A 401 on a call that carried
// a session token means the session is dead: by the time this runs the
// Handle401 stage has already invalidated it, and the failing response
// itself must tell the browser where to navigate. A 401 on an
// unauthenticated call (a failed login) stays inline with no hint.
func (c *Client) upstreamError(ctx context.Context, resp *Response) error {
	err := decodeUpstreamError(resp)
	if resp.StatusCode != http.StatusUnauthorized {
		return err
	}
	if c.token == nil || c.token(ctx) == "" {
		return err
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.WithRedirect("/login")
	}
	return err
}

type upstreamEnvelope struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Error   string         `json:"error"`
	Details map[string]any `json:"details,omitempty"`
}

// decodeUpstreamError maps an upstream error body onto an AppError, keeping
// the upstream code when it carries one so distinct failures (SLOTS_FULL,
// ALREADY_JOINED, ...) stay distinct at the UI boundary.
func decodeUpstreamError(resp *Response) error {
	var env upstreamEnvelope
	_ = json.Unmarshal(resp.Body, &env)

	message := env.Message
	if message == "" {
		message = env.Error
	}

	if env.Code != "" {
		if message == "" {
			message = "request rejected by the server"
		}
		return apperrors.New(env.Code, message, resp.StatusCode)
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		if message == "" {
			message = "session expired or credentials invalid"
		}
		return apperrors.Unauthorized(message)
	case http.StatusForbidden:
		if message == "" {
			message = "you are not allowed to do that"
		}
		return apperrors.Forbidden(message)
	case http.StatusNotFound:
		if message == "" {
			message = "resource not found"
		}
		return apperrors.New(apperrors.CodeNotFound, message, http.StatusNotFound)
	default:
		if message == "" {
			message = "unexpected server error"
		}
		return apperrors.New(apperrors.CodeUpstream, message, resp.StatusCode)
	}
}
