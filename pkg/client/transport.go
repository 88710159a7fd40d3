package client

import (
	"context"
	"net/http"
)

// Doer is the transport function every cross-cutting stage wraps. The
// ambient interceptor pair of the browser client becomes two explicit,
// independently testable decorators: InjectAuth and Handle401.
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

type DoerFunc func(*http.Request) (*http.Response, error)

func (f DoerFunc) Do(r *http.Request) (*http.Response, error) {
	return f(r)
}

// TokenSource yields the upstream bearer token for a request context, or ""
// when the caller is unauthenticated.
type TokenSource func(ctx context.Context) string

// InjectAuth attaches "Authorization: Bearer <token>" when a token is
// present and passes the request through untouched otherwise.
func InjectAuth(next Doer, token TokenSource) Doer {
	return DoerFunc(func(r *http.Request) (*http.Response, error) {
		if token != nil {
			if t := token(r.Context()); t != "" {
				r.Header.Set("Authorization", "Bearer "+t)
			}
		}
		return next.Do(r)
	})
}

// Handle401 invokes onUnauthorized exactly once per 401 response, before
// the response is handed back to the caller. The session-clearing rule of
// the whole application lives behind this single hook.
func Handle401(next Doer, onUnauthorized func(ctx context.Context)) Doer {
	return DoerFunc(func(r *http.Request) (*http.Response, error) {
		resp, err := next.Do(r)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode == http.StatusUnauthorized && onUnauthorized != nil {
			onUnauthorized(r.Context())
		}
		return resp, nil
	})
}
