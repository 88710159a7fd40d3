package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "arenaku/pkg/errors"
	httputil "arenaku/pkg/http"
)

type tokenKey struct{}

func tokenFromContext(ctx context.Context) string {
	if t, ok := ctx.Value(tokenKey{}).(string); ok {
		return t
	}
	return ""
}

func TestInjectAuthAttachesBearer(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second, WithTokenSource(tokenFromContext))

	ctx := context.WithValue(context.Background(), tokenKey{}, "abc123")
	if err := c.Get(ctx, "/", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer abc123" {
		t.Errorf("expected bearer header, got %q", gotAuth)
	}
}

func TestInjectAuthSkipsWithoutToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second, WithTokenSource(tokenFromContext))

	if err := c.Get(context.Background(), "/", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("expected no Authorization header, got %q", gotAuth)
	}
}

func TestHandle401InvokesHookExactlyOnce(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"token expired"}`))
	}))
	defer srv.Close()

	calls := 0
	c := New(srv.URL, time.Second,
		WithUnauthorizedHook(func(ctx context.Context) { calls++ }),
	)

	err := c.Get(context.Background(), "/", nil)
	if err == nil {
		t.Fatal("expected an error from the 401 response")
	}
	if !apperrors.HasCode(err, apperrors.CodeUnauthorized) {
		t.Errorf("expected UNAUTHORIZED, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected the unauthorized hook to fire exactly once, got %d", calls)
	}
}

func TestHandle401HookNotInvokedOnSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	calls := 0
	c := New(srv.URL, time.Second,
		WithUnauthorizedHook(func(ctx context.Context) { calls++ }),
	)

	if err := c.Get(context.Background(), "/", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 0 {
		t.Errorf("expected the hook not to fire on success, got %d calls", calls)
	}
}

func TestSessionBearing401CarriesRedirect(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"token expired"}`))
	}))
	defer srv.Close()

	calls := 0
	c := New(srv.URL, time.Second,
		WithTokenSource(tokenFromContext),
		WithUnauthorizedHook(func(ctx context.Context) { calls++ }),
	)

	ctx := context.WithValue(context.Background(), tokenKey{}, "abc123")
	err := c.Get(ctx, "/", nil)
	if err == nil {
		t.Fatal("expected an error from the 401 response")
	}
	if calls != 1 {
		t.Errorf("expected the session to be cleared on the failing call, got %d hook calls", calls)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected an AppError, got %T", err)
	}
	if appErr.Redirect != "/login" {
		t.Errorf("expected the failing response to carry the login redirect, got %q", appErr.Redirect)
	}

	// The hint must reach the browser on this same response.
	rec := httptest.NewRecorder()
	httputil.WriteError(rec, err)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rec.Code)
	}
	var body struct {
		Code     string `json:"code"`
		Redirect string `json:"redirect"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	if body.Code != apperrors.CodeUnauthorized || body.Redirect != "/login" {
		t.Errorf("expected UNAUTHORIZED with redirect /login, got code %q redirect %q", body.Code, body.Redirect)
	}
}

func TestUnauthenticated401StaysInline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"email atau kata sandi salah"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second, WithTokenSource(tokenFromContext))

	// No token on the context: this is a failed login, not a dead session.
	err := c.Get(context.Background(), "/", nil)
	if err == nil {
		t.Fatal("expected an error")
	}
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected an AppError, got %T", err)
	}
	if appErr.Redirect != "" {
		t.Errorf("expected no redirect hint on a login failure, got %q", appErr.Redirect)
	}
}

func TestUpstreamErrorCodesPassThrough(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		code   string
	}{
		{"slots full", http.StatusConflict, `{"code":"SLOTS_FULL","message":"no slots remaining"}`, apperrors.CodeSlotsFull},
		{"already joined", http.StatusConflict, `{"code":"ALREADY_JOINED","message":"already joined"}`, apperrors.CodeAlreadyJoined},
		{"booking closed", http.StatusConflict, `{"code":"BOOKING_CLOSED","message":"closed"}`, apperrors.CodeBookingClosed},
		{"invalid invite", http.StatusNotFound, `{"code":"INVALID_INVITE","message":"invalid code"}`, apperrors.CodeInvalidInvite},
		{"plain 404", http.StatusNotFound, `{"error":"not here"}`, apperrors.CodeNotFound},
		{"plain 500", http.StatusInternalServerError, `{}`, apperrors.CodeUpstream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := New(srv.URL, time.Second)
			err := c.Get(context.Background(), "/", nil)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !apperrors.HasCode(err, tt.code) {
				t.Errorf("expected code %s, got %v", tt.code, err)
			}
		})
	}
}

func TestNetworkFailureWrapsAsUpstream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // cause a connection error

	c := New(srv.URL, time.Second)
	err := c.Get(context.Background(), "/", nil)
	if err == nil {
		t.Fatal("expected a network error")
	}
	if !apperrors.HasCode(err, apperrors.CodeUpstream) {
		t.Errorf("expected UPSTREAM_ERROR, got %v", err)
	}
}
