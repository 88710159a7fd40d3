package session

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"arenaku/pkg/logger"
	"arenaku/pkg/model"
)

func testManager() *Manager {
	log := logger.New(logger.Config{Level: logger.LevelError, Output: io.Discard})
	return NewManager(NewMemoryStore(), time.Hour, log)
}

func TestCreateAndGet(t *testing.T) {
	ctx := context.Background()
	m := testManager()

	user := model.User{ID: "u1", Name: "Budi", Role: model.RoleUser}
	sess, err := m.Create(ctx, "upstream-token", user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.ID == "" {
		t.Fatal("expected a generated session ID")
	}

	got, err := m.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Token != "upstream-token" || got.User.ID != "u1" {
		t.Errorf("unexpected session contents: %+v", got)
	}
}

func TestInvalidate(t *testing.T) {
	ctx := context.Background()
	m := testManager()

	sess, err := m.Create(ctx, "tok", model.User{ID: "u1", Role: model.RoleUser})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := m.Invalidate(ctx, sess.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := m.Get(ctx, sess.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after invalidation, got %v", err)
	}

	// Invalidating again must be a no-op, not an error.
	if err := m.Invalidate(ctx, sess.ID); err != nil {
		t.Errorf("expected idempotent invalidation, got %v", err)
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	sess := &Session{ID: "s1", Token: "tok"}
	if err := store.Save(ctx, sess, -time.Second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.Get(ctx, "s1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected expired session to be gone, got %v", err)
	}
}

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	sess := &Session{ID: "s1", User: model.User{ID: "u1", Role: model.RolePengelola}}

	raw, err := IssueToken(secret, sess, time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := ParseToken(secret, raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.SessionID != "s1" {
		t.Errorf("expected session ID s1, got %s", claims.SessionID)
	}
	if claims.Role != model.RolePengelola {
		t.Errorf("expected role PENGELOLA, got %s", claims.Role)
	}
	if claims.Subject != "u1" {
		t.Errorf("expected subject u1, got %s", claims.Subject)
	}
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	sess := &Session{ID: "s1", User: model.User{ID: "u1", Role: model.RoleUser}}
	raw, err := IssueToken([]byte("secret-a"), sess, time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ParseToken([]byte("secret-b"), raw); err == nil {
		t.Error("expected token signed with another secret to be rejected")
	}
}

func TestTokenRejectsExpired(t *testing.T) {
	secret := []byte("test-secret")
	sess := &Session{ID: "s1", User: model.User{ID: "u1", Role: model.RoleUser}}
	raw, err := IssueToken(secret, sess, -time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ParseToken(secret, raw); err == nil {
		t.Error("expected expired token to be rejected")
	}
}
