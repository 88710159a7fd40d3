// Package session is the single owner of authenticated session state. The
// upstream bearer token and the user profile live in one Session record; the
// only mutation entry points are Manager.Create (login) and
// Manager.Invalidate (logout or upstream 401). Everything else reads.
package session

import (
	"context"
	"errors"
	"time"

	"arenaku/pkg/logger"
	"arenaku/pkg/model"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("session not found")

type Session struct {
	ID        string     `json:"id"`
	Token     string     `json:"token"`
	User      model.User `json:"user"`
	CreatedAt time.Time  `json:"created_at"`
}

type Store interface {
	Save(ctx context.Context, s *Session, ttl time.Duration) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

type Manager struct {
	store Store
	ttl   time.Duration
	log   *logger.Logger
}

func NewManager(store Store, ttl time.Duration, log *logger.Logger) *Manager {
	return &Manager{store: store, ttl: ttl, log: log}
}

// Create starts a session after a successful upstream login.
func (m *Manager) Create(ctx context.Context, token string, user model.User) (*Session, error) {
	s := &Session{
		ID:        uuid.NewString(),
		Token:     token,
		User:      user,
		CreatedAt: time.Now().UTC(),
	}
	if err := m.store.Save(ctx, s, m.ttl); err != nil {
		return nil, err
	}
	m.log.Info("session created", "session_id", s.ID, "user_id", user.ID, "role", user.Role)
	return s, nil
}

func (m *Manager) Get(ctx context.Context, id string) (*Session, error) {
	return m.store.Get(ctx, id)
}

// Invalidate removes a session. It is the one place session state is
// cleared, whether from logout or from the global 401 rule, and it is
// idempotent: invalidating a missing session is not an error.
func (m *Manager) Invalidate(ctx context.Context, id string) error {
	err := m.store.Delete(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	m.log.Info("session invalidated", "session_id", id)
	return nil
}
