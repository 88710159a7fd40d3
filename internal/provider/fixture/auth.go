package fixture

import (
	"context"
	"time"

	apperrors "arenaku/pkg/errors"
	"arenaku/pkg/model"

	"github.com/google/uuid"
)

// Auth is the fixture-backed authentication view.
type Auth struct {
	s *Store
}

func (a *Auth) Login(_ context.Context, creds model.Credentials) (string, model.User, error) {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	password, ok := a.s.passwords[creds.Email]
	if !ok || password != creds.Password {
		return "", model.User{}, apperrors.Unauthorized("email atau kata sandi salah")
	}

	var user model.User
	for _, u := range a.s.users {
		if u.Email == creds.Email {
			user = u
			break
		}
	}

	token := uuid.NewString()
	a.s.tokens[token] = user.ID
	return token, user, nil
}

func (a *Auth) Register(_ context.Context, reg model.Registration) (string, model.User, error) {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	if _, exists := a.s.passwords[reg.Email]; exists {
		return "", model.User{}, apperrors.Conflict("email sudah terdaftar")
	}

	user := model.User{
		ID:        a.s.genID("usr"),
		Name:      reg.Name,
		Email:     reg.Email,
		Phone:     reg.Phone,
		Role:      model.RoleUser,
		CreatedAt: time.Now().UTC(),
	}
	a.s.users = append(a.s.users, user)
	a.s.passwords[reg.Email] = reg.Password

	token := uuid.NewString()
	a.s.tokens[token] = user.ID
	return token, user, nil
}

func (a *Auth) Profile(_ context.Context, token string) (*model.User, error) {
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()

	userID, ok := a.s.tokens[token]
	if !ok {
		return nil, apperrors.Unauthorized("session expired")
	}
	u := a.s.findUser(userID)
	if u == nil {
		return nil, apperrors.Unauthorized("session expired")
	}
	user := *u
	return &user, nil
}
