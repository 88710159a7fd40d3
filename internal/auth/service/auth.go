package service

import (
	"context"
	"time"

	authvalidator "arenaku/internal/auth/validator"
	"arenaku/internal/provider"
	"arenaku/pkg/logger"
	"arenaku/pkg/model"
	"arenaku/pkg/sanitizer"
	"arenaku/pkg/session"
)

// AuthResult is what a successful login or registration hands the browser:
// the signed session token plus the profile to render.
type AuthResult struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

type AuthService interface {
	Login(ctx context.Context, creds *model.Credentials) (*AuthResult, error)
	Register(ctx context.Context, reg *model.Registration) (*AuthResult, error)
	Me(ctx context.Context, sess *session.Session) (*model.User, error)
	Logout(ctx context.Context, sessionID string) error
}

type authService struct {
	auth      provider.Auth
	sessions  *session.Manager
	validator *authvalidator.AuthValidator
	secret    []byte
	tokenTTL  time.Duration
	log       *logger.Logger
}

func NewAuthService(
	auth provider.Auth,
	sessions *session.Manager,
	validator *authvalidator.AuthValidator,
	secret []byte,
	tokenTTL time.Duration,
	log *logger.Logger,
) AuthService {
	return &authService{
		auth:      auth,
		sessions:  sessions,
		validator: validator,
		secret:    secret,
		tokenTTL:  tokenTTL,
		log:       log,
	}
}

// Login exchanges credentials upstream and opens a session. Invalid
// credentials surface as a plain 401 with no session mutation and no
// redirect hint, so the form can show the message inline.
func (s *authService) Login(ctx context.Context, creds *model.Credentials) (*AuthResult, error) {
	creds.Email = sanitizer.TrimAndNormalize(creds.Email)
	if err := s.validator.ValidateCredentials(creds); err != nil {
		return nil, err
	}

	upstreamToken, user, err := s.auth.Login(ctx, *creds)
	if err != nil {
		return nil, err
	}

	return s.openSession(ctx, upstreamToken, user)
}

func (s *authService) Register(ctx context.Context, reg *model.Registration) (*AuthResult, error) {
	reg.Name = sanitizer.NormalizeName(reg.Name)
	reg.Email = sanitizer.TrimAndNormalize(reg.Email)
	if err := s.validator.ValidateRegistration(reg); err != nil {
		return nil, err
	}

	upstreamToken, user, err := s.auth.Register(ctx, *reg)
	if err != nil {
		return nil, err
	}

	s.log.Info("user registered", "user_id", user.ID, "role", user.Role)
	return s.openSession(ctx, upstreamToken, user)
}

// Me refreshes the profile upstream. An upstream 401 lands in the client's
// unauthorized hook, which tears the session down before the error reaches
// the browser.
func (s *authService) Me(ctx context.Context, sess *session.Session) (*model.User, error) {
	return s.auth.Profile(ctx, sess.Token)
}

func (s *authService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Invalidate(ctx, sessionID)
}

func (s *authService) openSession(ctx context.Context, upstreamToken string, user model.User) (*AuthResult, error) {
	sess, err := s.sessions.Create(ctx, upstreamToken, user)
	if err != nil {
		return nil, err
	}

	signed, err := session.IssueToken(s.secret, sess, s.tokenTTL)
	if err != nil {
		// Session without a token is unreachable; drop it again.
		_ = s.sessions.Invalidate(ctx, sess.ID)
		return nil, err
	}

	s.log.Info("session opened", "user_id", user.ID, "session_id", sess.ID)
	return &AuthResult{Token: signed, User: user}, nil
}
