package middleware

import (
	"context"
	"net/http"
	"strings"

	httputil "arenaku/pkg/http"
	"arenaku/pkg/logger"
	"arenaku/pkg/model"
	"arenaku/pkg/session"

	"github.com/julienschmidt/httprouter"
)

const sessionKey contextKey = "session"

// SessionAuth resolves the signed session bearer into the stored session and
// puts it on the request context. A missing, invalid, or expired session is
// answered with 401 and the login redirect hint.
type SessionAuth struct {
	secret   []byte
	sessions *session.Manager
	log      *logger.Logger
}

func NewSessionAuth(secret []byte, sessions *session.Manager, log *logger.Logger) *SessionAuth {
	return &SessionAuth{secret: secret, sessions: sessions, log: log}
}

func (a *SessionAuth) Require(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		raw := bearerToken(r)
		if raw == "" {
			httputil.WriteUnauthorizedRedirect(w, "login required")
			return
		}

		claims, err := session.ParseToken(a.secret, raw)
		if err != nil {
			httputil.WriteUnauthorizedRedirect(w, "session is invalid")
			return
		}

		sess, err := a.sessions.Get(r.Context(), claims.SessionID)
		if err != nil {
			// Session was invalidated (logout or an upstream 401).
			httputil.WriteUnauthorizedRedirect(w, "session has expired")
			return
		}

		ctx := context.WithValue(r.Context(), sessionKey, sess)
		next(w, r.WithContext(ctx), ps)
	}
}

// RequireRole additionally checks the session's role.
func (a *SessionAuth) RequireRole(role model.Role, next httprouter.Handle) httprouter.Handle {
	return a.Require(func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		sess := SessionFrom(r.Context())
		if sess == nil || sess.User.Role != role {
			httputil.WriteJSON(w, http.StatusForbidden, httputil.ErrorResponse{
				Error: "you are not allowed to access this page",
			})
			return
		}
		next(w, r, ps)
	})
}

// SessionFrom returns the authenticated session, or nil on public routes.
func SessionFrom(ctx context.Context) *session.Session {
	if s, ok := ctx.Value(sessionKey).(*session.Session); ok {
		return s
	}
	return nil
}

// UpstreamToken is the TokenSource for the API client facade.
func UpstreamToken(ctx context.Context) string {
	if s := SessionFrom(ctx); s != nil {
		return s.Token
	}
	return ""
}

// bearerToken extracts the session token from the Authorization header, or
// from the "token" query parameter for WebSocket upgrades, which cannot set
// headers from the browser.
func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return r.URL.Query().Get("token")
}
