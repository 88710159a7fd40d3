package session

import (
	"fmt"
	"time"

	"arenaku/pkg/model"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the signed bearer the browser holds between itself and the
// gateway. It carries only the session ID and role; the upstream token
// never leaves the server side.
type Claims struct {
	SessionID string     `json:"sid"`
	Role      model.Role `json:"role"`
	jwt.RegisteredClaims
}

func IssueToken(secret []byte, sess *Session, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		SessionID: sess.ID,
		Role:      sess.User.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sess.User.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func ParseToken(secret []byte, raw string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
