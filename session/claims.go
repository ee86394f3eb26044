package session

import (
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// Claims is the subset of token claims the client can read. The signature is
// never verified here; the backend remains the only authority on validity.
type Claims struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Inspect decodes token as a JWT without verifying it. ok is false when the
// token is not a JWT, in which case it is treated as opaque.
func Inspect(token string) (claims Claims, ok bool) {
	if strings.Count(token, ".") != 2 {
		return Claims{}, false
	}

	registered := &jwtlib.RegisteredClaims{}
	if _, _, err := jwtlib.NewParser().ParseUnverified(token, registered); err != nil {
		return Claims{}, false
	}

	claims.Subject = registered.Subject
	if registered.IssuedAt != nil {
		claims.IssuedAt = registered.IssuedAt.Time
	}
	if registered.ExpiresAt != nil {
		claims.ExpiresAt = registered.ExpiresAt.Time
	}
	return claims, true
}

// Expired reports whether the claims carry an expiry at or before now.
func (c Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}
