package session

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jrsteele09/go-aqua-client/pages"
)

// Session owns the session token lifecycle on top of a Store.
type Session struct {
	store Store
	now   func() time.Time
}

type Option func(*Session)

// WithClock overrides the clock used for expiry checks.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

func New(store Store, opts ...Option) *Session {
	s := &Session{
		store: store,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Token returns the stored session token.
func (s *Session) Token() (string, bool) {
	token, ok := s.store.Get(TokenKey)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

// SetToken persists a freshly issued token.
func (s *Session) SetToken(token string) error {
	return s.store.Set(TokenKey, token)
}

// Clear removes the token.
func (s *Session) Clear() error {
	return s.store.Delete(TokenKey)
}

// Authenticated reports whether a usable token is present. A JWT whose exp
// claim has passed is removed and counts as absent.
func (s *Session) Authenticated() bool {
	token, ok := s.Token()
	if !ok {
		return false
	}
	if claims, isJWT := Inspect(token); isJWT && claims.Expired(s.now()) {
		log.Debug().Str("sub", claims.Subject).Time("exp", claims.ExpiresAt).Msg("session token expired")
		if err := s.Clear(); err != nil {
			log.Err(err).Msg("Failed to clear expired session token")
		}
		return false
	}
	return true
}

// Guard sends the user to the login page when no usable token is present.
// It returns true when the page may proceed.
func (s *Session) Guard(nav pages.Navigator) bool {
	if s.Authenticated() {
		return true
	}
	nav.Navigate(pages.Login)
	return false
}

// Logout clears the token and sends the user to the login page.
func (s *Session) Logout(nav pages.Navigator) {
	if err := s.Clear(); err != nil {
		log.Err(err).Msg("Failed to clear session token")
	}
	nav.Navigate(pages.Login)
}
