package server

import (
	"net/http"
	"net/url"
	"time"

	"github.com/jrsteele09/go-aqua-client/pages"
	"github.com/jrsteele09/go-aqua-client/session"
)

var _ session.Store = (*cookieStore)(nil)

// cookieStore keeps session values in persistent browser cookies. Writes are
// also remembered locally so that reads later in the same request see them.
type cookieStore struct {
	w       http.ResponseWriter
	r       *http.Request
	maxAge  time.Duration
	secure  bool
	written map[string]*string
}

func (s *Server) newCookieStore(w http.ResponseWriter, r *http.Request) *cookieStore {
	return &cookieStore{
		w:       w,
		r:       r,
		maxAge:  s.config.GetTokenMaxAge(),
		secure:  s.getScheme(r) == "https",
		written: make(map[string]*string),
	}
}

// newSession builds the per-request session over the browser's cookies
func (s *Server) newSession(w http.ResponseWriter, r *http.Request) *session.Session {
	return session.New(s.newCookieStore(w, r))
}

func (c *cookieStore) Get(key string) (string, bool) {
	if value, ok := c.written[key]; ok {
		if value == nil {
			return "", false
		}
		return *value, true
	}
	cookie, err := c.r.Cookie(key)
	if err != nil {
		return "", false
	}
	return cookie.Value, true
}

func (c *cookieStore) Set(key, value string) error {
	c.setCookie(key, value, int(c.maxAge.Seconds()))
	c.written[key] = &value
	return nil
}

func (c *cookieStore) Delete(key string) error {
	c.setCookie(key, "", -1)
	c.written[key] = nil
	return nil
}

func (c *cookieStore) setCookie(name, value string, maxAge int) {
	http.SetCookie(c.w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	})
}

// redirectSuccess sends the browser to path after a form post or guard
func redirectSuccess(w http.ResponseWriter, r *http.Request, path string) {
	http.Redirect(w, r, path, http.StatusSeeOther)
}

// redirectWithError sends the browser back to a form page with an inline error
func redirectWithError(w http.ResponseWriter, r *http.Request, page pages.Page, errorMsg, email string) {
	query := url.Values{}
	query.Set(queryError, errorMsg)
	if email != "" {
		query.Set(queryEmail, email)
	}
	redirectSuccess(w, r, page.String()+"?"+query.Encode())
}
