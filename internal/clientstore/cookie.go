package clientstore

import (
	"fmt"
	"net/http"
	"time"

	"github.com/fieldbase/admin/internal/domain"
	"github.com/labstack/echo/v4"
)

// CookieSpec describes the cookie a storage key maps to.
type CookieSpec struct {
	Name     string
	MaxAge   time.Duration
	HttpOnly bool
}

// DefaultCookies maps the storage keys to their cookies.
var DefaultCookies = map[string]CookieSpec{
	domain.StorageKeyToken:    {Name: "auth_token", MaxAge: 24 * time.Hour, HttpOnly: true},
	domain.StorageKeyUsername: {Name: "remembered_username", MaxAge: 365 * 24 * time.Hour, HttpOnly: true},
}

// CookieStore maps storage keys onto browser cookies for a single request.
// Writes are visible to later reads within the same request.
type CookieStore struct {
	c       echo.Context
	specs   map[string]CookieSpec
	pending map[string]*string
}

var _ Store = (*CookieStore)(nil)

// NewCookieStore binds a CookieStore to the request held by c.
func NewCookieStore(c echo.Context) *CookieStore {
	return &CookieStore{c: c, specs: DefaultCookies, pending: make(map[string]*string)}
}

func (s *CookieStore) Get(key string) (string, bool) {
	if v, ok := s.pending[key]; ok {
		if v == nil {
			return "", false
		}
		return *v, true
	}
	spec, ok := s.specs[key]
	if !ok {
		return "", false
	}
	cookie, err := s.c.Cookie(spec.Name)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

func (s *CookieStore) Set(key, value string) error {
	spec, ok := s.specs[key]
	if !ok {
		return fmt.Errorf("clientstore: unknown key %q", key)
	}
	s.c.SetCookie(s.cookie(spec, value, time.Now().UTC().Add(spec.MaxAge)))
	s.pending[key] = &value
	return nil
}

func (s *CookieStore) Clear(key string) error {
	spec, ok := s.specs[key]
	if !ok {
		return fmt.Errorf("clientstore: unknown key %q", key)
	}
	cookie := s.cookie(spec, "", time.Time{})
	cookie.MaxAge = -1
	s.c.SetCookie(cookie)
	s.pending[key] = nil
	return nil
}

func (s *CookieStore) cookie(spec CookieSpec, value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     spec.Name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: spec.HttpOnly,
		// Secure only applies when the request itself came over TLS.
		Secure:   s.c.Request().TLS != nil,
		SameSite: http.SameSiteLaxMode,
	}
}
