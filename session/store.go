package session

import (
	"net/http"

	"github.com/shopfront/storefront/internal/config"
)

// Cookie names shared with the backend's login response contract.
const (
	accessTokenCookie  = "accessToken"
	refreshTokenCookie = "refreshToken"
	userRoleCookie     = "userRole"
	userProfileCookie  = "userProfile"
)

// Cookie lifetimes. Access token and role expire together so the guard never
// sees a role without a token outliving it.
const (
	accessTokenMaxAge  = 60 * 60 * 24     // 1 day
	refreshTokenMaxAge = 60 * 60 * 24 * 7 // 7 days
	userRoleMaxAge     = accessTokenMaxAge
)

// Store commits, reads and clears the session cookies. It is the only writer
// of session state; login, signup and logout all go through it.
type Store struct {
	secret []byte
	secure bool
}

func NewStore(cfg config.SessionConfig) *Store {
	return &Store{
		secret: []byte(cfg.GetSessionSecret()),
		secure: cfg.GetSecureCookies(),
	}
}

// Commit writes every session cookie in a single response so the two
// projections cannot drift: either the whole response reaches the browser and
// all cookies update together, or none do.
func (s *Store) Commit(w http.ResponseWriter, sess Session) {
	s.setCookie(w, accessTokenCookie, sess.AccessToken, accessTokenMaxAge, true)
	s.setCookie(w, refreshTokenCookie, sess.RefreshToken, refreshTokenMaxAge, true)
	s.setCookie(w, userRoleCookie, string(sess.Role), userRoleMaxAge, true)

	// Client-side projection: the full profile, signed so in-page reads can
	// detect tampering. No max-age; it persists until explicit logout.
	if sess.Profile != nil {
		if signed, err := s.signProfile(*sess.Profile); err == nil {
			s.setCookie(w, userProfileCookie, signed, 0, false)
		}
	}
}

// FromRequest reads the session from the request cookies. It never fails:
// missing or unreadable cookies yield the corresponding zero fields, and a
// profile cookie with a bad signature is dropped rather than surfaced.
func (s *Store) FromRequest(r *http.Request) Session {
	sess := Session{
		AccessToken:  cookieValue(r, accessTokenCookie),
		RefreshToken: cookieValue(r, refreshTokenCookie),
		Role:         ParseRole(cookieValue(r, userRoleCookie)),
	}
	if raw := cookieValue(r, userProfileCookie); raw != "" {
		if profile, err := s.verifyProfile(raw); err == nil {
			sess.Profile = profile
		}
	}
	return sess
}

// Clear removes every session cookie from both projections. Clearing an
// already-anonymous visitor is a no-op.
func (s *Store) Clear(w http.ResponseWriter) {
	s.expireCookie(w, accessTokenCookie, true)
	s.expireCookie(w, refreshTokenCookie, true)
	s.expireCookie(w, userRoleCookie, true)
	s.expireCookie(w, userProfileCookie, false)
}

func (s *Store) setCookie(w http.ResponseWriter, name, value string, maxAge int, httpOnly bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   s.secure,
		HttpOnly: httpOnly,
		SameSite: http.SameSiteStrictMode,
	})
}

func (s *Store) expireCookie(w http.ResponseWriter, name string, httpOnly bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   s.secure,
		HttpOnly: httpOnly,
		SameSite: http.SameSiteStrictMode,
	})
}

func cookieValue(r *http.Request, name string) string {
	cookie, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return cookie.Value
}
