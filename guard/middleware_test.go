package guard_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shopfront/storefront/guard"
	"github.com/shopfront/storefront/internal/config"
	"github.com/shopfront/storefront/session"
)

func newGuarded(t *testing.T, next http.HandlerFunc) http.HandlerFunc {
	t.Helper()
	store := session.NewStore(config.Session{})
	return guard.Middleware(store, guard.DefaultRoutes())(next)
}

func TestMiddleware_RedirectsAnonymousNavigation(t *testing.T) {
	handler := newGuarded(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run for a denied navigation")
	})

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/", rec.Header().Get("Location"))
}

func TestMiddleware_InjectsSessionOnAllow(t *testing.T) {
	var got session.Session
	handler := newGuarded(t, func(w http.ResponseWriter, r *http.Request) {
		got = guard.SessionFrom(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: "tok-1"})
	req.AddCookie(&http.Cookie{Name: "userRole", Value: "customer"})
	rec := httptest.NewRecorder()
	handler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "tok-1", got.AccessToken)
	require.Equal(t, session.RoleCustomer, got.Role)
}

func TestMiddleware_BouncesAuthenticatedOffLogin(t *testing.T) {
	handler := newGuarded(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: "tok-1"})
	req.AddCookie(&http.Cookie{Name: "userRole", Value: "admin"})
	rec := httptest.NewRecorder()
	handler(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/admin/dashboard", rec.Header().Get("Location"))
}

func TestSessionFrom_DefaultsToAnonymous(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	sess := guard.SessionFrom(req.Context())
	require.False(t, sess.Authenticated())
	require.Equal(t, session.RoleAnonymous, sess.Role)
}
