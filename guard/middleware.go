package guard

import (
	"context"
	"net/http"

	"github.com/shopfront/storefront/session"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// ContextKeySession stores the session read for the guarded request
const ContextKeySession ContextKey = "session"

// SessionFrom returns the session the guard read for this request, or the
// anonymous session if the guard did not run.
func SessionFrom(ctx context.Context) session.Session {
	if sess, ok := ctx.Value(ContextKeySession).(session.Session); ok {
		return sess
	}
	return session.Anonymous
}

// Middleware applies the guard to every navigation. Denied navigations are
// silent redirects; allowed ones proceed with the session injected into the
// request context so page handlers read the same snapshot the guard decided on.
func Middleware(store *session.Store, routes RouteTable) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			sess := store.FromRequest(r)

			decision := routes.Decide(r.URL.Path, sess)
			if !decision.Allowed() {
				http.Redirect(w, r, decision.Target, http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeySession, sess)
			next(w, r.WithContext(ctx))
		}
	}
}
