// Package guard decides, before each navigation, whether the requested page
// may render for the current session. It is a pure classifier: it reads the
// request-scoped session cookies, never calls the backend, and never inspects
// a token beyond its presence. Actual token validity is enforced by the
// backend on every API call.
package guard

import "github.com/shopfront/storefront/session"

// Redirect targets.
const (
	PathHome           = "/"
	PathProducts       = "/products"
	PathAdminDashboard = "/admin/dashboard"
)

type Action int

const (
	ActionAllow Action = iota
	ActionRedirect
)

// Decision is the guard's verdict for one navigation. Target is only set for
// ActionRedirect.
type Decision struct {
	Action Action
	Target string
}

func Allow() Decision {
	return Decision{Action: ActionAllow}
}

func Redirect(target string) Decision {
	return Decision{Action: ActionRedirect, Target: target}
}

func (d Decision) Allowed() bool {
	return d.Action == ActionAllow
}

// RoleLanding is the page an authenticated visitor lands on when they hit a
// public path: the admin dashboard for admins, the product listing otherwise.
func RoleLanding(role session.Role) string {
	if role.IsAdmin() {
		return PathAdminDashboard
	}
	return PathProducts
}

// Decide applies the access rules in order; the first matching rule wins.
//
//  1. Unauthenticated visitors may only see public paths.
//  2. Authenticated visitors are bounced off public paths to their role landing.
//  3. Non-admins on admin paths go to the product listing, not home.
//  4. User-restricted paths are never reachable anonymously, even if the
//     classification table changes. Subsumed by rule 1 today; kept explicit.
//  5. Everything else renders.
func (t RouteTable) Decide(path string, sess session.Session) Decision {
	class := t.Classify(path)
	authenticated := sess.Authenticated()

	if class != ClassPublic && !authenticated {
		return Redirect(PathHome)
	}
	if authenticated && class == ClassPublic {
		return Redirect(RoleLanding(sess.Role))
	}
	if class == ClassAdmin && !sess.Role.IsAdmin() {
		return Redirect(PathProducts)
	}
	if class == ClassUserRestricted && !authenticated {
		return Redirect(PathHome)
	}
	return Allow()
}
