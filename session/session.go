package session

import "github.com/shopfront/storefront/catalog"

// Role is the resolved role of the current visitor. It is a closed set: a
// role cookie carrying anything other than "admin" or "customer" parses to
// RoleCustomer, so an unexpected value can never grant admin access, and an
// absent cookie parses to RoleAnonymous.
type Role string

const (
	RoleAnonymous Role = ""
	RoleCustomer  Role = "customer"
	RoleAdmin     Role = "admin"
)

// ParseRole maps a raw role cookie value onto the closed Role set.
func ParseRole(value string) Role {
	switch value {
	case string(RoleAdmin):
		return RoleAdmin
	case string(RoleCustomer):
		return RoleCustomer
	case "":
		return RoleAnonymous
	default:
		// Unknown role strings are treated as a plain customer, never as an
		// error and never as admin.
		return RoleCustomer
	}
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// Session is the single logical session record. The Store projects it onto
// two cookie surfaces: the HttpOnly token/role cookies read at navigation
// time, and the profile cookie read by in-page logic.
type Session struct {
	AccessToken  string
	RefreshToken string
	Role         Role
	Profile      *catalog.User
}

// Authenticated reports token presence. It says nothing about token validity;
// the backend is the authority on that.
func (s Session) Authenticated() bool {
	return s.AccessToken != ""
}

// Anonymous is the zero session, returned for visitors with no cookies.
var Anonymous = Session{}
