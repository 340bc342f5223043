package guard

import "strings"

// PathClass is the access class of a requested path. Every path maps to
// exactly one class; anything unlisted falls into ClassOther, which requires
// authentication but carries no role restriction.
type PathClass int

const (
	ClassOther PathClass = iota
	ClassPublic
	ClassAdmin
	ClassUserRestricted
)

func (c PathClass) String() string {
	switch c {
	case ClassPublic:
		return "public"
	case ClassAdmin:
		return "admin"
	case ClassUserRestricted:
		return "user-restricted"
	default:
		return "other"
	}
}

// RouteTable is the static classification table consulted by the guard.
// Public paths match exactly; admin and user-restricted paths match by prefix.
type RouteTable struct {
	Public         []string
	Admin          []string
	UserRestricted []string
}

// DefaultRoutes returns the application's route table.
func DefaultRoutes() RouteTable {
	return RouteTable{
		Public: []string{"/", "/signup"},
		Admin: []string{
			"/admin",
			"/admin/dashboard",
			"/admin/products",
			"/admin/orders",
			"/admin/users",
		},
		UserRestricted: []string{"/cart", "/orders", "/profile"},
	}
}

// Classify maps a path onto its access class. Total over all paths.
func (t RouteTable) Classify(path string) PathClass {
	for _, p := range t.Public {
		if path == p {
			return ClassPublic
		}
	}
	for _, p := range t.Admin {
		if strings.HasPrefix(path, p) {
			return ClassAdmin
		}
	}
	for _, p := range t.UserRestricted {
		if strings.HasPrefix(path, p) {
			return ClassUserRestricted
		}
	}
	return ClassOther
}
