package guard_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shopfront/storefront/guard"
	"github.com/shopfront/storefront/session"
)

const testToken = "opaque-bearer-token"

func anonymous() session.Session {
	return session.Session{}
}

func customer() session.Session {
	return session.Session{AccessToken: testToken, Role: session.RoleCustomer}
}

func admin() session.Session {
	return session.Session{AccessToken: testToken, Role: session.RoleAdmin}
}

func TestRouteTable_Classify(t *testing.T) {
	routes := guard.DefaultRoutes()

	tests := []struct {
		path string
		want guard.PathClass
	}{
		{"/", guard.ClassPublic},
		{"/signup", guard.ClassPublic},
		{"/admin", guard.ClassAdmin},
		{"/admin/dashboard", guard.ClassAdmin},
		{"/admin/products", guard.ClassAdmin},
		{"/admin/orders", guard.ClassAdmin},
		{"/admin/users", guard.ClassAdmin},
		{"/admin/users/42", guard.ClassAdmin},
		{"/cart", guard.ClassUserRestricted},
		{"/cart/add", guard.ClassUserRestricted},
		{"/orders", guard.ClassUserRestricted},
		{"/profile", guard.ClassUserRestricted},
		{"/products", guard.ClassOther},
		{"/products/abc123", guard.ClassOther},
		{"/checkout", guard.ClassOther},
		{"/order-success", guard.ClassOther},
		{"/nonexistent", guard.ClassOther},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			require.Equal(t, tc.want, routes.Classify(tc.path))
		})
	}
}

func TestDecide_AnonymousVisitor(t *testing.T) {
	routes := guard.DefaultRoutes()

	t.Run("public paths render", func(t *testing.T) {
		for _, path := range []string{"/", "/signup"} {
			require.Equal(t, guard.Allow(), routes.Decide(path, anonymous()), path)
		}
	})

	t.Run("everything else goes home", func(t *testing.T) {
		for _, path := range []string{"/products", "/products/42", "/checkout", "/admin/dashboard", "/unknown"} {
			require.Equal(t, guard.Redirect(guard.PathHome), routes.Decide(path, anonymous()), path)
		}
	})

	t.Run("user-restricted paths are never reachable", func(t *testing.T) {
		for _, path := range []string{"/cart", "/orders", "/profile", "/cart/add"} {
			require.Equal(t, guard.Redirect(guard.PathHome), routes.Decide(path, anonymous()), path)
		}
	})
}

func TestDecide_AuthenticatedOnPublicPath(t *testing.T) {
	routes := guard.DefaultRoutes()

	t.Run("admin lands on dashboard", func(t *testing.T) {
		for _, path := range []string{"/", "/signup"} {
			require.Equal(t, guard.Redirect(guard.PathAdminDashboard), routes.Decide(path, admin()), path)
		}
	})

	t.Run("customer lands on products", func(t *testing.T) {
		for _, path := range []string{"/", "/signup"} {
			require.Equal(t, guard.Redirect(guard.PathProducts), routes.Decide(path, customer()), path)
		}
	})
}

func TestDecide_AdminPaths(t *testing.T) {
	routes := guard.DefaultRoutes()
	adminPaths := []string{"/admin", "/admin/dashboard", "/admin/products", "/admin/orders", "/admin/users"}

	t.Run("admin is allowed", func(t *testing.T) {
		for _, path := range adminPaths {
			require.Equal(t, guard.Allow(), routes.Decide(path, admin()), path)
		}
	})

	t.Run("customer is sent to products, not home", func(t *testing.T) {
		for _, path := range adminPaths {
			require.Equal(t, guard.Redirect(guard.PathProducts), routes.Decide(path, customer()), path)
		}
	})

	t.Run("unknown role value never grants admin", func(t *testing.T) {
		sess := session.Session{AccessToken: testToken, Role: session.ParseRole("ADMIN")}
		require.Equal(t, guard.Redirect(guard.PathProducts), routes.Decide("/admin/users", sess))

		sess = session.Session{AccessToken: testToken, Role: session.ParseRole("superuser")}
		require.Equal(t, guard.Redirect(guard.PathProducts), routes.Decide("/admin/users", sess))
	})
}

func TestDecide_AuthenticatedElsewhere(t *testing.T) {
	routes := guard.DefaultRoutes()

	for _, path := range []string{"/products", "/products/42", "/cart", "/orders", "/profile", "/checkout", "/unknown"} {
		require.Equal(t, guard.Allow(), routes.Decide(path, customer()), path)
	}
}

func TestDecide_Scenarios(t *testing.T) {
	routes := guard.DefaultRoutes()

	t.Run("customer on admin users page", func(t *testing.T) {
		require.Equal(t, guard.Redirect("/products"), routes.Decide("/admin/users", customer()))
	})

	t.Run("admin on login page", func(t *testing.T) {
		require.Equal(t, guard.Redirect("/admin/dashboard"), routes.Decide("/", admin()))
	})

	t.Run("anonymous cart visit", func(t *testing.T) {
		require.Equal(t, guard.Redirect("/"), routes.Decide("/cart", anonymous()))
	})

	t.Run("customer product listing", func(t *testing.T) {
		require.Equal(t, guard.Allow(), routes.Decide("/products", customer()))
	})
}

func TestDecide_Idempotent(t *testing.T) {
	routes := guard.DefaultRoutes()

	for _, sess := range []session.Session{anonymous(), customer(), admin()} {
		for _, path := range []string{"/", "/signup", "/products", "/cart", "/admin/dashboard", "/unknown"} {
			first := routes.Decide(path, sess)
			second := routes.Decide(path, sess)
			require.Equal(t, first, second, "path %s", path)
		}
	}
}

func TestRoleLanding(t *testing.T) {
	require.Equal(t, "/admin/dashboard", guard.RoleLanding(session.RoleAdmin))
	require.Equal(t, "/products", guard.RoleLanding(session.RoleCustomer))
	require.Equal(t, "/products", guard.RoleLanding(session.RoleAnonymous))
}
