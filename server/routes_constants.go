package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	// Public pages
	RouteHome   = "/"
	RouteSignup = "/signup"

	// Auth actions
	RouteAuthLogin  = "/auth/login"
	RouteAuthSignup = "/auth/signup"
	RouteAuthLogout = "/auth/logout"

	// Storefront pages
	RouteProducts      = "/products"
	RouteProductDetail = "/products/{id}"
	RouteCart          = "/cart"
	RouteCheckout      = "/checkout"
	RouteOrderSuccess  = "/order-success"
	RouteOrders        = "/orders"
	RouteProfile       = "/profile"

	// Cart actions
	RouteCartAdd    = "/cart/add"
	RouteCartUpdate = "/cart/update"
	RouteCartRemove = "/cart/remove"

	// Admin pages
	RouteAdminDashboard = "/admin/dashboard"
	RouteAdminProducts  = "/admin/products"
	RouteAdminOrders    = "/admin/orders"
	RouteAdminUsers     = "/admin/users"

	// Admin actions
	RouteAdminProductSave   = "/admin/products/save"
	RouteAdminProductDelete = "/admin/products/delete"
	RouteAdminOrderStatus   = "/admin/orders/status"
	RouteAdminUserSave      = "/admin/users/save"
	RouteAdminUserDelete    = "/admin/users/delete"
)
