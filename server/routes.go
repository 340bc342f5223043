package server

func (s *Server) initRoutes() {
	// Public pages
	s.RegisterRouteHandler("GET "+RouteHome, s.Guarded(s.LoginPageHandler()))
	s.RegisterRouteHandler("GET "+RouteSignup, s.Guarded(s.SignupPageHandler()))

	// Auth actions (reachable without a session)
	s.RegisterRouteHandler("POST "+RouteAuthLogin, s.Unguarded(s.LoginSubmissionHandler()))
	s.RegisterRouteHandler("POST "+RouteAuthSignup, s.Unguarded(s.SignupSubmissionHandler()))
	s.RegisterRouteHandler("GET "+RouteAuthLogout, s.Unguarded(s.LogoutHandler()))

	// Storefront
	s.RegisterRouteHandler("GET "+RouteProducts, s.Guarded(s.ProductsListHandler()))
	s.RegisterRouteHandler("GET "+RouteProductDetail, s.Guarded(s.ProductDetailHandler()))
	s.RegisterRouteHandler("GET "+RouteCart, s.Guarded(s.CartPageHandler()))
	s.RegisterRouteHandler("POST "+RouteCartAdd, s.Guarded(s.CartAddHandler()))
	s.RegisterRouteHandler("POST "+RouteCartUpdate, s.Guarded(s.CartUpdateHandler()))
	s.RegisterRouteHandler("POST "+RouteCartRemove, s.Guarded(s.CartRemoveHandler()))
	s.RegisterRouteHandler("GET "+RouteCheckout, s.Guarded(s.CheckoutPageHandler()))
	s.RegisterRouteHandler("POST "+RouteCheckout, s.Guarded(s.CheckoutSubmitHandler()))
	s.RegisterRouteHandler("GET "+RouteOrderSuccess, s.Guarded(s.OrderSuccessHandler()))
	s.RegisterRouteHandler("GET "+RouteOrders, s.Guarded(s.OrdersPageHandler()))
	s.RegisterRouteHandler("GET "+RouteProfile, s.Guarded(s.ProfilePageHandler()))

	// Admin console
	s.RegisterRouteHandler("GET "+RouteAdminDashboard, s.Guarded(s.AdminDashboardHandler()))
	s.RegisterRouteHandler("GET "+RouteAdminProducts, s.Guarded(s.AdminProductsHandler()))
	s.RegisterRouteHandler("POST "+RouteAdminProductSave, s.Guarded(s.AdminProductSaveHandler()))
	s.RegisterRouteHandler("POST "+RouteAdminProductDelete, s.Guarded(s.AdminProductDeleteHandler()))
	s.RegisterRouteHandler("GET "+RouteAdminOrders, s.Guarded(s.AdminOrdersHandler()))
	s.RegisterRouteHandler("POST "+RouteAdminOrderStatus, s.Guarded(s.AdminOrderStatusHandler()))
	s.RegisterRouteHandler("GET "+RouteAdminUsers, s.Guarded(s.AdminUsersHandler()))
	s.RegisterRouteHandler("POST "+RouteAdminUserSave, s.Guarded(s.AdminUserSaveHandler()))
	s.RegisterRouteHandler("POST "+RouteAdminUserDelete, s.Guarded(s.AdminUserDeleteHandler()))
}
