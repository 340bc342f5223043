package server

import (
	"net/http"
	"strconv"

	"github.com/shopfront/storefront/backend"
	"github.com/shopfront/storefront/catalog"
	"github.com/shopfront/storefront/guard"
)

// AdminDashboardHandler aggregates users, products and orders into the
// dashboard stats (GET /admin/dashboard). The guard admits only admins here.
func (s *Server) AdminDashboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := guard.SessionFrom(r.Context())
		token := sess.AccessToken

		users, userPages, err := s.api.ListUsers(r.Context(), token, 1)
		if err != nil && !recoverable(err) {
			s.renderBackendError(w, r, err, RouteAdminDashboard)
			return
		}
		products, productPages, err := s.api.ListProducts(r.Context(), backend.ProductQuery{})
		if err != nil && !recoverable(err) {
			s.renderBackendError(w, r, err, RouteAdminDashboard)
			return
		}
		orders, orderPages, err := s.api.ListOrders(r.Context(), token, 1)
		if err != nil && !recoverable(err) {
			s.renderBackendError(w, r, err, RouteAdminDashboard)
			return
		}

		stats := catalog.DashboardStats{
			TotalUsers:     listingTotal(userPages.UsersTotal(), len(users)),
			TotalProducts:  listingTotal(productPages.ProductsTotal(), len(products)),
			TotalOrders:    listingTotal(orderPages.OrdersTotal(), len(orders)),
			RecentUsers:    firstUsers(users, 5),
			RecentProducts: firstProducts(products, 5),
		}

		s.renderAdminPage(w, r, "dashboard", "Dashboard", "admin_dashboard_content.html", map[string]interface{}{
			"Stats":        stats,
			"RecentOrders": firstOrders(orders, 5),
		})
	}
}

// AdminProductsHandler lists products for management (GET /admin/products).
func (s *Server) AdminProductsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, pagination, err := s.api.ListProducts(r.Context(), backend.ProductQuery{Page: queryPage(r)})
		if err != nil && !recoverable(err) {
			s.renderBackendError(w, r, err, RouteAdminProducts)
			return
		}
		if products == nil {
			products = []catalog.Product{}
		}

		s.renderAdminPage(w, r, "products", "Products", "admin_products_content.html", map[string]interface{}{
			"Products":   products,
			"Pagination": pagination,
		})
	}
}

// AdminProductSaveHandler creates or updates a product depending on whether
// the form carries a product id (POST /admin/products/save).
func (s *Server) AdminProductSaveHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := guard.SessionFrom(r.Context())

		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		input := backend.ProductInput{
			Name:        r.FormValue("name"),
			Description: r.FormValue("description"),
			Category:    r.FormValue("category"),
			BasePrice:   formFloat(r, "base_price"),
			Discount:    formFloat(r, "discount"),
			ImageURL:    r.FormValue("image_url"),
		}

		var err error
		if productID := r.FormValue("product_id"); productID != "" {
			err = s.api.UpdateProduct(r.Context(), sess.AccessToken, productID, input)
		} else {
			err = s.api.CreateProduct(r.Context(), sess.AccessToken, input)
		}
		if err != nil {
			s.renderBackendError(w, r, err, RouteAdminProducts)
			return
		}

		redirectSuccess(w, r, RouteAdminProducts)
	}
}

// AdminProductDeleteHandler removes a product (POST /admin/products/delete).
func (s *Server) AdminProductDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := guard.SessionFrom(r.Context())

		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		productID := r.FormValue("product_id")
		if productID != "" {
			if err := s.api.DeleteProduct(r.Context(), sess.AccessToken, productID); err != nil {
				s.renderBackendError(w, r, err, RouteAdminProducts)
				return
			}
		}

		redirectSuccess(w, r, RouteAdminProducts)
	}
}

// AdminOrdersHandler lists every order with pagination (GET /admin/orders).
func (s *Server) AdminOrdersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := guard.SessionFrom(r.Context())

		orders, pagination, err := s.api.ListOrders(r.Context(), sess.AccessToken, queryPage(r))
		if err != nil && !recoverable(err) {
			s.renderBackendError(w, r, err, RouteAdminOrders)
			return
		}
		if orders == nil {
			orders = []catalog.Order{}
		}

		s.renderAdminPage(w, r, "orders", "Orders", "admin_orders_content.html", map[string]interface{}{
			"Orders":     orders,
			"Pagination": pagination,
			"Statuses": []string{
				catalog.OrderStatusPending,
				catalog.OrderStatusProcessing,
				catalog.OrderStatusShipped,
				catalog.OrderStatusDelivered,
			},
		})
	}
}

// AdminOrderStatusHandler updates one order's status (POST /admin/orders/status).
func (s *Server) AdminOrderStatusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := guard.SessionFrom(r.Context())

		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		orderID := r.FormValue("order_id")
		status := r.FormValue("status")
		if orderID != "" && status != "" {
			if err := s.api.UpdateOrderStatus(r.Context(), sess.AccessToken, orderID, status); err != nil {
				s.renderBackendError(w, r, err, RouteAdminOrders)
				return
			}
		}

		redirectSuccess(w, r, RouteAdminOrders)
	}
}

// AdminUsersHandler lists users for management (GET /admin/users).
func (s *Server) AdminUsersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := guard.SessionFrom(r.Context())

		users, pagination, err := s.api.ListUsers(r.Context(), sess.AccessToken, queryPage(r))
		if err != nil && !recoverable(err) {
			s.renderBackendError(w, r, err, RouteAdminUsers)
			return
		}
		if users == nil {
			users = []catalog.User{}
		}

		s.renderAdminPage(w, r, "users", "Users", "admin_users_content.html", map[string]interface{}{
			"Users":      users,
			"Pagination": pagination,
		})
	}
}

// AdminUserSaveHandler creates or updates a user (POST /admin/users/save).
func (s *Server) AdminUserSaveHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := guard.SessionFrom(r.Context())

		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		var err error
		if userID := r.FormValue("user_id"); userID != "" {
			err = s.api.UpdateUser(r.Context(), sess.AccessToken, userID, backend.UserUpdate{
				Name:  r.FormValue("name"),
				Email: r.FormValue("email"),
				Role:  r.FormValue("role"),
			})
		} else {
			err = s.api.RegisterUser(r.Context(), sess.AccessToken, backend.RegisterInput{
				Name:     r.FormValue("name"),
				Email:    r.FormValue("email"),
				Password: r.FormValue("password"),
				Role:     r.FormValue("role"),
			})
		}
		if err != nil {
			s.renderBackendError(w, r, err, RouteAdminUsers)
			return
		}

		redirectSuccess(w, r, RouteAdminUsers)
	}
}

// AdminUserDeleteHandler removes a user (POST /admin/users/delete).
func (s *Server) AdminUserDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := guard.SessionFrom(r.Context())

		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		userID := r.FormValue("user_id")
		if userID != "" {
			if err := s.api.DeleteUser(r.Context(), sess.AccessToken, userID); err != nil {
				s.renderBackendError(w, r, err, RouteAdminUsers)
				return
			}
		}

		redirectSuccess(w, r, RouteAdminUsers)
	}
}

func firstUsers(users []catalog.User, n int) []catalog.User {
	if len(users) > n {
		return users[:n]
	}
	return users
}

func firstProducts(products []catalog.Product, n int) []catalog.Product {
	if len(products) > n {
		return products[:n]
	}
	return products
}

func firstOrders(orders []catalog.Order, n int) []catalog.Order {
	if len(orders) > n {
		return orders[:n]
	}
	return orders
}

func formFloat(r *http.Request, field string) float64 {
	v, err := strconv.ParseFloat(r.FormValue(field), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// listingTotal prefers the pagination block's total, falling back to the
// fetched page's length when the backend omits it.
func listingTotal(total, fallback int) int {
	if total == 0 {
		return fallback
	}
	return total
}
