package server

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/shopfront/storefront/backend"
	"github.com/shopfront/storefront/catalog"
	"github.com/shopfront/storefront/guard"
	apperrors "github.com/shopfront/storefront/internal/errors"
)

// CheckoutPageHandler renders the shipping form next to the cart summary
// (GET /checkout). Shipping details are pre-filled from the profile cookie.
func (s *Server) CheckoutPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := guard.SessionFrom(r.Context())

		cart, err := s.api.GetCart(r.Context(), sess.AccessToken)
		if err != nil {
			s.renderBackendError(w, r, err, RouteCheckout)
			return
		}
		if cart.IsEmpty() {
			redirectSuccess(w, r, RouteCart)
			return
		}

		data := map[string]interface{}{
			"Cart":     cart,
			"Subtotal": cart.Subtotal(),
			"Error":    r.URL.Query().Get("error"),
		}
		if sess.Profile != nil {
			data["FullName"] = sess.Profile.Name
			data["Email"] = sess.Profile.Email
			data["Address"] = sess.Profile.Address
		}

		s.renderPage(w, r, "Checkout", "checkout_content.html", data)
	}
}

// CheckoutSubmitHandler validates the shipping form, creates the order from
// the current cart, and redirects to the success page (POST /checkout).
func (s *Server) CheckoutSubmitHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := guard.SessionFrom(r.Context())

		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		form, err := parseCheckoutForm(r)
		if err != nil {
			redirectSuccess(w, r, RouteCheckout+"?error="+url.QueryEscape(formError(err)))
			return
		}

		cart, err := s.api.GetCart(r.Context(), sess.AccessToken)
		if err != nil {
			s.renderBackendError(w, r, err, RouteCheckout)
			return
		}
		if cart.IsEmpty() {
			redirectSuccess(w, r, RouteCart)
			return
		}

		items := make([]backend.OrderItemInput, 0, len(cart.Items))
		for _, item := range cart.Items {
			items = append(items, backend.OrderItemInput{
				ProductID:       item.Product.ID,
				Quantity:        item.Quantity,
				SelectedVariant: item.SelectedVariant,
			})
		}

		order, err := s.api.CreateOrder(r.Context(), sess.AccessToken, backend.OrderInput{
			Name:  form.FullName,
			Email: form.Email,
			Phone: form.Phone,
			ShippingAddress: fmt.Sprintf("%s, %s, %s %s",
				form.Address, form.City, form.State, form.ZipCode),
			Items:       items,
			TotalAmount: cart.Subtotal(),
		})
		if err != nil {
			s.renderBackendError(w, r, err, RouteCheckout)
			return
		}

		redirectSuccess(w, r, RouteOrderSuccess+"?order="+url.QueryEscape(order.ID))
	}
}

// OrderSuccessHandler confirms a placed order (GET /order-success).
func (s *Server) OrderSuccessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := guard.SessionFrom(r.Context())
		orderID := r.URL.Query().Get("order")

		data := map[string]interface{}{"OrderID": orderID}
		if orderID != "" {
			// Best effort; the confirmation renders even if the lookup fails.
			if order, err := s.api.GetOrder(r.Context(), sess.AccessToken, orderID); err == nil {
				data["Order"] = order
			} else if apperrors.Is(err, apperrors.ErrUnauthorized) {
				s.renderBackendError(w, r, err, RouteOrderSuccess)
				return
			}
		}

		s.renderPage(w, r, "Order Placed", "order_success_content.html", data)
	}
}

// OrdersPageHandler lists the visitor's orders with pagination (GET /orders).
func (s *Server) OrdersPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := guard.SessionFrom(r.Context())

		orders, pagination, err := s.api.ListOrders(r.Context(), sess.AccessToken, queryPage(r))
		if err != nil && !recoverable(err) {
			s.renderBackendError(w, r, err, RouteOrders)
			return
		}
		if orders == nil {
			orders = []catalog.Order{}
		}

		s.renderPage(w, r, "Your Orders", "orders_content.html", map[string]interface{}{
			"Orders":     orders,
			"Pagination": pagination,
		})
	}
}

// ProfilePageHandler shows the profile held in the client-side projection
// (GET /profile). No backend call; this is the cookie the pages pre-fill
// forms from.
func (s *Server) ProfilePageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := guard.SessionFrom(r.Context())

		s.renderPage(w, r, "Your Profile", "profile_content.html", map[string]interface{}{
			"Profile": sess.Profile,
		})
	}
}
