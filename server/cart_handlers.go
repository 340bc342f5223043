package server

import (
	"net/http"
	"strconv"

	"github.com/shopfront/storefront/backend"
	"github.com/shopfront/storefront/catalog"
	"github.com/shopfront/storefront/guard"
)

// CartPageHandler renders the cart (GET /cart). The guard guarantees an
// authenticated session before this runs; the backend still decides whether
// the token is actually good.
func (s *Server) CartPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := guard.SessionFrom(r.Context())

		cart, err := s.api.GetCart(r.Context(), sess.AccessToken)
		if err != nil && !recoverable(err) {
			s.renderBackendError(w, r, err, RouteCart)
			return
		}
		if cart == nil {
			cart = &catalog.Cart{}
		}

		s.renderPage(w, r, "Your Cart", "cart_content.html", map[string]interface{}{
			"Cart":     cart,
			"Subtotal": cart.Subtotal(),
		})
	}
}

// CartAddHandler adds a product variant to the cart (POST /cart/add) and
// returns to the product page.
func (s *Server) CartAddHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := guard.SessionFrom(r.Context())

		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		productID := r.FormValue("product_id")
		quantity := formQuantity(r)
		input := backend.AddToCartInput{
			ProductID: productID,
			Quantity:  quantity,
			SelectedVariant: catalog.SelectedVariant{
				Size:  r.FormValue("size"),
				Color: r.FormValue("color"),
			},
		}

		if err := s.api.AddToCart(r.Context(), sess.AccessToken, input); err != nil {
			s.renderBackendError(w, r, err, RouteProducts+"/"+productID)
			return
		}

		redirectSuccess(w, r, RouteCart)
	}
}

// CartUpdateHandler changes a line's quantity (POST /cart/update).
func (s *Server) CartUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := guard.SessionFrom(r.Context())

		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		itemID := r.FormValue("item_id")
		quantity := formQuantity(r)
		if itemID == "" {
			redirectSuccess(w, r, RouteCart)
			return
		}

		if err := s.api.UpdateCartItem(r.Context(), sess.AccessToken, itemID, quantity); err != nil {
			s.renderBackendError(w, r, err, RouteCart)
			return
		}

		redirectSuccess(w, r, RouteCart)
	}
}

// CartRemoveHandler removes a line from the cart (POST /cart/remove).
func (s *Server) CartRemoveHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := guard.SessionFrom(r.Context())

		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		itemID := r.FormValue("item_id")
		if itemID == "" {
			redirectSuccess(w, r, RouteCart)
			return
		}

		if err := s.api.RemoveCartItem(r.Context(), sess.AccessToken, itemID); err != nil {
			s.renderBackendError(w, r, err, RouteCart)
			return
		}

		redirectSuccess(w, r, RouteCart)
	}
}

func formQuantity(r *http.Request) int {
	quantity, err := strconv.Atoi(r.FormValue("quantity"))
	if err != nil || quantity < 1 {
		return 1
	}
	return quantity
}
