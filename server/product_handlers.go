package server

import (
	"net/http"

	"github.com/shopfront/storefront/backend"
	"github.com/shopfront/storefront/catalog"
)

// ProductsListHandler renders the product listing with category filter and
// pagination (GET /products).
func (s *Server) ProductsListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := backend.ProductQuery{
			Page:     queryPage(r),
			Category: r.URL.Query().Get("category"),
		}

		products, pagination, err := s.api.ListProducts(r.Context(), query)
		if err != nil && !recoverable(err) {
			s.renderBackendError(w, r, err, RouteProducts)
			return
		}
		if products == nil {
			products = []catalog.Product{}
		}

		s.renderPage(w, r, "Products", "products_content.html", map[string]interface{}{
			"Products":   products,
			"Pagination": pagination,
			"Category":   query.Category,
		})
	}
}

// ProductDetailHandler renders a single product with its variants and
// reviews (GET /products/{id}).
func (s *Server) ProductDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID := r.PathValue("id")
		if productID == "" {
			http.NotFound(w, r)
			return
		}

		product, err := s.api.GetProduct(r.Context(), productID)
		if err != nil {
			s.renderBackendError(w, r, err, RouteProducts+"/"+productID)
			return
		}

		s.renderPage(w, r, product.Name, "product_detail_content.html", map[string]interface{}{
			"Product": product,
		})
	}
}
