package backend_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shopfront/storefront/backend"
	apperrors "github.com/shopfront/storefront/internal/errors"
)

func fakeBackend(t *testing.T, handler http.HandlerFunc) *backend.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return backend.New(srv.URL)
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func TestClient_ListProducts(t *testing.T) {
	client := fakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/products", r.URL.Path)
		require.Empty(t, r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, `{
			"success": true,
			"data": [
				{"_id": "p1", "name": "Mug", "basePrice": 12.5, "discount": 20},
				{"_id": "p2", "name": "Poster", "basePrice": 8}
			],
			"pagination": {"currentPage": 1, "totalPages": 3, "totalProducts": 25, "hasNextPage": true}
		}`)
	})

	products, pagination, err := client.ListProducts(context.Background(), backend.ProductQuery{})
	require.NoError(t, err)
	require.Len(t, products, 2)
	require.Equal(t, "p1", products[0].ID)
	require.Equal(t, 10.0, products[0].DiscountedPrice())
	require.NotNil(t, pagination)
	require.Equal(t, 25, pagination.ProductsTotal())
	require.True(t, pagination.Next())
}

func TestClient_ListProductsEncodesQuery(t *testing.T) {
	client := fakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "2", r.URL.Query().Get("page"))
		require.Equal(t, "mugs", r.URL.Query().Get("category"))
		writeJSON(w, http.StatusOK, `{"success": true, "data": []}`)
	})

	_, _, err := client.ListProducts(context.Background(), backend.ProductQuery{Page: 2, Category: "mugs"})
	require.NoError(t, err)
}

func TestClient_EnvelopeRejection(t *testing.T) {
	client := fakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"success": false, "message": "product out of stock"}`)
	})

	_, _, err := client.ListProducts(context.Background(), backend.ProductQuery{})
	require.Error(t, err)
	require.ErrorIs(t, err, apperrors.ErrBackendRejected)

	var apiErr *backend.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, "product out of stock", apiErr.Message)
}

func TestClient_StatusErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"unauthorized maps to the session sentinel", http.StatusUnauthorized, apperrors.ErrUnauthorized},
		{"not found", http.StatusNotFound, apperrors.ErrNotFound},
		{"server error", http.StatusInternalServerError, apperrors.ErrBackendRejected},
		{"bad request", http.StatusBadRequest, apperrors.ErrBackendRejected},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client := fakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tc.status, `{"success": false, "message": "nope"}`)
			})
			_, err := client.GetProduct(context.Background(), "p1")
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestClient_MalformedResponse(t *testing.T) {
	t.Run("body is not JSON", func(t *testing.T) {
		client := fakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `<html>gateway error</html>`)
		})
		_, _, err := client.ListProducts(context.Background(), backend.ProductQuery{})
		require.ErrorIs(t, err, apperrors.ErrMalformedResponse)
	})

	t.Run("data has the wrong shape", func(t *testing.T) {
		client := fakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `{"success": true, "data": {"not": "a list"}}`)
		})
		_, _, err := client.ListProducts(context.Background(), backend.ProductQuery{})
		require.ErrorIs(t, err, apperrors.ErrMalformedResponse)
	})
}

func TestClient_BackendUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := backend.New(url)
	_, _, err := client.ListProducts(context.Background(), backend.ProductQuery{})
	require.ErrorIs(t, err, apperrors.ErrBackendUnreachable)
}

func TestClient_BearerToken(t *testing.T) {
	client := fakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, `{"success": true, "data": {"orders": []}}`)
	})

	_, _, err := client.ListOrders(context.Background(), "token-123", 1)
	require.NoError(t, err)
}

func TestClient_Login(t *testing.T) {
	t.Run("success decodes the bare payload", func(t *testing.T) {
		client := fakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/users/login", r.URL.Path)
			require.Empty(t, r.Header.Get("Authorization"))
			writeJSON(w, http.StatusOK, `{
				"accessToken": "access-1",
				"refreshToken": "refresh-1",
				"user": {"_id": "u1", "name": "John Doe", "email": "john@example.com", "role": "admin"}
			}`)
		})

		resp, err := client.Login(context.Background(), backend.Credentials{Email: "john@example.com", Password: "pw"})
		require.NoError(t, err)
		require.Equal(t, "access-1", resp.AccessToken)
		require.Equal(t, "refresh-1", resp.RefreshToken)
		require.Equal(t, "admin", resp.User.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		client := fakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusUnauthorized, `{"message": "Invalid credentials"}`)
		})
		_, err := client.Login(context.Background(), backend.Credentials{Email: "john@example.com", Password: "wrong"})
		require.ErrorIs(t, err, apperrors.ErrUnauthorized)

		var apiErr *backend.APIError
		require.True(t, errors.As(err, &apiErr))
		require.Equal(t, http.StatusUnauthorized, apiErr.Status)
		require.Equal(t, "Invalid credentials", apiErr.Message)
	})
}

func TestClient_ListOrders(t *testing.T) {
	client := fakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/orders/all", r.URL.Path)
		require.Equal(t, "2", r.URL.Query().Get("page"))
		writeJSON(w, http.StatusOK, `{
			"success": true,
			"data": {
				"orders": [{"_id": "o1", "totalPrice": 42, "status": "shipped"}],
				"pagination": {"currentPage": 2, "totalPages": 2, "totalOrders": 11, "hasNext": false}
			}
		}`)
	})

	orders, pagination, err := client.ListOrders(context.Background(), "token-123", 2)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Equal(t, "shipped", orders[0].Status)
	require.NotNil(t, pagination)
	require.Equal(t, 11, pagination.OrdersTotal())
	require.False(t, pagination.Next(), "last page has no next")
	require.Equal(t, 2, pagination.Page())
}

func TestClient_ListUsers(t *testing.T) {
	client := fakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/all", r.URL.Path)
		writeJSON(w, http.StatusOK, `{
			"success": true,
			"users": [
				{"_id": "u1", "name": "John Doe", "role": "admin"},
				{"_id": "u2", "name": "Jane Roe", "role": "customer"}
			],
			"pagination": {"currentPage": 1, "totalPages": 1, "totalUsers": 2}
		}`)
	})

	users, pagination, err := client.ListUsers(context.Background(), "token-123", 1)
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Equal(t, "Jane Roe", users[1].Name)
	require.Equal(t, 2, pagination.UsersTotal())
}

func TestClient_CreateOrder(t *testing.T) {
	client := fakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/orders", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		writeJSON(w, http.StatusCreated, `{"success": true, "data": {"_id": "o9", "totalPrice": 30, "status": "pending"}}`)
	})

	order, err := client.CreateOrder(context.Background(), "token-123", backend.OrderInput{
		Name:            "John Doe",
		Email:           "john@example.com",
		ShippingAddress: "221B Baker Street, London",
		Items: []backend.OrderItemInput{
			{ProductID: "p1", Quantity: 2},
		},
		TotalAmount: 30,
	})
	require.NoError(t, err)
	require.Equal(t, "o9", order.ID)
	require.Equal(t, "pending", order.Status)
}

func TestClient_DeleteProduct(t *testing.T) {
	client := fakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/products/p1", r.URL.Path)
		writeJSON(w, http.StatusOK, `{"success": true, "message": "deleted"}`)
	})
	require.NoError(t, client.DeleteProduct(context.Background(), "token-123", "p1"))
}
