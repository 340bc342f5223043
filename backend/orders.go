package backend

import (
	"context"
	"net/http"

	"github.com/shopfront/storefront/catalog"
)

// OrderItemInput is one order line as the backend expects it at creation.
type OrderItemInput struct {
	ProductID       string                  `json:"productId"`
	Quantity        int                     `json:"quantity"`
	SelectedVariant catalog.SelectedVariant `json:"selectedVariant"`
}

type OrderInput struct {
	Name            string           `json:"name"`
	Email           string           `json:"email"`
	Phone           string           `json:"phone"`
	ShippingAddress string           `json:"shippingAddress"`
	Items           []OrderItemInput `json:"items"`
	TotalAmount     float64          `json:"totalAmount"`
}

type orderStatusUpdate struct {
	Status string `json:"status"`
}

// ordersListing is the data payload of /orders/all: the collection and its
// pagination both live inside the envelope's data field.
type ordersListing struct {
	Orders     []catalog.Order `json:"orders"`
	Pagination *Pagination     `json:"pagination"`
}

func (c *Client) CreateOrder(ctx context.Context, token string, input OrderInput) (*catalog.Order, error) {
	var order catalog.Order
	if _, err := c.doEnvelope(ctx, http.MethodPost, "/orders", token, input, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// ListOrders returns the visitor's orders; for admins the backend widens the
// same endpoint to every order.
func (c *Client) ListOrders(ctx context.Context, token string, page int) ([]catalog.Order, *Pagination, error) {
	var listing ordersListing
	if _, err := c.doEnvelope(ctx, http.MethodGet, pagePath("/orders/all", page), token, nil, &listing); err != nil {
		return nil, nil, err
	}
	return listing.Orders, listing.Pagination, nil
}

func (c *Client) GetOrder(ctx context.Context, token, orderID string) (*catalog.Order, error) {
	var order catalog.Order
	if _, err := c.doEnvelope(ctx, http.MethodGet, "/orders/"+orderID, token, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, token, orderID, status string) error {
	_, err := c.doEnvelope(ctx, http.MethodPut, "/orders/"+orderID, token, orderStatusUpdate{Status: status}, nil)
	return err
}
