package backend

import (
	"context"
	"net/http"

	"github.com/shopfront/storefront/catalog"
)

type AddToCartInput struct {
	ProductID       string                  `json:"productId"`
	Quantity        int                     `json:"quantity"`
	SelectedVariant catalog.SelectedVariant `json:"selectedVariant"`
}

type cartQuantityUpdate struct {
	Quantity int `json:"quantity"`
}

func (c *Client) GetCart(ctx context.Context, token string) (*catalog.Cart, error) {
	var cart catalog.Cart
	if _, err := c.doEnvelope(ctx, http.MethodGet, "/cart", token, nil, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *Client) AddToCart(ctx context.Context, token string, input AddToCartInput) error {
	_, err := c.doEnvelope(ctx, http.MethodPost, "/cart", token, input, nil)
	return err
}

func (c *Client) UpdateCartItem(ctx context.Context, token, itemID string, quantity int) error {
	_, err := c.doEnvelope(ctx, http.MethodPut, "/cart/"+itemID, token, cartQuantityUpdate{Quantity: quantity}, nil)
	return err
}

func (c *Client) RemoveCartItem(ctx context.Context, token, itemID string) error {
	_, err := c.doEnvelope(ctx, http.MethodDelete, "/cart/"+itemID, token, nil, nil)
	return err
}
