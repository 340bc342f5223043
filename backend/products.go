package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shopfront/storefront/catalog"
)

// ProductQuery narrows a product listing. Zero values mean "no filter".
type ProductQuery struct {
	Page     int
	Category string
}

func (q ProductQuery) encode() string {
	values := url.Values{}
	if q.Page > 1 {
		values.Set("page", fmt.Sprintf("%d", q.Page))
	}
	if q.Category != "" {
		values.Set("category", q.Category)
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}

type ProductInput struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Category    string            `json:"category"`
	BasePrice   float64           `json:"basePrice"`
	Discount    float64           `json:"discount"`
	ImageURL    string            `json:"imageUrl"`
	Variants    []catalog.Variant `json:"variants,omitempty"`
}

func (c *Client) ListProducts(ctx context.Context, query ProductQuery) ([]catalog.Product, *Pagination, error) {
	var products []catalog.Product
	pagination, err := c.doEnvelope(ctx, http.MethodGet, "/products"+query.encode(), "", nil, &products)
	if err != nil {
		return nil, nil, err
	}
	return products, pagination, nil
}

func (c *Client) GetProduct(ctx context.Context, productID string) (*catalog.Product, error) {
	var product catalog.Product
	if _, err := c.doEnvelope(ctx, http.MethodGet, "/products/"+productID, "", nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) CreateProduct(ctx context.Context, token string, input ProductInput) error {
	_, err := c.doEnvelope(ctx, http.MethodPost, "/products", token, input, nil)
	return err
}

func (c *Client) UpdateProduct(ctx context.Context, token, productID string, input ProductInput) error {
	_, err := c.doEnvelope(ctx, http.MethodPut, "/products/"+productID, token, input, nil)
	return err
}

func (c *Client) DeleteProduct(ctx context.Context, token, productID string) error {
	_, err := c.doEnvelope(ctx, http.MethodDelete, "/products/"+productID, token, nil, nil)
	return err
}
