package catalog

import "time"

// SelectedVariant identifies which size/colour of a product a cart or order
// line refers to.
type SelectedVariant struct {
	Size  string `json:"size"`
	Color string `json:"color"`
}

type CartItem struct {
	ID              string          `json:"_id"`
	Product         Product         `json:"product"`
	Quantity        int             `json:"quantity"`
	SelectedVariant SelectedVariant `json:"selectedVariant"`
}

// LineTotal is the discounted unit price multiplied by quantity.
func (i CartItem) LineTotal() float64 {
	return i.Product.DiscountedPrice() * float64(i.Quantity)
}

type Cart struct {
	ID         string     `json:"_id"`
	User       string     `json:"user"`
	Items      []CartItem `json:"items"`
	TotalPrice float64    `json:"totalPrice"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// Subtotal recomputes the cart total from its lines. The backend sends its own
// totalPrice; templates prefer the recomputed value so a stale server total
// never disagrees with the rendered lines.
func (c Cart) Subtotal() float64 {
	total := 0.0
	for _, item := range c.Items {
		total += item.LineTotal()
	}
	return total
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
