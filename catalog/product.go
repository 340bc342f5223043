package catalog

import "time"

// Variant is a purchasable variation of a product (size/colour combination
// with its own stock, price and SKU).
type Variant struct {
	ID    string  `json:"_id"`
	Size  string  `json:"size"`
	Color string  `json:"color"`
	Stock int     `json:"stock"`
	Price float64 `json:"price"`
	SKU   string  `json:"sku"`
}

type Review struct {
	ID        string    `json:"_id"`
	User      string    `json:"user"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Product struct {
	ID            string    `json:"_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	BasePrice     float64   `json:"basePrice"`
	Discount      float64   `json:"discount"` // percentage, 0-100
	ImageURL      string    `json:"imageUrl"`
	Variants      []Variant `json:"variants"`
	AverageRating float64   `json:"averageRating"`
	TotalReviews  int       `json:"totalReviews"`
	Reviews       []Review  `json:"reviews,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// DiscountedPrice applies the product's percentage discount to its base price.
func (p Product) DiscountedPrice() float64 {
	return DiscountedPrice(p.BasePrice, p.Discount)
}

func DiscountedPrice(basePrice, discount float64) float64 {
	return basePrice - (basePrice * discount / 100)
}

// TotalStock sums stock across all variants.
func (p Product) TotalStock() int {
	total := 0
	for _, v := range p.Variants {
		total += v.Stock
	}
	return total
}
