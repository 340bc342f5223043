package catalog

import (
	"strings"
	"time"
)

type OrderItem struct {
	ID              string          `json:"_id"`
	Product         Product         `json:"product"`
	Quantity        int             `json:"quantity"`
	SelectedVariant SelectedVariant `json:"selectedVariant"`
}

// OrderUser is the embedded owner summary the backend attaches to each order.
type OrderUser struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Order struct {
	ID           string      `json:"_id"`
	User         OrderUser   `json:"user"`
	Items        []OrderItem `json:"items"`
	TotalPrice   float64     `json:"totalPrice"`
	ShippingCost float64     `json:"shippingCost"`
	Status       string      `json:"status"`
	IsCancelled  bool        `json:"isCancelled"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// Order statuses used by the admin console's status dropdown.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
)

// DisplayStatus folds the cancellation flag into the visible status.
func (o Order) DisplayStatus() string {
	if o.IsCancelled {
		return "Cancelled"
	}
	if o.Status == "" {
		return "Unknown"
	}
	return strings.ToUpper(o.Status[:1]) + o.Status[1:]
}
