package catalog

import "time"

type User struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DashboardStats is the aggregate the backend returns for the admin dashboard.
type DashboardStats struct {
	TotalUsers     int       `json:"totalUsers"`
	TotalProducts  int       `json:"totalProducts"`
	TotalOrders    int       `json:"totalOrders"`
	RecentUsers    []User    `json:"recentUsers"`
	RecentProducts []Product `json:"recentProducts"`
}
