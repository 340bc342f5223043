package backend

// Pagination covers both envelope variants the backend emits: product and
// user listings use hasNextPage/hasPrevPage, order listings use hasNext/hasPrev.
type Pagination struct {
	CurrentPage   int  `json:"currentPage"`
	TotalPages    int  `json:"totalPages"`
	TotalProducts int  `json:"totalProducts,omitempty"`
	TotalOrders   int  `json:"totalOrders,omitempty"`
	TotalUsers    int  `json:"totalUsers,omitempty"`
	HasNextPage   bool `json:"hasNextPage,omitempty"`
	HasPrevPage   bool `json:"hasPrevPage,omitempty"`
	HasNext       bool `json:"hasNext,omitempty"`
	HasPrev       bool `json:"hasPrev,omitempty"`
}

func (p *Pagination) Next() bool {
	if p == nil {
		return false
	}
	return p.HasNextPage || p.HasNext
}

func (p *Pagination) Prev() bool {
	if p == nil {
		return false
	}
	return p.HasPrevPage || p.HasPrev
}

// Nil-safe accessors for the per-resource totals.

func (p *Pagination) UsersTotal() int {
	if p == nil {
		return 0
	}
	return p.TotalUsers
}

func (p *Pagination) ProductsTotal() int {
	if p == nil {
		return 0
	}
	return p.TotalProducts
}

func (p *Pagination) OrdersTotal() int {
	if p == nil {
		return 0
	}
	return p.TotalOrders
}

// Page returns the current page, treating a missing pagination block as the
// first page.
func (p *Pagination) Page() int {
	if p == nil || p.CurrentPage < 1 {
		return 1
	}
	return p.CurrentPage
}
