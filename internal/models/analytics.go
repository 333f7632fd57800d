package models

// TopProduct is the projection returned by the top-products query.
type TopProduct struct {
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	SKU      string  `json:"sku"`
	AddCount int     `json:"add_count"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// InventorySummary holds the aggregate totals over all products. All
// fields are zero, never absent, when no products exist.
type InventorySummary struct {
	TotalProducts       int64   `json:"totalProducts"`
	TotalInventoryValue float64 `json:"totalInventoryValue"`
	TotalQuantity       int64   `json:"totalQuantity"`
	LowStockProducts    int64   `json:"lowStockProducts"`
}

// Pagination describes the page window of a product listing.
type Pagination struct {
	CurrentPage   int   `json:"currentPage"`
	TotalPages    int   `json:"totalPages"`
	TotalProducts int64 `json:"totalProducts"`
	HasNextPage   bool  `json:"hasNextPage"`
	HasPrevPage   bool  `json:"hasPrevPage"`
}
