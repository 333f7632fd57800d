package repositories

import "inventori/internal/models"

// ProductFilter narrows a product listing. Both fields are
// case-insensitive substring matches; empty fields match everything.
type ProductFilter struct {
	// Type matches against the product type only.
	Type string
	// Search matches against any of name, SKU, or description.
	Search string
}

// ProductRepository defines the interface for product data access,
// including the read-only aggregate queries used by analytics.
type ProductRepository interface {
	Create(product *models.Product) error
	GetByID(id string) (*models.Product, error)
	List(filter ProductFilter, page, limit int) ([]models.Product, int64, error)
	UpdateQuantity(id string, quantity int) (*models.Product, error)
	Delete(id string) error
	TopByAddCount(limit int) ([]models.TopProduct, error)
	Summary() (*models.InventorySummary, error)
}
