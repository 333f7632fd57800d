package repositories

import (
	"sort"
	"strings"
	"sync"
	"time"

	"inventori/internal/apperrors"
	"inventori/internal/models"

	"github.com/google/uuid"
)

// MemoryProductRepository is an in-memory implementation of
// ProductRepository. It mirrors the GORM implementation's semantics,
// including SKU uniqueness and query ordering, for use in local
// development and tests that do not need a database.
type MemoryProductRepository struct {
	products map[string]models.Product
	mu       sync.RWMutex
}

// NewMemoryProductRepository creates a new instance of MemoryProductRepository.
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		products: make(map[string]models.Product),
	}
}

// Create adds a new product, rejecting duplicate SKUs.
func (r *MemoryProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.products {
		if strings.EqualFold(p.SKU, product.SKU) {
			return apperrors.Conflict("SKU already exists")
		}
	}

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	now := time.Now()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now
	r.products[product.ID] = *product
	return nil
}

// GetByID returns a product by its ID.
func (r *MemoryProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, apperrors.NotFound("Product not found")
	}
	return &product, nil
}

// List returns one page of matching products, newest first.
func (r *MemoryProductRepository) List(filter ProductFilter, page, limit int) ([]models.Product, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		if matchesFilter(p, filter) {
			matched = append(matched, p)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID < matched[j].ID
	})

	total := int64(len(matched))
	start := (page - 1) * limit
	if start >= len(matched) {
		return []models.Product{}, total, nil
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func matchesFilter(p models.Product, filter ProductFilter) bool {
	if filter.Type != "" && !containsFold(p.Type, filter.Type) {
		return false
	}
	if filter.Search != "" {
		if !containsFold(p.Name, filter.Search) &&
			!containsFold(p.SKU, filter.Search) &&
			!containsFold(p.Description, filter.Search) {
			return false
		}
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// UpdateQuantity replaces only the quantity field of the product.
func (r *MemoryProductRepository) UpdateQuantity(id string, quantity int) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return nil, apperrors.NotFound("Product not found")
	}
	product.Quantity = quantity
	product.UpdatedAt = time.Now()
	r.products[id] = product
	return &product, nil
}

// Delete removes a product by its ID.
func (r *MemoryProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return apperrors.NotFound("Product not found")
	}
	delete(r.products, id)
	return nil
}

// TopByAddCount returns up to limit products ordered by add count,
// highest first, ties broken by creation time then ID.
func (r *MemoryProductRepository) TopByAddCount(limit int) ([]models.TopProduct, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].AddCount != all[j].AddCount {
			return all[i].AddCount > all[j].AddCount
		}
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.Before(all[j].CreatedAt)
		}
		return all[i].ID < all[j].ID
	})

	if limit < len(all) {
		all = all[:limit]
	}
	top := make([]models.TopProduct, 0, len(all))
	for _, p := range all {
		top = append(top, models.TopProduct{
			Name:     p.Name,
			Type:     p.Type,
			SKU:      p.SKU,
			AddCount: p.AddCount,
			Price:    p.Price,
			Quantity: p.Quantity,
		})
	}
	return top, nil
}

// Summary computes the aggregate totals over all products.
func (r *MemoryProductRepository) Summary() (*models.InventorySummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var summary models.InventorySummary
	for _, p := range r.products {
		summary.TotalProducts++
		summary.TotalInventoryValue += float64(p.Quantity) * p.Price
		summary.TotalQuantity += int64(p.Quantity)
		if p.Quantity < 10 {
			summary.LowStockProducts++
		}
	}
	return &summary, nil
}
