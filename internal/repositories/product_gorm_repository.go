package repositories

import (
	"errors"
	"strings"

	"inventori/internal/apperrors"
	"inventori/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
// It expects the DB to be opened with TranslateError so duplicate-key
// detection works the same on Postgres and SQLite.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// Create inserts a new product. SKU uniqueness is enforced by the unique
// index; a duplicate insert surfaces as a conflict error.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Conflict("SKU already exists")
		}
		return apperrors.Internal(err)
	}
	return nil
}

// GetByID retrieves a single product by its ID.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Product not found")
		}
		return nil, apperrors.Internal(err)
	}
	return &product, nil
}

// List returns one page of products matching the filter, newest first,
// along with the total match count.
func (r *GORMProductRepository) List(filter ProductFilter, page, limit int) ([]models.Product, int64, error) {
	query := r.db.Model(&models.Product{})

	if filter.Type != "" {
		query = query.Where("LOWER(type) LIKE ?", "%"+strings.ToLower(filter.Type)+"%")
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(sku) LIKE ? OR LOWER(description) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	// Count on a separate session so it does not leak its SELECT into
	// the page query below.
	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, apperrors.Internal(err)
	}

	// ID is the tiebreak so pages are stable when rows share a timestamp.
	products := make([]models.Product, 0, limit)
	err := query.
		Order("created_at DESC, id ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, 0, apperrors.Internal(err)
	}
	return products, total, nil
}

// UpdateQuantity replaces only the quantity field of the product.
func (r *GORMProductRepository) UpdateQuantity(id string, quantity int) (*models.Product, error) {
	res := r.db.Model(&models.Product{}).Where("id = ?", id).Update("quantity", quantity)
	if res.Error != nil {
		return nil, apperrors.Internal(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.NotFound("Product not found")
	}
	return r.GetByID(id)
}

// Delete permanently removes a product by its ID.
func (r *GORMProductRepository) Delete(id string) error {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return apperrors.Internal(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("Product not found")
	}
	return nil
}

// TopByAddCount returns up to limit products ordered by add count,
// highest first. Ties are broken by creation time, then ID.
func (r *GORMProductRepository) TopByAddCount(limit int) ([]models.TopProduct, error) {
	top := make([]models.TopProduct, 0, limit)
	err := r.db.Model(&models.Product{}).
		Select("name, type, sku, add_count, price, quantity").
		Order("add_count DESC, created_at ASC, id ASC").
		Limit(limit).
		Scan(&top).Error
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return top, nil
}

// Summary computes the aggregate totals in a single query. COALESCE
// keeps the sums at zero, not NULL, on an empty table.
func (r *GORMProductRepository) Summary() (*models.InventorySummary, error) {
	var summary models.InventorySummary
	err := r.db.Model(&models.Product{}).
		Select(
			"COUNT(*) AS total_products, " +
				"COALESCE(SUM(quantity * price), 0) AS total_inventory_value, " +
				"COALESCE(SUM(quantity), 0) AS total_quantity, " +
				"COALESCE(SUM(CASE WHEN quantity < 10 THEN 1 ELSE 0 END), 0) AS low_stock_products",
		).
		Scan(&summary).Error
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return &summary, nil
}
