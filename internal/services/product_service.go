package services

import (
	"log"
	"strings"

	"inventori/internal/apperrors"
	"inventori/internal/models"
	"inventori/internal/repositories"

	"github.com/google/uuid"
)

// EventPublisher publishes inventory events to the message broker.
type EventPublisher interface {
	PublishEvent(event string, data map[string]interface{}) error
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo   repositories.ProductRepository
	events EventPublisher
}

// NewProductService creates a new ProductService. events may be nil, in
// which case event publication is skipped.
func NewProductService(repo repositories.ProductRepository, events EventPublisher) *ProductService {
	return &ProductService{
		repo:   repo,
		events: events,
	}
}

// Create stores a new product. The SKU is normalized to upper case
// before storage, and the add counter always starts at 1 regardless of
// client input.
func (s *ProductService) Create(product *models.Product) (*models.Product, error) {
	product.SKU = strings.ToUpper(product.SKU)
	product.AddCount = 1

	if err := s.repo.Create(product); err != nil {
		return nil, err
	}

	s.publish("product.created", map[string]interface{}{
		"product_id": product.ID,
		"sku":        product.SKU,
		"name":       product.Name,
		"quantity":   product.Quantity,
	})
	return product, nil
}

// List returns one page of products matching the filter plus the
// pagination window. Page defaults to 1 and limit to 10.
func (s *ProductService) List(filter repositories.ProductFilter, page, limit int) ([]models.Product, *models.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	products, total, err := s.repo.List(filter, page, limit)
	if err != nil {
		return nil, nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	pagination := &models.Pagination{
		CurrentPage:   page,
		TotalPages:    totalPages,
		TotalProducts: total,
		HasNextPage:   page < totalPages,
		HasPrevPage:   page > 1,
	}
	return products, pagination, nil
}

// GetByID retrieves a single product. A malformed ID is a validation
// failure, distinct from the not-found case for a well-formed one.
func (s *ProductService) GetByID(id string) (*models.Product, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	return s.repo.GetByID(id)
}

// UpdateQuantity replaces the quantity of an existing product. No other
// field is touched.
func (s *ProductService) UpdateQuantity(id string, quantity int) (*models.Product, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	if quantity < 0 {
		return nil, apperrors.Validation("Validation error", "quantity must be greater than or equal to 0")
	}

	product, err := s.repo.UpdateQuantity(id, quantity)
	if err != nil {
		return nil, err
	}

	s.publish("stock.updated", map[string]interface{}{
		"product_id": product.ID,
		"sku":        product.SKU,
		"quantity":   product.Quantity,
	})
	return product, nil
}

// Delete permanently removes a product.
func (s *ProductService) Delete(id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

// publish sends an inventory event best-effort. A broker failure is
// logged and never fails the calling operation.
func (s *ProductService) publish(event string, data map[string]interface{}) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishEvent(event, data); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", event, err)
	}
}

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.Validation("Invalid product ID", "")
	}
	return nil
}
