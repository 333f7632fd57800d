package services

import (
	"inventori/internal/models"
	"inventori/internal/repositories"
)

const defaultTopLimit = 10

// AnalyticsService exposes read-only aggregate queries over the product
// store.
type AnalyticsService struct {
	repo repositories.ProductRepository
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(repo repositories.ProductRepository) *AnalyticsService {
	return &AnalyticsService{
		repo: repo,
	}
}

// TopProducts returns up to limit products ordered by add count, highest
// first. A non-positive limit falls back to the default of 10.
func (s *AnalyticsService) TopProducts(limit int) ([]models.TopProduct, error) {
	if limit <= 0 {
		limit = defaultTopLimit
	}
	top, err := s.repo.TopByAddCount(limit)
	if err != nil {
		return nil, err
	}
	if top == nil {
		top = []models.TopProduct{}
	}
	return top, nil
}

// Summary returns the aggregate inventory totals. All fields are zero
// when no products exist.
func (s *AnalyticsService) Summary() (*models.InventorySummary, error) {
	return s.repo.Summary()
}
