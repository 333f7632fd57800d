package services_test

import (
	"testing"

	"inventori/internal/models"
	"inventori/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestAnalyticsService_TopProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewAnalyticsService(mockRepo)

	expected := []models.TopProduct{
		{Name: "Widget", Type: "tool", SKU: "WID-1", AddCount: 1, Price: 9.99, Quantity: 5},
	}

	mockRepo.On("TopByAddCount", 1).Return(expected, nil).Once()
	top, err := service.TopProducts(1)
	assert.NoError(t, err)
	assert.Equal(t, expected, top)
	mockRepo.AssertExpectations(t)
}

func TestAnalyticsService_TopProducts_DefaultLimit(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewAnalyticsService(mockRepo)

	// Non-positive limits fall back to 10.
	mockRepo.On("TopByAddCount", 10).Return([]models.TopProduct{}, nil).Twice()

	top, err := service.TopProducts(0)
	assert.NoError(t, err)
	assert.NotNil(t, top)
	assert.Empty(t, top)

	_, err = service.TopProducts(-5)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestAnalyticsService_TopProducts_NilBecomesEmptySlice(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewAnalyticsService(mockRepo)

	mockRepo.On("TopByAddCount", 10).Return([]models.TopProduct(nil), nil).Once()
	top, err := service.TopProducts(10)
	assert.NoError(t, err)
	assert.NotNil(t, top)
	assert.Empty(t, top)
	mockRepo.AssertExpectations(t)
}

func TestAnalyticsService_Summary(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewAnalyticsService(mockRepo)

	expected := &models.InventorySummary{
		TotalProducts:       2,
		TotalInventoryValue: 110,
		TotalQuantity:       8,
		LowStockProducts:    2,
	}
	mockRepo.On("Summary").Return(expected, nil).Once()

	summary, err := service.Summary()
	assert.NoError(t, err)
	assert.Equal(t, expected, summary)
	mockRepo.AssertExpectations(t)
}
