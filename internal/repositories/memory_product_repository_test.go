package repositories_test

import (
	"fmt"
	"testing"
	"time"

	"inventori/internal/apperrors"
	"inventori/internal/models"
	"inventori/internal/repositories"

	"github.com/stretchr/testify/assert"
)

func seedProduct(t *testing.T, repo *repositories.MemoryProductRepository, p models.Product) models.Product {
	t.Helper()
	if err := repo.Create(&p); err != nil {
		t.Fatalf("seed product %s: %v", p.SKU, err)
	}
	return p
}

func TestMemoryProductRepository_CreateAndConflict(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()

	created := seedProduct(t, repo, models.Product{
		Name: "Widget", Type: "tool", SKU: "ABC-1", Description: "A widget",
		Quantity: 5, Price: 9.99, AddCount: 1,
	})
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	// Duplicate SKU is rejected case-insensitively and leaves the
	// original untouched.
	err := repo.Create(&models.Product{
		Name: "Other", Type: "tool", SKU: "abc-1", Description: "dup",
		Quantity: 1, Price: 1, AddCount: 1,
	})
	assert.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))

	original, err := repo.GetByID(created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Widget", original.Name)
	assert.Equal(t, 5, original.Quantity)
}

func TestMemoryProductRepository_ListFilters(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()
	seedProduct(t, repo, models.Product{
		Name: "Abacus", Type: "Education", SKU: "EDU-1", Description: "counting frame",
		Quantity: 3, Price: 12, AddCount: 1,
	})
	seedProduct(t, repo, models.Product{
		Name: "Drill", Type: "Power Tool", SKU: "PT-ABC", Description: "cordless drill",
		Quantity: 7, Price: 80, AddCount: 1,
	})
	seedProduct(t, repo, models.Product{
		Name: "Hammer", Type: "Hand Tool", SKU: "HT-9", Description: "claw hammer",
		Quantity: 2, Price: 15, AddCount: 1,
	})

	// search matches name OR sku OR description, case-insensitively.
	items, total, err := repo.List(repositories.ProductFilter{Search: "abc"}, 1, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	skus := []string{items[0].SKU, items[1].SKU}
	assert.ElementsMatch(t, []string{"EDU-1", "PT-ABC"}, skus)

	// type is a case-insensitive substring match, AND-combined with search.
	items, total, err = repo.List(repositories.ProductFilter{Type: "tool", Search: "abc"}, 1, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "PT-ABC", items[0].SKU)

	// no filter matches everything.
	_, total, err = repo.List(repositories.ProductFilter{}, 1, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), total)
}

func TestMemoryProductRepository_ListOrderAndPagination(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 25; i++ {
		seedProduct(t, repo, models.Product{
			Name: fmt.Sprintf("Item %02d", i), Type: "bulk",
			SKU: fmt.Sprintf("BULK-%02d", i), Description: "bulk item",
			Quantity: 1, Price: 1, AddCount: 1,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}

	// Most recently created first.
	items, total, err := repo.List(repositories.ProductFilter{}, 1, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(25), total)
	assert.Len(t, items, 10)
	assert.Equal(t, "BULK-24", items[0].SKU)
	assert.Equal(t, "BULK-15", items[9].SKU)

	// Page 3 of 10 holds the 5 oldest.
	items, total, err = repo.List(repositories.ProductFilter{}, 3, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(25), total)
	assert.Len(t, items, 5)
	assert.Equal(t, "BULK-04", items[0].SKU)
	assert.Equal(t, "BULK-00", items[4].SKU)

	// Past the last page is empty, not an error.
	items, _, err = repo.List(repositories.ProductFilter{}, 4, 10)
	assert.NoError(t, err)
	assert.Empty(t, items)
}

func TestMemoryProductRepository_UpdateQuantityAndDelete(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()
	created := seedProduct(t, repo, models.Product{
		Name: "Widget", Type: "tool", SKU: "ABC-1", Description: "A widget",
		Quantity: 5, Price: 9.99, AddCount: 1,
	})

	updated, err := repo.UpdateQuantity(created.ID, 0)
	assert.NoError(t, err)
	assert.Equal(t, 0, updated.Quantity)
	// Only quantity changes.
	assert.Equal(t, created.SKU, updated.SKU)
	assert.Equal(t, created.AddCount, updated.AddCount)

	_, err = repo.UpdateQuantity("missing-id", 3)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))

	assert.NoError(t, repo.Delete(created.ID))
	err = repo.Delete(created.ID)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestMemoryProductRepository_TopByAddCount(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	seedProduct(t, repo, models.Product{
		Name: "Old Popular", Type: "a", SKU: "POP-1", Description: "d",
		Quantity: 1, Price: 1, AddCount: 5, CreatedAt: base,
	})
	seedProduct(t, repo, models.Product{
		Name: "New Popular", Type: "a", SKU: "POP-2", Description: "d",
		Quantity: 1, Price: 1, AddCount: 5, CreatedAt: base.Add(time.Hour),
	})
	seedProduct(t, repo, models.Product{
		Name: "Niche", Type: "a", SKU: "NIC-1", Description: "d",
		Quantity: 1, Price: 1, AddCount: 2, CreatedAt: base,
	})

	// Ties on add count resolve to the earliest-created product.
	top, err := repo.TopByAddCount(1)
	assert.NoError(t, err)
	assert.Len(t, top, 1)
	assert.Equal(t, "POP-1", top[0].SKU)

	top, err = repo.TopByAddCount(10)
	assert.NoError(t, err)
	assert.Len(t, top, 3)
	assert.Equal(t, []string{"POP-1", "POP-2", "NIC-1"}, []string{top[0].SKU, top[1].SKU, top[2].SKU})
}

func TestMemoryProductRepository_Summary(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()

	// Empty store: all zeros, never absent.
	summary, err := repo.Summary()
	assert.NoError(t, err)
	assert.Equal(t, &models.InventorySummary{}, summary)

	seedProduct(t, repo, models.Product{
		Name: "P1", Type: "a", SKU: "P-1", Description: "d",
		Quantity: 5, Price: 10, AddCount: 1,
	})
	seedProduct(t, repo, models.Product{
		Name: "P2", Type: "a", SKU: "P-2", Description: "d",
		Quantity: 3, Price: 20, AddCount: 1,
	})

	summary, err = repo.Summary()
	assert.NoError(t, err)
	assert.Equal(t, int64(2), summary.TotalProducts)
	assert.Equal(t, float64(110), summary.TotalInventoryValue)
	assert.Equal(t, int64(8), summary.TotalQuantity)
	assert.Equal(t, int64(2), summary.LowStockProducts)
}
