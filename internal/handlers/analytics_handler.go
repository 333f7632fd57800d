package handlers

import (
	"inventori/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AnalyticsHandler handles HTTP requests for inventory analytics.
type AnalyticsHandler struct {
	service *services.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(service *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		service: service,
	}
}

// RegisterRoutes registers the analytics routes with the Fiber app.
func (h *AnalyticsHandler) RegisterRoutes(router fiber.Router) {
	analyticsRoutes := router.Group("/analytics")
	analyticsRoutes.Get("/top-products", h.HandleTopProducts)
	analyticsRoutes.Get("/summary", h.HandleSummary)
}

// HandleTopProducts returns the products most often added to inventory.
func (h *AnalyticsHandler) HandleTopProducts(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)

	top, err := h.service.TopProducts(limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(top)
}

// HandleSummary returns the aggregate inventory totals.
func (h *AnalyticsHandler) HandleSummary(c *fiber.Ctx) error {
	summary, err := h.service.Summary()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
