package handlers

import (
	"inventori/internal/models"
	"inventori/internal/repositories"
	"inventori/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Post("/", h.HandleCreate)
	productRoutes.Get("/", h.HandleList)
	productRoutes.Get("/:id", h.HandleGetByID)
	productRoutes.Put("/:id/quantity", h.HandleUpdateQuantity)
	productRoutes.Delete("/:id", h.HandleDelete)
}

// ProductRequest represents the request body for adding a product. There
// is deliberately no add_count field: the counter is server-managed.
// Quantity and Price are pointers so zero values pass the required rule.
type ProductRequest struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Type        string   `json:"type" validate:"required,max=50"`
	SKU         string   `json:"sku" validate:"required,max=20"`
	Description string   `json:"description" validate:"required,max=500"`
	Quantity    *int     `json:"quantity" validate:"required,gte=0"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	ImageURL    string   `json:"image_url" validate:"omitempty,url,startswith=http"`
}

// HandleCreate adds a new product to the inventory.
func (h *ProductHandler) HandleCreate(c *fiber.Ctx) error {
	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	product := &models.Product{
		Name:        req.Name,
		Type:        req.Type,
		SKU:         req.SKU,
		Description: req.Description,
		Quantity:    *req.Quantity,
		Price:       *req.Price,
		ImageURL:    req.ImageURL,
	}

	created, err := h.service.Create(product)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Product added successfully",
		"product_id": created.ID,
	})
}

// HandleList returns a filtered, paginated product listing.
func (h *ProductHandler) HandleList(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	filter := repositories.ProductFilter{
		Type:   c.Query("type"),
		Search: c.Query("search"),
	}

	products, pagination, err := h.service.List(filter, page, limit)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"products":   products,
		"pagination": pagination,
	})
}

// HandleGetByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetByID(c *fiber.Ctx) error {
	product, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

// QuantityUpdateRequest represents the request body for a quantity update.
type QuantityUpdateRequest struct {
	Quantity *int `json:"quantity" validate:"required,gte=0"`
}

// HandleUpdateQuantity replaces the quantity of an existing product.
func (h *ProductHandler) HandleUpdateQuantity(c *fiber.Ctx) error {
	var req QuantityUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	product, err := h.service.UpdateQuantity(c.Params("id"), *req.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

// HandleDelete permanently removes a product.
func (h *ProductHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Product deleted successfully",
	})
}
