package handler

import (
	"go-shopstock-api/internal/model"
	"go-shopstock-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type InventoryHandler struct {
	service service.InventoryService
}

func NewInventoryHandler(s service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: s}
}

// CategoryRequest represents the create/update category body
type CategoryRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// ProductRequest represents the create/update product body
type ProductRequest struct {
	CategoryID  uuid.UUID       `json:"category_id"`
	Name        string          `json:"name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Image       *string         `json:"image"`
	Description string          `json:"description"`
}

// QuantityRequest represents the fast-path quantity update body
type QuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (r *ProductRequest) toInput() service.ProductInput {
	return service.ProductInput{
		Name:        r.Name,
		CategoryID:  r.CategoryID,
		Quantity:    r.Quantity,
		Price:       r.Price,
		Image:       r.Image,
		Description: r.Description,
	}
}

// ============ Categories ============

// ListCategories returns a shop's categories
// GET /api/v1/shops/:shopId/categories
func (h *InventoryHandler) ListCategories(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}
	shopID, err := uuid.Parse(c.Params("shopId"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid shop ID"})
	}

	categories, err := h.service.ListCategories(userID, shopID)
	if err != nil {
		return fail(c, err)
	}

	// shop_id lets clients discard responses for a shop that is no longer active
	return c.JSON(fiber.Map{"shop_id": shopID, "categories": categories})
}

// CreateCategory adds a category to a shop
// POST /api/v1/shops/:shopId/categories
func (h *InventoryHandler) CreateCategory(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}
	shopID, err := uuid.Parse(c.Params("shopId"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid shop ID"})
	}

	var req CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	category, err := h.service.CreateCategory(userID, shopID, req.Name, req.Color, req.Icon)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(201).JSON(category)
}

// UpdateCategory edits a category in place
// PUT /api/v1/categories/:id
func (h *InventoryHandler) UpdateCategory(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}
	categoryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid category ID"})
	}

	var req CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	category, err := h.service.UpdateCategory(userID, categoryID, req.Name, req.Color, req.Icon)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(category)
}

// DeleteCategory removes a category and every product inside it
// DELETE /api/v1/categories/:id
func (h *InventoryHandler) DeleteCategory(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}
	categoryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid category ID"})
	}

	deletedProducts, err := h.service.DeleteCategory(userID, categoryID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"message": "Category deleted", "deleted_products": deletedProducts})
}

// ============ Products ============

// ListProducts returns a shop's products, optionally filtered by a search
// term (?q=) and the low-stock toggle (?low_stock=true)
// GET /api/v1/shops/:shopId/products
func (h *InventoryHandler) ListProducts(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}
	shopID, err := uuid.Parse(c.Params("shopId"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid shop ID"})
	}

	term := c.Query("q")
	lowStockOnly := c.QueryBool("low_stock")

	products, err := h.service.ListProducts(userID, shopID, term, lowStockOnly)
	if err != nil {
		return fail(c, err)
	}

	responses := make([]model.ProductResponse, len(products))
	for i := range products {
		responses[i] = products[i].ToResponse()
	}

	return c.JSON(fiber.Map{"shop_id": shopID, "products": responses})
}

// CreateProduct adds a product to a shop
// POST /api/v1/shops/:shopId/products
func (h *InventoryHandler) CreateProduct(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}
	shopID, err := uuid.Parse(c.Params("shopId"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid shop ID"})
	}

	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	product, err := h.service.CreateProduct(userID, shopID, req.toInput())
	if err != nil {
		return fail(c, err)
	}

	return c.Status(201).JSON(product.ToResponse())
}

// UpdateProduct replaces all mutable fields of a product
// PUT /api/v1/products/:id
func (h *InventoryHandler) UpdateProduct(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}
	productID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	product, err := h.service.UpdateProduct(userID, productID, req.toInput())
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(product.ToResponse())
}

// DeleteProduct removes a product
// DELETE /api/v1/products/:id
func (h *InventoryHandler) DeleteProduct(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}
	productID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	if err := h.service.DeleteProduct(userID, productID); err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"message": "Product deleted"})
}

// UpdateQuantity is the stepper fast path
// PATCH /api/v1/products/:id/quantity
func (h *InventoryHandler) UpdateQuantity(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}
	productID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	var req QuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	product, err := h.service.UpdateQuantity(userID, productID, req.Quantity)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(product.ToResponse())
}
