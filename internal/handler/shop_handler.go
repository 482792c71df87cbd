package handler

import (
	"go-shopstock-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ShopHandler struct {
	shopService      service.ShopService
	inventoryService service.InventoryService
}

func NewShopHandler(shopService service.ShopService, inventoryService service.InventoryService) *ShopHandler {
	return &ShopHandler{shopService: shopService, inventoryService: inventoryService}
}

// CreateShopRequest represents the create shop request body
type CreateShopRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// ListShops returns the caller's shops, newest first
// GET /api/v1/shops
func (h *ShopHandler) ListShops(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	shops, err := h.shopService.ListShops(userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch shops"})
	}

	return c.JSON(shops)
}

// CreateShop creates a shop for the caller
// POST /api/v1/shops
func (h *ShopHandler) CreateShop(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var req CreateShopRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	shop, err := h.shopService.CreateShop(userID, req.Name, req.Color)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(201).JSON(shop)
}

// Stats returns the shop aggregates computed over the full product set
// GET /api/v1/shops/:shopId/stats
func (h *ShopHandler) Stats(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	shopID, err := uuid.Parse(c.Params("shopId"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid shop ID"})
	}

	stats, err := h.inventoryService.Stats(userID, shopID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(stats)
}
