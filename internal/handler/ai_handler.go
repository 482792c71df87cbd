package handler

import (
	"go-shopstock-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AIHandler struct {
	service service.AIService
}

func NewAIHandler(s service.AIService) *AIHandler {
	return &AIHandler{service: s}
}

// SuggestRequest represents the suggestion request body
type SuggestRequest struct {
	Name string `json:"name"`
}

// Suggest asks the language model for a category and short description for
// an in-progress product. Upstream failures come back as a null suggestion;
// the form flow never fails because of the model.
// POST /api/v1/shops/:shopId/ai/suggest
func (h *AIHandler) Suggest(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}
	shopID, err := uuid.Parse(c.Params("shopId"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid shop ID"})
	}

	var req SuggestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	prediction, err := h.service.SuggestProductDetails(c.Context(), userID, shopID, req.Name)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"suggestion": prediction})
}
