package handler

import (
	"errors"
	"fmt"

	"go-shopstock-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ExportHandler struct {
	service service.ExportService
}

func NewExportHandler(s service.ExportService) *ExportHandler {
	return &ExportHandler{service: s}
}

// ExportCSV streams the shop's inventory as a CSV attachment. A shop with
// zero products returns 204: export is a no-op, not an error.
// GET /api/v1/shops/:shopId/export
func (h *ExportHandler) ExportCSV(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}
	shopID, err := uuid.Parse(c.Params("shopId"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid shop ID"})
	}

	result, err := h.service.ExportCSV(userID, shopID)
	if err != nil {
		if errors.Is(err, service.ErrNoProducts) {
			return c.SendStatus(204)
		}
		return fail(c, err)
	}

	c.Set("Content-Type", "text/csv; charset=utf-8")
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, result.Filename))
	return c.Send(result.Data)
}
