package handler

import (
	"errors"

	"go-shopstock-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// currentUserID extracts the authenticated user id set by the auth middleware
func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw := c.Locals("user_id")
	if raw == nil {
		return uuid.Nil, errors.New("no user in context")
	}
	return uuid.Parse(raw.(string))
}

// statusForError maps known service errors to HTTP status codes; anything
// unrecognized is an internal failure
func statusForError(err error) int {
	switch {
	case errors.Is(err, service.ErrShopNotFound),
		errors.Is(err, service.ErrCategoryNotFound),
		errors.Is(err, service.ErrProductNotFound):
		return 404
	case errors.Is(err, service.ErrNotShopOwner):
		return 403
	case errors.Is(err, service.ErrImageTooLarge):
		return 413
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrShopNameEmpty),
		errors.Is(err, service.ErrCategoryNameEmpty),
		errors.Is(err, service.ErrCategoryWrongShop),
		errors.Is(err, service.ErrNegativeQuantity),
		errors.Is(err, service.ErrProductNameEmpty),
		errors.Is(err, service.ErrInvalidImageURI):
		return 400
	default:
		return 500
	}
}

// fail writes an error response. Internal failures are logged and get a
// generic body so repository errors never leak to clients.
func fail(c *fiber.Ctx, err error) error {
	status := statusForError(err)
	if status == 500 {
		zap.L().Error("request failed", zap.String("path", c.Path()), zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Internal server error"})
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
