package middleware

import (
	"go-shopstock-api/internal/repository"
	"go-shopstock-api/pkg/jwt"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// RequireWSAuth gates the change-notification endpoint. Browsers cannot set
// headers on websocket connections, so the token rides in the query string.
// The token version is checked against the database just like RequireAuth,
// so a signed-out token cannot open a subscription.
func RequireWSAuth(userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return c.SendStatus(fiber.StatusUpgradeRequired)
		}

		claims, err := jwt.ValidateToken(c.Query("token"))
		if err != nil {
			return c.SendStatus(fiber.StatusUnauthorized)
		}

		user, err := userRepo.FindByID(claims.UserID)
		if err != nil || user.TokenVersion != claims.TokenVersion {
			return c.SendStatus(fiber.StatusUnauthorized)
		}

		return c.Next()
	}
}
