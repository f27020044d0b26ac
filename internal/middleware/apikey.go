package middleware

import (
	"crypto/subtle"

	"starter-pack-quiz/internal/domain"
	"starter-pack-quiz/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// APIKeyHeader carries the shared secret on protected read endpoints.
const APIKeyHeader = "X-API-Key"

// RequireAPIKey gates a route behind the configured shared secret. An
// empty configured key disables the check entirely (dev mode).
func RequireAPIKey(apiKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if apiKey == "" {
			return c.Next()
		}

		provided := c.Get(APIKeyHeader)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
			logger.Get().Warn("Unauthorized access attempt",
				zap.String("ip", c.IP()),
				zap.String("path", c.Path()),
			)
			return domain.NewUnauthorizedError("Unauthorized - API Key required")
		}
		return c.Next()
	}
}
