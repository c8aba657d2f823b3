package handler

import (
	"time"

	"github.com/AnthoniusHendriyanto/blacklist-service/internal/blacklist/service"
	blacklisterror "github.com/AnthoniusHendriyanto/blacklist-service/internal/errors"
	"github.com/AnthoniusHendriyanto/blacklist-service/pkg/constant"
	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// RequireToken rejects requests whose Authorization header does not match.
// A missing header and a wrong one get the same response.
func RequireToken(verifier service.TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !verifier.Verify(c.Get(constant.AuthorizationHeader)) {
			return respondError(c, blacklisterror.ErrUnauthorized)
		}
		return c.Next()
	}
}

// RequestLogger writes one structured line per request.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		log.Info("request",
			"request_id", c.Locals(requestid.ConfigDefault.ContextKey),
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"latency", time.Since(start),
			"ip", c.IP(),
		)
		return err
	}
}
