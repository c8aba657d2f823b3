package handler

import (
	"github.com/AnthoniusHendriyanto/blacklist-service/internal/blacklist/service"
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *BlacklistHandler, verifier service.TokenVerifier) {
	app.Get("/health", h.Health)

	blacklists := app.Group("/blacklists", RequireToken(verifier))
	blacklists.Post("/", h.Create)
	blacklists.Get("/:email", h.Check)
}
