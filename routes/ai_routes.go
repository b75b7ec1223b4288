package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/learnai/marketplace-backend/handlers"
)

func AIRoutes(app *fiber.App, h *handlers.AIHandler) {
	api := app.Group("/api/v1")

	api.Post("/ai/recommend-professors", h.RecommendProfessors)
}
