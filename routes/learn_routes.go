package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/learnai/marketplace-backend/handlers"
)

func LearnRoutes(app *fiber.App, h *handlers.LearnHandler) {
	api := app.Group("/api/v1")

	learn := api.Group("/learn")
	learn.Get("/agents", h.ListAgents)
	learn.Post("/plan", h.CreatePlan)
	learn.Post("/session", h.SessionTurn)
}
