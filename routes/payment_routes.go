package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/learnai/marketplace-backend/handlers"
	"github.com/learnai/marketplace-backend/middleware"
)

func PaymentRoutes(app *fiber.App, h *handlers.PaymentHandler, jwtSecret string) {
	api := app.Group("/api/v1")

	payments := api.Group("/payments", middleware.Protected(jwtSecret))
	payments.Post("/create-order", h.CreateOrder)
	payments.Post("/capture-order", h.CaptureOrder)
}
