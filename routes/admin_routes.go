package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/learnai/marketplace-backend/handlers"
	"github.com/learnai/marketplace-backend/middleware"
)

func AdminRoutes(app *fiber.App, h *handlers.AdminHandler, jwtSecret string) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(jwtSecret), middleware.AdminRequired())
	admin.Get("/users", h.ListUsers)
	admin.Get("/transactions", h.ListTransactions)
}
