package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/learnai/marketplace-backend/handlers"
	"github.com/learnai/marketplace-backend/middleware"
)

func TeacherRoutes(app *fiber.App, h *handlers.TeacherHandler, jwtSecret string) {
	api := app.Group("/api/v1")

	api.Get("/teachers", h.ListTeachers)
	api.Get("/teachers/top", h.TopProfessors)

	profile := api.Group("/teachers/profile", middleware.Protected(jwtSecret), middleware.TeacherRequired())
	profile.Post("", h.UpsertProfile)
}
