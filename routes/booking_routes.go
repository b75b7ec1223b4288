package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/learnai/marketplace-backend/handlers"
	"github.com/learnai/marketplace-backend/middleware"
)

func BookingRoutes(app *fiber.App, h *handlers.BookingHandler, jwtSecret string) {
	api := app.Group("/api/v1")

	booking := api.Group("/bookings", middleware.Protected(jwtSecret))
	booking.Get("/me", h.GetMyBookings)
	booking.Post("", h.CreateBooking)

	teacherBooking := api.Group("/teacher/bookings", middleware.Protected(jwtSecret), middleware.TeacherRequired())
	teacherBooking.Get("", h.GetMyTeacherBookings)
}
