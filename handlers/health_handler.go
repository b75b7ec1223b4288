package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type HealthHandler struct {
	DB *gorm.DB
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	start := time.Now()

	dbStatus := "up"
	dbStart := time.Now()
	var one int
	if err := h.DB.Raw("SELECT 1").Scan(&one).Error; err != nil {
		dbStatus = "down"
	}
	dbLatency := time.Since(dbStart).Milliseconds()

	status := "healthy"
	code := fiber.StatusOK
	if dbStatus != "up" {
		status = "degraded"
		code = fiber.StatusServiceUnavailable
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    status,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"checks": fiber.Map{
			"database": fiber.Map{"status": dbStatus, "response_time_ms": dbLatency},
			"api":      fiber.Map{"status": "up", "response_time_ms": time.Since(start).Milliseconds()},
		},
	})
}
