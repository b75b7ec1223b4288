package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/learnai/marketplace-backend/services"
)

type AIHandler struct {
	Recommendations *services.RecommendationService
}

type RecommendRequest struct {
	Query string `json:"query" validate:"required"`
	Limit int    `json:"limit,omitempty" validate:"omitempty,gt=0"`
}

func (h *AIHandler) RecommendProfessors(c *fiber.Ctx) error {
	var req RecommendRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Query is required"})
	}

	result, err := h.Recommendations.RecommendProfessors(c.Context(), req.Query, req.Limit)
	if err != nil {
		if errors.Is(err, services.ErrEmptyQuery) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Query is required"})
		}
		log.Printf("🔥 Professor recommendation failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate professor recommendations"})
	}

	return c.JSON(result)
}
