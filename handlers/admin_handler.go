package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/learnai/marketplace-backend/models"
	"gorm.io/gorm"
)

type AdminHandler struct {
	DB *gorm.DB
}

func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := h.DB.Order("created_at desc").Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load users"})
	}
	return c.JSON(users)
}

func (h *AdminHandler) ListTransactions(c *fiber.Ctx) error {
	var transactions []models.Transaction
	if err := h.DB.Order("created_at desc").Find(&transactions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load transactions"})
	}
	return c.JSON(transactions)
}
