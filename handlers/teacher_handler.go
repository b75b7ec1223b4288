package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/learnai/marketplace-backend/models"
	"gorm.io/gorm"
)

type TeacherHandler struct {
	DB *gorm.DB
}

type UpsertTeacherProfileRequest struct {
	Title      string   `json:"title" validate:"required"`
	Bio        string   `json:"bio" validate:"required"`
	Subjects   []string `json:"subjects" validate:"required,min=1,dive,required"`
	Languages  []string `json:"languages" validate:"required,min=1,dive,required"`
	HourlyRate float64  `json:"hourly_rate" validate:"required,gte=0"`
	IsActive   *bool    `json:"is_active,omitempty"`
}

func (h *TeacherHandler) UpsertProfile(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	var req UpsertTeacherProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	var profile models.TeacherProfile
	err := h.DB.Where("user_id = ?", userID).First(&profile).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	profile.UserID = userID
	profile.Title = &req.Title
	profile.Bio = &req.Bio
	profile.Subjects = req.Subjects
	profile.Languages = req.Languages
	profile.HourlyRate = req.HourlyRate
	profile.IsActive = isActive

	if err := h.DB.Save(&profile).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save teacher profile"})
	}

	return c.Status(fiber.StatusCreated).JSON(profile)
}

func (h *TeacherHandler) ListTeachers(c *fiber.Ctx) error {
	var profiles []models.TeacherProfile
	if err := h.DB.
		Preload("User").
		Where("is_active = ?", true).
		Order("rating desc, total_reviews desc").
		Find(&profiles).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load teachers"})
	}

	return c.JSON(profiles)
}

type topProfessor struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Rating  float64 `json:"rating"`
	Subject string  `json:"subject"`
	Price   float64 `json:"price"`
	Image   string  `json:"image"`
}

// TopProfessors powers the landing-page highlight: the three best-rated
// active teachers, with display fallbacks for sparse profiles.
func (h *TeacherHandler) TopProfessors(c *fiber.Ctx) error {
	var profiles []models.TeacherProfile
	if err := h.DB.
		Preload("User").
		Where("is_active = ?", true).
		Order("rating desc, total_reviews desc").
		Limit(3).
		Find(&profiles).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load top professors"})
	}

	out := make([]topProfessor, 0, len(profiles))
	for _, p := range profiles {
		subject := "Expert Professor"
		if len(p.Subjects) > 0 {
			end := len(p.Subjects)
			if end > 2 {
				end = 2
			}
			subject = strings.Join(p.Subjects[:end], " & ")
		} else if p.Title != nil && *p.Title != "" {
			subject = *p.Title
		}

		price := p.HourlyRate
		if price == 0 {
			price = 45
		}

		image := ""
		if p.User.Image != nil {
			image = *p.User.Image
		}
		if image == "" {
			image = fmt.Sprintf("https://picsum.photos/800/600?random=%s", p.UserID.String()[:3])
		}

		out = append(out, topProfessor{
			ID:      p.UserID.String(),
			Name:    p.User.Name,
			Rating:  p.Rating,
			Subject: subject,
			Price:   price,
			Image:   image,
		})
	}

	return c.JSON(out)
}
