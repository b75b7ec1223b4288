package handlers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/learnai/marketplace-backend/models"
	"github.com/learnai/marketplace-backend/payments"
	"gorm.io/gorm"
)

type BookingHandler struct {
	DB *gorm.DB
}

type CreateBookingRequest struct {
	TeacherID       string  `json:"teacher_id" validate:"required,uuid"`
	Subject         string  `json:"subject" validate:"required"`
	Topic           *string `json:"topic,omitempty"`
	ScheduledFor    string  `json:"scheduled_for" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	DurationMinutes int     `json:"duration_minutes" validate:"required,gt=0"`
	PriceTotal      float64 `json:"price_total" validate:"required,gt=0"`
}

// CreateBooking creates a PENDING booking and its paired PENDING transaction
// in a single database transaction. Validation order: auth, fields, student
// exists, target resolves to a TEACHER-role user.
func (h *BookingHandler) CreateBooking(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	studentID, _ := uuid.Parse(claims["user_id"].(string))

	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	teacherID, _ := uuid.Parse(req.TeacherID)
	scheduledFor, _ := time.Parse(time.RFC3339, req.ScheduledFor)

	var student models.User
	if err := h.DB.First(&student, "id = ?", studentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}

	var teacher models.User
	if err := h.DB.First(&teacher, "id = ?", teacherID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Teacher not found"})
	}
	if teacher.Role != models.RoleTeacher {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Teacher not found"})
	}

	var booking models.Booking
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		booking = models.Booking{
			StudentID:       student.ID,
			TeacherID:       teacher.ID,
			Subject:         req.Subject,
			Topic:           req.Topic,
			ScheduledFor:    scheduledFor,
			DurationMinutes: req.DurationMinutes,
			PriceTotal:      req.PriceTotal,
			Status:          models.BookingPending,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}

		amountTeacher, platformFee := payments.SplitAmounts(req.PriceTotal)
		txn := models.Transaction{
			BookingID:     booking.ID,
			StudentID:     student.ID,
			TeacherID:     teacher.ID,
			AmountTotal:   req.PriceTotal,
			AmountTeacher: amountTeacher,
			PlatformFee:   platformFee,
			Currency:      "USD",
			Status:        models.TransactionPending,
		}
		return tx.Create(&txn).Error
	})
	if err != nil {
		log.Printf("🔥 Failed to create booking for student %s: %v", studentID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create booking"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"booking_id": booking.ID})
}

func (h *BookingHandler) GetMyBookings(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	studentID, _ := uuid.Parse(claims["user_id"].(string))

	var bookings []models.Booking
	h.DB.
		Preload("Transaction").
		Where("student_id = ?", studentID).
		Order("scheduled_for desc").
		Find(&bookings)

	return c.JSON(bookings)
}

func (h *BookingHandler) GetMyTeacherBookings(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	teacherID, _ := uuid.Parse(claims["user_id"].(string))

	var bookings []models.Booking
	h.DB.
		Preload("Transaction").
		Where("teacher_id = ?", teacherID).
		Order("scheduled_for desc").
		Find(&bookings)

	return c.JSON(bookings)
}
