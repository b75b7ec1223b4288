package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/learnai/marketplace-backend/models"
	"github.com/learnai/marketplace-backend/notifications"
	"github.com/learnai/marketplace-backend/payments"
	"github.com/learnai/marketplace-backend/services"
	"github.com/learnai/marketplace-backend/utils"
	"gorm.io/gorm"
)

type PaymentHandler struct {
	DB     *gorm.DB
	PayPal *payments.PayPalService
	Email  *notifications.BrevoService
}

type CreateOrderRequest struct {
	BookingID string `json:"booking_id" validate:"required,uuid"`
}

// CreateOrder creates a PayPal order for a booking's transaction and records
// the returned order id. On provider failure the transaction is left
// unmodified; the caller may re-invoke.
func (h *PaymentHandler) CreateOrder(c *fiber.Ctx) error {
	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var booking models.Booking
	if err := h.DB.Preload("Transaction").First(&booking, "id = ?", req.BookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking or transaction not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	if booking.Transaction == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking or transaction not found"})
	}

	if h.PayPal == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Payment provider is not configured"})
	}

	order, err := h.PayPal.CreateOrder(booking.Transaction.AmountTotal, booking.Transaction.Currency)
	if err != nil {
		log.Printf("🔥 PayPal CreateOrder API call failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create PayPal order"})
	}

	booking.Transaction.PaypalOrderID = &order.ID
	if err := h.DB.Save(booking.Transaction).Error; err != nil {
		log.Printf("🔥 Failed to save PaypalOrderID: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update transaction record"})
	}

	return c.JSON(fiber.Map{"order_id": order.ID, "links": order.Links})
}

type CaptureOrderRequest struct {
	OrderID string `json:"order_id" validate:"required"`
}

// CaptureOrder finalizes a PayPal order: the transaction is marked COMPLETED,
// the booking CONFIRMED, and the meeting link and whiteboard room are issued.
func (h *PaymentHandler) CaptureOrder(c *fiber.Ctx) error {
	var req CaptureOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var txn models.Transaction
	if err := h.DB.Where("paypal_order_id = ?", req.OrderID).First(&txn).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Transaction not found for this order"})
	}

	if h.PayPal == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Payment provider is not configured"})
	}

	capturedOrder, err := h.PayPal.CaptureOrder(req.OrderID)
	if err != nil {
		log.Printf("🔥 PayPal CaptureOrder API call failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to capture PayPal order"})
	}
	if capturedOrder.Status != "COMPLETED" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Order not completed on PayPal's end"})
	}

	var booking models.Booking
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		txn.Status = models.TransactionCompleted
		txn.PaypalCaptureID = &capturedOrder.ID
		if err := tx.Save(&txn).Error; err != nil {
			return err
		}

		if err := tx.Preload("Student").Preload("Teacher").First(&booking, "id = ?", txn.BookingID).Error; err != nil {
			return err
		}
		booking.Status = models.BookingConfirmed
		meetingURL := services.CreateTeamsMeeting(booking.Subject, booking.ScheduledFor)
		whiteboardID := utils.GenerateWhiteboardID()
		booking.TeamsMeetingURL = &meetingURL
		booking.WhiteboardID = &whiteboardID
		return tx.Save(&booking).Error
	})
	if err != nil {
		log.Printf("🔥 Failed to finalize capture for order %s: %v", req.OrderID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to finalize purchase"})
	}

	go func() {
		h.Email.SendEmail(booking.Student.Name, booking.Student.Email, "Your Booking is Confirmed!", "<h1>Booking Confirmed</h1><p>Your PayPal payment was successful and your session is confirmed. The meeting link is available in your dashboard.</p>")
		h.Email.SendEmail(booking.Teacher.Name, booking.Teacher.Email, "You Have a New Booking!", "<h1>New Booking</h1><p>A student has booked and paid for a session with you via PayPal.</p>")
	}()

	return c.JSON(fiber.Map{"status": "success", "message": "Payment captured and booking confirmed"})
}
