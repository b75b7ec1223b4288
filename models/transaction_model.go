package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TransactionPending   = "PENDING"
	TransactionCompleted = "COMPLETED"
	TransactionFailed    = "FAILED"
)

// Transaction is the financial record paired 1:1 with a Booking. The split
// amounts always satisfy amount_teacher + platform_fee == amount_total.
type Transaction struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BookingID       uuid.UUID `gorm:"not null;unique" json:"booking_id"`
	StudentID       uuid.UUID `gorm:"not null" json:"student_id"`
	TeacherID       uuid.UUID `gorm:"not null" json:"teacher_id"`
	AmountTotal     float64   `gorm:"type:numeric(10,2);not null" json:"amount_total"`
	AmountTeacher   float64   `gorm:"type:numeric(10,2);not null" json:"amount_teacher"`
	PlatformFee     float64   `gorm:"type:numeric(10,2);not null" json:"platform_fee"`
	Currency        string    `gorm:"size:3;not null;default:'USD'" json:"currency"`
	Status          string    `gorm:"size:20;not null;default:'PENDING'" json:"status"`
	PaypalOrderID   *string   `gorm:"size:255;unique" json:"paypal_order_id"`
	PaypalCaptureID *string   `gorm:"size:255;unique" json:"paypal_capture_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
