package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	BookingPending   = "PENDING"
	BookingConfirmed = "CONFIRMED"
	BookingCancelled = "CANCELLED"
	BookingExpired   = "EXPIRED"
)

type Booking struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	StudentID       uuid.UUID `gorm:"not null" json:"student_id"`
	TeacherID       uuid.UUID `gorm:"not null" json:"teacher_id"`
	Subject         string    `gorm:"size:255;not null" json:"subject"`
	Topic           *string   `gorm:"size:255" json:"topic"`
	ScheduledFor    time.Time `gorm:"not null" json:"scheduled_for"`
	DurationMinutes int       `gorm:"not null" json:"duration_minutes"`
	PriceTotal      float64   `gorm:"type:numeric(10,2);not null" json:"price_total"`
	Status          string    `gorm:"size:20;not null;default:'PENDING'" json:"status"`
	TeamsMeetingURL *string   `gorm:"size:255" json:"teams_meeting_url"`
	WhiteboardID    *string   `gorm:"size:64" json:"whiteboard_id"`

	Student     User         `gorm:"foreignkey:StudentID" json:"-"`
	Teacher     User         `gorm:"foreignkey:TeacherID" json:"-"`
	Transaction *Transaction `gorm:"foreignkey:BookingID" json:"transaction,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
