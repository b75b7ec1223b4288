package models

import (
	"time"

	"github.com/google/uuid"
)

type TeacherProfile struct {
	UserID       uuid.UUID `gorm:"type:uuid;primary_key" json:"user_id"`
	Title        *string   `gorm:"size:255" json:"title"`
	Bio          *string   `gorm:"type:text" json:"bio"`
	Subjects     []string  `gorm:"serializer:json" json:"subjects"`
	Languages    []string  `gorm:"serializer:json" json:"languages"`
	HourlyRate   float64   `gorm:"type:numeric(10,2);default:0.00" json:"hourly_rate"`
	Rating       float64   `gorm:"default:0" json:"rating"`
	TotalReviews int       `gorm:"default:0" json:"total_reviews"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`

	User User `gorm:"foreignkey:UserID" json:"user"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
