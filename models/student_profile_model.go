package models

import (
	"time"

	"github.com/google/uuid"
)

type StudentProfile struct {
	UserID        uuid.UUID `gorm:"type:uuid;primary_key" json:"user_id"`
	LearningGoals *string   `gorm:"type:text" json:"learning_goals"`
	Level         *string   `gorm:"size:50" json:"level"`

	User User `gorm:"foreignkey:UserID" json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
