package user

import (
	"time"

	"github.com/google/uuid"
)

type UserProfile struct {
	ID     uuid.UUID `gorm:"size:36;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"size:36;not null;index" json:"user_id"`

	HeightCm      float64 `gorm:"column:height_cm" json:"height_cm"`
	WeightKg      float64 `gorm:"column:weight_kg" json:"weight_kg"`
	ActivityLevel string  `gorm:"column:activity_level;size:32" json:"activity_level"`
	PregnancyWeek int     `gorm:"column:pregnancy_week" json:"pregnancy_week"`
	// DueDate is a calendar date (YYYY-MM-DD), nil when not given.
	DueDate *string `gorm:"column:due_date;size:10" json:"due_date,omitempty"`

	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (UserProfile) TableName() string { return "user_profiles" }
