package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserPreferences holds food-related preferences, one row per user. The row is
// created elsewhere; form submissions only update it.
type UserPreferences struct {
	ID     uuid.UUID `gorm:"size:36;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"size:36;not null;uniqueIndex" json:"user_id"`

	DietPreference string         `gorm:"column:diet_preference;size:64" json:"diet_preference"`
	Allergies      datatypes.JSON `gorm:"column:allergies" json:"allergies"`
	AvoidedFoods   datatypes.JSON `gorm:"column:avoided_foods" json:"avoided_foods"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;index" json:"updated_at"`
}

func (UserPreferences) TableName() string { return "user_preferences" }
