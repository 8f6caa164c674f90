package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MedicalRecord stores the health details captured by the diet-plan form.
// A new row is written per submission.
type MedicalRecord struct {
	ID     uuid.UUID `gorm:"size:36;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"size:36;not null;index" json:"user_id"`

	HeightCm             float64 `gorm:"column:height_cm" json:"height_cm"`
	WeightKg             float64 `gorm:"column:weight_kg" json:"weight_kg"`
	PrePregnancyWeightKg float64 `gorm:"column:pre_pregnancy_weight_kg" json:"pre_pregnancy_weight_kg"`

	MedicalConditions datatypes.JSON `gorm:"column:medical_conditions" json:"medical_conditions"`
	Medications       datatypes.JSON `gorm:"column:medications" json:"medications"`

	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (MedicalRecord) TableName() string { return "medical_records" }
