package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MedicationSchedule is a user's plan for taking one medication between two
// calendar dates. List columns hold JSON string arrays.
type MedicationSchedule struct {
	ID     uuid.UUID `gorm:"size:36;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"size:36;not null;index" json:"user_id"`

	MedicationName string `gorm:"column:medication_name;size:255;not null" json:"medication_name"`
	MedicationType string `gorm:"column:medication_type;size:32;not null" json:"medication_type"`
	Strength       string `gorm:"column:strength;size:64" json:"strength"`
	StrengthUnit   string `gorm:"column:strength_unit;size:16" json:"strength_unit"`
	IntakeType     string `gorm:"column:intake_type;size:32" json:"intake_type"`
	Frequency      string `gorm:"column:frequency;size:32" json:"frequency"`

	IntakeTime   datatypes.JSON `gorm:"column:intake_time" json:"intake_time"`
	IntakeTimes  datatypes.JSON `gorm:"column:intake_times" json:"intake_times"`
	SelectedDays datatypes.JSON `gorm:"column:selected_days" json:"selected_days"`

	StartDate string `gorm:"column:start_date;size:10;not null" json:"start_date"`
	EndDate   string `gorm:"column:end_date;size:10;not null" json:"end_date"`

	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (MedicationSchedule) TableName() string { return "medication_schedules" }
