package repos

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/mh1-bff/internal/data/repos/user"
	"github.com/yungbote/mh1-bff/internal/platform/logger"
)

type MedicalRecordRepo = user.MedicalRecordRepo
type UserProfileRepo = user.UserProfileRepo
type UserPreferencesRepo = user.UserPreferencesRepo
type PreferencesPatch = user.PreferencesPatch
type MedicationScheduleRepo = user.MedicationScheduleRepo

func NewMedicalRecordRepo(db *gorm.DB, baseLog *logger.Logger) MedicalRecordRepo {
	return user.NewMedicalRecordRepo(db, baseLog)
}
func NewUserProfileRepo(db *gorm.DB, baseLog *logger.Logger) UserProfileRepo {
	return user.NewUserProfileRepo(db, baseLog)
}
func NewUserPreferencesRepo(db *gorm.DB, baseLog *logger.Logger) UserPreferencesRepo {
	return user.NewUserPreferencesRepo(db, baseLog)
}
func NewMedicationScheduleRepo(db *gorm.DB, baseLog *logger.Logger) MedicationScheduleRepo {
	return user.NewMedicationScheduleRepo(db, baseLog)
}

// JSONList encodes a string list for the JSON list columns.
func JSONList(items []string) (datatypes.JSON, error) { return user.JSONList(items) }
