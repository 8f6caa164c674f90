package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/mh1-bff/internal/data/repos"
	"github.com/yungbote/mh1-bff/internal/platform/logger"
)

type Repos struct {
	MedicalRecord   repos.MedicalRecordRepo
	UserProfile     repos.UserProfileRepo
	UserPreferences repos.UserPreferencesRepo

	MedicationSchedule repos.MedicationScheduleRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		MedicalRecord:   repos.NewMedicalRecordRepo(db, log),
		UserProfile:     repos.NewUserProfileRepo(db, log),
		UserPreferences: repos.NewUserPreferencesRepo(db, log),

		MedicationSchedule: repos.NewMedicationScheduleRepo(db, log),
	}
}
