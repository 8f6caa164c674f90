package domain

import "github.com/yungbote/mh1-bff/internal/domain/user"

type MedicalRecord = user.MedicalRecord
type UserProfile = user.UserProfile
type UserPreferences = user.UserPreferences
type MedicationSchedule = user.MedicationSchedule
