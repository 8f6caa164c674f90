package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/mh1-bff/internal/domain"
	"github.com/yungbote/mh1-bff/internal/platform/dbctx"
	"github.com/yungbote/mh1-bff/internal/platform/logger"
)

type MedicalRecordRepo interface {
	Create(dbc dbctx.Context, row *types.MedicalRecord) error
	// CountByUserID reports how many submissions a user has; used by fixtures and checks.
	CountByUserID(dbc dbctx.Context, userID uuid.UUID) (int64, error)
}

type medicalRecordRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMedicalRecordRepo(db *gorm.DB, baseLog *logger.Logger) MedicalRecordRepo {
	return &medicalRecordRepo{db: db, log: baseLog.With("repo", "MedicalRecordRepo")}
}

func (r *medicalRecordRepo) Create(dbc dbctx.Context, row *types.MedicalRecord) error {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if row == nil || row.UserID == uuid.Nil {
		return errMissingUser
	}
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	now := time.Now().UTC()
	row.CreatedAt = now
	row.UpdatedAt = now
	return t.WithContext(dbc.Ctx).Create(row).Error
}

func (r *medicalRecordRepo) CountByUserID(dbc dbctx.Context, userID uuid.UUID) (int64, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var n int64
	err := t.WithContext(dbc.Ctx).Model(&types.MedicalRecord{}).Where("user_id = ?", userID).Count(&n).Error
	return n, err
}
