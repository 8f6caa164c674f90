package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/mh1-bff/internal/domain"
	"github.com/yungbote/mh1-bff/internal/platform/dbctx"
	"github.com/yungbote/mh1-bff/internal/platform/logger"
)

type MedicationScheduleRepo interface {
	Create(dbc dbctx.Context, row *types.MedicationSchedule) error
	// Update overwrites the editable columns of the schedule matching row.ID and
	// row.UserID. Zero affected rows means no such schedule for that user.
	Update(dbc dbctx.Context, row *types.MedicationSchedule) (int64, error)
	GetByID(dbc dbctx.Context, userID, id uuid.UUID) (*types.MedicationSchedule, error)
	ListByUserID(dbc dbctx.Context, userID uuid.UUID) ([]*types.MedicationSchedule, error)
}

type medicationScheduleRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMedicationScheduleRepo(db *gorm.DB, baseLog *logger.Logger) MedicationScheduleRepo {
	return &medicationScheduleRepo{db: db, log: baseLog.With("repo", "MedicationScheduleRepo")}
}

func (r *medicationScheduleRepo) Create(dbc dbctx.Context, row *types.MedicationSchedule) error {
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

func (r *medicationScheduleRepo) Update(dbc dbctx.Context, row *types.MedicationSchedule) (int64, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if row == nil || row.UserID == uuid.Nil {
		return 0, errMissingUser
	}
	if row.ID == uuid.Nil {
		return 0, nil
	}
	row.UpdatedAt = time.Now().UTC()
	// A map keeps empty strings and empty lists from being skipped as zero values.
	res := t.WithContext(dbc.Ctx).
		Model(&types.MedicationSchedule{}).
		Where("id = ? AND user_id = ?", row.ID, row.UserID).
		Updates(map[string]any{
			"medication_name": row.MedicationName,
			"medication_type": row.MedicationType,
			"strength":        row.Strength,
			"strength_unit":   row.StrengthUnit,
			"intake_type":     row.IntakeType,
			"frequency":       row.Frequency,
			"intake_time":     row.IntakeTime,
			"intake_times":    row.IntakeTimes,
			"selected_days":   row.SelectedDays,
			"start_date":      row.StartDate,
			"end_date":        row.EndDate,
			"updated_at":      row.UpdatedAt,
		})
	return res.RowsAffected, res.Error
}

func (r *medicationScheduleRepo) GetByID(dbc dbctx.Context, userID, id uuid.UUID) (*types.MedicationSchedule, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if userID == uuid.Nil || id == uuid.Nil {
		return nil, nil
	}
	var row types.MedicationSchedule
	if err := t.WithContext(dbc.Ctx).Where("id = ? AND user_id = ?", id, userID).Limit(1).Find(&row).Error; err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, nil
	}
	return &row, nil
}

func (r *medicationScheduleRepo) ListByUserID(dbc dbctx.Context, userID uuid.UUID) ([]*types.MedicationSchedule, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var out []*types.MedicationSchedule
	if userID == uuid.Nil {
		return out, nil
	}
	err := t.WithContext(dbc.Ctx).
		Where("user_id = ?", userID).
		Order("start_date ASC, created_at ASC").
		Find(&out).Error
	return out, err
}
