package user

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/mh1-bff/internal/domain"
	"github.com/yungbote/mh1-bff/internal/platform/dbctx"
	"github.com/yungbote/mh1-bff/internal/platform/logger"
)

// PreferencesPatch lists the preference columns to overwrite. Nil fields are
// left untouched.
type PreferencesPatch struct {
	DietPreference *string
	Allergies      *[]string
	AvoidedFoods   *[]string
}

func (p PreferencesPatch) Empty() bool {
	return p.DietPreference == nil && p.Allergies == nil && p.AvoidedFoods == nil
}

func (p PreferencesPatch) columns() (map[string]any, error) {
	cols := map[string]any{}
	if p.DietPreference != nil {
		cols["diet_preference"] = *p.DietPreference
	}
	if p.Allergies != nil {
		raw, err := JSONList(*p.Allergies)
		if err != nil {
			return nil, err
		}
		cols["allergies"] = raw
	}
	if p.AvoidedFoods != nil {
		raw, err := JSONList(*p.AvoidedFoods)
		if err != nil {
			return nil, err
		}
		cols["avoided_foods"] = raw
	}
	return cols, nil
}

type UserPreferencesRepo interface {
	// GetByUserID returns nil, nil when the user has no row. The row is owned by
	// the account service; here it backs fixtures and checks.
	GetByUserID(dbc dbctx.Context, userID uuid.UUID) (*types.UserPreferences, error)
	// Upsert seeds a full row keyed by user_id. Form submissions use Patch.
	Upsert(dbc dbctx.Context, row *types.UserPreferences) error
	// Patch updates only the columns set in patch and reports the affected row count.
	Patch(dbc dbctx.Context, userID uuid.UUID, patch PreferencesPatch) (int64, error)
}

type userPreferencesRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserPreferencesRepo(db *gorm.DB, baseLog *logger.Logger) UserPreferencesRepo {
	return &userPreferencesRepo{db: db, log: baseLog.With("repo", "UserPreferencesRepo")}
}

func (r *userPreferencesRepo) GetByUserID(dbc dbctx.Context, userID uuid.UUID) (*types.UserPreferences, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if userID == uuid.Nil {
		return nil, nil
	}
	var row types.UserPreferences
	if err := t.WithContext(dbc.Ctx).Where("user_id = ?", userID).Limit(1).Find(&row).Error; err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, nil
	}
	return &row, nil
}

func (r *userPreferencesRepo) Upsert(dbc dbctx.Context, row *types.UserPreferences) error {
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
	if row.CreatedAt.IsZero() {
		row.CreatedAt = now
	}
	row.UpdatedAt = now
	return t.WithContext(dbc.Ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"diet_preference",
				"allergies",
				"avoided_foods",
				"updated_at",
			}),
		}).
		Create(row).Error
}

func (r *userPreferencesRepo) Patch(dbc dbctx.Context, userID uuid.UUID, patch PreferencesPatch) (int64, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if userID == uuid.Nil {
		return 0, errMissingUser
	}
	if patch.Empty() {
		return 0, nil
	}
	cols, err := patch.columns()
	if err != nil {
		return 0, err
	}
	cols["updated_at"] = time.Now().UTC()
	res := t.WithContext(dbc.Ctx).
		Model(&types.UserPreferences{}).
		Where("user_id = ?", userID).
		Updates(cols)
	return res.RowsAffected, res.Error
}

// JSONList encodes items as a JSON array; nil encodes as [].
func JSONList(items []string) (datatypes.JSON, error) {
	if items == nil {
		items = []string{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
