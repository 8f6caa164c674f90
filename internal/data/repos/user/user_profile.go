package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/mh1-bff/internal/domain"
	"github.com/yungbote/mh1-bff/internal/platform/dbctx"
	"github.com/yungbote/mh1-bff/internal/platform/logger"
)

var errMissingUser = errors.New("row has no user id")

type UserProfileRepo interface {
	Create(dbc dbctx.Context, row *types.UserProfile) error
	// CountByUserID reports how many submissions a user has; used by fixtures and checks.
	CountByUserID(dbc dbctx.Context, userID uuid.UUID) (int64, error)
}

type userProfileRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserProfileRepo(db *gorm.DB, baseLog *logger.Logger) UserProfileRepo {
	return &userProfileRepo{db: db, log: baseLog.With("repo", "UserProfileRepo")}
}

func (r *userProfileRepo) Create(dbc dbctx.Context, row *types.UserProfile) error {
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

func (r *userProfileRepo) CountByUserID(dbc dbctx.Context, userID uuid.UUID) (int64, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var n int64
	err := t.WithContext(dbc.Ctx).Model(&types.UserProfile{}).Where("user_id = ?", userID).Count(&n).Error
	return n, err
}
