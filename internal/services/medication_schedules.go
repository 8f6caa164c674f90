package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/yungbote/mh1-bff/internal/data/aggregates"
	"github.com/yungbote/mh1-bff/internal/data/repos"
	types "github.com/yungbote/mh1-bff/internal/domain"
	"github.com/yungbote/mh1-bff/internal/platform/apierr"
	"github.com/yungbote/mh1-bff/internal/platform/dbctx"
	"github.com/yungbote/mh1-bff/internal/platform/logger"
)

var errScheduleNotFound = errors.New("medication schedule not found")

// MedicationScheduleForm is the body of both create and update. Update
// replaces every field, so the two share one shape.
type MedicationScheduleForm struct {
	MedicationName string   `json:"medicationName" binding:"required,max=255"`
	MedicationType string   `json:"medicationType" binding:"required,oneof=tablet capsule liquid injection drops inhaler topical other"`
	IntakeTime     []string `json:"intakeTime" binding:"required,dive,oneof=morning afternoon evening night"`
	Strength       string   `json:"strength" binding:"max=64"`
	StrengthUnit   string   `json:"strengthUnit" binding:"required,oneof=mg mcg g ml iu percent"`
	IntakeType     string   `json:"intakeType" binding:"required,oneof=before_meal after_meal with_meal any_time"`
	Frequency      string   `json:"frequency" binding:"required,oneof=daily weekly specific_days as_needed"`
	SelectedDays   []string `json:"selectedDays" binding:"omitempty,dive,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	IntakeTimes    []string `json:"intakeTimes" binding:"required,dive,max=16"`
	StartDate      string   `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate        string   `json:"endDate" binding:"required,datetime=2006-01-02"`
}

// validate covers the rules binding tags cannot express across fields.
func (f MedicationScheduleForm) validate() error {
	// Dates are YYYY-MM-DD, so string order is calendar order.
	if f.EndDate < f.StartDate {
		return fmt.Errorf("endDate %s is before startDate %s", f.EndDate, f.StartDate)
	}
	return nil
}

func (f MedicationScheduleForm) row(userID, id uuid.UUID) (*types.MedicationSchedule, error) {
	intakeTime, err := repos.JSONList(f.IntakeTime)
	if err != nil {
		return nil, err
	}
	intakeTimes, err := repos.JSONList(f.IntakeTimes)
	if err != nil {
		return nil, err
	}
	selectedDays, err := repos.JSONList(f.SelectedDays)
	if err != nil {
		return nil, err
	}
	return &types.MedicationSchedule{
		ID:             id,
		UserID:         userID,
		MedicationName: strings.TrimSpace(f.MedicationName),
		MedicationType: f.MedicationType,
		Strength:       strings.TrimSpace(f.Strength),
		StrengthUnit:   f.StrengthUnit,
		IntakeType:     f.IntakeType,
		Frequency:      f.Frequency,
		IntakeTime:     intakeTime,
		IntakeTimes:    intakeTimes,
		SelectedDays:   selectedDays,
		StartDate:      f.StartDate,
		EndDate:        f.EndDate,
	}, nil
}

type MedicationSchedule struct {
	ID             string   `json:"id"`
	MedicationName string   `json:"medicationName"`
	MedicationType string   `json:"medicationType"`
	IntakeTime     []string `json:"intakeTime"`
	Strength       string   `json:"strength"`
	StrengthUnit   string   `json:"strengthUnit"`
	IntakeType     string   `json:"intakeType"`
	Frequency      string   `json:"frequency"`
	SelectedDays   []string `json:"selectedDays"`
	IntakeTimes    []string `json:"intakeTimes"`
	StartDate      string   `json:"startDate"`
	EndDate        string   `json:"endDate"`
}

func scheduleView(row *types.MedicationSchedule) MedicationSchedule {
	return MedicationSchedule{
		ID:             row.ID.String(),
		MedicationName: row.MedicationName,
		MedicationType: row.MedicationType,
		IntakeTime:     decodeList(row.IntakeTime),
		Strength:       row.Strength,
		StrengthUnit:   row.StrengthUnit,
		IntakeType:     row.IntakeType,
		Frequency:      row.Frequency,
		SelectedDays:   decodeList(row.SelectedDays),
		IntakeTimes:    decodeList(row.IntakeTimes),
		StartDate:      row.StartDate,
		EndDate:        row.EndDate,
	}
}

// decodeList reads a JSON list column; anything unreadable is an empty list.
func decodeList(raw datatypes.JSON) []string {
	out := []string{}
	if len(raw) == 0 {
		return out
	}
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return []string{}
	}
	return out
}

type MedicationSchedulesService interface {
	Create(ctx context.Context, userID uuid.UUID, form MedicationScheduleForm) (*MedicationSchedule, error)
	Update(ctx context.Context, userID, id uuid.UUID, form MedicationScheduleForm) (*MedicationSchedule, error)
	List(ctx context.Context, userID uuid.UUID) ([]MedicationSchedule, error)
}

type medicationSchedulesService struct {
	log       *logger.Logger
	tx        aggregates.TxRunner
	schedules repos.MedicationScheduleRepo
}

func NewMedicationSchedulesService(log *logger.Logger, tx aggregates.TxRunner, schedules repos.MedicationScheduleRepo) MedicationSchedulesService {
	return &medicationSchedulesService{
		log:       log.With("service", "MedicationSchedulesService"),
		tx:        tx,
		schedules: schedules,
	}
}

func (s *medicationSchedulesService) Create(ctx context.Context, userID uuid.UUID, form MedicationScheduleForm) (*MedicationSchedule, error) {
	if userID == uuid.Nil {
		return nil, apierr.Unauthorized("unauthorized", errors.New("missing user id"))
	}
	if err := form.validate(); err != nil {
		return nil, apierr.BadRequest("invalid_date_range", err)
	}
	row, err := form.row(userID, uuid.Nil)
	if err != nil {
		return nil, apierr.BadRequest("invalid_request", err)
	}
	if err := s.schedules.Create(dbctx.Context{Ctx: ctx}, row); err != nil {
		s.log.Error("Create medication schedule failed", "user_id", userID.String(), "error", err)
		return nil, apierr.Internal("create_medication_schedule_failed", err)
	}
	out := scheduleView(row)
	return &out, nil
}

// Update replaces the schedule and returns it as stored. Schedules belonging to
// another user read as not found.
func (s *medicationSchedulesService) Update(ctx context.Context, userID, id uuid.UUID, form MedicationScheduleForm) (*MedicationSchedule, error) {
	if userID == uuid.Nil {
		return nil, apierr.Unauthorized("unauthorized", errors.New("missing user id"))
	}
	if err := form.validate(); err != nil {
		return nil, apierr.BadRequest("invalid_date_range", err)
	}
	row, err := form.row(userID, id)
	if err != nil {
		return nil, apierr.BadRequest("invalid_request", err)
	}

	var stored *types.MedicationSchedule
	err = s.tx.InTx(ctx, func(dbc dbctx.Context) error {
		n, err := s.schedules.Update(dbc, row)
		if err != nil {
			return err
		}
		if n == 0 {
			return errScheduleNotFound
		}
		stored, err = s.schedules.GetByID(dbc, userID, id)
		if err != nil {
			return err
		}
		if stored == nil {
			return errScheduleNotFound
		}
		return nil
	})
	if errors.Is(err, errScheduleNotFound) {
		return nil, apierr.NotFound("medication_schedule_not_found", err)
	}
	if err != nil {
		s.log.Error("Update medication schedule failed", "user_id", userID.String(), "schedule_id", id.String(), "error", err)
		return nil, apierr.Internal("update_medication_schedule_failed", err)
	}
	out := scheduleView(stored)
	return &out, nil
}

func (s *medicationSchedulesService) List(ctx context.Context, userID uuid.UUID) ([]MedicationSchedule, error) {
	if userID == uuid.Nil {
		return nil, apierr.Unauthorized("unauthorized", errors.New("missing user id"))
	}
	rows, err := s.schedules.ListByUserID(dbctx.Context{Ctx: ctx}, userID)
	if err != nil {
		return nil, apierr.Internal("fetch_medication_schedules_failed", err)
	}
	out := make([]MedicationSchedule, 0, len(rows))
	for _, row := range rows {
		out = append(out, scheduleView(row))
	}
	return out, nil
}
