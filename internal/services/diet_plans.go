package services

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/yungbote/mh1-bff/internal/clients/graphql"
	"github.com/yungbote/mh1-bff/internal/data/aggregates"
	"github.com/yungbote/mh1-bff/internal/data/flags"
	"github.com/yungbote/mh1-bff/internal/data/repos"
	types "github.com/yungbote/mh1-bff/internal/domain"
	"github.com/yungbote/mh1-bff/internal/normalization"
	"github.com/yungbote/mh1-bff/internal/observability"
	"github.com/yungbote/mh1-bff/internal/platform/apierr"
	"github.com/yungbote/mh1-bff/internal/platform/dbctx"
	"github.com/yungbote/mh1-bff/internal/platform/logger"
)

const formSubmittedMessage = "Form submitted successfully"

// DietPlanInfoForm is the diet-plan questionnaire. Preference fields are
// pointers so an omitted field can be told apart from an empty one.
type DietPlanInfoForm struct {
	HeightCm             float64  `json:"heightCm" binding:"omitempty,gt=0,lt=300"`
	WeightKg             float64  `json:"weightKg" binding:"omitempty,gt=0,lt=500"`
	PrePregnancyWeightKg float64  `json:"prePregnancyWeightKg" binding:"omitempty,gt=0,lt=500"`
	MedicalConditions    []string `json:"medicalConditions"`
	Medications          []string `json:"medications"`
	ActivityLevel        string   `json:"activityLevel" binding:"omitempty,max=32"`
	PregnancyWeek        int      `json:"pregnancyWeek" binding:"omitempty,min=1,max=42"`
	DueDate              *string  `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`

	DietPreferences *string   `json:"dietPreferences" binding:"omitempty,max=64"`
	Allergies       *[]string `json:"allergies"`
	AvoidedFoods    *[]string `json:"avoidedFoods"`
}

func (f DietPlanInfoForm) medicalRecord(userID uuid.UUID) (*types.MedicalRecord, error) {
	conditions, err := repos.JSONList(f.MedicalConditions)
	if err != nil {
		return nil, err
	}
	medications, err := repos.JSONList(f.Medications)
	if err != nil {
		return nil, err
	}
	return &types.MedicalRecord{
		UserID:               userID,
		HeightCm:             f.HeightCm,
		WeightKg:             f.WeightKg,
		PrePregnancyWeightKg: f.PrePregnancyWeightKg,
		MedicalConditions:    conditions,
		Medications:          medications,
	}, nil
}

func (f DietPlanInfoForm) userProfile(userID uuid.UUID) *types.UserProfile {
	return &types.UserProfile{
		UserID:        userID,
		HeightCm:      f.HeightCm,
		WeightKg:      f.WeightKg,
		ActivityLevel: strings.TrimSpace(f.ActivityLevel),
		PregnancyWeek: f.PregnancyWeek,
		DueDate:       f.DueDate,
	}
}

// preferencesPatch keeps only the preference fields the caller sent. An empty
// diet preference counts as not sent.
func (f DietPlanInfoForm) preferencesPatch() repos.PreferencesPatch {
	var patch repos.PreferencesPatch
	if f.DietPreferences != nil && *f.DietPreferences != "" {
		patch.DietPreference = f.DietPreferences
	}
	patch.Allergies = f.Allergies
	patch.AvoidedFoods = f.AvoidedFoods
	return patch
}

type SubmitFormResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type FormStatus struct {
	Submitted bool `json:"submitted"`
}

type DietPlansService interface {
	LearnMore(ctx context.Context) (normalization.LearnMore, error)
	IntroStories(ctx context.Context, trimester int) (normalization.DietIntroStories, error)
	SubmitForm(ctx context.Context, userID uuid.UUID, form DietPlanInfoForm) (*SubmitFormResult, error)
	FormStatus(ctx context.Context, userID uuid.UUID) (*FormStatus, error)
}

type DietPlansDeps struct {
	CMS         graphql.Client
	Normalizer  *normalization.Normalizer
	Tx          aggregates.TxRunner
	Records     repos.MedicalRecordRepo
	Profiles    repos.UserProfileRepo
	Preferences repos.UserPreferencesRepo
	Flags       flags.Store
	Metrics     *observability.Metrics
}

type dietPlansService struct {
	log  *logger.Logger
	deps DietPlansDeps
}

func NewDietPlansService(log *logger.Logger, deps DietPlansDeps) DietPlansService {
	return &dietPlansService{log: log.With("service", "DietPlansService"), deps: deps}
}

func (s *dietPlansService) LearnMore(ctx context.Context) (normalization.LearnMore, error) {
	doc, err := s.deps.CMS.Query(ctx, learnMoreQuery, nil)
	if err != nil {
		return normalization.LearnMore{}, contentError(err, "", "fetch_learn_more_failed")
	}
	s.log.Debug("Learn more payload", "payload", doc.Raw)
	return s.deps.Normalizer.LearnMore(doc), nil
}

func (s *dietPlansService) IntroStories(ctx context.Context, trimester int) (normalization.DietIntroStories, error) {
	doc, err := s.deps.CMS.Query(ctx, dietIntroQuery, map[string]any{"trimester": strconv.Itoa(trimester)})
	if err != nil {
		return normalization.DietIntroStories{}, contentError(err, "", "fetch_intro_stories_failed")
	}
	out, err := s.deps.Normalizer.IntroStories(doc)
	if err != nil {
		s.log.Warn("Diet intro not found", "trimester", trimester)
		return normalization.DietIntroStories{}, contentError(err, "diet_intro_not_found", "fetch_intro_stories_failed")
	}
	return out, nil
}

// SubmitForm writes the medical record, the profile and the preference patch in
// one transaction, then marks the form as completed for the user.
func (s *dietPlansService) SubmitForm(ctx context.Context, userID uuid.UUID, form DietPlanInfoForm) (*SubmitFormResult, error) {
	if userID == uuid.Nil {
		return nil, apierr.Unauthorized("unauthorized", errors.New("missing user id"))
	}
	record, err := form.medicalRecord(userID)
	if err != nil {
		return nil, apierr.BadRequest("invalid_form", err)
	}
	profile := form.userProfile(userID)
	patch := form.preferencesPatch()

	err = s.deps.Tx.InTx(ctx, func(dbc dbctx.Context) error {
		if err := s.deps.Records.Create(dbc, record); err != nil {
			return err
		}
		if err := s.deps.Profiles.Create(dbc, profile); err != nil {
			return err
		}
		n, err := s.deps.Preferences.Patch(dbc, userID, patch)
		if err != nil {
			return err
		}
		s.log.Debug("User preferences updated", "user_id", userID.String(), "rows", n)
		return nil
	})
	if err != nil {
		s.log.Error("Diet plan form transaction failed", "user_id", userID.String(), "error", err)
		return nil, apierr.Internal("submit_form_failed", err)
	}

	key := flags.DietPlanFormKey(userID)
	if err := s.deps.Flags.Set(ctx, key, true, 0); err != nil {
		s.deps.Metrics.ObserveFlagWrite("diet_plan_form", "error")
		s.log.Error("Failed to set form flag", "flag_key", key, "error", err)
		return nil, apierr.Internal("submit_form_failed", err)
	}
	s.deps.Metrics.ObserveFlagWrite("diet_plan_form", "ok")

	return &SubmitFormResult{Success: true, Message: formSubmittedMessage}, nil
}

func (s *dietPlansService) FormStatus(ctx context.Context, userID uuid.UUID) (*FormStatus, error) {
	if userID == uuid.Nil {
		return nil, apierr.Unauthorized("unauthorized", errors.New("missing user id"))
	}
	done, err := s.deps.Flags.Get(ctx, flags.DietPlanFormKey(userID))
	if err != nil {
		return nil, apierr.Internal("fetch_form_status_failed", err)
	}
	return &FormStatus{Submitted: done}, nil
}
