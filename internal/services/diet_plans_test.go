package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/mh1-bff/internal/data/aggregates"
	aggtestutil "github.com/yungbote/mh1-bff/internal/data/aggregates/testutil"
	"github.com/yungbote/mh1-bff/internal/data/flags"
	"github.com/yungbote/mh1-bff/internal/data/repos"
	"github.com/yungbote/mh1-bff/internal/data/repos/testutil"
	types "github.com/yungbote/mh1-bff/internal/domain"
	"github.com/yungbote/mh1-bff/internal/normalization"
	"github.com/yungbote/mh1-bff/internal/platform/apierr"
	"github.com/yungbote/mh1-bff/internal/platform/dbctx"
	"github.com/yungbote/mh1-bff/internal/platform/logger"
)

type failingProfiles struct {
	repos.UserProfileRepo
	err error
}

func (f failingProfiles) Create(dbctx.Context, *types.UserProfile) error { return f.err }

type failingFlags struct{ err error }

func (f failingFlags) Set(context.Context, string, bool, time.Duration) error { return f.err }
func (f failingFlags) Get(context.Context, string) (bool, error)             { return false, f.err }

type formFixture struct {
	db    *gorm.DB
	deps  DietPlansDeps
	flags *flags.MemoryStore
}

func newFormFixture(t *testing.T) *formFixture {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	store := flags.NewMemoryStore()
	return &formFixture{
		db:    db,
		flags: store,
		deps: DietPlansDeps{
			CMS:         &fakeCMS{},
			Normalizer:  newTestNormalizer(),
			Tx:          aggregates.NewGormTxRunner(db),
			Records:     repos.NewMedicalRecordRepo(db, log),
			Profiles:    repos.NewUserProfileRepo(db, log),
			Preferences: repos.NewUserPreferencesRepo(db, log),
			Flags:       store,
		},
	}
}

func (f *formFixture) seedPreferences(t *testing.T, userID uuid.UUID) {
	t.Helper()
	err := f.deps.Preferences.Upsert(dbctx.Context{Ctx: context.Background()}, &types.UserPreferences{
		UserID:         userID,
		DietPreference: "vegetarian",
		Allergies:      datatypes.JSON(`["peanuts"]`),
		AvoidedFoods:   datatypes.JSON(`["sushi"]`),
	})
	if err != nil {
		t.Fatalf("seed preferences: %v", err)
	}
}

func (f *formFixture) counts(t *testing.T, userID uuid.UUID) (int64, int64) {
	t.Helper()
	dbc := dbctx.Context{Ctx: context.Background()}
	records, err := f.deps.Records.CountByUserID(dbc, userID)
	if err != nil {
		t.Fatalf("count records: %v", err)
	}
	profiles, err := f.deps.Profiles.CountByUserID(dbc, userID)
	if err != nil {
		t.Fatalf("count profiles: %v", err)
	}
	return records, profiles
}

func TestDietPlansService_SubmitFormOnlyAllergies(t *testing.T) {
	f := newFormFixture(t)
	userID := uuid.New()
	f.seedPreferences(t, userID)
	svc := NewDietPlansService(logger.Nop(), f.deps)

	allergies := []string{"shellfish"}
	res, err := svc.SubmitForm(context.Background(), userID, DietPlanInfoForm{
		HeightCm:      168,
		WeightKg:      64,
		PregnancyWeek: 14,
		Allergies:     &allergies,
	})
	if err != nil {
		t.Fatalf("SubmitForm: %v", err)
	}
	if !res.Success || res.Message != "Form submitted successfully" {
		t.Fatalf("result: want success got=%+v", res)
	}

	records, profiles := f.counts(t, userID)
	if records != 1 || profiles != 1 {
		t.Fatalf("rows: want=1/1 got=%d/%d", records, profiles)
	}

	prefs, err := f.deps.Preferences.GetByUserID(dbctx.Context{Ctx: context.Background()}, userID)
	if err != nil || prefs == nil {
		t.Fatalf("GetByUserID: row=%v err=%v", prefs, err)
	}
	if prefs.DietPreference != "vegetarian" {
		t.Fatalf("diet preference: want=%q got=%q", "vegetarian", prefs.DietPreference)
	}
	var gotAllergies, gotAvoided []string
	_ = json.Unmarshal(prefs.Allergies, &gotAllergies)
	_ = json.Unmarshal(prefs.AvoidedFoods, &gotAvoided)
	if len(gotAllergies) != 1 || gotAllergies[0] != "shellfish" {
		t.Fatalf("allergies: want=[shellfish] got=%v", gotAllergies)
	}
	if len(gotAvoided) != 1 || gotAvoided[0] != "sushi" {
		t.Fatalf("avoided foods: want=[sushi] got=%v", gotAvoided)
	}

	done, _ := f.flags.Get(context.Background(), flags.DietPlanFormKey(userID))
	if !done {
		t.Fatalf("flag: want=true got=false")
	}
}

func TestDietPlansService_SubmitFormRollsBack(t *testing.T) {
	f := newFormFixture(t)
	userID := uuid.New()
	writeErr := errors.New("profile insert failed")
	f.deps.Profiles = failingProfiles{UserProfileRepo: f.deps.Profiles, err: writeErr}
	svc := NewDietPlansService(logger.Nop(), f.deps)

	_, err := svc.SubmitForm(context.Background(), userID, DietPlanInfoForm{HeightCm: 160})
	if !errors.Is(err, writeErr) {
		t.Fatalf("want write error in chain, got %v", err)
	}
	if apierr.StatusOf(err) != http.StatusInternalServerError || apierr.CodeOf(err) != "submit_form_failed" {
		t.Fatalf("want 500 submit_form_failed, got %d %s", apierr.StatusOf(err), apierr.CodeOf(err))
	}

	records, profiles := f.counts(t, userID)
	if records != 0 || profiles != 0 {
		t.Fatalf("rows after rollback: want=0/0 got=%d/%d", records, profiles)
	}
	if done, _ := f.flags.Get(context.Background(), flags.DietPlanFormKey(userID)); done {
		t.Fatalf("flag must not be set after rollback")
	}
}

func TestDietPlansService_SubmitFormCommitFailureSkipsFlag(t *testing.T) {
	f := newFormFixture(t)
	commitErr := errors.New("commit failed")
	runner := &aggtestutil.InjectedTxRunner{FailCommit: commitErr}
	f.deps.Tx = runner
	svc := NewDietPlansService(logger.Nop(), f.deps)

	userID := uuid.New()
	_, err := svc.SubmitForm(context.Background(), userID, DietPlanInfoForm{})
	if !errors.Is(err, commitErr) {
		t.Fatalf("want commit error, got %v", err)
	}
	if runner.Rollbacks != 1 {
		t.Fatalf("rollbacks: want=1 got=%d", runner.Rollbacks)
	}
	if done, _ := f.flags.Get(context.Background(), flags.DietPlanFormKey(userID)); done {
		t.Fatalf("flag must not be set when commit fails")
	}
}

func TestDietPlansService_SubmitFormFlagFailure(t *testing.T) {
	f := newFormFixture(t)
	flagErr := errors.New("redis down")
	f.deps.Flags = failingFlags{err: flagErr}
	svc := NewDietPlansService(logger.Nop(), f.deps)

	_, err := svc.SubmitForm(context.Background(), uuid.New(), DietPlanInfoForm{})
	if !errors.Is(err, flagErr) || apierr.CodeOf(err) != "submit_form_failed" {
		t.Fatalf("want submit_form_failed wrapping flag error, got %v", err)
	}
}

func TestDietPlansService_SubmitFormRequiresUser(t *testing.T) {
	f := newFormFixture(t)
	svc := NewDietPlansService(logger.Nop(), f.deps)
	_, err := svc.SubmitForm(context.Background(), uuid.Nil, DietPlanInfoForm{})
	if apierr.StatusOf(err) != http.StatusUnauthorized {
		t.Fatalf("status: want=%d got=%d", http.StatusUnauthorized, apierr.StatusOf(err))
	}
}

func TestDietPlansService_FormStatus(t *testing.T) {
	f := newFormFixture(t)
	svc := NewDietPlansService(logger.Nop(), f.deps)
	userID := uuid.New()

	st, err := svc.FormStatus(context.Background(), userID)
	if err != nil || st.Submitted {
		t.Fatalf("before submit: want=false,nil got=%v,%v", st, err)
	}
	if _, err := svc.SubmitForm(context.Background(), userID, DietPlanInfoForm{}); err != nil {
		t.Fatalf("SubmitForm: %v", err)
	}
	st, err = svc.FormStatus(context.Background(), userID)
	if err != nil || !st.Submitted {
		t.Fatalf("after submit: want=true,nil got=%v,%v", st, err)
	}
}

func TestDietPlanInfoForm_PreferencesPatch(t *testing.T) {
	empty := ""
	vegan := "vegan"
	foods := []string{}

	patch := DietPlanInfoForm{DietPreferences: &empty, AvoidedFoods: &foods}.preferencesPatch()
	if patch.DietPreference != nil {
		t.Fatalf("empty diet preference must be skipped")
	}
	if patch.AvoidedFoods == nil || patch.Allergies != nil {
		t.Fatalf("patch fields: want avoided only got=%+v", patch)
	}

	patch = DietPlanInfoForm{DietPreferences: &vegan}.preferencesPatch()
	if patch.DietPreference == nil || *patch.DietPreference != "vegan" {
		t.Fatalf("diet preference: want=vegan got=%v", patch.DietPreference)
	}
}

func TestDietPlansService_IntroStories(t *testing.T) {
	cms := &fakeCMS{docs: map[string]string{
		"DietIntro": `{"dietIntros":{"data":[{"attributes":{"trimester":"2",
			"dietIntroStory":{"data":{"attributes":{
				"firstCard":{"title":"Hello"},
				"cards":[{"title":"m1"},{"title":"m2"}]}}},
			"calorieCard":{"title":"kcal"},
			"nutrients":{"title":"nutrients"}}}]}}`,
	}}
	svc := NewDietPlansService(logger.Nop(), DietPlansDeps{CMS: cms, Normalizer: newTestNormalizer()})

	got, err := svc.IntroStories(context.Background(), 2)
	if err != nil {
		t.Fatalf("IntroStories: %v", err)
	}
	if call := cms.lastCall(); call.vars["trimester"] != "2" {
		t.Fatalf("trimester var: want=%q got=%v", "2", call.vars["trimester"])
	}
	if got.Trimester != 2 || len(got.Cards) != 5 {
		t.Fatalf("stories: want trimester=2 cards=5 got=%d/%d", got.Trimester, len(got.Cards))
	}

	cms.docs["DietIntro"] = `{"dietIntros":{"data":[]}}`
	_, err = svc.IntroStories(context.Background(), 2)
	if apierr.StatusOf(err) != http.StatusNotFound || apierr.CodeOf(err) != "diet_intro_not_found" {
		t.Fatalf("want 404 diet_intro_not_found, got %d %s", apierr.StatusOf(err), apierr.CodeOf(err))
	}
}

func TestDietPlansService_LearnMore(t *testing.T) {
	cms := &fakeCMS{docs: map[string]string{
		"LearnMore": `{"articles":{"data":[{"attributes":{
			"info":[
				{"id":"1","title":"Colors","titleColorList":[{"title":"Iron","color":"#f00"}]},
				{"id":"2","title":"Image","color":"#0f0","image":{"data":[{"attributes":{"url":"/uploads/a.png"}}]}}
			],
			"hms_doctor":{"data":{"attributes":{"name":"Dr. Rao","experienceYears":12}}}}}]}}`,
	}}
	svc := NewDietPlansService(logger.Nop(), DietPlansDeps{CMS: cms, Normalizer: newTestNormalizer()})

	got, err := svc.LearnMore(context.Background())
	if err != nil {
		t.Fatalf("LearnMore: %v", err)
	}
	if len(got.Info) != 2 {
		t.Fatalf("info: want=2 got=%d", len(got.Info))
	}
	if _, ok := got.Info[0].(normalization.TitleColorListCard); !ok {
		t.Fatalf("info[0]: want TitleColorListCard got %T", got.Info[0])
	}
	img, ok := got.Info[1].(normalization.ImageColorCard)
	if !ok || img.ImageURL != "https://cms.test/uploads/a.png" {
		t.Fatalf("info[1]: want ImageColorCard with resolved url got %#v", got.Info[1])
	}
	if got.Doctor.Name != "Dr. Rao" || got.Doctor.ExperienceYears != 12 {
		t.Fatalf("doctor: got=%+v", got.Doctor)
	}

	cms.err = errors.New("boom")
	if _, err := svc.LearnMore(context.Background()); apierr.CodeOf(err) != "fetch_learn_more_failed" {
		t.Fatalf("code: want=fetch_learn_more_failed got=%s", apierr.CodeOf(err))
	}
}
