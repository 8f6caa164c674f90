package user

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/yungbote/mh1-bff/internal/data/repos/testutil"
	types "github.com/yungbote/mh1-bff/internal/domain"
	"github.com/yungbote/mh1-bff/internal/platform/dbctx"
)

func decodeList(t *testing.T, raw datatypes.JSON) []string {
	t.Helper()
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("decode %s: %v", string(raw), err)
	}
	return out
}

func TestMedicalRecordAndProfileRepos(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	log := testutil.Logger(t)

	userID := uuid.New()
	records := NewMedicalRecordRepo(db, log)
	profiles := NewUserProfileRepo(db, log)

	rec := &types.MedicalRecord{UserID: userID, HeightCm: 165, WeightKg: 62.5, MedicalConditions: datatypes.JSON(`["anemia"]`)}
	if err := records.Create(dbc, rec); err != nil {
		t.Fatalf("MedicalRecordRepo.Create: %v", err)
	}
	if rec.ID == uuid.Nil || rec.CreatedAt.IsZero() {
		t.Fatalf("expected id and timestamps to be assigned")
	}
	due := "2024-10-01"
	if err := profiles.Create(dbc, &types.UserProfile{UserID: userID, PregnancyWeek: 12, DueDate: &due}); err != nil {
		t.Fatalf("UserProfileRepo.Create: %v", err)
	}

	if n, err := records.CountByUserID(dbc, userID); err != nil || n != 1 {
		t.Fatalf("medical records: want=1 got=%d (err=%v)", n, err)
	}
	if n, err := profiles.CountByUserID(dbc, userID); err != nil || n != 1 {
		t.Fatalf("profiles: want=1 got=%d (err=%v)", n, err)
	}
	if n, err := profiles.CountByUserID(dbc, uuid.New()); err != nil || n != 0 {
		t.Fatalf("profiles for other user: want=0 got=%d (err=%v)", n, err)
	}

	if err := records.Create(dbc, &types.MedicalRecord{}); err == nil {
		t.Fatalf("expected error for record without user id")
	}
}

func TestUserPreferencesRepo_PatchOnlyGivenFields(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}
	repo := NewUserPreferencesRepo(db, testutil.Logger(t))

	userID := uuid.New()
	seed := &types.UserPreferences{
		UserID:         userID,
		DietPreference: "vegetarian",
		Allergies:      datatypes.JSON(`["peanuts"]`),
		AvoidedFoods:   datatypes.JSON(`["sushi"]`),
	}
	if err := repo.Upsert(dbc, seed); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	allergies := []string{"shellfish", "gluten"}
	n, err := repo.Patch(dbc, userID, PreferencesPatch{Allergies: &allergies})
	if err != nil {
		t.Fatalf("Patch: %v", err)
	}
	if n != 1 {
		t.Fatalf("rows affected: want=1 got=%d", n)
	}

	got, err := repo.GetByUserID(dbc, userID)
	if err != nil || got == nil {
		t.Fatalf("GetByUserID: row=%v err=%v", got, err)
	}
	if got.DietPreference != "vegetarian" {
		t.Fatalf("diet preference: want=%q got=%q", "vegetarian", got.DietPreference)
	}
	if a := decodeList(t, got.Allergies); len(a) != 2 || a[0] != "shellfish" || a[1] != "gluten" {
		t.Fatalf("allergies: want=[shellfish gluten] got=%v", a)
	}
	if f := decodeList(t, got.AvoidedFoods); len(f) != 1 || f[0] != "sushi" {
		t.Fatalf("avoided foods: want=[sushi] got=%v", f)
	}
}

func TestUserPreferencesRepo_PatchEdgeCases(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}
	repo := NewUserPreferencesRepo(db, testutil.Logger(t))

	n, err := repo.Patch(dbc, uuid.New(), PreferencesPatch{})
	if err != nil || n != 0 {
		t.Fatalf("empty patch: want=0,nil got=%d,%v", n, err)
	}

	diet := "vegan"
	n, err = repo.Patch(dbc, uuid.New(), PreferencesPatch{DietPreference: &diet})
	if err != nil || n != 0 {
		t.Fatalf("patch without row: want=0,nil got=%d,%v", n, err)
	}

	got, err := repo.GetByUserID(dbc, uuid.New())
	if err != nil || got != nil {
		t.Fatalf("missing row: want=nil,nil got=%v,%v", got, err)
	}
}
