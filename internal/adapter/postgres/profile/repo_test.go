package profile_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/evernest-backend/internal/adapter/postgres"
	"github.com/heartmarshall/evernest-backend/internal/adapter/postgres/profile"
	"github.com/heartmarshall/evernest-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/evernest-backend/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func TestRepo_GetByUserID_NotFound(t *testing.T) {
	t.Parallel()
	repo := profile.New(testhelper.SetupTestDB(t))

	_, err := repo.GetByUserID(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRepo_Upsert_CreateThenUpdate(t *testing.T) {
	t.Parallel()
	repo := profile.New(testhelper.SetupTestDB(t))
	ctx := context.Background()
	userID := uuid.New()

	due := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	in := domain.DefaultUserProfile(userID)
	in.ParentOneName = "Sarah"
	in.ParentTwoName = ptr("Michael")
	in.DueDate = &due
	in.DefaultTheme = ptr(domain.StoryThemeRhythmSound)
	in.DefaultLength = ptr(domain.StoryLengthLong)
	in.Provider = ptr(domain.ProviderOpenAI)
	in.FamilyHistory = []domain.FamilyHistoryEntry{
		{ID: "fh-1", Relation: "Grandmother", Condition: "Asthma", Notes: ptr("mild"), CreatedAt: due},
	}

	created, err := repo.Upsert(ctx, &in)
	if err != nil {
		t.Fatalf("Upsert create: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Error("expected generated ID")
	}
	if created.DueDate == nil || !created.DueDate.Equal(due) {
		t.Errorf("DueDate = %v, want %v", created.DueDate, due)
	}
	if created.DefaultTheme == nil || *created.DefaultTheme != domain.StoryThemeRhythmSound {
		t.Errorf("DefaultTheme = %v", created.DefaultTheme)
	}
	if len(created.FamilyHistory) != 1 || created.FamilyHistory[0].Relation != "Grandmother" {
		t.Errorf("FamilyHistory = %+v", created.FamilyHistory)
	}

	update := *created
	update.ParentOneName = "Sara"
	update.DarkMode = true
	update.FontSize = domain.FontSizeLarge
	update.DefaultTheme = nil
	update.FamilyHistory = nil

	updated, err := repo.Upsert(ctx, &update)
	if err != nil {
		t.Fatalf("Upsert update: %v", err)
	}
	if updated.ID != created.ID {
		t.Errorf("ID changed on update: %s -> %s", created.ID, updated.ID)
	}
	if updated.ParentOneName != "Sara" || !updated.DarkMode || updated.FontSize != domain.FontSizeLarge {
		t.Errorf("unexpected update result: %+v", updated)
	}
	if updated.DefaultTheme != nil {
		t.Errorf("DefaultTheme = %v, want nil", *updated.DefaultTheme)
	}
	if updated.FamilyHistory == nil || len(updated.FamilyHistory) != 0 {
		t.Errorf("FamilyHistory = %v, want empty", updated.FamilyHistory)
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) && !updated.UpdatedAt.Equal(created.UpdatedAt) {
		t.Error("UpdatedAt moved backwards")
	}
}

func TestRepo_Upsert_RejectsInvalidFontSize(t *testing.T) {
	t.Parallel()
	repo := profile.New(testhelper.SetupTestDB(t))

	in := domain.DefaultUserProfile(uuid.New())
	in.FontSize = "huge"

	_, err := repo.Upsert(context.Background(), &in)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation from check constraint, got %v", err)
	}
}

func TestRepo_GetByUserIDForUpdate_InTx(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := profile.New(pool)
	tx := postgres.NewTxManager(pool)
	seeded := testhelper.SeedProfile(t, pool, uuid.New())

	err := tx.RunInTx(context.Background(), func(ctx context.Context) error {
		p, err := repo.GetByUserIDForUpdate(ctx, seeded.UserID)
		if err != nil {
			return err
		}
		p.BabyNickname = ptr("Pip")
		_, err = repo.Upsert(ctx, p)
		return err
	})
	if err != nil {
		t.Fatalf("RunInTx: %v", err)
	}

	got, err := repo.GetByUserID(context.Background(), seeded.UserID)
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	if got.BabyNickname == nil || *got.BabyNickname != "Pip" {
		t.Errorf("BabyNickname = %v, want Pip", got.BabyNickname)
	}
}
