package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestSetupTestDB_Smoke(t *testing.T) {
	pool := SetupTestDB(t)

	profile := SeedProfile(t, pool, uuid.New())
	story := SeedStory(t, pool, profile.UserID)

	var title string
	err := pool.QueryRow(
		context.Background(),
		`SELECT title FROM stories WHERE id = $1 AND user_id = $2`,
		story.ID, profile.UserID,
	).Scan(&title)
	if err != nil {
		t.Fatalf("expected story in DB, got error: %v", err)
	}

	if title != story.Title {
		t.Fatalf("expected title %q, got %q", story.Title, title)
	}
}
