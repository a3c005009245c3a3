package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/evernest-backend/internal/domain"
)

// SeedProfile inserts a default profile for userID.
func SeedProfile(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.UserProfile {
	t.Helper()

	p := domain.DefaultUserProfile(userID)
	p.ID = uuid.New()

	err := pool.QueryRow(context.Background(),
		`INSERT INTO user_profiles (id, user_id, parent_one_name, faith_preference, child_status, font_size)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at, updated_at`,
		p.ID, p.UserID, p.ParentOneName, string(p.FaithPreference), string(p.ChildStatus), string(p.FontSize),
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedProfile: %v", err)
	}
	return p
}

// SeedStory inserts a story for userID. Options adjust the defaults before
// insertion; the config hash is unique unless an option sets it.
func SeedStory(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, opts ...func(*domain.Story)) domain.Story {
	t.Helper()

	s := domain.Story{
		ID:              uuid.New(),
		UserID:          userID,
		Title:           "Seeded Story",
		Content:         "Hush now, little one.",
		Theme:           domain.StoryThemeNatureCalm,
		Length:          domain.StoryLengthShort,
		FaithPreference: domain.FaithPreferenceNonReligious,
		ParentOneName:   "Parent",
		ChildStatus:     domain.ChildStatusPrenatal,
		Provider:        domain.ProviderAnthropic,
		ConfigHash:      uuid.New().String()[:8] + "000000000000000000000000",
		WordCount:       4,
		CreatedAt:       time.Now().UTC().Truncate(time.Microsecond),
	}
	for _, opt := range opts {
		opt(&s)
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO stories (id, user_id, title, content, theme, length, faith_preference,
		     parent_one_name, child_status, provider, config_hash, word_count, is_favorite, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		s.ID, s.UserID, s.Title, s.Content, string(s.Theme), string(s.Length), string(s.FaithPreference),
		s.ParentOneName, string(s.ChildStatus), string(s.Provider), s.ConfigHash, s.WordCount, s.IsFavorite, s.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedStory: %v", err)
	}
	return s
}
