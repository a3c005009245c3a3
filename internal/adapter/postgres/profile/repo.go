// Package profile implements the user profile repository using PostgreSQL.
// Family history is stored as a JSONB array on the profile row.
package profile

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/evernest-backend/internal/adapter/postgres"
	"github.com/heartmarshall/evernest-backend/internal/domain"
)

const entity = "user_profile"

// Repo provides profile persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new profile repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const columns = `id, user_id, parent_one_name, parent_two_name, baby_nickname, due_date, birth_date,
    faith_preference, default_theme, default_length, child_status, preferred_provider,
    dark_mode, font_size, family_history, created_at, updated_at`

const getByUserIDSQL = `
SELECT ` + columns + `
FROM user_profiles
WHERE user_id = $1`

const getByUserIDForUpdateSQL = getByUserIDSQL + `
FOR UPDATE`

const upsertSQL = `
INSERT INTO user_profiles (
    id, user_id, parent_one_name, parent_two_name, baby_nickname, due_date, birth_date,
    faith_preference, default_theme, default_length, child_status, preferred_provider,
    dark_mode, font_size, family_history, created_at, updated_at
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, now(), now()
)
ON CONFLICT (user_id) DO UPDATE SET
    parent_one_name    = EXCLUDED.parent_one_name,
    parent_two_name    = EXCLUDED.parent_two_name,
    baby_nickname      = EXCLUDED.baby_nickname,
    due_date           = EXCLUDED.due_date,
    birth_date         = EXCLUDED.birth_date,
    faith_preference   = EXCLUDED.faith_preference,
    default_theme      = EXCLUDED.default_theme,
    default_length     = EXCLUDED.default_length,
    child_status       = EXCLUDED.child_status,
    preferred_provider = EXCLUDED.preferred_provider,
    dark_mode          = EXCLUDED.dark_mode,
    font_size          = EXCLUDED.font_size,
    family_history     = EXCLUDED.family_history,
    updated_at         = now()
RETURNING ` + columns

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// GetByUserID returns the user's profile or domain.ErrNotFound.
func (r *Repo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	return r.get(ctx, getByUserIDSQL, userID)
}

// GetByUserIDForUpdate is GetByUserID with a row lock; use inside RunInTx.
func (r *Repo) GetByUserIDForUpdate(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	return r.get(ctx, getByUserIDForUpdateSQL, userID)
}

// Upsert creates the user's profile or replaces every settable field of the
// existing one. A zero ID is replaced with a new one on insert.
func (r *Repo) Upsert(ctx context.Context, p *domain.UserProfile) (*domain.UserProfile, error) {
	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	history := p.FamilyHistory
	if history == nil {
		history = []domain.FamilyHistoryEntry{}
	}
	historyJSON, err := json.Marshal(history)
	if err != nil {
		return nil, fmt.Errorf("marshal family history: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, upsertSQL,
		id, p.UserID, p.ParentOneName, p.ParentTwoName, p.BabyNickname, p.DueDate, p.BirthDate,
		string(p.FaithPreference), optString(p.DefaultTheme), optString(p.DefaultLength),
		string(p.ChildStatus.OrDefault()), optString(p.Provider),
		p.DarkMode, string(p.FontSize), historyJSON,
	)

	saved, err := scanProfile(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, p.UserID)
	}
	return saved, nil
}

func (r *Repo) get(ctx context.Context, query string, userID uuid.UUID) (*domain.UserProfile, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, userID)

	p, err := scanProfile(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, userID)
	}
	return p, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanProfile(row pgx.Row) (*domain.UserProfile, error) {
	var (
		p             domain.UserProfile
		faith         string
		theme         *string
		length        *string
		status        string
		provider      *string
		fontSize      string
		familyHistory []byte
	)

	err := row.Scan(
		&p.ID, &p.UserID, &p.ParentOneName, &p.ParentTwoName, &p.BabyNickname, &p.DueDate, &p.BirthDate,
		&faith, &theme, &length, &status, &provider,
		&p.DarkMode, &fontSize, &familyHistory, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.FaithPreference = domain.FaithPreference(faith)
	p.ChildStatus = domain.ChildStatus(status)
	p.FontSize = domain.FontSize(fontSize)
	if theme != nil {
		v := domain.StoryTheme(*theme)
		p.DefaultTheme = &v
	}
	if length != nil {
		v := domain.StoryLength(*length)
		p.DefaultLength = &v
	}
	if provider != nil {
		v := domain.Provider(*provider)
		p.Provider = &v
	}

	p.FamilyHistory = []domain.FamilyHistoryEntry{}
	if len(familyHistory) > 0 {
		if err := json.Unmarshal(familyHistory, &p.FamilyHistory); err != nil {
			return nil, fmt.Errorf("unmarshal family history: %w", err)
		}
	}
	return &p, nil
}

func optString[T ~string](v *T) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}
