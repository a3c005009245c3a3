// Package story implements the story repository using PostgreSQL.
package story

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/evernest-backend/internal/adapter/postgres"
	"github.com/heartmarshall/evernest-backend/internal/domain"
)

const (
	table  = "stories"
	entity = "story"
)

// Repo provides story persistence backed by PostgreSQL.
type Repo struct {
	pool    *pgxpool.Pool
	builder sq.StatementBuilderType
}

// New creates a new story repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{
		pool:    pool,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const columns = `id, user_id, profile_id, title, content, theme, length, faith_preference,
    parent_one_name, parent_two_name, baby_nickname, due_date, child_status, age_group,
    provider, config_hash, word_count, is_favorite, created_at`

const getByIDSQL = `
SELECT ` + columns + `
FROM stories
WHERE id = $1 AND user_id = $2`

const findByConfigHashSQL = `
SELECT ` + columns + `
FROM stories
WHERE user_id = $1 AND config_hash = $2
ORDER BY created_at, id
LIMIT 1`

const setFavoriteSQL = `
UPDATE stories
SET is_favorite = $3
WHERE id = $1 AND user_id = $2
RETURNING ` + columns

const deleteOlderThanSQL = `
DELETE FROM stories
WHERE created_at < $1 AND NOT is_favorite`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a story by id scoped to its owner.
// Returns domain.ErrNotFound if the story does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, storyID uuid.UUID) (*domain.Story, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getByIDSQL, storyID, userID)

	s, err := scanStory(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, storyID)
	}
	return s, nil
}

// FindByConfigHash returns the user's story generated from the configuration
// with the given fingerprint. Returns domain.ErrNotFound when there is none.
func (r *Repo) FindByConfigHash(ctx context.Context, userID uuid.UUID, configHash string) (*domain.Story, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, findByConfigHashSQL, userID, configHash)

	s, err := scanStory(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("story with config hash %s: %w", configHash, domain.ErrNotFound)
	}
	if err != nil {
		return nil, postgres.MapError(err, entity, userID)
	}
	return s, nil
}

// List returns a page of the user's stories, newest first, and the total
// number of stories matching the filter.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.StoryFilter) ([]domain.Story, int, error) {
	where := sq.And{sq.Eq{"user_id": userID}}
	if filter.FavoritesOnly {
		where = append(where, sq.Eq{"is_favorite": true})
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	countSQL, countArgs, err := r.builder.Select("count(*)").From(table).Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count stories: %w", err)
	}
	if total == 0 {
		return []domain.Story{}, 0, nil
	}

	query := r.builder.
		Select(columns).
		From(table).
		Where(where).
		OrderBy("created_at DESC", "id DESC")
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	listSQL, listArgs, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	rows, err := querier.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list stories: %w", err)
	}
	defer rows.Close()

	stories := make([]domain.Story, 0, filter.Limit)
	for rows.Next() {
		s, err := scanStory(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan story: %w", err)
		}
		stories = append(stories, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate stories: %w", err)
	}

	return stories, total, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a story and links it to the owner's profile when one exists.
// A second story with the same (user_id, config_hash) fails with
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, s *domain.Story) (*domain.Story, error) {
	var ageGroup *string
	if s.AgeGroup != nil {
		v := string(*s.AgeGroup)
		ageGroup = &v
	}

	query := r.builder.
		Insert(table).
		Columns(
			"id", "user_id", "profile_id", "title", "content", "theme", "length", "faith_preference",
			"parent_one_name", "parent_two_name", "baby_nickname", "due_date", "child_status", "age_group",
			"provider", "config_hash", "word_count", "is_favorite", "created_at",
		).
		Values(
			s.ID, s.UserID, sq.Expr("(SELECT id FROM user_profiles WHERE user_id = ?)", s.UserID),
			s.Title, s.Content, string(s.Theme), string(s.Length), string(s.FaithPreference),
			s.ParentOneName, s.ParentTwoName, s.BabyNickname, s.DueDate,
			string(s.ChildStatus.OrDefault()), ageGroup,
			string(s.Provider), s.ConfigHash, s.WordCount, s.IsFavorite, s.CreatedAt,
		).
		Suffix("RETURNING " + columns)

	insertSQL, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	created, err := scanStory(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, insertSQL, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, s.ID)
	}
	return created, nil
}

// SetFavorite stores the favorite flag and returns the updated story.
func (r *Repo) SetFavorite(ctx context.Context, userID, storyID uuid.UUID, favorite bool) (*domain.Story, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, setFavoriteSQL, storyID, userID, favorite)

	s, err := scanStory(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, storyID)
	}
	return s, nil
}

// Delete removes a story owned by the user.
// Returns domain.ErrNotFound if nothing was deleted.
func (r *Repo) Delete(ctx context.Context, userID, storyID uuid.UUID) error {
	deleteSQL, args, err := r.builder.
		Delete(table).
		Where(sq.Eq{"id": storyID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteSQL, args...)
	if err != nil {
		return postgres.MapError(err, entity, storyID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, storyID, domain.ErrNotFound)
	}
	return nil
}

// DeleteOlderThan removes non-favorite stories created before the threshold
// and returns how many rows were deleted.
func (r *Repo) DeleteOlderThan(ctx context.Context, threshold time.Time) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteOlderThanSQL, threshold)
	if err != nil {
		return 0, fmt.Errorf("delete old stories: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanStory(row pgx.Row) (*domain.Story, error) {
	var (
		s        domain.Story
		theme    string
		length   string
		faith    string
		status   string
		provider string
		ageGroup *string
	)

	err := row.Scan(
		&s.ID, &s.UserID, &s.ProfileID, &s.Title, &s.Content, &theme, &length, &faith,
		&s.ParentOneName, &s.ParentTwoName, &s.BabyNickname, &s.DueDate, &status, &ageGroup,
		&provider, &s.ConfigHash, &s.WordCount, &s.IsFavorite, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.Theme = domain.StoryTheme(theme)
	s.Length = domain.StoryLength(length)
	s.FaithPreference = domain.FaithPreference(faith)
	s.ChildStatus = domain.ChildStatus(status)
	s.Provider = domain.Provider(provider)
	if ageGroup != nil {
		g := domain.AgeGroup(*ageGroup)
		s.AgeGroup = &g
	}
	return &s, nil
}
