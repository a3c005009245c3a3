package story

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/evernest-backend/internal/domain"
	"github.com/heartmarshall/evernest-backend/pkg/ctxutil"
)

// ListStories returns one page of the user's stories, newest first.
func (s *Service) ListStories(ctx context.Context, input ListStoriesInput) (*ListStoriesResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.MaxPageSize); err != nil {
		return nil, err
	}

	page := input.Page
	if page == 0 {
		page = 1
	}
	pageSize := input.PageSize
	if pageSize == 0 {
		pageSize = s.cfg.DefaultPageSize
	}

	stories, total, err := s.stories.List(ctx, userID, domain.StoryFilter{
		FavoritesOnly: input.FavoritesOnly,
		Limit:         pageSize,
		Offset:        (page - 1) * pageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("list stories: %w", err)
	}
	if stories == nil {
		stories = []domain.Story{}
	}

	return &ListStoriesResult{
		Stories:  stories,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetStory returns a single story owned by the user.
func (s *Service) GetStory(ctx context.Context, storyID uuid.UUID) (*domain.Story, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	story, err := s.stories.GetByID(ctx, userID, storyID)
	if err != nil {
		return nil, fmt.Errorf("get story: %w", err)
	}
	return story, nil
}

// ToggleFavorite flips the favorite flag of a story and returns the updated record.
func (s *Service) ToggleFavorite(ctx context.Context, storyID uuid.UUID) (*domain.Story, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var updated *domain.Story
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.stories.GetByID(txCtx, userID, storyID)
		if err != nil {
			return fmt.Errorf("get story: %w", err)
		}

		updated, err = s.stories.SetFavorite(txCtx, userID, storyID, !current.IsFavorite)
		if err != nil {
			return fmt.Errorf("set favorite: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "story favorite toggled",
		slog.String("user_id", userID.String()),
		slog.String("story_id", storyID.String()),
		slog.Bool("is_favorite", updated.IsFavorite),
	)

	return updated, nil
}

// DeleteStory removes a story owned by the user.
func (s *Service) DeleteStory(ctx context.Context, storyID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.stories.Delete(ctx, userID, storyID); err != nil {
		return fmt.Errorf("delete story: %w", err)
	}

	s.log.InfoContext(ctx, "story deleted",
		slog.String("user_id", userID.String()),
		slog.String("story_id", storyID.String()),
	)
	return nil
}
