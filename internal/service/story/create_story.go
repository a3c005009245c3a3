package story

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/evernest-backend/internal/domain"
	"github.com/heartmarshall/evernest-backend/internal/service/story/prompt"
	"github.com/heartmarshall/evernest-backend/pkg/ctxutil"
)

// CreateStory returns the stored story for an already generated configuration,
// or generates and stores a new one.
func (s *Service) CreateStory(ctx context.Context, input CreateStoryInput) (*CreateStoryResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	cfg := input.Config
	hash := domain.Fingerprint(cfg)

	existing, err := s.stories.FindByConfigHash(ctx, userID, hash)
	switch {
	case err == nil:
		s.log.InfoContext(ctx, "duplicate story configuration",
			slog.String("user_id", userID.String()),
			slog.String("story_id", existing.ID.String()),
		)
		s.metrics.StoryRequested(OutcomeDuplicate)
		return duplicateResult(existing), nil
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("find story by config hash: %w", err)
	}

	generated, err := s.gen.Generate(ctx, domain.GenerationRequest{
		Prompt:   prompt.Build(cfg),
		Provider: cfg.Provider,
	})
	if err != nil {
		s.metrics.StoryRequested(OutcomeFailed)
		return nil, fmt.Errorf("generate story: %w", err)
	}

	content := domain.NormalizePunctuation(strings.TrimSpace(generated.Content))
	story := &domain.Story{
		ID:              uuid.New(),
		UserID:          userID,
		Title:           strings.TrimSpace(generated.Title),
		Content:         content,
		Theme:           cfg.Theme,
		Length:          cfg.Length,
		FaithPreference: cfg.FaithPreference,
		ParentOneName:   strings.TrimSpace(cfg.ParentOneName),
		ParentTwoName:   trimOrNil(cfg.ParentTwoName),
		BabyNickname:    trimOrNil(cfg.BabyNickname),
		DueDate:         trimOrNil(cfg.DueDate),
		ChildStatus:     cfg.ChildStatus.OrDefault(),
		Provider:        generated.Provider,
		ConfigHash:      hash,
		WordCount:       domain.CountWords(content),
		CreatedAt:       time.Now().UTC(),
	}
	if cfg.AgeGroup != "" {
		group := cfg.AgeGroup
		story.AgeGroup = &group
	}

	created, err := s.stories.Create(ctx, story)
	if errors.Is(err, domain.ErrAlreadyExists) {
		// Another request with the same configuration stored first.
		winner, findErr := s.stories.FindByConfigHash(ctx, userID, hash)
		if findErr != nil {
			return nil, fmt.Errorf("find story after conflict: %w", findErr)
		}
		s.metrics.StoryRequested(OutcomeDuplicate)
		return duplicateResult(winner), nil
	}
	if err != nil {
		s.metrics.StoryRequested(OutcomeFailed)
		return nil, fmt.Errorf("create story: %w", err)
	}

	s.log.InfoContext(ctx, "story created",
		slog.String("user_id", userID.String()),
		slog.String("story_id", created.ID.String()),
		slog.String("provider", created.Provider.String()),
		slog.Int("word_count", created.WordCount),
	)
	s.metrics.StoryRequested(OutcomeCreated)

	return &CreateStoryResult{Story: created}, nil
}

// CheckForDuplicate reports whether the user already has a story for the
// given configuration.
func (s *Service) CheckForDuplicate(ctx context.Context, input CheckDuplicateInput) (*DuplicateCheck, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash := domain.Fingerprint(input.Config)
	existing, err := s.stories.FindByConfigHash(ctx, userID, hash)
	if errors.Is(err, domain.ErrNotFound) {
		return &DuplicateCheck{ConfigHash: hash}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find story by config hash: %w", err)
	}

	id := existing.ID
	return &DuplicateCheck{IsDuplicate: true, ExistingStoryID: &id, ConfigHash: hash}, nil
}

func duplicateResult(existing *domain.Story) *CreateStoryResult {
	id := existing.ID
	return &CreateStoryResult{Story: existing, IsDuplicate: true, ExistingStoryID: &id}
}
