package profile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/evernest-backend/internal/domain"
	"github.com/heartmarshall/evernest-backend/pkg/ctxutil"
)

// GetProfile returns the user's profile, or the default profile when the
// user has not saved one yet.
func (s *Service) GetProfile(ctx context.Context) (*domain.UserProfile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	p, err := s.profiles.GetByUserID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		def := domain.DefaultUserProfile(userID)
		return &def, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

// UpdateProfile applies a partial update, creating the profile on first write.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.UserProfile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var saved *domain.UserProfile
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.loadForUpdate(txCtx, userID)
		if err != nil {
			return err
		}

		input.apply(current)

		saved, err = s.profiles.Upsert(txCtx, current)
		if err != nil {
			return fmt.Errorf("upsert profile: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "profile updated",
		slog.String("user_id", userID.String()),
		slog.String("profile_id", saved.ID.String()),
	)
	return saved, nil
}

func (s *Service) loadForUpdate(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	p, err := s.profiles.GetByUserIDForUpdate(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		def := domain.DefaultUserProfile(userID)
		return &def, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}
