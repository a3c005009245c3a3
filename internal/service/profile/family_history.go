package profile

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/evernest-backend/internal/domain"
	"github.com/heartmarshall/evernest-backend/pkg/ctxutil"
)

// GetFamilyHistory returns the user's family history entries.
func (s *Service) GetFamilyHistory(ctx context.Context) ([]domain.FamilyHistoryEntry, error) {
	p, err := s.GetProfile(ctx)
	if err != nil {
		return nil, err
	}
	if p.FamilyHistory == nil {
		return []domain.FamilyHistoryEntry{}, nil
	}
	return p.FamilyHistory, nil
}

// UpdateFamilyHistory replaces the family history list. A profile with
// default settings is created when the user has none.
func (s *Service) UpdateFamilyHistory(ctx context.Context, input UpdateFamilyHistoryInput) ([]domain.FamilyHistoryEntry, error) {
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

		current.FamilyHistory = s.mergeEntries(current.FamilyHistory, input.Entries)

		saved, err = s.profiles.Upsert(txCtx, current)
		if err != nil {
			return fmt.Errorf("upsert profile: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "family history updated",
		slog.String("user_id", userID.String()),
		slog.Int("entries", len(saved.FamilyHistory)),
	)
	return saved.FamilyHistory, nil
}

// mergeEntries builds the new list in input order. Known ids keep their
// creation time; unknown or empty ids get a fresh id and the current time.
func (s *Service) mergeEntries(existing []domain.FamilyHistoryEntry, in []FamilyHistoryEntryInput) []domain.FamilyHistoryEntry {
	byID := make(map[string]domain.FamilyHistoryEntry, len(existing))
	for _, e := range existing {
		byID[e.ID] = e
	}

	now := s.now().UTC()
	out := make([]domain.FamilyHistoryEntry, 0, len(in))
	for _, e := range in {
		entry := domain.FamilyHistoryEntry{
			ID:        e.ID,
			Relation:  strings.TrimSpace(e.Relation),
			Condition: strings.TrimSpace(e.Condition),
			Notes:     trimOrNil(derefString(e.Notes)),
			CreatedAt: now,
		}
		if prev, ok := byID[e.ID]; ok && e.ID != "" {
			entry.CreatedAt = prev.CreatedAt
		} else {
			entry.ID = uuid.NewString()
		}
		out = append(out, entry)
	}
	return out
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
