package profile

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/evernest-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type profileRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error)
	GetByUserIDForUpdate(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error)
	Upsert(ctx context.Context, profile *domain.UserProfile) (*domain.UserProfile, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service manages the user's profile settings and family history.
type Service struct {
	log      *slog.Logger
	profiles profileRepo
	tx       txManager
	now      func() time.Time
}

// NewService creates a new profile service.
func NewService(log *slog.Logger, profiles profileRepo, tx txManager) *Service {
	return &Service{
		log:      log.With("service", "profile"),
		profiles: profiles,
		tx:       tx,
		now:      time.Now,
	}
}
