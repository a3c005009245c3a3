package story

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/evernest-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type storyRepo interface {
	FindByConfigHash(ctx context.Context, userID uuid.UUID, configHash string) (*domain.Story, error)
	GetByID(ctx context.Context, userID, storyID uuid.UUID) (*domain.Story, error)
	Create(ctx context.Context, story *domain.Story) (*domain.Story, error)
	SetFavorite(ctx context.Context, userID, storyID uuid.UUID, favorite bool) (*domain.Story, error)
	Delete(ctx context.Context, userID, storyID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, filter domain.StoryFilter) ([]domain.Story, int, error)
}

type generator interface {
	Generate(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type storyMetrics interface {
	StoryRequested(outcome string)
}

// Outcomes reported to storyMetrics.
const (
	OutcomeCreated   = "created"
	OutcomeDuplicate = "duplicate"
	OutcomeFailed    = "failed"
)

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Config holds pagination settings for the story library.
type Config struct {
	DefaultPageSize int
	MaxPageSize     int
}

// Service implements story creation and the per-user story library.
type Service struct {
	log     *slog.Logger
	stories storyRepo
	gen     generator
	tx      txManager
	metrics storyMetrics
	cfg     Config
}

// NewService creates a new story service.
func NewService(
	log *slog.Logger,
	stories storyRepo,
	gen generator,
	tx txManager,
	metrics storyMetrics,
	cfg Config,
) *Service {
	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = 20
	}
	if cfg.MaxPageSize < cfg.DefaultPageSize {
		cfg.MaxPageSize = cfg.DefaultPageSize
	}
	return &Service{
		log:     log.With("service", "story"),
		stories: stories,
		gen:     gen,
		tx:      tx,
		metrics: metrics,
		cfg:     cfg,
	}
}
