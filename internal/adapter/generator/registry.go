package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/heartmarshall/evernest-backend/internal/domain"
)

// Metrics observes completed generation calls.
type Metrics interface {
	GenerationObserved(provider, outcome string, elapsed time.Duration)
}

// Config controls provider selection and call bounds.
type Config struct {
	DefaultProvider domain.Provider
	Timeout         time.Duration
	MaxAttempts     int
	RetryDelay      time.Duration
}

// Registry routes generation requests to a configured provider.
type Registry struct {
	log       *slog.Logger
	cfg       Config
	metrics   Metrics
	providers map[domain.Provider]Provider
	order     []domain.Provider
}

// NewRegistry creates a registry over the given providers. When
// cfg.DefaultProvider is empty the first provider becomes the default.
func NewRegistry(log *slog.Logger, cfg Config, metrics Metrics, providers ...Provider) (*Registry, error) {
	if len(providers) == 0 {
		return nil, errors.New("generator: no providers configured")
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}

	r := &Registry{
		log:       log.With("component", "generator"),
		cfg:       cfg,
		metrics:   metrics,
		providers: make(map[domain.Provider]Provider, len(providers)),
	}
	for _, p := range providers {
		if _, dup := r.providers[p.Name()]; dup {
			return nil, fmt.Errorf("generator: provider %s registered twice", p.Name())
		}
		r.providers[p.Name()] = p
		r.order = append(r.order, p.Name())
	}

	if r.cfg.DefaultProvider == "" {
		r.cfg.DefaultProvider = r.order[0]
	}
	if _, ok := r.providers[r.cfg.DefaultProvider]; !ok {
		return nil, fmt.Errorf("generator: default provider %s is not configured", r.cfg.DefaultProvider)
	}
	return r, nil
}

// Default returns the provider used when a request names none.
func (r *Registry) Default() domain.Provider {
	return r.cfg.DefaultProvider
}

// Available lists configured providers with the default first.
func (r *Registry) Available() []domain.Provider {
	out := []domain.Provider{r.cfg.DefaultProvider}
	for _, name := range r.order {
		if name != r.cfg.DefaultProvider {
			out = append(out, name)
		}
	}
	return out
}

// Generate runs the prompt against the requested or default provider.
// Failures are returned as *domain.GenerationError.
func (r *Registry) Generate(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error) {
	name := req.Provider
	if name == "" {
		name = r.cfg.DefaultProvider
	}

	start := time.Now()
	p, ok := r.providers[name]
	if !ok {
		return nil, r.fail(ctx, name, errNotConfigured, 0, start)
	}

	var (
		result   *domain.GenerationResult
		attempts uint
	)
	err := retry.Do(
		func() error {
			attempts++
			callCtx := ctx
			if r.cfg.Timeout > 0 {
				var cancel context.CancelFunc
				callCtx, cancel = context.WithTimeout(ctx, r.cfg.Timeout)
				defer cancel()
			}

			raw, err := p.Complete(callCtx, SystemPrompt, req.Prompt)
			if err != nil {
				return err
			}
			parsed, err := validateResult(raw)
			if err != nil {
				return err
			}
			result = parsed
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(uint(r.cfg.MaxAttempts)),
		retry.Delay(r.cfg.RetryDelay),
		retry.RetryIf(retryable),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			r.log.WarnContext(ctx, "generation attempt failed",
				slog.String("provider", name.String()),
				slog.Uint64("attempt", uint64(n+1)),
				slog.String("error", err.Error()),
			)
		}),
	)
	if err != nil {
		return nil, r.fail(ctx, name, err, attempts, start)
	}

	result.Provider = name
	r.observe(name, "success", start)
	r.log.InfoContext(ctx, "story generated",
		slog.String("provider", name.String()),
		slog.Uint64("attempts", uint64(attempts)),
		slog.Duration("duration", time.Since(start)),
	)
	return result, nil
}

func (r *Registry) fail(ctx context.Context, name domain.Provider, err error, attempts uint, start time.Time) error {
	kind := classify(err)
	r.observe(name, string(kind), start)
	r.log.ErrorContext(ctx, "story generation failed",
		slog.String("provider", name.String()),
		slog.String("kind", string(kind)),
		slog.Uint64("attempts", uint64(attempts)),
		slog.String("error", err.Error()),
	)
	return &domain.GenerationError{Kind: kind, Provider: name, Err: err}
}

func (r *Registry) observe(name domain.Provider, outcome string, start time.Time) {
	if r.metrics != nil {
		r.metrics.GenerationObserved(name.String(), outcome, time.Since(start))
	}
}
