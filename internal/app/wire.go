package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/evernest-backend/internal/adapter/generator"
	"github.com/heartmarshall/evernest-backend/internal/adapter/postgres"
	profilerepo "github.com/heartmarshall/evernest-backend/internal/adapter/postgres/profile"
	storyrepo "github.com/heartmarshall/evernest-backend/internal/adapter/postgres/story"
	"github.com/heartmarshall/evernest-backend/internal/auth"
	"github.com/heartmarshall/evernest-backend/internal/config"
	"github.com/heartmarshall/evernest-backend/internal/domain"
	"github.com/heartmarshall/evernest-backend/internal/metrics"
	"github.com/heartmarshall/evernest-backend/internal/ratelimit"
	"github.com/heartmarshall/evernest-backend/internal/service/profile"
	"github.com/heartmarshall/evernest-backend/internal/service/story"
	"github.com/heartmarshall/evernest-backend/internal/transport/middleware"
	"github.com/heartmarshall/evernest-backend/internal/transport/rest"
)

type deps struct {
	handler http.Handler
	closers []func()
}

func (d *deps) close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		d.closers[i]()
	}
}

func build(ctx context.Context, cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool) (*deps, error) {
	d := &deps{}
	m := metrics.New()

	gen, err := newGenerator(logger, cfg.Generator, m)
	if err != nil {
		return nil, err
	}

	health := rest.NewHealthHandler(pool, BuildVersion())

	store, err := newRateLimitStore(ctx, cfg, d, health)
	if err != nil {
		d.close()
		return nil, err
	}
	limiter, err := ratelimit.New(store, cfg.RateLimit.Window, cfg.RateLimit.MaxRequests)
	if err != nil {
		d.close()
		return nil, err
	}

	txm := postgres.NewTxManager(pool)

	storySvc := story.NewService(logger, storyrepo.New(pool), gen, txm, m, story.Config{
		DefaultPageSize: cfg.Story.DefaultPageSize,
		MaxPageSize:     cfg.Story.MaxPageSize,
	})
	profileSvc := profile.NewService(logger, profilerepo.New(pool), txm)

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	d.handler = rest.NewRouter(rest.RouterConfig{
		Stories:  rest.NewStoryHandler(storySvc, logger, cfg.Server.MaxBodyBytes),
		Profiles: rest.NewProfileHandler(profileSvc, logger, cfg.Server.MaxBodyBytes),
		Health:   health,
		Metrics:  m.Handler(),
		Observer: m,
		Outer: []middleware.Middleware{
			middleware.RequestID,
			middleware.Recovery(logger),
			middleware.Logger(logger),
			middleware.CORS(cfg.CORS),
		},
		Auth:        middleware.Auth(jwt, logger),
		CreateLimit: middleware.RateLimit(limiter, m, logger, cfg.RateLimit.TrustForwardedFor),
	})

	logger.Info("generator ready",
		slog.String("default", string(gen.Default())),
		slog.Any("available", gen.Available()),
	)
	return d, nil
}

func newGenerator(logger *slog.Logger, cfg config.GeneratorConfig, m generator.Metrics) (*generator.Registry, error) {
	var providers []generator.Provider
	for _, name := range cfg.EnabledProviders() {
		switch domain.Provider(name) {
		case domain.ProviderAnthropic:
			var opts []option.RequestOption
			if cfg.Anthropic.BaseURL != "" {
				opts = append(opts, option.WithBaseURL(cfg.Anthropic.BaseURL))
			}
			providers = append(providers, generator.NewAnthropicProvider(
				cfg.Anthropic.APIKey, cfg.Anthropic.Model, cfg.MaxTokens, cfg.Temperature, opts...))
		case domain.ProviderOpenAI:
			providers = append(providers, generator.NewOpenAIProvider(
				cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.OpenAI.Model, cfg.MaxTokens, cfg.Temperature))
		}
	}

	reg, err := generator.NewRegistry(logger, generator.Config{
		DefaultProvider: domain.Provider(cfg.Provider),
		Timeout:         cfg.Timeout,
		MaxAttempts:     cfg.MaxAttempts,
		RetryDelay:      cfg.RetryDelay,
	}, m, providers...)
	if err != nil {
		return nil, fmt.Errorf("build generator: %w", err)
	}
	return reg, nil
}

func newRateLimitStore(ctx context.Context, cfg *config.Config, d *deps, health *rest.HealthHandler) (ratelimit.Store, error) {
	switch cfg.RateLimit.Store {
	case config.RateLimitStoreRedis:
		client, err := ratelimit.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, err
		}
		d.closers = append(d.closers, func() { _ = client.Close() })
		health.AddCheck("redis", rest.PingFunc(func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		}))
		return ratelimit.NewRedisStore(client, cfg.RateLimit.KeyPrefix), nil
	default:
		store := ratelimit.NewMemoryStore(cfg.RateLimit.CleanupInterval, 2*cfg.RateLimit.Window)
		d.closers = append(d.closers, store.Stop)
		return store, nil
	}
}
