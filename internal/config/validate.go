package config

import (
	"fmt"
	"slices"
	"strings"
)

var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"json", "text"}
	validProviders  = []string{"anthropic", "openai"}
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %s)", c.Auth.AccessTokenTTL)
	}

	if !slices.Contains(validLogLevels, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("log.level must be one of %v (got %q)", validLogLevels, c.Log.Level)
	}
	if !slices.Contains(validLogFormats, strings.ToLower(c.Log.Format)) {
		return fmt.Errorf("log.format must be one of %v (got %q)", validLogFormats, c.Log.Format)
	}

	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server.max_body_bytes must be > 0 (got %d)", c.Server.MaxBodyBytes)
	}

	if err := c.RateLimit.validate(c.Redis); err != nil {
		return fmt.Errorf("rate_limit: %w", err)
	}
	if err := c.Generator.validate(); err != nil {
		return fmt.Errorf("generator: %w", err)
	}
	if err := c.Story.validate(); err != nil {
		return fmt.Errorf("story: %w", err)
	}

	return nil
}

func (r *RateLimitConfig) validate(redis RedisConfig) error {
	if r.Window <= 0 {
		return fmt.Errorf("window must be > 0 (got %s)", r.Window)
	}
	if r.MaxRequests <= 0 {
		return fmt.Errorf("max_requests must be > 0 (got %d)", r.MaxRequests)
	}
	switch r.Store {
	case RateLimitStoreMemory:
	case RateLimitStoreRedis:
		if redis.Addr == "" {
			return fmt.Errorf("redis.addr is required when store is %q", RateLimitStoreRedis)
		}
	default:
		return fmt.Errorf("store must be %q or %q (got %q)", RateLimitStoreMemory, RateLimitStoreRedis, r.Store)
	}
	return nil
}

func (g *GeneratorConfig) validate() error {
	if !slices.Contains(validProviders, g.Provider) {
		return fmt.Errorf("provider must be one of %v (got %q)", validProviders, g.Provider)
	}
	if !slices.Contains(g.EnabledProviders(), g.Provider) {
		return fmt.Errorf("provider %q has no api key", g.Provider)
	}
	if g.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %s)", g.Timeout)
	}
	if g.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", g.MaxTokens)
	}
	if g.Temperature < 0 || g.Temperature > 2 {
		return fmt.Errorf("temperature must be in [0, 2] (got %v)", g.Temperature)
	}
	if g.MaxAttempts < 1 {
		return fmt.Errorf("max_attempts must be >= 1 (got %d)", g.MaxAttempts)
	}
	if g.RetryDelay < 0 {
		return fmt.Errorf("retry_delay must be >= 0 (got %s)", g.RetryDelay)
	}
	return nil
}

func (s *StoryConfig) validate() error {
	if s.DefaultPageSize <= 0 {
		return fmt.Errorf("default_page_size must be > 0 (got %d)", s.DefaultPageSize)
	}
	if s.MaxPageSize < s.DefaultPageSize {
		return fmt.Errorf("max_page_size must be >= default_page_size (got %d < %d)", s.MaxPageSize, s.DefaultPageSize)
	}
	if s.RetentionDays < 0 {
		return fmt.Errorf("retention_days must be >= 0 (got %d)", s.RetentionDays)
	}
	return nil
}
