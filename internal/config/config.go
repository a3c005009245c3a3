package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Redis     RedisConfig     `yaml:"redis"`
	Generator GeneratorConfig `yaml:"generator"`
	Story     StoryConfig     `yaml:"story"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"120s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"SERVER_MAX_BODY_BYTES"   env-default:"65536"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// AuthConfig holds bearer token settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"evernest"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"1h"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// Rate limit counter stores.
const (
	RateLimitStoreMemory = "memory"
	RateLimitStoreRedis  = "redis"
)

// RateLimitConfig holds story creation throttle settings.
type RateLimitConfig struct {
	Window            time.Duration `yaml:"window"              env:"RATE_LIMIT_WINDOW"              env-default:"60s"`
	MaxRequests       int           `yaml:"max_requests"        env:"RATE_LIMIT_MAX_REQUESTS"        env-default:"5"`
	Store             string        `yaml:"store"               env:"RATE_LIMIT_STORE"               env-default:"memory"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP_INTERVAL"    env-default:"5m"`
	TrustForwardedFor bool          `yaml:"trust_forwarded_for" env:"RATE_LIMIT_TRUST_FORWARDED_FOR" env-default:"true"`
	KeyPrefix         string        `yaml:"key_prefix"          env:"RATE_LIMIT_KEY_PREFIX"          env-default:"evernest:ratelimit:"`
}

// RedisConfig holds the shared Redis connection used by the redis store.
type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db"       env:"REDIS_DB" env-default:"0"`
}

// GeneratorConfig holds text generation provider settings. A provider is
// enabled when its API key is set.
type GeneratorConfig struct {
	Provider    string        `yaml:"provider"     env:"GENERATOR_PROVIDER"     env-default:"anthropic"`
	Timeout     time.Duration `yaml:"timeout"      env:"GENERATOR_TIMEOUT"      env-default:"60s"`
	MaxTokens   int           `yaml:"max_tokens"   env:"GENERATOR_MAX_TOKENS"   env-default:"4096"`
	Temperature float64       `yaml:"temperature"  env:"GENERATOR_TEMPERATURE"  env-default:"0.7"`
	MaxAttempts int           `yaml:"max_attempts" env:"GENERATOR_MAX_ATTEMPTS" env-default:"2"`
	RetryDelay  time.Duration `yaml:"retry_delay"  env:"GENERATOR_RETRY_DELAY"  env-default:"500ms"`

	Anthropic AnthropicConfig `yaml:"anthropic"`
	OpenAI    OpenAIConfig    `yaml:"openai"`
}

// AnthropicConfig holds Anthropic API settings.
type AnthropicConfig struct {
	APIKey  string `yaml:"api_key"  env:"ANTHROPIC_API_KEY"`
	Model   string `yaml:"model"    env:"ANTHROPIC_MODEL"    env-default:"claude-sonnet-4-5"`
	BaseURL string `yaml:"base_url" env:"ANTHROPIC_BASE_URL"`
}

// OpenAIConfig holds OpenAI-compatible API settings.
type OpenAIConfig struct {
	APIKey  string `yaml:"api_key"  env:"OPENAI_API_KEY"`
	Model   string `yaml:"model"    env:"OPENAI_MODEL"    env-default:"gpt-4o"`
	BaseURL string `yaml:"base_url" env:"OPENAI_BASE_URL"`
}

// StoryConfig holds story library settings.
type StoryConfig struct {
	DefaultPageSize int `yaml:"default_page_size" env:"STORY_DEFAULT_PAGE_SIZE" env-default:"20"`
	MaxPageSize     int `yaml:"max_page_size"     env:"STORY_MAX_PAGE_SIZE"     env-default:"100"`
	RetentionDays   int `yaml:"retention_days"    env:"STORY_RETENTION_DAYS"    env-default:"0"`
}

// EnabledProviders returns the providers with an API key, default first.
func (c GeneratorConfig) EnabledProviders() []string {
	var out []string
	add := func(name string, key string) {
		if key != "" {
			out = append(out, name)
		}
	}
	if c.Provider == "openai" {
		add("openai", c.OpenAI.APIKey)
		add("anthropic", c.Anthropic.APIKey)
	} else {
		add("anthropic", c.Anthropic.APIKey)
		add("openai", c.OpenAI.APIKey)
	}
	return out
}
