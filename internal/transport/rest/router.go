package rest

import (
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/evernest-backend/internal/transport/middleware"
)

type httpObserver interface {
	ObserveHTTP(method, route string, status int, elapsed time.Duration)
}

// RouterConfig holds everything the HTTP surface is assembled from.
type RouterConfig struct {
	Stories  *StoryHandler
	Profiles *ProfileHandler
	Health   *HealthHandler
	Metrics  http.Handler
	Observer httpObserver

	// Outer wraps the whole mux, outermost first.
	Outer []middleware.Middleware
	// Auth resolves the bearer token on /api routes.
	Auth middleware.Middleware
	// CreateLimit throttles story creation only.
	CreateLimit middleware.Middleware
}

// NewRouter builds the HTTP handler.
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	handle := func(pattern string, h http.Handler, mws ...middleware.Middleware) {
		chain := make([]middleware.Middleware, 0, len(mws)+1)
		if cfg.Observer != nil {
			_, route, _ := strings.Cut(pattern, " ")
			chain = append(chain, middleware.Metrics(cfg.Observer, route))
		}
		chain = append(chain, mws...)
		mux.Handle(pattern, middleware.Chain(chain...)(h))
	}

	api := []middleware.Middleware{cfg.Auth, middleware.RequireUser}
	withLimit := append(append([]middleware.Middleware{}, api...), cfg.CreateLimit)

	handle("POST /api/stories", http.HandlerFunc(cfg.Stories.Create), withLimit...)
	handle("POST /api/stories/check-duplicate", http.HandlerFunc(cfg.Stories.CheckDuplicate), api...)
	handle("GET /api/stories", http.HandlerFunc(cfg.Stories.List), api...)
	handle("GET /api/stories/{id}", http.HandlerFunc(cfg.Stories.Get), api...)
	handle("PATCH /api/stories/{id}", http.HandlerFunc(cfg.Stories.ToggleFavorite), api...)
	handle("DELETE /api/stories/{id}", http.HandlerFunc(cfg.Stories.Delete), api...)

	handle("GET /api/profile", http.HandlerFunc(cfg.Profiles.Get), api...)
	handle("PUT /api/profile", http.HandlerFunc(cfg.Profiles.Update), api...)
	handle("GET /api/profile/family-history", http.HandlerFunc(cfg.Profiles.GetFamilyHistory), api...)
	handle("PUT /api/profile/family-history", http.HandlerFunc(cfg.Profiles.UpdateFamilyHistory), api...)

	mux.HandleFunc("GET /live", cfg.Health.Live)
	mux.HandleFunc("GET /ready", cfg.Health.Ready)
	mux.HandleFunc("GET /health", cfg.Health.Health)
	if cfg.Metrics != nil {
		mux.Handle("GET /metrics", cfg.Metrics)
	}

	return middleware.Chain(cfg.Outer...)(mux)
}
