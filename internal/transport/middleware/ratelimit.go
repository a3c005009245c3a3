package middleware

import (
	"context"
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/evernest-backend/internal/ratelimit"
)

// UnknownClient is the shared identity of requests without a client address.
const UnknownClient = "unknown"

type limiter interface {
	Allow(ctx context.Context, key string) (ratelimit.Result, error)
	Now() time.Time
	Max() int
}

type rateLimitMetrics interface {
	RateLimited()
}

// RateLimit rejects requests over the limiter's budget with 429 and a
// Retry-After hint. With trustForwardedFor the client identity is the first
// X-Forwarded-For address; otherwise it is the connection's remote address.
// A store failure lets the request through.
func RateLimit(l limiter, m rateLimitMetrics, logger *slog.Logger, trustForwardedFor bool) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := ClientID(r, trustForwardedFor)

			res, err := l.Allow(r.Context(), key)
			if err != nil {
				logger.WarnContext(r.Context(), "rate limit check failed, allowing request",
					slog.String("client", key),
					slog.String("error", err.Error()),
				)
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(l.Max()))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))

			if !res.Allowed {
				if m != nil {
					m.RateLimited()
				}
				logger.InfoContext(r.Context(), "rate limited", slog.String("client", key))
				w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(res.RetryAfter(l.Now()))))
				writeError(w, http.StatusTooManyRequests, "Too many requests",
					"Please wait a moment before creating another story.")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ClientID derives the rate-limit identity of r.
func ClientID(r *http.Request, trustForwardedFor bool) string {
	if trustForwardedFor {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			first, _, _ := strings.Cut(xff, ",")
			if first = strings.TrimSpace(first); first != "" {
				return first
			}
		}
		return UnknownClient
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if host == "" {
		return UnknownClient
	}
	return host
}

func retryAfterSeconds(d time.Duration) int {
	s := int(math.Ceil(d.Seconds()))
	if s < 1 {
		return 1
	}
	return s
}
