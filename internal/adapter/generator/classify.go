package generator

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/heartmarshall/evernest-backend/internal/domain"
)

var (
	errEmptyResponse = errors.New("empty response")
	errNotConfigured = errors.New("provider not configured")
)

// statusError carries the HTTP status returned by a provider API.
type statusError struct {
	status int
	err    error
}

func (e *statusError) Error() string { return fmt.Sprintf("status %d: %v", e.status, e.err) }
func (e *statusError) Unwrap() error { return e.err }

// malformedError marks output that could not be parsed into a story.
type malformedError struct {
	err error
}

func (e *malformedError) Error() string { return "malformed output: " + e.err.Error() }
func (e *malformedError) Unwrap() error { return e.err }

// classify maps a provider failure onto a GenerationErrorKind.
func classify(err error) domain.GenerationErrorKind {
	if errors.Is(err, errNotConfigured) {
		return domain.GenerationErrorAuth
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.GenerationErrorTimeout
	}

	var malformed *malformedError
	if errors.As(err, &malformed) || errors.Is(err, errEmptyResponse) {
		return domain.GenerationErrorMalformed
	}

	var se *statusError
	if errors.As(err, &se) {
		switch se.status {
		case http.StatusUnauthorized, http.StatusForbidden:
			return domain.GenerationErrorAuth
		case http.StatusTooManyRequests:
			return domain.GenerationErrorQuota
		case http.StatusNotFound:
			return domain.GenerationErrorNotFound
		}
	}

	// Providers without a typed error still mention the cause in the message.
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "api key"):
		return domain.GenerationErrorAuth
	case strings.Contains(msg, "quota"), strings.Contains(msg, "429"):
		return domain.GenerationErrorQuota
	case strings.Contains(msg, "not found"), strings.Contains(msg, "404"):
		return domain.GenerationErrorNotFound
	}
	return domain.GenerationErrorUnknown
}

// retryable reports whether another attempt may succeed.
func retryable(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}

	var se *statusError
	if errors.As(err, &se) && se.status >= http.StatusInternalServerError {
		return true
	}

	switch classify(err) {
	case domain.GenerationErrorMalformed, domain.GenerationErrorTimeout:
		return true
	case domain.GenerationErrorUnknown:
		return se == nil
	}
	return false
}
