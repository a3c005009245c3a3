package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/evernest-backend/internal/domain"
)

// handleError maps a service error to an HTTP response. Provider detail
// of generation failures is logged but never written to the client.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var (
		ve  *domain.ValidationError
		gen *domain.GenerationError
	)

	switch {
	case errors.As(err, &ve):
		details := make([]fieldDetail, 0, len(ve.Errors))
		for _, fe := range ve.Errors {
			details = append(details, fieldDetail{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid input", Details: details})
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrRateLimited):
		writeError(w, http.StatusTooManyRequests, "Too many requests")
	case errors.As(err, &gen):
		log.WarnContext(r.Context(), "story generation failed",
			slog.String("provider", string(gen.Provider)),
			slog.String("kind", string(gen.Kind)),
		)
		writeError(w, http.StatusBadGateway, gen.UserMessage())
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "conflict")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
