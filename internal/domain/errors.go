package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
	ErrGeneration    = errors.New("story generation failed")
	ErrRateLimited   = errors.New("rate limited")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// GenerationErrorKind classifies a failed call to the text generator.
type GenerationErrorKind string

const (
	GenerationErrorAuth      GenerationErrorKind = "auth"
	GenerationErrorQuota     GenerationErrorKind = "quota"
	GenerationErrorNotFound  GenerationErrorKind = "not_found"
	GenerationErrorMalformed GenerationErrorKind = "malformed"
	GenerationErrorTimeout   GenerationErrorKind = "timeout"
	GenerationErrorUnknown   GenerationErrorKind = "unknown"
)

// GenerationError wraps a provider failure. Err carries provider detail and
// must only be logged; UserMessage is what callers may show.
type GenerationError struct {
	Kind     GenerationErrorKind
	Provider Provider
	Err      error
}

func (e *GenerationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("generation (%s): %s", e.Provider, e.Kind)
	}
	return fmt.Sprintf("generation (%s): %s: %v", e.Provider, e.Kind, e.Err)
}

func (e *GenerationError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrGeneration}
	}
	return []error{ErrGeneration, e.Err}
}

// UserMessage returns the stable message for the error kind.
func (e *GenerationError) UserMessage() string {
	switch e.Kind {
	case GenerationErrorAuth:
		return fmt.Sprintf("AI provider (%s) API key is invalid or not configured. Please check your settings.", e.Provider)
	case GenerationErrorQuota:
		return fmt.Sprintf("AI provider (%s) has exceeded its quota. Please try again later or switch providers in Settings.", e.Provider)
	case GenerationErrorNotFound:
		return "AI model not available. Please try again or contact support."
	default:
		return "Failed to generate a calm story. Please try again gently."
	}
}
