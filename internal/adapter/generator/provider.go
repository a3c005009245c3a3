// Package generator turns story prompts into {title, content} results using
// an external large language model.
package generator

import (
	"context"

	"github.com/heartmarshall/evernest-backend/internal/domain"
)

// SystemPrompt is sent with every completion request.
const SystemPrompt = `You are a gentle, warm storyteller for babies. Always respond with valid JSON containing "title" and "content" keys.`

// Provider is a single text-completion backend.
type Provider interface {
	Name() domain.Provider
	Complete(ctx context.Context, system, prompt string) (string, error)
}
