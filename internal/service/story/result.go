package story

import (
	"github.com/google/uuid"
	"github.com/heartmarshall/evernest-backend/internal/domain"
)

// CreateStoryResult is the outcome of CreateStory. When IsDuplicate is set,
// Story is the previously stored record and ExistingStoryID points at it.
type CreateStoryResult struct {
	Story           *domain.Story
	IsDuplicate     bool
	ExistingStoryID *uuid.UUID
}

// DuplicateCheck reports whether a configuration was already generated.
type DuplicateCheck struct {
	IsDuplicate     bool
	ExistingStoryID *uuid.UUID
	ConfigHash      string
}

// ListStoriesResult is one page of a user's library.
type ListStoriesResult struct {
	Stories  []domain.Story
	Total    int
	Page     int
	PageSize int
}

// HasMore reports whether stories exist past this page.
func (r ListStoriesResult) HasMore() bool {
	return r.Page*r.PageSize < r.Total
}
