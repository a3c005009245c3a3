package story

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/evernest-backend/internal/domain"
)

const maxDueDateLength = 20

// CreateStoryInput holds the parameters for creating a story.
type CreateStoryInput struct {
	Config domain.StoryGenerationConfig
}

// Validate checks all fields and collects all errors.
func (i *CreateStoryInput) Validate() error {
	errs := validateConfig(i.Config)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CheckDuplicateInput holds the configuration to look up.
type CheckDuplicateInput struct {
	Config domain.StoryGenerationConfig
}

// Validate checks all fields and collects all errors.
func (i *CheckDuplicateInput) Validate() error {
	errs := validateConfig(i.Config)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListStoriesInput holds the paging parameters for the library.
// Zero Page and PageSize fall back to defaults.
type ListStoriesInput struct {
	Page          int
	PageSize      int
	FavoritesOnly bool
}

// Validate checks all fields against the configured maximum page size.
func (i *ListStoriesInput) Validate(maxPageSize int) error {
	var errs []domain.FieldError

	if i.Page < 0 {
		errs = append(errs, domain.FieldError{Field: "page", Message: "must be positive"})
	}
	if i.PageSize < 0 || i.PageSize > maxPageSize {
		errs = append(errs, domain.FieldError{Field: "page_size", Message: fmt.Sprintf("must be between 1 and %d", maxPageSize)})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateConfig(c domain.StoryGenerationConfig) []domain.FieldError {
	var errs []domain.FieldError

	if !c.Theme.IsValid() {
		errs = append(errs, domain.FieldError{Field: "theme", Message: "invalid value"})
	}
	if !c.Length.IsValid() {
		errs = append(errs, domain.FieldError{Field: "length", Message: "must be quick, short, standard, or long"})
	}
	if !c.FaithPreference.IsValid() {
		errs = append(errs, domain.FieldError{Field: "faith_preference", Message: "must be faith_based, spiritual, or non_religious"})
	}

	if strings.TrimSpace(c.ParentOneName) == "" {
		errs = append(errs, domain.FieldError{Field: "parent_one_name", Message: "required"})
	} else if msg := domain.CheckName(c.ParentOneName); msg != "" {
		errs = append(errs, domain.FieldError{Field: "parent_one_name", Message: msg})
	}
	if c.ParentTwoName != "" {
		if msg := domain.CheckName(c.ParentTwoName); msg != "" {
			errs = append(errs, domain.FieldError{Field: "parent_two_name", Message: msg})
		}
	}
	if c.BabyNickname != "" {
		if msg := domain.CheckName(c.BabyNickname); msg != "" {
			errs = append(errs, domain.FieldError{Field: "baby_nickname", Message: msg})
		}
	}

	if utf8.RuneCountInString(c.DueDate) > maxDueDateLength {
		errs = append(errs, domain.FieldError{Field: "due_date", Message: fmt.Sprintf("max %d characters", maxDueDateLength)})
	}
	if c.ChildStatus != "" && !c.ChildStatus.IsValid() {
		errs = append(errs, domain.FieldError{Field: "child_status", Message: "must be prenatal or born"})
	}
	if c.AgeGroup != "" && !c.AgeGroup.IsValid() {
		errs = append(errs, domain.FieldError{Field: "age_group", Message: "must be newborn, infant, toddler, or preschool"})
	}
	if c.Provider != "" && !c.Provider.IsValid() {
		errs = append(errs, domain.FieldError{Field: "provider", Message: "unsupported provider"})
	}

	return errs
}

func trimOrNil(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
