package profile

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/heartmarshall/evernest-backend/internal/domain"
)

// DateLayout is the wire format of profile dates.
const DateLayout = "2006-01-02"

const (
	MaxFamilyHistoryEntries = 50
	maxRelationLength       = 100
	maxConditionLength      = 100
	maxNotesLength          = 500
)

// UpdateProfileInput is a partial update. Nil fields are left unchanged; an
// empty string clears an optional field.
type UpdateProfileInput struct {
	ParentOneName   *string
	ParentTwoName   *string
	BabyNickname    *string
	DueDate         *string
	BirthDate       *string
	FaithPreference *domain.FaithPreference
	DefaultTheme    *domain.StoryTheme
	DefaultLength   *domain.StoryLength
	ChildStatus     *domain.ChildStatus
	Provider        *domain.Provider
	DarkMode        *bool
	FontSize        *domain.FontSize
}

// Validate checks all fields and collects all errors.
func (i *UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.ParentOneName != nil {
		if strings.TrimSpace(*i.ParentOneName) == "" {
			errs = append(errs, domain.FieldError{Field: "parent_one_name", Message: "required"})
		} else if msg := domain.CheckName(*i.ParentOneName); msg != "" {
			errs = append(errs, domain.FieldError{Field: "parent_one_name", Message: msg})
		}
	}
	if i.ParentTwoName != nil && *i.ParentTwoName != "" {
		if msg := domain.CheckName(*i.ParentTwoName); msg != "" {
			errs = append(errs, domain.FieldError{Field: "parent_two_name", Message: msg})
		}
	}
	if i.BabyNickname != nil && *i.BabyNickname != "" {
		if msg := domain.CheckName(*i.BabyNickname); msg != "" {
			errs = append(errs, domain.FieldError{Field: "baby_nickname", Message: msg})
		}
	}
	if i.DueDate != nil && *i.DueDate != "" {
		if _, err := time.Parse(DateLayout, *i.DueDate); err != nil {
			errs = append(errs, domain.FieldError{Field: "due_date", Message: "must be a date in YYYY-MM-DD format"})
		}
	}
	if i.BirthDate != nil && *i.BirthDate != "" {
		if _, err := time.Parse(DateLayout, *i.BirthDate); err != nil {
			errs = append(errs, domain.FieldError{Field: "birth_date", Message: "must be a date in YYYY-MM-DD format"})
		}
	}
	if i.FaithPreference != nil && !i.FaithPreference.IsValid() {
		errs = append(errs, domain.FieldError{Field: "faith_preference", Message: "must be faith_based, spiritual, or non_religious"})
	}
	if i.DefaultTheme != nil && *i.DefaultTheme != "" && !i.DefaultTheme.IsValid() {
		errs = append(errs, domain.FieldError{Field: "default_theme", Message: "invalid value"})
	}
	if i.DefaultLength != nil && *i.DefaultLength != "" && !i.DefaultLength.IsValid() {
		errs = append(errs, domain.FieldError{Field: "default_length", Message: "must be quick, short, standard, or long"})
	}
	if i.ChildStatus != nil && !i.ChildStatus.IsValid() {
		errs = append(errs, domain.FieldError{Field: "child_status", Message: "must be prenatal or born"})
	}
	if i.Provider != nil && *i.Provider != "" && !i.Provider.IsValid() {
		errs = append(errs, domain.FieldError{Field: "provider", Message: "unsupported provider"})
	}
	if i.FontSize != nil && !i.FontSize.IsValid() {
		errs = append(errs, domain.FieldError{Field: "font_size", Message: "must be normal or large"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// FamilyHistoryEntryInput is one entry of a family history replacement.
// Entries with an existing ID keep their creation time.
type FamilyHistoryEntryInput struct {
	ID        string
	Relation  string
	Condition string
	Notes     *string
}

// UpdateFamilyHistoryInput replaces the whole family history list.
type UpdateFamilyHistoryInput struct {
	Entries []FamilyHistoryEntryInput
}

// Validate checks all entries and collects all errors.
func (i *UpdateFamilyHistoryInput) Validate() error {
	var errs []domain.FieldError

	if len(i.Entries) > MaxFamilyHistoryEntries {
		errs = append(errs, domain.FieldError{Field: "entries", Message: fmt.Sprintf("max %d entries", MaxFamilyHistoryEntries)})
	}

	seen := make(map[string]struct{}, len(i.Entries))
	for n, e := range i.Entries {
		prefix := fmt.Sprintf("entries[%d].", n)

		relation := strings.TrimSpace(e.Relation)
		switch {
		case relation == "":
			errs = append(errs, domain.FieldError{Field: prefix + "relation", Message: "required"})
		case utf8.RuneCountInString(relation) > maxRelationLength:
			errs = append(errs, domain.FieldError{Field: prefix + "relation", Message: fmt.Sprintf("max %d characters", maxRelationLength)})
		}

		condition := strings.TrimSpace(e.Condition)
		switch {
		case condition == "":
			errs = append(errs, domain.FieldError{Field: prefix + "condition", Message: "required"})
		case utf8.RuneCountInString(condition) > maxConditionLength:
			errs = append(errs, domain.FieldError{Field: prefix + "condition", Message: fmt.Sprintf("max %d characters", maxConditionLength)})
		}

		if e.Notes != nil && utf8.RuneCountInString(*e.Notes) > maxNotesLength {
			errs = append(errs, domain.FieldError{Field: prefix + "notes", Message: fmt.Sprintf("max %d characters", maxNotesLength)})
		}

		if e.ID != "" {
			if _, dup := seen[e.ID]; dup {
				errs = append(errs, domain.FieldError{Field: prefix + "id", Message: "duplicate id"})
			}
			seen[e.ID] = struct{}{}
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// apply copies the set fields onto p. It assumes Validate passed.
func (i *UpdateProfileInput) apply(p *domain.UserProfile) {
	if i.ParentOneName != nil {
		p.ParentOneName = strings.TrimSpace(*i.ParentOneName)
	}
	if i.ParentTwoName != nil {
		p.ParentTwoName = trimOrNil(*i.ParentTwoName)
	}
	if i.BabyNickname != nil {
		p.BabyNickname = trimOrNil(*i.BabyNickname)
	}
	if i.DueDate != nil {
		p.DueDate = parseDateOrNil(*i.DueDate)
	}
	if i.BirthDate != nil {
		p.BirthDate = parseDateOrNil(*i.BirthDate)
	}
	if i.FaithPreference != nil {
		p.FaithPreference = *i.FaithPreference
	}
	if i.DefaultTheme != nil {
		p.DefaultTheme = enumOrNil(*i.DefaultTheme)
	}
	if i.DefaultLength != nil {
		p.DefaultLength = enumOrNil(*i.DefaultLength)
	}
	if i.ChildStatus != nil {
		p.ChildStatus = *i.ChildStatus
	}
	if i.Provider != nil {
		p.Provider = enumOrNil(*i.Provider)
	}
	if i.DarkMode != nil {
		p.DarkMode = *i.DarkMode
	}
	if i.FontSize != nil {
		p.FontSize = *i.FontSize
	}
}

func trimOrNil(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func parseDateOrNil(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}

func enumOrNil[T ~string](v T) *T {
	if v == "" {
		return nil
	}
	return &v
}
