package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultParentName is used when a profile is created implicitly.
const DefaultParentName = "Parent"

// UserProfile holds family details and reading preferences for one user.
type UserProfile struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	ParentOneName   string
	ParentTwoName   *string
	BabyNickname    *string
	DueDate         *time.Time
	BirthDate       *time.Time
	FaithPreference FaithPreference
	DefaultTheme    *StoryTheme
	DefaultLength   *StoryLength
	ChildStatus     ChildStatus
	Provider        *Provider
	DarkMode        bool
	FontSize        FontSize
	FamilyHistory   []FamilyHistoryEntry
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DefaultUserProfile returns the profile a user has before saving settings.
func DefaultUserProfile(userID uuid.UUID) UserProfile {
	return UserProfile{
		UserID:          userID,
		ParentOneName:   DefaultParentName,
		FaithPreference: FaithPreferenceNonReligious,
		ChildStatus:     ChildStatusPrenatal,
		FontSize:        FontSizeNormal,
		FamilyHistory:   []FamilyHistoryEntry{},
	}
}

// FamilyHistoryEntry is one remembered family health note.
type FamilyHistoryEntry struct {
	ID        string    `json:"id"`
	Relation  string    `json:"relation"`
	Condition string    `json:"condition"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
