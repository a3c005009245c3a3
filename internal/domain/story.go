package domain

import (
	"time"

	"github.com/google/uuid"
)

// StoryGenerationConfig describes a single story request.
// Empty optional strings are treated the same as absent values.
type StoryGenerationConfig struct {
	Theme           StoryTheme
	Length          StoryLength
	FaithPreference FaithPreference
	ParentOneName   string
	ParentTwoName   string
	BabyNickname    string
	DueDate         string
	ChildStatus     ChildStatus
	AgeGroup        AgeGroup
	Provider        Provider
}

// IsBorn reports whether the config targets a born child.
func (c StoryGenerationConfig) IsBorn() bool {
	return c.ChildStatus.OrDefault() == ChildStatusBorn
}

// Story is a persisted generated story owned by one user.
type Story struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	ProfileID       *uuid.UUID
	Title           string
	Content         string
	Theme           StoryTheme
	Length          StoryLength
	FaithPreference FaithPreference
	ParentOneName   string
	ParentTwoName   *string
	BabyNickname    *string
	DueDate         *string
	ChildStatus     ChildStatus
	AgeGroup        *AgeGroup
	Provider        Provider
	ConfigHash      string
	WordCount       int
	IsFavorite      bool
	CreatedAt       time.Time
}

// ReadingMinutes returns the estimated read-aloud time of the story.
func (s Story) ReadingMinutes() int {
	return EstimateReadingMinutes(s.WordCount)
}

// StoryFilter selects a page of a user's stories, newest first.
type StoryFilter struct {
	FavoritesOnly bool
	Limit         int
	Offset        int
}

// GenerationRequest is what the story service hands to the text generator.
type GenerationRequest struct {
	Prompt   string
	Provider Provider
}

// GenerationResult is the parsed output of the text generator.
type GenerationResult struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Provider Provider `json:"-"`
}
