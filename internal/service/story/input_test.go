package story

import (
	"errors"
	"strings"
	"testing"

	"github.com/heartmarshall/evernest-backend/internal/domain"
)

func TestCreateStoryInput_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		mutate     func(c *domain.StoryGenerationConfig)
		wantFields []string
	}{
		{name: "valid", mutate: func(c *domain.StoryGenerationConfig) {}},
		{name: "minimal", mutate: func(c *domain.StoryGenerationConfig) {
			c.ParentTwoName, c.BabyNickname, c.DueDate = "", "", ""
		}},
		{name: "apostrophe and hyphen", mutate: func(c *domain.StoryGenerationConfig) {
			c.ParentOneName = "Mary-Jane O'Neil"
		}},
		{name: "missing parent one", mutate: func(c *domain.StoryGenerationConfig) {
			c.ParentOneName = ""
		}, wantFields: []string{"parent_one_name"}},
		{name: "blank parent one", mutate: func(c *domain.StoryGenerationConfig) {
			c.ParentOneName = "   "
		}, wantFields: []string{"parent_one_name"}},
		{name: "name too long", mutate: func(c *domain.StoryGenerationConfig) {
			c.ParentTwoName = strings.Repeat("a", 51)
		}, wantFields: []string{"parent_two_name"}},
		{name: "name at limit", mutate: func(c *domain.StoryGenerationConfig) {
			c.ParentTwoName = strings.Repeat("a", 50)
		}},
		{name: "markup in nickname", mutate: func(c *domain.StoryGenerationConfig) {
			c.BabyNickname = "<b>Bean</b>"
		}, wantFields: []string{"baby_nickname"}},
		{name: "due date too long", mutate: func(c *domain.StoryGenerationConfig) {
			c.DueDate = strings.Repeat("1", 21)
		}, wantFields: []string{"due_date"}},
		{name: "bad enums", mutate: func(c *domain.StoryGenerationConfig) {
			c.Theme = "dragons"
			c.Length = "epic"
			c.FaithPreference = "other"
			c.ChildStatus = "teen"
			c.AgeGroup = "adult"
			c.Provider = "gemini"
		}, wantFields: []string{"theme", "length", "faith_preference", "child_status", "age_group", "provider"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(&cfg)
			input := CreateStoryInput{Config: cfg}

			err := input.Validate()
			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if len(ve.Errors) != len(tt.wantFields) {
				t.Fatalf("got %d errors, want %d: %v", len(ve.Errors), len(tt.wantFields), ve.Errors)
			}
			for i, f := range tt.wantFields {
				if ve.Errors[i].Field != f {
					t.Errorf("error[%d].Field = %q, want %q", i, ve.Errors[i].Field, f)
				}
			}
		})
	}
}

func TestListStoriesInput_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   ListStoriesInput
		wantErr bool
	}{
		{name: "zero values", input: ListStoriesInput{}},
		{name: "max page size", input: ListStoriesInput{Page: 2, PageSize: 100}},
		{name: "negative page", input: ListStoriesInput{Page: -1}, wantErr: true},
		{name: "page size over max", input: ListStoriesInput{PageSize: 101}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.input.Validate(100)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
