package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/evernest-backend/internal/domain"
	"github.com/heartmarshall/evernest-backend/internal/service/story"
)

type storyService interface {
	CreateStory(ctx context.Context, input story.CreateStoryInput) (*story.CreateStoryResult, error)
	CheckForDuplicate(ctx context.Context, input story.CheckDuplicateInput) (*story.DuplicateCheck, error)
	ListStories(ctx context.Context, input story.ListStoriesInput) (*story.ListStoriesResult, error)
	GetStory(ctx context.Context, storyID uuid.UUID) (*domain.Story, error)
	ToggleFavorite(ctx context.Context, storyID uuid.UUID) (*domain.Story, error)
	DeleteStory(ctx context.Context, storyID uuid.UUID) error
}

// StoryHandler serves /api/stories.
type StoryHandler struct {
	svc          storyService
	log          *slog.Logger
	maxBodyBytes int64
}

// NewStoryHandler creates a StoryHandler.
func NewStoryHandler(svc storyService, logger *slog.Logger, maxBodyBytes int64) *StoryHandler {
	return &StoryHandler{svc: svc, log: logger.With("handler", "story"), maxBodyBytes: maxBodyBytes}
}

type storyConfigRequest struct {
	Theme           string `json:"theme"`
	Length          string `json:"length"`
	FaithPreference string `json:"faithPreference"`
	ParentOneName   string `json:"parentOneName"`
	ParentTwoName   string `json:"parentTwoName"`
	BabyNickname    string `json:"babyNickname"`
	DueDate         string `json:"dueDate"`
	ChildStatus     string `json:"childStatus"`
	AgeGroup        string `json:"ageGroup"`
	Provider        string `json:"provider"`
}

func (req storyConfigRequest) toDomain() domain.StoryGenerationConfig {
	return domain.StoryGenerationConfig{
		Theme:           domain.StoryTheme(req.Theme),
		Length:          domain.StoryLength(req.Length),
		FaithPreference: domain.FaithPreference(req.FaithPreference),
		ParentOneName:   req.ParentOneName,
		ParentTwoName:   req.ParentTwoName,
		BabyNickname:    req.BabyNickname,
		DueDate:         req.DueDate,
		ChildStatus:     domain.ChildStatus(req.ChildStatus),
		AgeGroup:        domain.AgeGroup(req.AgeGroup),
		Provider:        domain.Provider(req.Provider),
	}
}

type storyResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Content         string    `json:"content"`
	Theme           string    `json:"theme"`
	ThemeLabel      string    `json:"themeLabel"`
	Length          string    `json:"length"`
	FaithPreference string    `json:"faithPreference"`
	ParentOneName   string    `json:"parentOneName"`
	ParentTwoName   *string   `json:"parentTwoName"`
	BabyNickname    *string   `json:"babyNickname"`
	DueDate         *string   `json:"dueDate"`
	ChildStatus     string    `json:"childStatus"`
	AgeGroup        *string   `json:"ageGroup"`
	Provider        string    `json:"provider"`
	WordCount       int       `json:"wordCount"`
	ReadingMinutes  int       `json:"readingMinutes"`
	IsFavorite      bool      `json:"isFavorite"`
	CreatedAt       time.Time `json:"createdAt"`
}

type createStoryResponse struct {
	Story           storyResponse `json:"story"`
	IsDuplicate     bool          `json:"isDuplicate"`
	ExistingStoryID *string       `json:"existingStoryId,omitempty"`
}

type duplicateCheckResponse struct {
	IsDuplicate     bool    `json:"isDuplicate"`
	ExistingStoryID *string `json:"existingStoryId,omitempty"`
	ConfigHash      string  `json:"configHash"`
}

type listStoriesResponse struct {
	Stories  []storyResponse `json:"stories"`
	Total    int             `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"pageSize"`
	HasMore  bool            `json:"hasMore"`
}

// Create handles POST /api/stories. A reused duplicate answers 200, a new
// story 201.
func (h *StoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req storyConfigRequest
	if err := decodeJSON(w, r, h.maxBodyBytes, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.svc.CreateStory(r.Context(), story.CreateStoryInput{Config: req.toDomain()})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	status := http.StatusCreated
	if result.IsDuplicate {
		status = http.StatusOK
	}
	writeJSON(w, status, createStoryResponse{
		Story:           toStoryResponse(result.Story),
		IsDuplicate:     result.IsDuplicate,
		ExistingStoryID: uuidString(result.ExistingStoryID),
	})
}

// CheckDuplicate handles POST /api/stories/check-duplicate.
func (h *StoryHandler) CheckDuplicate(w http.ResponseWriter, r *http.Request) {
	var req storyConfigRequest
	if err := decodeJSON(w, r, h.maxBodyBytes, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	check, err := h.svc.CheckForDuplicate(r.Context(), story.CheckDuplicateInput{Config: req.toDomain()})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, duplicateCheckResponse{
		IsDuplicate:     check.IsDuplicate,
		ExistingStoryID: uuidString(check.ExistingStoryID),
		ConfigHash:      check.ConfigHash,
	})
}

// List handles GET /api/stories?page=&pageSize=&favorites=.
func (h *StoryHandler) List(w http.ResponseWriter, r *http.Request) {
	input, err := parseListQuery(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.ListStories(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	stories := make([]storyResponse, 0, len(result.Stories))
	for i := range result.Stories {
		stories = append(stories, toStoryResponse(&result.Stories[i]))
	}
	writeJSON(w, http.StatusOK, listStoriesResponse{
		Stories:  stories,
		Total:    result.Total,
		Page:     result.Page,
		PageSize: result.PageSize,
		HasMore:  result.HasMore(),
	})
}

// Get handles GET /api/stories/{id}.
func (h *StoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := storyIDFromPath(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	s, err := h.svc.GetStory(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toStoryResponse(s))
}

// ToggleFavorite handles PATCH /api/stories/{id}.
func (h *StoryHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id, err := storyIDFromPath(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	s, err := h.svc.ToggleFavorite(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toStoryResponse(s))
}

// Delete handles DELETE /api/stories/{id}.
func (h *StoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := storyIDFromPath(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.DeleteStory(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func storyIDFromPath(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, domain.NewValidationError("id", "must be a valid UUID")
	}
	return id, nil
}

func parseListQuery(r *http.Request) (story.ListStoriesInput, error) {
	q := r.URL.Query()
	var (
		input story.ListStoriesInput
		errs  []domain.FieldError
	)

	if v := q.Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "page", Message: "must be an integer"})
		}
		input.Page = n
	}
	if v := q.Get("pageSize"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "page_size", Message: "must be an integer"})
		}
		input.PageSize = n
	}
	if v := q.Get("favorites"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "favorites", Message: "must be true or false"})
		}
		input.FavoritesOnly = b
	}

	if len(errs) > 0 {
		return input, domain.NewValidationErrors(errs)
	}
	return input, nil
}

func toStoryResponse(s *domain.Story) storyResponse {
	resp := storyResponse{
		ID:              s.ID.String(),
		Title:           s.Title,
		Content:         s.Content,
		Theme:           string(s.Theme),
		ThemeLabel:      s.Theme.Label(),
		Length:          string(s.Length),
		FaithPreference: string(s.FaithPreference),
		ParentOneName:   s.ParentOneName,
		ParentTwoName:   s.ParentTwoName,
		BabyNickname:    s.BabyNickname,
		DueDate:         s.DueDate,
		ChildStatus:     string(s.ChildStatus),
		Provider:        string(s.Provider),
		WordCount:       s.WordCount,
		ReadingMinutes:  s.ReadingMinutes(),
		IsFavorite:      s.IsFavorite,
		CreatedAt:       s.CreatedAt,
	}
	if s.AgeGroup != nil {
		g := string(*s.AgeGroup)
		resp.AgeGroup = &g
	}
	return resp
}

func uuidString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
