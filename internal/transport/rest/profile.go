package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/evernest-backend/internal/domain"
	"github.com/heartmarshall/evernest-backend/internal/service/profile"
)

type profileService interface {
	GetProfile(ctx context.Context) (*domain.UserProfile, error)
	UpdateProfile(ctx context.Context, input profile.UpdateProfileInput) (*domain.UserProfile, error)
	GetFamilyHistory(ctx context.Context) ([]domain.FamilyHistoryEntry, error)
	UpdateFamilyHistory(ctx context.Context, input profile.UpdateFamilyHistoryInput) ([]domain.FamilyHistoryEntry, error)
}

// ProfileHandler serves /api/profile.
type ProfileHandler struct {
	svc          profileService
	log          *slog.Logger
	maxBodyBytes int64
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(svc profileService, logger *slog.Logger, maxBodyBytes int64) *ProfileHandler {
	return &ProfileHandler{svc: svc, log: logger.With("handler", "profile"), maxBodyBytes: maxBodyBytes}
}

type updateProfileRequest struct {
	ParentOneName   *string `json:"parentOneName"`
	ParentTwoName   *string `json:"parentTwoName"`
	BabyNickname    *string `json:"babyNickname"`
	DueDate         *string `json:"dueDate"`
	BirthDate       *string `json:"birthDate"`
	FaithPreference *string `json:"faithPreference"`
	DefaultTheme    *string `json:"defaultTheme"`
	DefaultLength   *string `json:"defaultLength"`
	ChildStatus     *string `json:"childStatus"`
	Provider        *string `json:"provider"`
	DarkMode        *bool   `json:"darkMode"`
	FontSize        *string `json:"fontSize"`
}

func (req updateProfileRequest) toInput() profile.UpdateProfileInput {
	return profile.UpdateProfileInput{
		ParentOneName:   req.ParentOneName,
		ParentTwoName:   req.ParentTwoName,
		BabyNickname:    req.BabyNickname,
		DueDate:         req.DueDate,
		BirthDate:       req.BirthDate,
		FaithPreference: castPtr[domain.FaithPreference](req.FaithPreference),
		DefaultTheme:    castPtr[domain.StoryTheme](req.DefaultTheme),
		DefaultLength:   castPtr[domain.StoryLength](req.DefaultLength),
		ChildStatus:     castPtr[domain.ChildStatus](req.ChildStatus),
		Provider:        castPtr[domain.Provider](req.Provider),
		DarkMode:        req.DarkMode,
		FontSize:        castPtr[domain.FontSize](req.FontSize),
	}
}

type profileResponse struct {
	ParentOneName   string  `json:"parentOneName"`
	ParentTwoName   *string `json:"parentTwoName"`
	BabyNickname    *string `json:"babyNickname"`
	DueDate         *string `json:"dueDate"`
	BirthDate       *string `json:"birthDate"`
	FaithPreference string  `json:"faithPreference"`
	DefaultTheme    *string `json:"defaultTheme"`
	DefaultLength   *string `json:"defaultLength"`
	ChildStatus     string  `json:"childStatus"`
	Provider        *string `json:"provider"`
	DarkMode        bool    `json:"darkMode"`
	FontSize        string  `json:"fontSize"`
}

type familyHistoryEntryDTO struct {
	ID        string     `json:"id"`
	Relation  string     `json:"relation"`
	Condition string     `json:"condition"`
	Notes     *string    `json:"notes,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

type familyHistoryBody struct {
	Entries []familyHistoryEntryDTO `json:"entries"`
}

// Get handles GET /api/profile.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetProfile(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(p))
}

// Update handles PUT /api/profile.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := decodeJSON(w, r, h.maxBodyBytes, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.svc.UpdateProfile(r.Context(), req.toInput())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(p))
}

// GetFamilyHistory handles GET /api/profile/family-history.
func (h *ProfileHandler) GetFamilyHistory(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.GetFamilyHistory(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toFamilyHistoryBody(entries))
}

// UpdateFamilyHistory handles PUT /api/profile/family-history.
func (h *ProfileHandler) UpdateFamilyHistory(w http.ResponseWriter, r *http.Request) {
	var req familyHistoryBody
	if err := decodeJSON(w, r, h.maxBodyBytes, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	input := profile.UpdateFamilyHistoryInput{Entries: make([]profile.FamilyHistoryEntryInput, 0, len(req.Entries))}
	for _, e := range req.Entries {
		input.Entries = append(input.Entries, profile.FamilyHistoryEntryInput{
			ID:        e.ID,
			Relation:  e.Relation,
			Condition: e.Condition,
			Notes:     e.Notes,
		})
	}

	entries, err := h.svc.UpdateFamilyHistory(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toFamilyHistoryBody(entries))
}

func toProfileResponse(p *domain.UserProfile) profileResponse {
	return profileResponse{
		ParentOneName:   p.ParentOneName,
		ParentTwoName:   p.ParentTwoName,
		BabyNickname:    p.BabyNickname,
		DueDate:         formatDate(p.DueDate),
		BirthDate:       formatDate(p.BirthDate),
		FaithPreference: string(p.FaithPreference),
		DefaultTheme:    stringPtr(p.DefaultTheme),
		DefaultLength:   stringPtr(p.DefaultLength),
		ChildStatus:     string(p.ChildStatus),
		Provider:        stringPtr(p.Provider),
		DarkMode:        p.DarkMode,
		FontSize:        string(p.FontSize),
	}
}

func toFamilyHistoryBody(entries []domain.FamilyHistoryEntry) familyHistoryBody {
	out := familyHistoryBody{Entries: make([]familyHistoryEntryDTO, 0, len(entries))}
	for _, e := range entries {
		created := e.CreatedAt
		out.Entries = append(out.Entries, familyHistoryEntryDTO{
			ID:        e.ID,
			Relation:  e.Relation,
			Condition: e.Condition,
			Notes:     e.Notes,
			CreatedAt: &created,
		})
	}
	return out
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(profile.DateLayout)
	return &s
}

func castPtr[T ~string](s *string) *T {
	if s == nil {
		return nil
	}
	v := T(*s)
	return &v
}

func stringPtr[T ~string](v *T) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}
