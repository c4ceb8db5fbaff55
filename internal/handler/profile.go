package handler

import (
	"encoding/json"
	"net/http"

	"github.com/leadcoach/leadcoach-api/internal/domain"
	"github.com/leadcoach/leadcoach-api/internal/middleware"
	"github.com/leadcoach/leadcoach-api/internal/service"
)

// ProfileHandler обрабатывает эндпоинты профиля
type ProfileHandler struct {
	profileService *service.ProfileService
}

// NewProfileHandler создает новый ProfileHandler
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// ProfileResponse представляет ответ с профилем
type ProfileResponse struct {
	Profile *domain.Profile `json:"profile"`
}

// GetProfile обрабатывает GET /profile
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())
	profile, err := h.profileService.GetByID(r.Context(), userID)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, ProfileResponse{Profile: profile})
}

// UpdateProfileRequest представляет тело запроса на обновление профиля
type UpdateProfileRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	AvatarURL string `json:"avatar_url"`
}

// UpdateProfile обрабатывает PUT /profile
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	userID := middleware.GetUserIDFromContext(r.Context())
	profile, err := h.profileService.UpdateInfo(r.Context(), userID, req.FirstName, req.LastName, req.AvatarURL)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, ProfileResponse{Profile: profile})
}
