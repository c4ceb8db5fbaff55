package handler

import (
	"encoding/json"
	"net/http"

	"github.com/leadcoach/leadcoach-api/internal/domain"
	"github.com/leadcoach/leadcoach-api/internal/middleware"
	"github.com/leadcoach/leadcoach-api/internal/service"
)

// TeamHandler обрабатывает эндпоинты команды и приглашений
type TeamHandler struct {
	teamService *service.TeamService
}

// NewTeamHandler создает новый TeamHandler
func NewTeamHandler(teamService *service.TeamService) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// currentUser собирает идентичность вызывающего из JWT claims в контексте
func currentUser(r *http.Request) *domain.Profile {
	return &domain.Profile{
		ID:    middleware.GetUserIDFromContext(r.Context()),
		Email: middleware.GetUserEmailFromContext(r.Context()),
	}
}

// GetTeam обрабатывает GET /team
func (h *TeamHandler) GetTeam(w http.ResponseWriter, r *http.Request) {
	state, err := h.teamService.ResolveTeamState(r.Context(), currentUser(r))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, state)
}

// InviteRequest представляет тело запроса на приглашение тиммейта
type InviteRequest struct {
	ReceiverEmail string `json:"receiver_email"`
}

// InviteResponse представляет ответ на отправку приглашения
type InviteResponse struct {
	Invitation *domain.Invitation `json:"invitation"`
}

// Invite обрабатывает POST /team/invite
func (h *TeamHandler) Invite(w http.ResponseWriter, r *http.Request) {
	var req InviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	invite, err := h.teamService.SendInvite(r.Context(), currentUser(r), req.ReceiverEmail)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, InviteResponse{Invitation: invite})
}

// RespondRequest представляет тело запроса с решением по приглашению
type RespondRequest struct {
	InvitationID string `json:"invitation_id"`
	Decision     string `json:"decision"`
}

// Respond обрабатывает POST /team/respond
func (h *TeamHandler) Respond(w http.ResponseWriter, r *http.Request) {
	var req RespondRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	if req.InvitationID == "" {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "invitation_id is required")
		return
	}

	invite, err := h.teamService.RespondToInvite(r.Context(), currentUser(r), req.InvitationID, domain.InvitationStatus(req.Decision))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, InviteResponse{Invitation: invite})
}
