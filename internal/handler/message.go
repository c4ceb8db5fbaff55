package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/leadcoach/leadcoach-api/internal/domain"
	"github.com/leadcoach/leadcoach-api/internal/service"
)

// MessageHandler обрабатывает эндпоинты прямых сообщений
type MessageHandler struct {
	messageService *service.MessageService
}

// NewMessageHandler создает новый MessageHandler
func NewMessageHandler(messageService *service.MessageService) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
	}
}

// SendTeamMessageRequest представляет тело запроса на отправку сообщения тиммейту
type SendTeamMessageRequest struct {
	ReceiverID  string `json:"receiver_id"`
	MessageText string `json:"message_text"`
}

// TeamMessageResponse представляет ответ с отправленным сообщением
type TeamMessageResponse struct {
	Message *domain.TeamMessage `json:"message"`
}

// Send обрабатывает POST /messages
func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req SendTeamMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	if req.ReceiverID == "" {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "receiver_id is required")
		return
	}

	msg, err := h.messageService.Send(r.Context(), currentUser(r), req.ReceiverID, req.MessageText)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, TeamMessageResponse{Message: msg})
}

// ConversationResponse представляет ответ с перепиской
type ConversationResponse struct {
	Messages []*domain.TeamMessage `json:"messages"`
}

// GetConversation обрабатывает GET /messages?teammate_id=...
func (h *MessageHandler) GetConversation(w http.ResponseWriter, r *http.Request) {
	teammateID := r.URL.Query().Get("teammate_id")
	if teammateID == "" {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "teammate_id query parameter is required")
		return
	}

	messages, err := h.messageService.Conversation(r.Context(), currentUser(r), teammateID)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	if messages == nil {
		messages = []*domain.TeamMessage{}
	}

	RespondWithJSON(w, r, http.StatusOK, ConversationResponse{Messages: messages})
}

// Delete обрабатывает DELETE /messages/{id}
func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	messageID := chi.URLParam(r, "id")
	if messageID == "" {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "message id is required")
		return
	}

	if err := h.messageService.Delete(r.Context(), currentUser(r), messageID); err != nil {
		HandleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
