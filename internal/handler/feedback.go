package handler

import (
	"encoding/json"
	"net/http"

	"github.com/leadcoach/leadcoach-api/internal/domain"
	"github.com/leadcoach/leadcoach-api/internal/middleware"
	"github.com/leadcoach/leadcoach-api/internal/service"
)

// FeedbackHandler обрабатывает эндпоинты оцененных сообщений
type FeedbackHandler struct {
	feedbackService *service.FeedbackService
}

// NewFeedbackHandler создает новый FeedbackHandler
func NewFeedbackHandler(feedbackService *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackService: feedbackService,
	}
}

// SendMessageRequest представляет тело запроса на анализ сообщения
type SendMessageRequest struct {
	MessageText string `json:"message_text"`
}

// SendMessageResponse представляет ответ с оцененным сообщением
type SendMessageResponse struct {
	Message *domain.ScoredMessage `json:"message"`
}

// SendMessage обрабатывает POST /feedback/messages
func (h *FeedbackHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	userID := middleware.GetUserIDFromContext(r.Context())
	msg, err := h.feedbackService.RecordScoredMessage(r.Context(), userID, req.MessageText)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, SendMessageResponse{Message: msg})
}

// HistoryResponse представляет ответ с историей оцененных сообщений
type HistoryResponse struct {
	Messages []*domain.ScoredMessage `json:"messages"`
}

// GetHistory обрабатывает GET /feedback/messages
func (h *FeedbackHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())
	messages, err := h.feedbackService.ListScoredMessages(r.Context(), userID)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	if messages == nil {
		messages = []*domain.ScoredMessage{}
	}

	RespondWithJSON(w, r, http.StatusOK, HistoryResponse{Messages: messages})
}
