package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"github.com/leadcoach/leadcoach-api/internal/domain"
)

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail содержит код и описание ошибки
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondWithError отправляет ответ с ошибкой
func RespondWithError(w http.ResponseWriter, r *http.Request, statusCode int, code, message string) {
	render.Status(r, statusCode)
	render.JSON(w, r, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

// HandleError преобразует доменные ошибки в HTTP ответы
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrEmptyEmail),
		errors.Is(err, domain.ErrSelfInvite),
		errors.Is(err, domain.ErrInvalidDecision),
		errors.Is(err, domain.ErrEmptyMessage):
		// Ошибки валидации — пойманы до обращения к хранилищу
		RespondWithError(w, r, http.StatusBadRequest, string(domain.MapErrorToCode(err)), err.Error())
	case errors.Is(err, domain.ErrAlreadyTeammate),
		errors.Is(err, domain.ErrInvitePending),
		errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrNotTeammate):
		// Конфликты бизнес-правил — нефатальны, операция прервана без записи
		RespondWithError(w, r, http.StatusConflict, string(domain.MapErrorToCode(err)), err.Error())
	case errors.Is(err, domain.ErrProfileNotFound),
		errors.Is(err, domain.ErrInviteNotFound),
		errors.Is(err, domain.ErrMessageNotFound):
		RespondWithError(w, r, http.StatusNotFound, string(domain.CodeNotFound), "resource not found")
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrInvalidToken):
		RespondWithError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized")
	default:
		RespondWithError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}
