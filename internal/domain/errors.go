package domain

import "errors"

// Доменные ошибки сервиса
var (
	// ErrEmptyEmail возвращается при попытке отправить приглашение на пустой email
	ErrEmptyEmail = errors.New("receiver email is empty")

	// ErrSelfInvite возвращается при попытке пригласить самого себя
	ErrSelfInvite = errors.New("cannot invite yourself")

	// ErrAlreadyTeammate возвращается если принятая связь между парой уже существует
	ErrAlreadyTeammate = errors.New("user is already a teammate")

	// ErrInvitePending возвращается если между парой уже есть ожидающее приглашение
	ErrInvitePending = errors.New("invitation is already pending")

	// ErrInvalidDecision возвращается если решение по приглашению не accepted и не declined
	ErrInvalidDecision = errors.New("decision must be accepted or declined")

	// ErrEmailTaken возвращается при регистрации на уже занятый email
	ErrEmailTaken = errors.New("email is already registered")

	// ErrEmptyMessage возвращается при попытке отправить пустое сообщение
	ErrEmptyMessage = errors.New("message text is empty")

	// ErrNotTeammate возвращается при попытке написать пользователю вне команды
	ErrNotTeammate = errors.New("receiver is not a teammate")

	// ErrProfileNotFound возвращается когда профиль не найден
	ErrProfileNotFound = errors.New("profile not found")

	// ErrInviteNotFound возвращается когда приглашение не найдено или адресовано не вызывающему
	ErrInviteNotFound = errors.New("invitation not found")

	// ErrMessageNotFound возвращается когда сообщение не найдено или недоступно вызывающему
	ErrMessageNotFound = errors.New("message not found")

	// ErrInvalidCredentials возвращается при неудачной проверке email/пароля
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUnauthorized возвращается при неудачной аутентификации
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidToken возвращается когда JWT токен невалиден
	ErrInvalidToken = errors.New("invalid token")
)

// ErrorCode представляет коды ошибок API
type ErrorCode string

// Коды ошибок API
const (
	CodeEmptyEmail      ErrorCode = "EMPTY_EMAIL"      // Пустой email получателя
	CodeSelfInvite      ErrorCode = "SELF_INVITE"      // Попытка пригласить себя
	CodeAlreadyTeammate ErrorCode = "ALREADY_TEAMMATE" // Связь уже подтверждена
	CodeInvitePending   ErrorCode = "INVITE_PENDING"   // Приглашение уже ожидает ответа
	CodeInvalidDecision ErrorCode = "INVALID_DECISION" // Недопустимое решение по приглашению
	CodeEmailTaken      ErrorCode = "EMAIL_TAKEN"      // Email уже занят
	CodeEmptyMessage    ErrorCode = "EMPTY_MESSAGE"    // Пустой текст сообщения
	CodeNotTeammate     ErrorCode = "NOT_TEAMMATE"     // Получатель не тиммейт
	CodeNotFound        ErrorCode = "NOT_FOUND"        // Ресурс не найден
)

// MapErrorToCode преобразует доменные ошибки в коды ошибок API
func MapErrorToCode(err error) ErrorCode {
	switch {
	case errors.Is(err, ErrEmptyEmail):
		return CodeEmptyEmail
	case errors.Is(err, ErrSelfInvite):
		return CodeSelfInvite
	case errors.Is(err, ErrAlreadyTeammate):
		return CodeAlreadyTeammate
	case errors.Is(err, ErrInvitePending):
		return CodeInvitePending
	case errors.Is(err, ErrInvalidDecision):
		return CodeInvalidDecision
	case errors.Is(err, ErrEmailTaken):
		return CodeEmailTaken
	case errors.Is(err, ErrEmptyMessage):
		return CodeEmptyMessage
	case errors.Is(err, ErrNotTeammate):
		return CodeNotTeammate
	default:
		return CodeNotFound
	}
}
