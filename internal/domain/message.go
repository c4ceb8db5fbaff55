package domain

import "time"

// ScoredMessage представляет сообщение пользователя вместе с оценками анализатора.
// Запись неизменяема после создания.
type ScoredMessage struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	MessageText string    `json:"message_text"`
	Scores      Scores    `json:"scores"`
	CreatedAt   time.Time `json:"created_at"`
}

// TeamMessage представляет прямое сообщение между двумя зарегистрированными профилями
type TeamMessage struct {
	ID          string    `json:"id"`
	SenderID    string    `json:"sender_id"`
	ReceiverID  string    `json:"receiver_id"`
	MessageText string    `json:"message_text"`
	CreatedAt   time.Time `json:"created_at"`

	// Профили участников заполняются при выдаче переписки
	SenderProfile   *Profile `json:"sender_profile,omitempty"`
	ReceiverProfile *Profile `json:"receiver_profile,omitempty"`
}

// IsParticipant проверяет, является ли пользователь отправителем или получателем сообщения
func (m *TeamMessage) IsParticipant(userID string) bool {
	return m.SenderID == userID || m.ReceiverID == userID
}
