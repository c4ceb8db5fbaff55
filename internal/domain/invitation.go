package domain

import "time"

// InvitationStatus представляет статус приглашения в команду
type InvitationStatus string

// Возможные статусы приглашения
const (
	InviteStatusPending  InvitationStatus = "pending"  // Приглашение ожидает ответа получателя
	InviteStatusAccepted InvitationStatus = "accepted" // Приглашение принято (терминальный статус)
	InviteStatusDeclined InvitationStatus = "declined" // Приглашение отклонено (терминальный статус)
)

// Invitation представляет направленное приглашение в команду.
// Получатель адресуется по email, а не по id: на момент отправки
// приглашения он может быть еще не зарегистрирован.
type Invitation struct {
	ID            string           `json:"id"`
	SenderID      string           `json:"sender_id"`
	ReceiverEmail string           `json:"receiver_email"`
	Status        InvitationStatus `json:"status"`
	CreatedAt     time.Time        `json:"created_at"`

	// Sender заполняется при выдаче входящих приглашений (для отображения отправителя)
	Sender *Profile `json:"sender,omitempty"`
}

// IsTerminal возвращает true если приглашение уже принято или отклонено
func (i *Invitation) IsTerminal() bool {
	return i.Status == InviteStatusAccepted || i.Status == InviteStatusDeclined
}

// TeamState представляет производное состояние команды пользователя:
// подтвержденные тиммейты и ожидающие приглашения в обе стороны
type TeamState struct {
	Teammates       []*Profile    `json:"teammates"`
	SentPending     []*Invitation `json:"sent_pending"`
	ReceivedPending []*Invitation `json:"received_pending"`
}
