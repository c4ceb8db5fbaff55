package repository

import (
	"context"

	"github.com/leadcoach/leadcoach-api/internal/domain"
)

// ProfileRepository определяет методы для работы с профилями пользователей
type ProfileRepository interface {
	// Create создает новый профиль
	Create(ctx context.Context, profile *domain.Profile) error

	// GetByID получает профиль по ID
	GetByID(ctx context.Context, profileID string) (*domain.Profile, error)

	// GetByEmail получает профиль по email (вторичный ключ связывания приглашений)
	GetByEmail(ctx context.Context, email string) (*domain.Profile, error)

	// UpdateInfo обновляет имя, фамилию и аватар профиля
	UpdateInfo(ctx context.Context, profileID, firstName, lastName, avatarURL string) error

	// UpdateScores записывает все четыре агрегированные оценки профиля
	UpdateScores(ctx context.Context, profileID string, scores domain.Scores) error
}

// InvitationRepository определяет методы для работы с приглашениями в команду
type InvitationRepository interface {
	// Create создает новое приглашение
	Create(ctx context.Context, invite *domain.Invitation) error

	// GetByID получает приглашение по ID
	GetByID(ctx context.Context, inviteID string) (*domain.Invitation, error)

	// GetAcceptedForUser возвращает принятые приглашения где пользователь
	// является отправителем (по id) или получателем (по email)
	GetAcceptedForUser(ctx context.Context, userID, email string) ([]*domain.Invitation, error)

	// GetPendingBySender возвращает ожидающие приглашения отправленные пользователем
	GetPendingBySender(ctx context.Context, userID string) ([]*domain.Invitation, error)

	// GetPendingByReceiverEmail возвращает ожидающие приглашения на email,
	// каждое вместе с профилем отправителя
	GetPendingByReceiverEmail(ctx context.Context, email string) ([]*domain.Invitation, error)

	// GetPairHistory возвращает все приглашения между парой в обе стороны
	GetPairHistory(ctx context.Context, senderID, senderEmail, receiverEmail string) ([]*domain.Invitation, error)

	// UpdateStatusIfPending переводит приглашение из pending в терминальный статус.
	// Возвращает false если приглашение уже не в статусе pending.
	UpdateStatusIfPending(ctx context.Context, inviteID string, status domain.InvitationStatus) (bool, error)
}

// FeedbackRepository определяет методы для работы с оцененными сообщениями
type FeedbackRepository interface {
	// Create сохраняет новое оцененное сообщение
	Create(ctx context.Context, msg *domain.ScoredMessage) error

	// ListByUser возвращает всю историю оцененных сообщений пользователя (новые первыми)
	ListByUser(ctx context.Context, userID string) ([]*domain.ScoredMessage, error)
}

// TeamMessageRepository определяет методы для работы с прямыми сообщениями
type TeamMessageRepository interface {
	// Create сохраняет новое сообщение
	Create(ctx context.Context, msg *domain.TeamMessage) error

	// GetConversation возвращает переписку между двумя пользователями в обе
	// стороны, отсортированную по времени создания
	GetConversation(ctx context.Context, userID, otherID string) ([]*domain.TeamMessage, error)

	// Delete удаляет сообщение если пользователь является его участником.
	// Возвращает domain.ErrMessageNotFound если сообщение не найдено или недоступно.
	Delete(ctx context.Context, messageID, participantID string) error
}
