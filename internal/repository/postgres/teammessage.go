package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/leadcoach/leadcoach-api/internal/domain"
)

// TeamMessageRepository реализует repository.TeamMessageRepository для PostgreSQL
type TeamMessageRepository struct {
	db *pgxpool.Pool
}

// NewTeamMessageRepository создает новый экземпляр TeamMessageRepository
func NewTeamMessageRepository(db *pgxpool.Pool) *TeamMessageRepository {
	return &TeamMessageRepository{db: db}
}

// Create сохраняет новое сообщение
func (r *TeamMessageRepository) Create(ctx context.Context, msg *domain.TeamMessage) error {
	query := `
		INSERT INTO team_messages (id, sender_id, receiver_id, message_text)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	err := r.db.QueryRow(ctx, query,
		msg.ID,
		msg.SenderID,
		msg.ReceiverID,
		msg.MessageText,
	).Scan(&msg.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return domain.ErrProfileNotFound
		}
		return err
	}

	return nil
}

// GetConversation возвращает переписку между двумя пользователями в обе стороны,
// каждое сообщение вместе с профилями отправителя и получателя
func (r *TeamMessageRepository) GetConversation(ctx context.Context, userID, otherID string) ([]*domain.TeamMessage, error) {
	query := `
		SELECT m.id, m.sender_id, m.receiver_id, m.message_text, m.created_at,
		       s.id, s.email, s.first_name, s.last_name, s.avatar_url,
		       rc.id, rc.email, rc.first_name, rc.last_name, rc.avatar_url
		FROM team_messages m
		JOIN profiles s ON s.id = m.sender_id
		JOIN profiles rc ON rc.id = m.receiver_id
		WHERE (m.sender_id = $1 AND m.receiver_id = $2)
		   OR (m.sender_id = $2 AND m.receiver_id = $1)
		ORDER BY m.created_at
	`

	rows, err := r.db.Query(ctx, query, userID, otherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*domain.TeamMessage
	for rows.Next() {
		var msg domain.TeamMessage
		var sender, receiver domain.Profile
		if err := rows.Scan(
			&msg.ID,
			&msg.SenderID,
			&msg.ReceiverID,
			&msg.MessageText,
			&msg.CreatedAt,
			&sender.ID,
			&sender.Email,
			&sender.FirstName,
			&sender.LastName,
			&sender.AvatarURL,
			&receiver.ID,
			&receiver.Email,
			&receiver.FirstName,
			&receiver.LastName,
			&receiver.AvatarURL,
		); err != nil {
			return nil, err
		}
		msg.SenderProfile = &sender
		msg.ReceiverProfile = &receiver
		messages = append(messages, &msg)
	}

	return messages, rows.Err()
}

// Delete удаляет сообщение если пользователь является его участником.
// Фильтр по участнику в самом запросе: чужое сообщение неотличимо от отсутствующего.
func (r *TeamMessageRepository) Delete(ctx context.Context, messageID, participantID string) error {
	query := `
		DELETE FROM team_messages
		WHERE id = $1 AND (sender_id = $2 OR receiver_id = $2)
	`

	result, err := r.db.Exec(ctx, query, messageID, participantID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrMessageNotFound
	}

	return nil
}
