package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/leadcoach/leadcoach-api/internal/domain"
)

// FeedbackRepository реализует repository.FeedbackRepository для PostgreSQL
type FeedbackRepository struct {
	db *pgxpool.Pool
}

// NewFeedbackRepository создает новый экземпляр FeedbackRepository
func NewFeedbackRepository(db *pgxpool.Pool) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// Create сохраняет новое оцененное сообщение
func (r *FeedbackRepository) Create(ctx context.Context, msg *domain.ScoredMessage) error {
	query := `
		INSERT INTO message_feedback (id, user_id, message_text,
			tone_score, empathy_score, clarity_score, confidence_score)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	err := r.db.QueryRow(ctx, query,
		msg.ID,
		msg.UserID,
		msg.MessageText,
		msg.Scores.Tone,
		msg.Scores.Empathy,
		msg.Scores.Clarity,
		msg.Scores.Confidence,
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

// ListByUser возвращает всю историю оцененных сообщений пользователя (новые первыми)
func (r *FeedbackRepository) ListByUser(ctx context.Context, userID string) ([]*domain.ScoredMessage, error) {
	query := `
		SELECT id, user_id, message_text,
		       tone_score, empathy_score, clarity_score, confidence_score, created_at
		FROM message_feedback
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*domain.ScoredMessage
	for rows.Next() {
		var msg domain.ScoredMessage
		if err := rows.Scan(
			&msg.ID,
			&msg.UserID,
			&msg.MessageText,
			&msg.Scores.Tone,
			&msg.Scores.Empathy,
			&msg.Scores.Clarity,
			&msg.Scores.Confidence,
			&msg.CreatedAt,
		); err != nil {
			return nil, err
		}
		messages = append(messages, &msg)
	}

	return messages, rows.Err()
}
