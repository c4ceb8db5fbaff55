package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/leadcoach/leadcoach-api/internal/domain"
)

// InvitationRepository реализует repository.InvitationRepository для PostgreSQL
type InvitationRepository struct {
	db *pgxpool.Pool
}

// NewInvitationRepository создает новый экземпляр InvitationRepository
func NewInvitationRepository(db *pgxpool.Pool) *InvitationRepository {
	return &InvitationRepository{db: db}
}

// Create создает новое приглашение
func (r *InvitationRepository) Create(ctx context.Context, invite *domain.Invitation) error {
	query := `
		INSERT INTO team_invitations (id, sender_id, receiver_email, status)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	err := r.db.QueryRow(ctx, query,
		invite.ID,
		invite.SenderID,
		invite.ReceiverEmail,
		invite.Status,
	).Scan(&invite.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return domain.ErrProfileNotFound
		}
		return err
	}

	return nil
}

// GetByID получает приглашение по ID
func (r *InvitationRepository) GetByID(ctx context.Context, inviteID string) (*domain.Invitation, error) {
	query := `
		SELECT id, sender_id, receiver_email, status, created_at
		FROM team_invitations
		WHERE id = $1
	`

	var inv domain.Invitation
	err := r.db.QueryRow(ctx, query, inviteID).Scan(
		&inv.ID,
		&inv.SenderID,
		&inv.ReceiverEmail,
		&inv.Status,
		&inv.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInviteNotFound
		}
		return nil, err
	}

	return &inv, nil
}

// GetAcceptedForUser возвращает принятые приглашения где пользователь
// является отправителем (по id) или получателем (по email)
func (r *InvitationRepository) GetAcceptedForUser(ctx context.Context, userID, email string) ([]*domain.Invitation, error) {
	query := `
		SELECT id, sender_id, receiver_email, status, created_at
		FROM team_invitations
		WHERE status = 'accepted' AND (sender_id = $1 OR receiver_email = $2)
		ORDER BY created_at
	`

	return r.queryInvitations(ctx, query, userID, email)
}

// GetPendingBySender возвращает ожидающие приглашения отправленные пользователем
func (r *InvitationRepository) GetPendingBySender(ctx context.Context, userID string) ([]*domain.Invitation, error) {
	query := `
		SELECT id, sender_id, receiver_email, status, created_at
		FROM team_invitations
		WHERE sender_id = $1 AND status = 'pending'
		ORDER BY created_at
	`

	return r.queryInvitations(ctx, query, userID)
}

// GetPendingByReceiverEmail возвращает ожидающие приглашения на email
// вместе с профилем отправителя для отображения
func (r *InvitationRepository) GetPendingByReceiverEmail(ctx context.Context, email string) ([]*domain.Invitation, error) {
	query := `
		SELECT i.id, i.sender_id, i.receiver_email, i.status, i.created_at,
		       p.id, p.email, p.first_name, p.last_name, p.avatar_url
		FROM team_invitations i
		JOIN profiles p ON p.id = i.sender_id
		WHERE i.receiver_email = $1 AND i.status = 'pending'
		ORDER BY i.created_at
	`

	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invites []*domain.Invitation
	for rows.Next() {
		var inv domain.Invitation
		var sender domain.Profile
		if err := rows.Scan(
			&inv.ID,
			&inv.SenderID,
			&inv.ReceiverEmail,
			&inv.Status,
			&inv.CreatedAt,
			&sender.ID,
			&sender.Email,
			&sender.FirstName,
			&sender.LastName,
			&sender.AvatarURL,
		); err != nil {
			return nil, err
		}
		inv.Sender = &sender
		invites = append(invites, &inv)
	}

	return invites, rows.Err()
}

// GetPairHistory возвращает все приглашения между парой в обе стороны.
// Обратное направление резолвится через profiles: приглашение хранит
// только email получателя.
func (r *InvitationRepository) GetPairHistory(ctx context.Context, senderID, senderEmail, receiverEmail string) ([]*domain.Invitation, error) {
	query := `
		SELECT i.id, i.sender_id, i.receiver_email, i.status, i.created_at
		FROM team_invitations i
		WHERE (i.sender_id = $1 AND i.receiver_email = $3)
		   OR (i.receiver_email = $2 AND i.sender_id IN (SELECT id FROM profiles WHERE email = $3))
		ORDER BY i.created_at
	`

	return r.queryInvitations(ctx, query, senderID, senderEmail, receiverEmail)
}

// UpdateStatusIfPending переводит приглашение из pending в терминальный статус
func (r *InvitationRepository) UpdateStatusIfPending(ctx context.Context, inviteID string, status domain.InvitationStatus) (bool, error) {
	query := `
		UPDATE team_invitations
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = 'pending'
	`

	result, err := r.db.Exec(ctx, query, status, inviteID)
	if err != nil {
		return false, err
	}

	return result.RowsAffected() > 0, nil
}

func (r *InvitationRepository) queryInvitations(ctx context.Context, query string, args ...any) ([]*domain.Invitation, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invites []*domain.Invitation
	for rows.Next() {
		var inv domain.Invitation
		if err := rows.Scan(&inv.ID, &inv.SenderID, &inv.ReceiverEmail, &inv.Status, &inv.CreatedAt); err != nil {
			return nil, err
		}
		invites = append(invites, &inv)
	}

	return invites, rows.Err()
}
