package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/leadcoach/leadcoach-api/internal/domain"
)

// Dashboard represents the per-user overview numbers
type Dashboard struct {
	Scores           domain.Scores `json:"scores"`
	MessagesAnalyzed int           `json:"messages_analyzed"`
	Teammates        int           `json:"teammates"`
	PendingSent      int           `json:"pending_sent"`
	PendingReceived  int           `json:"pending_received"`
}

// DashboardService handles overview queries
type DashboardService struct {
	db *pgxpool.Pool
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(db *pgxpool.Pool) *DashboardService {
	return &DashboardService{db: db}
}

// GetDashboard returns the user's aggregated scores together with message
// and team counters
func (s *DashboardService) GetDashboard(ctx context.Context, userID, email string) (*Dashboard, error) {
	dashboard := &Dashboard{}

	scoresQuery := `
		SELECT tone_score, empathy_score, clarity_score, confidence_score
		FROM profiles
		WHERE id = $1
	`

	err := s.db.QueryRow(ctx, scoresQuery, userID).Scan(
		&dashboard.Scores.Tone,
		&dashboard.Scores.Empathy,
		&dashboard.Scores.Clarity,
		&dashboard.Scores.Confidence,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}

	feedbackQuery := `SELECT COUNT(*) FROM message_feedback WHERE user_id = $1`
	if err := s.db.QueryRow(ctx, feedbackQuery, userID).Scan(&dashboard.MessagesAnalyzed); err != nil {
		return nil, err
	}

	// Teammates are accepted edges in either direction, deduplicated by the
	// other party's profile id; unregistered receivers drop out as NULLs
	teammatesQuery := `
		SELECT COUNT(DISTINCT CASE WHEN i.sender_id = $1 THEN p.id ELSE i.sender_id END)
		FROM team_invitations i
		LEFT JOIN profiles p ON p.email = i.receiver_email
		WHERE i.status = 'accepted' AND (i.sender_id = $1 OR i.receiver_email = $2)
	`
	if err := s.db.QueryRow(ctx, teammatesQuery, userID, email).Scan(&dashboard.Teammates); err != nil {
		return nil, err
	}

	pendingQuery := `
		SELECT
			COUNT(*) FILTER (WHERE sender_id = $1 AND status = 'pending'),
			COUNT(*) FILTER (WHERE receiver_email = $2 AND status = 'pending')
		FROM team_invitations
	`
	if err := s.db.QueryRow(ctx, pendingQuery, userID, email).Scan(
		&dashboard.PendingSent,
		&dashboard.PendingReceived,
	); err != nil {
		return nil, err
	}

	return dashboard, nil
}
